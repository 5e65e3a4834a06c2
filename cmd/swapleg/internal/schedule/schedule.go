package schedule

import (
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/meenmo/swapleg/cmd/swapleg/internal/config"
	"github.com/meenmo/swapleg/cmd/swapleg/internal/legio"
)

// Run reads a periodic schedule and writes its adjusted and unadjusted periods.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, cfg config.Config, log zerolog.Logger) int {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := legio.RegisterFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if flags.Help {
		usage(stderr)
		return 0
	}
	if flags.Interactive(stdin) {
		usage(stderr)
		return 2
	}

	cfg, err := flags.Apply(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid options")
		return legio.WriteError(stdout, flags.OutputFormat, err)
	}

	data, err := flags.ReadInput(stdin)
	if err != nil {
		return fail(stdout, cfg, log, fmt.Errorf("failed to read input: %w", err))
	}
	var input legio.ScheduleInput
	if err := legio.Decode(data, flags.Format(), &input); err != nil {
		return fail(stdout, cfg, log, fmt.Errorf("failed to parse %s input: %w", flags.Format(), err))
	}

	sched, err := input.Schedule()
	if err != nil {
		return fail(stdout, cfg, log, err)
	}
	periods, err := sched.Generate()
	if err != nil {
		return fail(stdout, cfg, log, err)
	}
	log.Info().Int("periods", len(periods)).Str("frequency", sched.Frequency.String()).Msg("generated schedule")

	if err := legio.Encode(stdout, cfg.OutputFormat, legio.NewScheduleOutput(periods)); err != nil {
		log.Error().Err(err).Msg("failed to write output")
		return 1
	}
	return 0
}

func fail(stdout io.Writer, cfg config.Config, log zerolog.Logger, err error) int {
	log.Error().Err(err).Msg("schedule failed")
	return legio.WriteError(stdout, cfg.OutputFormat, err)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  swapleg schedule < schedule.json")
	fmt.Fprintln(w, "  swapleg schedule -input schedule.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the periods of a periodic schedule and write them to stdout.")
}
