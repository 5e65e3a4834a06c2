package expand

import (
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/meenmo/swapleg/cmd/swapleg/internal/config"
	"github.com/meenmo/swapleg/cmd/swapleg/internal/legio"
	"github.com/meenmo/swapleg/swap"
	"github.com/meenmo/swapleg/utils"
)

// Run reads a leg definition, expands it and writes the payment periods and
// notional exchanges to stdout.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, cfg config.Config, log zerolog.Logger) int {
	fs := flag.NewFlagSet("expand", flag.ContinueOnError)
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
	var input legio.LegInput
	if err := legio.Decode(data, flags.Format(), &input); err != nil {
		return fail(stdout, cfg, log, fmt.Errorf("failed to parse %s input: %w", flags.Format(), err))
	}
	log.Debug().Str("input", flags.Input).Str("convention", input.Convention).Msg("read leg definition")

	params, err := input.Params()
	if err != nil {
		return fail(stdout, cfg, log, err)
	}
	def, err := swap.NewSwapLegDefinition(params)
	if err != nil {
		return fail(stdout, cfg, log, err)
	}
	leg, err := swap.Expand(def)
	if err != nil {
		return fail(stdout, cfg, log, err)
	}

	log.Info().
		Str("leg_start", def.StartDate().Format(utils.DateLayout)).
		Str("leg_end", def.EndDate().Format(utils.DateLayout)).
		Str("currency", string(def.Currency())).
		Int("periods", len(leg.PaymentPeriods)).
		Int("events", len(leg.PaymentEvents)).
		Msg("expanded swap leg")

	if err := legio.Encode(stdout, cfg.OutputFormat, legio.NewLegOutput(leg)); err != nil {
		log.Error().Err(err).Msg("failed to write output")
		return 1
	}
	return 0
}

func fail(stdout io.Writer, cfg config.Config, log zerolog.Logger, err error) int {
	log.Error().Err(err).Msg("expand failed")
	return legio.WriteError(stdout, cfg.OutputFormat, err)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  swapleg expand < leg.json")
	fmt.Fprintln(w, "  swapleg expand -input leg.yaml [-output-format yaml|msgpack]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read a swap leg definition, expand it into payment periods and")
	fmt.Fprintln(w, "notional exchanges, and write the result to stdout.")
}
