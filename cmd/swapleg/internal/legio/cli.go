package legio

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/meenmo/swapleg/cmd/swapleg/internal/config"
	swapconfig "github.com/meenmo/swapleg/swap/config"
)

// Flags are the options shared by every subcommand.
type Flags struct {
	Input        string
	InputFormat  string
	OutputFormat string
	MaxPeriods   int
	Help         bool
}

// RegisterFlags binds the shared options to fs, defaulting to cfg.
func RegisterFlags(fs *flag.FlagSet, cfg config.Config) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Input, "input", "", "input path (optional; if set, ignores stdin)")
	fs.StringVar(&f.InputFormat, "input-format", "", "json or yaml (default: from file extension, else json)")
	fs.StringVar(&f.OutputFormat, "output-format", cfg.OutputFormat, "json, yaml or msgpack")
	fs.IntVar(&f.MaxPeriods, "max-periods", cfg.MaxPeriods, "maximum accrual periods per schedule")
	fs.BoolVar(&f.Help, "h", false, "Show help")
	fs.BoolVar(&f.Help, "help", false, "Show help")
	return f
}

// Apply overrides cfg with the parsed flags and installs the engine limits.
func (f *Flags) Apply(cfg config.Config) (config.Config, error) {
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(f.OutputFormat))
	cfg.MaxPeriods = f.MaxPeriods
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	// Runs once before any leg is expanded.
	swapconfig.SetConfig(swapconfig.Config{MaxSchedulePeriods: cfg.MaxPeriods})
	return cfg, nil
}

// Format returns the input format to decode with.
func (f *Flags) Format() string {
	if f.InputFormat != "" {
		return strings.ToLower(f.InputFormat)
	}
	return FormatFromPath(f.Input, "json")
}

// Interactive reports whether input would come from a terminal.
func (f *Flags) Interactive(stdin io.Reader) bool {
	if strings.TrimSpace(f.Input) != "" {
		return false
	}
	if file, ok := stdin.(*os.File); ok {
		if stat, err := file.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return true
		}
	}
	return false
}

// ReadInput reads the input file, or stdin when no path is set.
func (f *Flags) ReadInput(stdin io.Reader) ([]byte, error) {
	if path := strings.TrimSpace(f.Input); path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

// WriteError writes err as an ErrorOutput document and returns the exit code.
func WriteError(stdout io.Writer, format string, err error) int {
	if !config.IsOutputFormat(format) {
		format = config.FormatJSON
	}
	_ = Encode(stdout, format, NewErrorOutput(err))
	return 1
}
