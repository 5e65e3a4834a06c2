package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/swapleg/cmd/swapleg/internal/config"
	"github.com/meenmo/swapleg/cmd/swapleg/internal/expand"
	"github.com/meenmo/swapleg/cmd/swapleg/internal/logger"
	"github.com/meenmo/swapleg/cmd/swapleg/internal/schedule"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration: %v\n", err)
		return 2
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Out: stderr})

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "expand":
		return expand.Run(args[1:], stdin, stdout, stderr, *cfg, log)
	case "schedule":
		return schedule.Run(args[1:], stdin, stdout, stderr, *cfg, log)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swapleg <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  expand    Expand a swap leg definition into cashflow periods")
	fmt.Fprintln(w, "  schedule  Generate the periods of a periodic schedule")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `swapleg <command> -h` for command-specific help.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment (also read from .env):")
	fmt.Fprintln(w, "  SWAPLEG_LOG_LEVEL, SWAPLEG_LOG_PRETTY, SWAPLEG_MAX_PERIODS, SWAPLEG_OUTPUT_FORMAT")
}
