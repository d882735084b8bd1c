package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/fixturec/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("fixturec", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
fixturec - An incremental fixture-to-wasm compilation pipeline.

Usage:
  fixturec [options] [FIXTURES_DIR]

Arguments:
  FIXTURES_DIR
    Directory containing .src fixture sources, one per unit.

Options:
`)
		flagSet.PrintDefaults()
	}

	fixturesFlag := flagSet.String("fixtures", "", "Directory containing .src fixture sources.")
	fFlag := flagSet.String("f", "", "Directory containing .src fixture sources (shorthand).")
	outFlag := flagSet.String("out", "", "Output directory for binaries and cache markers.")
	oFlag := flagSet.String("o", "", "Output directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	fixtures := ""
	if *fixturesFlag != "" {
		fixtures = *fixturesFlag
	} else if *fFlag != "" {
		fixtures = *fFlag
	} else if flagSet.NArg() > 0 {
		fixtures = flagSet.Arg(0)
	}
	slog.Debug("Fixtures path determined.", "path", fixtures)

	if fixtures == "" {
		slog.Debug("No fixtures path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	out := *outFlag
	if out == "" {
		out = *oFlag
	}
	if out == "" {
		return nil, false, &ExitError{Code: 2, Message: "an output directory is required: pass -out"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		FixturesDir: fixtures,
		OutputDir:   out,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
