package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"

	"github.com/vk/fixturec/internal/app"
	"github.com/vk/fixturec/internal/cli"
)

// diagnosticError is implemented by failures that captured output from an
// external tool worth showing verbatim.
type diagnosticError interface {
	error
	DiagnosticOutput() string
}

// main is the entrypoint for the fixturec application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Toolchain executables may be pinned through a checked-in env file.
	_ = godotenv.Load()

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		var diag diagnosticError
		if errors.As(err, &diag) && diag.DiagnosticOutput() != "" {
			fmt.Fprintln(os.Stderr, diag.DiagnosticOutput())
		}
		color.Danger.Printf("fixture build failed: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	fixturecApp := app.NewApp(outW, appConfig, nil)
	return fixturecApp.Run(context.Background())
}
