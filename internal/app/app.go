package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/fixturec/internal/ctxlog"
	"github.com/vk/fixturec/internal/pipeline"
	"github.com/vk/fixturec/internal/toolchain"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	pipeline *pipeline.Pipeline
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The command builder
// is injectable so tests can run the full pipeline without a real toolchain.
func NewApp(outW io.Writer, config *Config, builder toolchain.CommandBuilder) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if builder == nil {
		builder = toolchain.NewRealCommandBuilder()
	}
	invoker := toolchain.NewInvoker(builder)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   config,
		pipeline: pipeline.New(config.FixturesDir, config.OutputDir, invoker),
	}
}

// Run executes one pipeline invocation.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "fixtures", a.config.FixturesDir, "out", a.config.OutputDir)

	if err := a.pipeline.Run(ctx); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
