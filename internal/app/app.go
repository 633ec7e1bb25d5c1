package app

import (
	"io"
	"log/slog"

	"github.com/daniel5151/analog-literals/internal/model"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *model.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger; nothing is read
// from disk until Run.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: model.NewLoader(),
	}
}
