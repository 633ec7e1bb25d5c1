package app

import (
	"io"
	"log/slog"
)

// logLevels maps the accepted -log-level values onto slog levels. CLI
// validation guarantees membership; an unknown value still falls back to
// info rather than panicking, since a Config can also be built directly.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the App's private logger from its validated Config. It
// does not touch the process-wide default, allowing for isolated logger
// instances.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	level, ok := logLevels[cfg.LogLevel]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
