package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w at the configured level.
// An unparsable level falls back to info.
func NewLogger(w io.Writer, cfg *Config) *slog.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
