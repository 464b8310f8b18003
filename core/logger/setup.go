package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Config describes the sinks of a logger built by Setup.
type Config struct {
	// Dir is joined in front of the file names and created when missing.
	// Empty means the working directory.
	Dir string

	// File receives records at FileLevel and above. Empty disables the sink.
	File string

	// DebugFile receives every record. Empty disables the sink.
	DebugFile string

	// FileLevel is the minimum level of the File sink. Default info.
	FileLevel slog.Leveler

	// ConsoleLevel is the minimum level of the stderr sink. Default warn.
	ConsoleLevel slog.Leveler
}

// Setup builds a logger that fans records out to the configured console and
// file sinks. File sinks are truncated, so every run starts with fresh logs.
func Setup(cfg Config) (*slog.Logger, error) {
	if cfg.FileLevel == nil {
		cfg.FileLevel = slog.LevelInfo
	}
	if cfg.ConsoleLevel == nil {
		cfg.ConsoleLevel = slog.LevelWarn
	}

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", cfg.Dir, err)
		}
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.ConsoleLevel}),
	}

	if cfg.File != "" {
		f, err := os.Create(filepath.Join(cfg.Dir, cfg.File))
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.FileLevel}))
	}

	if cfg.DebugFile != "" {
		f, err := os.Create(filepath.Join(cfg.Dir, cfg.DebugFile))
		if err != nil {
			return nil, fmt.Errorf("failed to create debug log file: %w", err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return slog.New(newTeeHandler(handlers...)), nil
}

// teeHandler fans every record out to all wrapped handlers that enable its
// level.
type teeHandler struct {
	handlers []slog.Handler
}

func newTeeHandler(handlers ...slog.Handler) *teeHandler {
	return &teeHandler{handlers: handlers}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		wrapped[i] = handler.WithAttrs(attrs)
	}
	return newTeeHandler(wrapped...)
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	wrapped := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		wrapped[i] = handler.WithGroup(name)
	}
	return newTeeHandler(wrapped...)
}
