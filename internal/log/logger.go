// Package log is a thin component-scoped wrapper around log/slog.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Field names shared across components.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldScenario  = "scenario"
	FieldStart     = "start"
	FieldEnd       = "end"
	FieldDays      = "days"
	FieldBalance   = "balance"
	FieldInterest  = "interest"
	FieldJournal   = "journal"
	FieldPath      = "path"
)

// Component names.
const (
	ComponentCLI     = "cli"
	ComponentRunner  = "runner"
	ComponentJournal = "journal"
)

// Logger carries a component name on every record.
type Logger struct {
	*slog.Logger
	base *slog.Logger
}

type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// New builds a text logger. Output defaults to stderr so command output on
// stdout stays clean.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Component == "" {
		cfg.Component = ComponentCLI
	}
	base := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level}))
	return &Logger{
		Logger: base.With(FieldComponent, cfg.Component),
		base:   base,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Logger{Logger: base, base: base}
}

// WithComponent returns a logger for another component. Attributes added
// with With are not carried over.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.base.With(FieldComponent, component),
		base:   l.base,
	}
}

// With returns a child logger carrying extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), base: l.base}
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
