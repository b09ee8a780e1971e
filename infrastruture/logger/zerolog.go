// Package logger provides the component loggers used across the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/beka-birhanu/vinom-mazeview/service/i"
	"github.com/rs/zerolog"
)

var _ i.Logger = &Logger{}

// Logger writes human-readable lines tagged with a coloured component prefix.
type Logger struct {
	zl zerolog.Logger
}

// Option tweaks a Logger at construction time.
type Option func(*zerolog.ConsoleWriter, *zerolog.Level)

// WithLevel sets the minimum level, one of zerolog's level names.
func WithLevel(level string) Option {
	return func(_ *zerolog.ConsoleWriter, l *zerolog.Level) {
		if parsed, err := zerolog.ParseLevel(level); err == nil && level != "" {
			*l = parsed
		}
	}
}

// WithoutColor disables ANSI colours, for files and tests.
func WithoutColor() Option {
	return func(cw *zerolog.ConsoleWriter, _ *zerolog.Level) {
		cw.NoColor = true
	}
}

// WithoutTimestamp drops the timestamp column.
func WithoutTimestamp() Option {
	return func(cw *zerolog.ConsoleWriter, _ *zerolog.Level) {
		cw.PartsExclude = append(cw.PartsExclude, zerolog.TimestampFieldName)
	}
}

// New creates a logger whose lines start with "[prefix]" painted in color.
func New(prefix, color string, w io.Writer, opts ...Option) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	for _, opt := range opts {
		opt(&cw, &level)
	}

	tag := fmt.Sprintf("[%s]", prefix)
	if !cw.NoColor && color != "" {
		tag = color + tag + ColorReset
	}
	cw.FormatMessage = func(msg interface{}) string {
		return fmt.Sprintf("%s %v", tag, msg)
	}

	zl := zerolog.New(cw).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

// Info implements i.Logger.
func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Warning implements i.Logger.
func (l *Logger) Warning(msg string) {
	l.zl.Warn().Msg(msg)
}

// Error implements i.Logger.
func (l *Logger) Error(msg string) {
	l.zl.Error().Msg(msg)
}

// Debug implements i.Logger.
func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}
