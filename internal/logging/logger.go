package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is what the arithmetic core, the evaluator and the host write to.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
}

// Field is one structured key/value attached to an event.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field         { return Field{key, value} }
func Int(key string, value int) Field         { return Field{key, value} }
func Uint64(key string, value uint64) Field   { return Field{key, value} }
func Float64(key string, value float64) Field { return Field{key, value} }

// Format selects how events are rendered.
type Format string

const (
	// FormatConsole is aligned human-readable text without colors.
	FormatConsole Format = "console"
	// FormatJSON is one zerolog JSON object per line, for log shippers.
	FormatJSON Format = "json"
)

// ParseFormat accepts "console" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatConsole, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown log format %q (want %q or %q)", s, FormatConsole, FormatJSON)
}

// parseLevel maps a zerolog level name; empty or unknown names mean info.
func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// ZerologAdapter is the zerolog-backed Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// New builds the host logger writing to w at the given level.
func New(w io.Writer, format Format, level string) *ZerologAdapter {
	if format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}
	return NewZerologAdapter(zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger())
}

// NewNopLogger discards everything. It is the default of every package
// that accepts a Logger.
func NewNopLogger() *ZerologAdapter {
	return NewZerologAdapter(zerolog.Nop())
}

// Component returns a child logger whose events carry component=name.
func (z *ZerologAdapter) Component(name string) *ZerologAdapter {
	return NewZerologAdapter(z.logger.With().Str("component", name).Logger())
}

func withFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event.Str(f.Key, v)
		case int:
			event.Int(f.Key, v)
		case uint64:
			event.Uint64(f.Key, v)
		case float64:
			event.Float64(f.Key, v)
		case time.Duration:
			event.Dur(f.Key, v)
		case error:
			event.AnErr(f.Key, v)
		default:
			event.Interface(f.Key, v)
		}
	}
	return event
}

func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	withFields(z.logger.Info(), fields).Msg(msg)
}

func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	withFields(z.logger.Error().Err(err), fields).Msg(msg)
}

func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	withFields(z.logger.Debug(), fields).Msg(msg)
}
