//go:build !(rp2040 || rp2350)

package logx

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a Logger writing to stderr with the given prefix.
func New(prefix string) Logger { return NewWriter(os.Stderr, prefix, DefaultLevel) }

// NewWriter returns a Logger writing to w. Tests use it to capture output.
func NewWriter(w io.Writer, prefix string, lvl Level) Logger {
	return charmLogger{l: log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           toCharm(lvl),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})}
}

type charmLogger struct{ l *log.Logger }

func (c charmLogger) Debug(msg string, kv ...any) { c.l.Debug(msg, kv...) }
func (c charmLogger) Info(msg string, kv ...any)  { c.l.Info(msg, kv...) }
func (c charmLogger) Warn(msg string, kv ...any)  { c.l.Warn(msg, kv...) }
func (c charmLogger) Error(msg string, kv ...any) { c.l.Error(msg, kv...) }
func (c charmLogger) With(kv ...any) Logger       { return charmLogger{l: c.l.With(kv...)} }

func toCharm(l Level) log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
