//go:build rp2040 || rp2350

package logx

import "time"

// New returns a Logger printing to the runtime console (USB CDC or UART,
// whatever TinyGo routes print to on this target).
func New(prefix string) Logger { return &printLogger{prefix: prefix, level: DefaultLevel} }

type printLogger struct {
	prefix string
	level  Level
	kv     []any
}

func (p *printLogger) Debug(msg string, kv ...any) { p.log(LevelDebug, msg, kv) }
func (p *printLogger) Info(msg string, kv ...any)  { p.log(LevelInfo, msg, kv) }
func (p *printLogger) Warn(msg string, kv ...any)  { p.log(LevelWarn, msg, kv) }
func (p *printLogger) Error(msg string, kv ...any) { p.log(LevelError, msg, kv) }

func (p *printLogger) With(kv ...any) Logger {
	n := &printLogger{prefix: p.prefix, level: p.level}
	n.kv = append(append(n.kv, p.kv...), kv...)
	return n
}

func (p *printLogger) log(l Level, msg string, kv []any) {
	if l < p.level {
		return
	}
	print("[", p.prefix, "] ", l.String(), " ", msg)
	printKV(p.kv)
	printKV(kv)
	println()
}

func printKV(kv []any) {
	for i := 0; i < len(kv); i += 2 {
		print(" ")
		printValue(kv[i])
		print("=")
		if i+1 < len(kv) {
			printValue(kv[i+1])
		} else {
			print("MISSING")
		}
	}
}

// tiny helper (no fmt)
func printValue(v any) {
	switch x := v.(type) {
	case string:
		print(x)
	case bool:
		print(x)
	case int:
		print(x)
	case int32:
		print(x)
	case int64:
		print(x)
	case uint8:
		print(x)
	case uint32:
		print(x)
	case uint64:
		print(x)
	case time.Duration:
		print(int64(x/time.Millisecond), "ms")
	case error:
		print(x.Error())
	case interface{ String() string }:
		print(x.String())
	case nil:
		print("nil")
	default:
		print("?")
	}
}
