package errcode

import "github.com/pkg/errors"

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK             Code = "ok"
	Unsupported    Code = "unsupported"
	InvalidConfig  Code = "invalid_config"
	NotInitialized Code = "not_initialized"

	UnknownPin     Code = "unknown_pin"
	PinInUse       Code = "pin_in_use"
	UnknownConsole Code = "unknown_console"
	ConsoleInit    Code = "console_init"
	ResetRequested Code = "reset_requested"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error chain, defaulting to Error.
// Wrappers from github.com/pkg/errors are walked as well.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Error
}

// MapDriverErr maps a platform error to a Code. Coded errors keep their
// code; anything else becomes fallback.
func MapDriverErr(err error, fallback Code) Code {
	if err == nil {
		return OK
	}
	if c := Of(err); c != Error {
		return c
	}
	return fallback
}
