// services/hal/halcore/types.go
package halcore

import (
	"io"
	"time"
)

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}

// Pin is one digital line. ConfigureOutput covers both pin init and
// direction setup; the level is driven before the pin starts driving.
type Pin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Toggle()
	Number() int
}

// PinFactory supplies pins by the board's GPIO numbering.
type PinFactory interface {
	ByNumber(n int) (Pin, bool)
}

// ---- Console ----

// Console is the text output channel. Configure brings the transport up
// and must be called once before the first Write.
type Console interface {
	io.Writer
	Configure() error
}

// ---- Time ----

// Clock blocks the calling goroutine; Now is used for logging and
// measurements only.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}
