// services/hal/internal/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"os"
	"time"

	"pico-examples-go/errcode"
	"pico-examples-go/services/hal/halcore"
	"pico-examples-go/services/hal/haltest"
	"pico-examples-go/services/hal/internal/platform/boards"
	"pico-examples-go/types"
)

// ----------------------------- GPIO (host) -----------------------------------

// DefaultPinFactory provides simulated pins bounded by the host board.
func DefaultPinFactory() halcore.PinFactory {
	f := haltest.NewPinFactory(nil)
	f.MaxPin = boards.Selected.GPIOMax
	return f
}

// ----------------------------- Console (host) --------------------------------

// OpenConsole accepts the firmware transport names and routes all of them
// to stdout.
func OpenConsole(name string) (halcore.Console, error) {
	switch name {
	case "", "usb", "stdout", "uart0", "uart1":
		return stdoutConsole{}, nil
	default:
		return nil, errcode.UnknownConsole
	}
}

type stdoutConsole struct{}

func (stdoutConsole) Configure() error            { return nil }
func (stdoutConsole) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

// ----------------------------- Clock & reset ---------------------------------

func DefaultClock() halcore.Clock { return wallClock{} }

type wallClock struct{}

func (wallClock) Now() time.Time        { return time.Now() }
func (wallClock) Sleep(d time.Duration) { time.Sleep(d) }

// Reset has no hardware to restart on the host.
func Reset() { panic(errcode.ResetRequested) }

// Board returns the compiled-in board descriptor.
func Board() types.Board { return boards.Selected }
