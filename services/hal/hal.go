// services/hal/hal.go
package hal

import (
	"github.com/pkg/errors"

	"pico-examples-go/services/hal/halcore"
	"pico-examples-go/services/hal/internal/platform"
	"pico-examples-go/types"
)

// Options select optional platform parts.
type Options struct {
	// Console names the text transport ("usb", "uart0", "uart1").
	// Empty leaves Platform.Console nil.
	Console string
}

// Platform bundles the primitives the firmware programs consume.
type Platform struct {
	Board   types.Board
	Pins    halcore.PinFactory
	Clock   halcore.Clock
	Console halcore.Console

	// Reset restarts the device and does not return.
	Reset func()
}

// Open returns the compiled-in platform. Nothing is configured yet: pins
// and the console are brought up by their users.
func Open(opts Options) (Platform, error) {
	p := Platform{
		Board: platform.Board(),
		Pins:  platform.DefaultPinFactory(),
		Clock: platform.DefaultClock(),
		Reset: platform.Reset,
	}
	if opts.Console != "" {
		c, err := platform.OpenConsole(opts.Console)
		if err != nil {
			return Platform{}, errors.Wrapf(err, "open console %q", opts.Console)
		}
		p.Console = c
	}
	return p, nil
}
