// Package leds drives role-tagged indicator LEDs with blocking flash patterns.
package leds

import (
	"time"

	"github.com/pkg/errors"

	"pico-examples-go/services/hal/halcore"
	"pico-examples-go/types"
	"pico-examples-go/x/logx"
)

// Led is an output pin with a role.
type Led struct {
	pin   halcore.Pin
	role  types.LEDRole
	clock halcore.Clock
	log   logx.Logger
}

// New configures pin as a low output.
func New(pin halcore.Pin, role types.LEDRole, clock halcore.Clock, log logx.Logger) (*Led, error) {
	if err := pin.ConfigureOutput(false); err != nil {
		return nil, errors.Wrapf(err, "led %s on gpio %d", role, pin.Number())
	}
	return &Led{pin: pin, role: role, clock: clock, log: log.With("led", role.String())}, nil
}

func (l *Led) Role() types.LEDRole { return l.role }

func (l *Led) Level() types.Level { return types.Level(l.pin.Get()) }

// FlashPattern blinks repeats times, each on and off phase lasting d.
func (l *Led) FlashPattern(d time.Duration, repeats int) {
	for i := 0; i < repeats; i++ {
		// Start from off so every flash is visible.
		if l.pin.Get() {
			l.pin.Set(false)
		}
		l.pin.Set(true)
		l.clock.Sleep(d)
		l.pin.Set(false)
		l.clock.Sleep(d)
	}
	l.log.Debug("flashed", "times", repeats, "blink_duration", d)
}

func (l *Led) String() string {
	return "Led { role: " + l.role.String() + ", output_level=" + l.Level().String() + " }"
}
