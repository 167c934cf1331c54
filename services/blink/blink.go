// Package blink toggles the board LED on a fixed period.
package blink

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"pico-examples-go/errcode"
	"pico-examples-go/services/hal/halcore"
	"pico-examples-go/types"
	"pico-examples-go/x/logx"
)

// PinID is the GPIO number driving the LED.
type PinID int

const (
	// FallbackLEDPin is used when the board names no LED (Pico GP25).
	FallbackLEDPin PinID = 25

	// DefaultDelay is how long each level is held.
	DefaultDelay = 500 * time.Millisecond
)

// ResolveLEDPin returns the board's LED when it defines one, else
// FallbackLEDPin.
func ResolveLEDPin(b types.Board) PinID {
	if b.HasLED {
		return PinID(b.LED)
	}
	return FallbackLEDPin
}

// LED owns the resolved pin for the rest of the program.
type LED struct {
	id  PinID
	pin halcore.Pin
}

// InitLED resolves the LED pin and configures it as a low output.
func InitLED(pins halcore.PinFactory, b types.Board, log logx.Logger) (*LED, error) {
	id := ResolveLEDPin(b)
	log.Info("init default led_pin", "pin", int(FallbackLEDPin))
	if id != FallbackLEDPin {
		log.Info("board overrides led_pin", "board", b.Name, "pin", int(id))
	}

	pin, ok := pins.ByNumber(int(id))
	if !ok {
		return nil, errors.Wrapf(errcode.UnknownPin, "led pin %d", id)
	}
	if err := pin.ConfigureOutput(false); err != nil {
		return nil, &errcode.E{
			C:   errcode.MapDriverErr(err, errcode.Error),
			Op:  "configure",
			Msg: "led pin " + strconv.Itoa(int(id)),
			Err: err,
		}
	}
	return &LED{id: id, pin: pin}, nil
}

func (l *LED) ID() PinID { return l.id }

// Set drives the LED on or off.
func (l *LED) Set(on bool) { l.pin.Set(on) }

// SetLED drives led on or off.
func SetLED(led *LED, on bool) { led.Set(on) }

// Blinker alternates the LED between on and off.
type Blinker struct {
	led   *LED
	clock halcore.Clock
	delay time.Duration
	log   logx.Logger
}

// New returns a Blinker holding each level for delay (DefaultDelay if <= 0).
func New(led *LED, clock halcore.Clock, delay time.Duration, log logx.Logger) *Blinker {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Blinker{led: led, clock: clock, delay: delay, log: log}
}

func (b *Blinker) Delay() time.Duration { return b.delay }

// Cycle runs one on/off period.
func (b *Blinker) Cycle() {
	SetLED(b.led, true)
	b.log.Info("Turning on...")
	b.clock.Sleep(b.delay)

	SetLED(b.led, false)
	b.log.Info("Turning off...")
	b.clock.Sleep(b.delay)
}

// Run blinks forever.
func (b *Blinker) Run() {
	for {
		b.Cycle()
	}
}
