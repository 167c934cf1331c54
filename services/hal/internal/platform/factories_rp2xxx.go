// services/hal/internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"image/color"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/delay"
	"tinygo.org/x/drivers/ws2812"

	"pico-examples-go/errcode"
	"pico-examples-go/services/hal/halcore"
	"pico-examples-go/services/hal/internal/platform/boards"
	"pico-examples-go/types"
)

// -----------------------------------------------------------------------------
// GPIO
// -----------------------------------------------------------------------------

// DefaultPinFactory maps logical numbers directly to machine.Pin(n), which
// matches Pico/Pico 2 GP numbering. A pixel status LED is served by ws2812.
func DefaultPinFactory() halcore.PinFactory { return rp2PinFactory{} }

type rp2PinFactory struct{}

// Single pixel per board; shared so Get reflects the last Set.
var statusPixel *pixelPin

func (rp2PinFactory) ByNumber(n int) (halcore.Pin, bool) {
	b := boards.Selected
	if !b.ValidPin(n) {
		return nil, false
	}
	if b.LEDKind == types.LEDPixel && n == b.LED {
		if statusPixel == nil {
			statusPixel = &pixelPin{n: n, on: color.RGBA{R: 0x20, G: 0x20, B: 0x20}}
		}
		return statusPixel, true
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }

func (r *rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

func (r *rp2Pin) Number() int { return r.n }

// pixelPin drives one WS2812 as an on/off LED.
type pixelPin struct {
	n     int
	dev   ws2812.Device
	on    color.RGBA
	level bool
}

func (p *pixelPin) ConfigureInput(halcore.Pull) error { return errcode.Unsupported }

func (p *pixelPin) ConfigureOutput(initial bool) error {
	pin := machine.Pin(p.n)
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.dev = ws2812.NewWS2812(pin)
	p.Set(initial)
	return nil
}

func (p *pixelPin) Set(level bool) {
	p.level = level
	c := color.RGBA{}
	if level {
		c = p.on
	}
	_ = p.dev.WriteColors([]color.RGBA{c})
}

func (p *pixelPin) Get() bool   { return p.level }
func (p *pixelPin) Toggle()     { p.Set(!p.level) }
func (p *pixelPin) Number() int { return p.n }

// -----------------------------------------------------------------------------
// Console
// -----------------------------------------------------------------------------

// OpenConsole returns the named transport: "usb" (default) is the CDC-ACM
// serial, "uart0"/"uart1" use the interrupt-buffered uartx ports.
func OpenConsole(name string) (halcore.Console, error) {
	switch name {
	case "", "usb", "stdout":
		return usbConsole{}, nil
	case "uart0":
		return &uartConsole{u: uartx.UART0, tx: uartx.UART0_TX_PIN, rx: uartx.UART0_RX_PIN}, nil
	case "uart1":
		return &uartConsole{u: uartx.UART1, tx: uartx.UART1_TX_PIN, rx: uartx.UART1_RX_PIN}, nil
	default:
		return nil, errcode.UnknownConsole
	}
}

type usbConsole struct{}

func (usbConsole) Configure() error            { return machine.Serial.Configure(machine.UARTConfig{}) }
func (usbConsole) Write(p []byte) (int, error) { return machine.Serial.Write(p) }

const consoleBaud = 115200

type uartConsole struct {
	u      *uartx.UART
	tx, rx machine.Pin
}

func (c *uartConsole) Configure() error {
	return c.u.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       c.tx,
		RX:       c.rx,
	})
}

func (c *uartConsole) Write(p []byte) (int, error) { return c.u.Write(p) }

// -----------------------------------------------------------------------------
// Clock & reset
// -----------------------------------------------------------------------------

func DefaultClock() halcore.Clock { return rp2Clock{} }

type rp2Clock struct{}

func (rp2Clock) Now() time.Time { return time.Now() }

// Sub-millisecond waits (button sampling) busy-wait; longer ones yield.
func (rp2Clock) Sleep(d time.Duration) {
	if d < time.Millisecond {
		delay.Sleep(d)
		return
	}
	time.Sleep(d)
}

// Reset arms the watchdog with the shortest timeout and stops feeding it.
func Reset() {
	_ = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 1})
	_ = machine.Watchdog.Start()
	for {
		time.Sleep(10 * time.Second)
	}
}

// Board returns the compiled-in board descriptor.
func Board() types.Board { return boards.Selected }
