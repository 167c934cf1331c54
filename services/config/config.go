package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pico-examples-go/errcode"
	"pico-examples-go/x/mathx"
	"pico-examples-go/x/timex"
)

// -----------------------------------------------------------------------------
// Build-time overrides
//
// Set with the linker, e.g.
//
//	tinygo flash -target=pico -ldflags="-X pico-examples-go/services/config.LEDDelayMs=250" ./cmd/blink
//
// Empty means "use the default".
// -----------------------------------------------------------------------------

var (
	LEDDelayMs = ""
	Console    = ""
	Setup      = ""
)

const (
	defaultLEDDelay = 500 * time.Millisecond
	defaultConsole  = "usb"
	defaultSetup    = "pico_button_wars"

	minLEDDelay = time.Millisecond
	maxLEDDelay = time.Minute
)

type Config struct {
	LEDDelay time.Duration
	Console  string
	Setup    string
}

func Defaults() Config {
	return Config{
		LEDDelay: defaultLEDDelay,
		Console:  defaultConsole,
		Setup:    defaultSetup,
	}
}

// Load applies the linker overrides on top of Defaults. A bad override is
// reported and the default kept for that field.
func Load() (Config, error) {
	return parse(LEDDelayMs, Console, Setup)
}

func parse(delayMs, console, setup string) (Config, error) {
	c := Defaults()
	var err error

	if s := strings.TrimSpace(delayMs); s != "" {
		ms, perr := strconv.Atoi(s)
		if perr != nil {
			err = errors.Wrapf(errcode.InvalidConfig, "LEDDelayMs %q", delayMs)
		} else {
			c.LEDDelay = mathx.Clamp(timex.Ms(ms), minLEDDelay, maxLEDDelay)
		}
	}
	if s := strings.TrimSpace(console); s != "" {
		c.Console = s
	}
	if s := strings.TrimSpace(setup); s != "" {
		c.Setup = s
	}
	return c, err
}
