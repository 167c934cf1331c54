//go:build (rp2040 || rp2350) && !waveshare_rp2040_zero

package boards

import (
	"machine"

	"pico-examples-go/types"
)

// Pico family: the board support package names the onboard LED.
var Selected = types.Board{
	Name:    "pico",
	LED:     int(machine.LED),
	HasLED:  true,
	LEDKind: types.LEDPlain,
	GPIOMin: 0,
	// GP28 is the last GPIO on the Pico and Pico 2 headers; GP29 is wired
	// to VSYS sensing and is left out.
	GPIOMax: 28,
}
