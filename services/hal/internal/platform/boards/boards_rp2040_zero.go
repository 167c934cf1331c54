//go:build rp2040 && waveshare_rp2040_zero

package boards

import "pico-examples-go/types"

// RP2040-Zero has no plain LED; its status LED is a WS2812 pixel on GP16.
var Selected = types.Board{
	Name:    "waveshare_rp2040_zero",
	LED:     16,
	HasLED:  true,
	LEDKind: types.LEDPixel,
	GPIOMin: 0,
	GPIOMax: 29,
}
