//go:build !(rp2040 || rp2350)

package boards

import "pico-examples-go/types"

// Host builds simulate a Pico-sized GPIO bank without a default LED, so the
// programs' own fallback pin applies.
var Selected = types.Board{
	Name:    "host",
	GPIOMin: 0,
	GPIOMax: 28,
}
