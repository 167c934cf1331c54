package types

// LEDKind says how the board's status LED is driven.
type LEDKind uint8

const (
	LEDPlain LEDKind = iota // single GPIO, high = on
	LEDPixel                // one WS2812 pixel on a GPIO
)

// Board describes what the PCB provides out of the box.
// It must not include wiring choices made by a particular program.
type Board struct {
	Name string

	// Default status LED. HasLED is false when the board support package
	// defines no LED constant; programs then fall back to their own choice.
	LED     int
	HasLED  bool
	LEDKind LEDKind

	// User GPIO range.
	GPIOMin, GPIOMax int
}

// ValidPin reports whether n lies in the board's user GPIO range.
func (b Board) ValidPin(n int) bool {
	return n >= b.GPIOMin && n <= b.GPIOMax
}
