package config

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"pico-examples-go/errcode"
	"pico-examples-go/types"
)

// GameSetup is the wiring of the button game. OnboardLED < 0 means
// "the board default".
type GameSetup struct {
	OnboardLED    int
	Player1LED    int
	Player2LED    int
	Player1Button int
	Player2Button int

	DebounceRange      time.Duration
	DebounceIterations int
}

// GameSetups are compiled-in wirings, selected by Config.Setup.
var GameSetups = map[string]GameSetup{
	"pico_button_wars": {
		OnboardLED:         -1,
		Player1LED:         5,
		Player2LED:         8,
		Player1Button:      10,
		Player2Button:      11,
		DebounceRange:      100 * time.Millisecond,
		DebounceIterations: 10,
	},
}

func SetupByName(name string) (GameSetup, error) {
	s, ok := GameSetups[name]
	if !ok {
		return GameSetup{}, errors.Wrapf(errcode.InvalidConfig, "unknown setup %q", name)
	}
	return s, nil
}

// Pins returns the GPIOs the setup claims, with the onboard LED resolved
// to led when the setup leaves it to the board.
func (s GameSetup) Pins(led int) []int {
	onboard := s.OnboardLED
	if onboard < 0 {
		onboard = led
	}
	return []int{onboard, s.Player1LED, s.Player2LED, s.Player1Button, s.Player2Button}
}

// Validate checks every pin exists on b and none is used twice.
func (s GameSetup) Validate(b types.Board, led int) error {
	seen := make(map[int]bool, 5)
	for _, n := range s.Pins(led) {
		if !b.ValidPin(n) {
			return &errcode.E{C: errcode.UnknownPin, Op: "setup", Msg: "gpio " + strconv.Itoa(n)}
		}
		if seen[n] {
			return &errcode.E{C: errcode.PinInUse, Op: "setup", Msg: "gpio " + strconv.Itoa(n)}
		}
		seen[n] = true
	}
	if s.DebounceIterations < 0 || s.DebounceRange < 0 {
		return errors.Wrap(errcode.InvalidConfig, "debounce")
	}
	return nil
}
