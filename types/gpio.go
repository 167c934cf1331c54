package types

// ---- GPIO levels ----

type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "High"
	}
	return "Low"
}

// ---- Roles (what a pin is wired to) ----

type LEDRole uint8

const (
	LEDOnboard LEDRole = iota
	LEDPlayer1
	LEDPlayer2
)

func (r LEDRole) String() string {
	switch r {
	case LEDOnboard:
		return "onboard"
	case LEDPlayer1:
		return "player_1"
	case LEDPlayer2:
		return "player_2"
	default:
		return "unknown"
	}
}

type ButtonRole uint8

const (
	ButtonPlayer1 ButtonRole = iota
	ButtonPlayer2
)

func (r ButtonRole) String() string {
	switch r {
	case ButtonPlayer1:
		return "player_1"
	case ButtonPlayer2:
		return "player_2"
	default:
		return "unknown"
	}
}
