package leds

import (
	"time"

	"pico-examples-go/x/mathx"
)

const (
	introFlash   = 200 * time.Millisecond
	introRepeats = 2
	chaseStart   = 100 * time.Millisecond
	chasePasses  = 10
	rampEvery    = 3
	patternPause = 500 * time.Millisecond
)

// WaitingStatePattern plays the attract sequence shown while the game waits
// for players: two slow flashes per LED, then a chase that speeds up (period
// halved) every third pass, then a short pause. LEDs flash one at a time.
func WaitingStatePattern(leds []*Led) {
	if len(leds) == 0 {
		return
	}
	for _, l := range leds {
		l.FlashPattern(introFlash, introRepeats)
	}

	d := chaseStart
	sinceRamp := 0
	for pass := 1; pass <= chasePasses; pass++ {
		for _, l := range leds {
			l.FlashPattern(d, 1)
		}
		sinceRamp++
		if sinceRamp == rampEvery {
			d = mathx.Halve(d)
			sinceRamp = 0
		}
	}
	leds[0].clock.Sleep(patternPause)
}
