// Package button reads pulled-up push buttons by polling.
package button

import (
	"time"

	"github.com/pkg/errors"

	"pico-examples-go/services/hal/halcore"
	"pico-examples-go/types"
	"pico-examples-go/x/logx"
	"pico-examples-go/x/mathx"
	"pico-examples-go/x/timex"
)

const (
	pollPeriod     = time.Millisecond
	samplePeriod   = 50 * time.Microsecond
	releaseSettle  = 100 * time.Millisecond
	interTestPause = 500 * time.Millisecond

	// Debounce results get a 20% margin and never drop below 5 ms.
	debounceMarginPct = 20
	minDebounceMs     = 5
)

// Button is an active-low input: pressed pulls the line to ground.
type Button struct {
	pin   halcore.Pin
	role  types.ButtonRole
	clock halcore.Clock
	log   logx.Logger
}

// New configures pin as an input with the internal pull-up.
func New(pin halcore.Pin, role types.ButtonRole, clock halcore.Clock, log logx.Logger) (*Button, error) {
	if err := pin.ConfigureInput(halcore.PullUp); err != nil {
		return nil, errors.Wrapf(err, "button %s on gpio %d", role, pin.Number())
	}
	return &Button{pin: pin, role: role, clock: clock, log: log.With("button", role.String())}, nil
}

func (b *Button) Role() types.ButtonRole { return b.role }

func (b *Button) Level() types.Level { return types.Level(b.pin.Get()) }

func (b *Button) Pressed() bool { return !b.pin.Get() }

func (b *Button) String() string {
	return "Button { role: " + b.role.String() + ", level=" + b.Level().String() + " }"
}

// WaitForPress blocks for a full press-and-release.
func (b *Button) WaitForPress() {
	b.waitFor(types.Low)
	b.log.Info(b.String() + " is LOW!")
	b.clock.Sleep(releaseSettle)
	b.waitFor(types.High)
}

func (b *Button) waitFor(l types.Level) {
	for types.Level(b.pin.Get()) != l {
		b.clock.Sleep(pollPeriod)
	}
}

// MeasureMinimalDebounce times contact bounce over iterations presses. Each
// press is sampled every 50 us for testRange; the longest gap between
// consecutive level changes (after the first) is the bounce time. The
// result is the worst bounce plus a 20% margin, at least 5 ms.
func (b *Button) MeasureMinimalDebounce(testRange time.Duration, iterations int) time.Duration {
	b.log.Info("measuring debounce", "max_ms", timex.ToMs(testRange), "iterations", iterations)

	var total int
	var worst time.Duration
	for i := 0; i < iterations; i++ {
		b.waitFor(types.Low)
		b.log.Info("button pressed, measuring minimal debounce time")

		transitions := 0
		last := types.Low
		start := b.clock.Now()
		lastChange := start
		var longest time.Duration
		end := start.Add(testRange)

		for b.clock.Now().Before(end) {
			cur := types.Level(b.pin.Get())
			if cur != last {
				transitions++
				now := b.clock.Now()
				if transitions > 1 {
					longest = max(longest, now.Sub(lastChange))
				}
				lastChange = now
				b.log.Debug("transition",
					"n", transitions,
					"from", last.String(),
					"to", cur.String(),
					"at_ms", timex.ToMs(now.Sub(start)))
				last = cur
			}
			b.clock.Sleep(samplePeriod)
		}

		b.log.Info("iteration done",
			"iteration", i+1,
			"transitions", transitions,
			"longest_debounce_ms", timex.ToMs(longest))
		if transitions > 0 {
			worst = max(worst, longest)
		}
		total += transitions

		if i < iterations-1 {
			b.waitFor(types.High)
			b.clock.Sleep(interTestPause)
		}
	}

	avg := 0
	if iterations > 0 {
		avg = total / iterations
	}
	worstMs := timex.ToMs(worst)
	b.log.Info("debounce summary",
		"avg_transitions", avg,
		"longest_debounce_ms", worstMs,
		"iterations", iterations)
	return timex.Ms(max(mathx.Grow(worstMs, debounceMarginPct), minDebounceMs))
}
