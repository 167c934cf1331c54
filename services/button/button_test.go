package button

import (
	"testing"
	"time"

	"pico-examples-go/services/hal/halcore"
	"pico-examples-go/services/hal/haltest"
	"pico-examples-go/types"
	"pico-examples-go/x/logx"
)

const ms = time.Millisecond

func newButton(t *testing.T) (*Button, *haltest.Pin, *haltest.Clock) {
	t.Helper()
	clk := haltest.NewClock()
	pins := haltest.NewPinFactory(clk)
	p, _ := pins.ByNumber(10)
	b, err := New(p, types.ButtonPlayer1, clk, logx.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b, pins.Pin(10), clk
}

func TestNewPullsUp(t *testing.T) {
	b, p, _ := newButton(t)
	if p.IsOutput() || p.Pull() != halcore.PullUp {
		t.Fatalf("button pin output=%v pull=%v", p.IsOutput(), p.Pull())
	}
	if b.Pressed() || b.Level() != types.High {
		t.Fatal("idle button should read high / not pressed")
	}
	if got, want := b.String(), "Button { role: player_1, level=High }"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestWaitForPress(t *testing.T) {
	b, p, clk := newButton(t)
	p.Script(
		haltest.Step{At: 50 * ms, Level: false},
		haltest.Step{At: 300 * ms, Level: true},
	)
	done := make(chan struct{})
	go func() {
		b.WaitForPress()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitForPress never returned")
	}
	if clk.Since() != 300*ms {
		t.Fatalf("returned at %v, want 300ms", clk.Since())
	}
}

func TestMeasureMinimalDebounceSingle(t *testing.T) {
	b, p, _ := newButton(t)
	p.Script(
		haltest.Step{At: 10 * ms, Level: false}, // press
		haltest.Step{At: 12 * ms, Level: true},  // bounce
		haltest.Step{At: 30 * ms, Level: false}, // settles after 18ms
	)
	if got := b.MeasureMinimalDebounce(100*ms, 1); got != 21*ms {
		t.Fatalf("debounce = %v, want 21ms (18ms + 20%%)", got)
	}
}

func TestMeasureMinimalDebounceKeepsWorstIteration(t *testing.T) {
	b, p, clk := newButton(t)
	p.Script(
		haltest.Step{At: 10 * ms, Level: false},
		haltest.Step{At: 12 * ms, Level: true},
		haltest.Step{At: 30 * ms, Level: false},
		haltest.Step{At: 200 * ms, Level: true}, // release
		haltest.Step{At: 800 * ms, Level: false},
		haltest.Step{At: 805 * ms, Level: true},
		haltest.Step{At: 810 * ms, Level: false},
	)
	if got := b.MeasureMinimalDebounce(100*ms, 2); got != 21*ms {
		t.Fatalf("debounce = %v, want 21ms", got)
	}
	if clk.Since() < 900*ms {
		t.Fatalf("second iteration not sampled: elapsed %v", clk.Since())
	}
}

func TestMeasureMinimalDebounceFloor(t *testing.T) {
	b, p, _ := newButton(t)
	p.Script(haltest.Step{At: 0, Level: false}) // clean press, no bounce
	if got := b.MeasureMinimalDebounce(20*ms, 1); got != 5*ms {
		t.Fatalf("debounce = %v, want 5ms floor", got)
	}
	if got := b.MeasureMinimalDebounce(20*ms, 0); got != 5*ms {
		t.Fatalf("zero iterations = %v, want 5ms", got)
	}
}
