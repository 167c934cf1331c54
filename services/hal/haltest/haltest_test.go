package haltest

import (
	"testing"
	"time"

	"pico-examples-go/errcode"
	"pico-examples-go/services/hal/halcore"
)

var (
	_ halcore.Clock      = (*Clock)(nil)
	_ halcore.Pin        = (*Pin)(nil)
	_ halcore.PinFactory = (*PinFactory)(nil)
	_ halcore.Console    = (*Console)(nil)
)

func TestClockAdvancesAndRecords(t *testing.T) {
	c := NewClock()
	c.Sleep(500 * time.Millisecond)
	c.Sleep(-time.Second) // clamped
	c.Sleep(time.Second)
	if got := c.Since(); got != 1500*time.Millisecond {
		t.Fatalf("Since = %v, want 1.5s", got)
	}
	s := c.Sleeps()
	if len(s) != 3 || s[1] != 0 {
		t.Fatalf("sleeps = %v", s)
	}
}

func TestClockHaltAfterParksCaller(t *testing.T) {
	c := NewClock()
	halted := c.HaltAfter(3)
	go func() {
		for {
			c.Sleep(time.Millisecond)
		}
	}()
	select {
	case <-halted:
	case <-time.After(time.Second):
		t.Fatal("clock never halted")
	}
	if n := len(c.Sleeps()); n != 3 {
		t.Fatalf("sleeps recorded = %d, want 3", n)
	}
}

func TestPinWritesAndScript(t *testing.T) {
	clk := NewClock()
	f := NewPinFactory(clk)
	hp, ok := f.ByNumber(25)
	if !ok {
		t.Fatal("ByNumber(25) failed")
	}
	p := f.Pin(25)
	if hp.(*Pin) != p {
		t.Fatal("factory not stable per number")
	}
	if err := p.ConfigureOutput(false); err != nil || !p.IsOutput() {
		t.Fatalf("ConfigureOutput: %v out=%v", err, p.IsOutput())
	}
	p.Set(true)
	clk.Sleep(10 * time.Millisecond)
	p.Toggle()
	w := p.Writes()
	if len(w) != 2 || !w[0].Level || w[1].Level || w[1].At != 10*time.Millisecond {
		t.Fatalf("writes = %+v", w)
	}

	in := f.Pin(10)
	_ = in.ConfigureInput(halcore.PullUp)
	if !in.Get() || in.Pull() != halcore.PullUp {
		t.Fatal("pulled-up input should idle high")
	}
	in.Script(Step{At: 20 * time.Millisecond, Level: true}, Step{At: 5 * time.Millisecond, Level: false})
	clk.Sleep(time.Millisecond) // t=11ms: the 5ms low step applies
	if in.Get() {
		t.Fatal("expected low at 11ms")
	}
	clk.Sleep(10 * time.Millisecond) // t=21ms
	if !in.Get() {
		t.Fatal("expected high at 21ms")
	}
}

func TestPinConfigureErr(t *testing.T) {
	p := NewPinFactory(nil).Pin(3)
	p.ConfigureErr = errcode.Unsupported
	if err := p.ConfigureOutput(true); err != errcode.Unsupported {
		t.Fatalf("ConfigureOutput = %v", err)
	}
	if err := p.ConfigureInput(halcore.PullUp); err != errcode.Unsupported {
		t.Fatalf("ConfigureInput = %v", err)
	}
	if p.IsOutput() || p.Level() || p.Pull() != halcore.PullNone {
		t.Fatal("failed configure changed the pin")
	}
}

func TestPinFactoryBounds(t *testing.T) {
	f := NewPinFactory(nil)
	f.MaxPin = 28
	if _, ok := f.ByNumber(29); ok {
		t.Fatal("pin above MaxPin accepted")
	}
	if _, ok := f.ByNumber(-1); ok {
		t.Fatal("negative pin accepted")
	}
	if _, ok := f.ByNumber(28); !ok {
		t.Fatal("pin 28 rejected")
	}
}

func TestConsoleCapturesWrites(t *testing.T) {
	clk := NewClock()
	c := NewConsole(clk)
	if err := c.Configure(); err != nil {
		t.Fatal(err)
	}
	clk.Sleep(time.Second)
	_, _ = c.Write([]byte("hi\n"))
	out := c.Outputs()
	if c.Configured() != 1 || len(out) != 1 || out[0].Data != "hi\n" || out[0].At != time.Second {
		t.Fatalf("outputs = %+v configured=%d", out, c.Configured())
	}

	c.ConfigureErr = errcode.ConsoleInit
	if err := c.Configure(); err != errcode.ConsoleInit || c.Configured() != 2 {
		t.Fatalf("Configure = %v, configured=%d", err, c.Configured())
	}
}
