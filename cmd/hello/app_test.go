package main

import (
	"testing"
	"time"

	"pico-examples-go/errcode"
	"pico-examples-go/services/hal"
	"pico-examples-go/services/hal/haltest"
	"pico-examples-go/x/logx"
)

func TestNewGreeterConfiguresConsole(t *testing.T) {
	clk := haltest.NewClock()
	c := haltest.NewConsole(clk)
	g, err := newGreeter(hal.Platform{Clock: clk, Console: c}, logx.Nop())
	if err != nil {
		t.Fatalf("newGreeter: %v", err)
	}
	if c.Configured() != 1 {
		t.Fatalf("Configure ran %d times", c.Configured())
	}

	g.Cycle()
	g.Cycle()
	out := c.Outputs()
	if len(out) != 2 || out[0].Data != "Hello, world!\n" || out[1].At != time.Second {
		t.Fatalf("outputs = %+v", out)
	}
}

func TestNewGreeterWithoutConsole(t *testing.T) {
	if _, err := newGreeter(hal.Platform{Clock: haltest.NewClock()}, logx.Nop()); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("err = %v, want not_initialized", err)
	}
}
