// Package greeter prints a fixed greeting on the console at a fixed interval.
package greeter

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"pico-examples-go/errcode"
	"pico-examples-go/services/hal/halcore"
)

const (
	Greeting = "Hello, world!"
	Interval = 1000 * time.Millisecond
)

// InitConsole brings the console transport up once.
func InitConsole(c halcore.Console) error {
	if c == nil {
		return errors.Wrap(errcode.NotInitialized, "console")
	}
	if err := c.Configure(); err != nil {
		return &errcode.E{C: errcode.MapDriverErr(err, errcode.ConsoleInit), Op: "configure", Err: err}
	}
	return nil
}

type Greeter struct {
	out   io.Writer
	clock halcore.Clock
	line  []byte
}

func New(out io.Writer, clock halcore.Clock) *Greeter {
	return &Greeter{out: out, clock: clock, line: []byte(Greeting + "\n")}
}

// Cycle writes one greeting line and waits Interval. Write errors are
// dropped: there is nobody to report them to but the console itself.
func (g *Greeter) Cycle() {
	_, _ = g.out.Write(g.line)
	g.clock.Sleep(Interval)
}

// Run greets forever.
func (g *Greeter) Run() {
	for {
		g.Cycle()
	}
}
