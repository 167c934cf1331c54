package haltest

import (
	"sync"
	"time"
)

// Output is one Write call with its virtual timestamp.
type Output struct {
	Data string
	At   time.Duration
}

// Console captures writes with their virtual timestamps.
type Console struct {
	mu         sync.Mutex
	clock      *Clock
	configured int
	out        []Output

	// ConfigureErr is returned by Configure when set.
	ConfigureErr error
}

func NewConsole(clk *Clock) *Console { return &Console{clock: clk} }

func (c *Console) Configure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configured++
	return c.ConfigureErr
}

func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var at time.Duration
	if c.clock != nil {
		at = c.clock.Since()
	}
	c.out = append(c.out, Output{Data: string(p), At: at})
	return len(p), nil
}

// Outputs returns every captured Write.
func (c *Console) Outputs() []Output {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Output(nil), c.out...)
}

// Configured reports how many times Configure ran.
func (c *Console) Configured() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.configured
}
