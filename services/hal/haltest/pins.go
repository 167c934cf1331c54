package haltest

import (
	"sort"
	"sync"
	"time"

	"pico-examples-go/services/hal/halcore"
)

// Write is one commanded output level with its virtual timestamp
// (offset from Epoch).
type Write struct {
	Level bool
	At    time.Duration
}

// Step schedules an input level change at a virtual offset from Epoch.
type Step struct {
	At    time.Duration
	Level bool
}

// Pin implements halcore.Pin for host-side tests.
type Pin struct {
	mu         sync.Mutex
	clock      *Clock
	number     int
	configured bool
	modeOut    bool
	pull       halcore.Pull
	level      bool
	writes     []Write
	script     []Step

	// ConfigureErr fails ConfigureInput/ConfigureOutput when set.
	ConfigureErr error
}

func (p *Pin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	if p.ConfigureErr != nil {
		p.mu.Unlock()
		return p.ConfigureErr
	}
	p.configured = true
	p.modeOut = false
	p.pull = pull
	// Pulled-up lines idle high until something drives them.
	p.level = pull == halcore.PullUp
	p.mu.Unlock()
	return nil
}

func (p *Pin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	if p.ConfigureErr != nil {
		p.mu.Unlock()
		return p.ConfigureErr
	}
	p.configured = true
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *Pin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.writes = append(p.writes, Write{Level: level, At: p.since()})
	p.mu.Unlock()
}

func (p *Pin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.since()
	for len(p.script) > 0 && p.script[0].At <= now {
		p.level = p.script[0].Level
		p.script = p.script[1:]
	}
	return p.level
}

func (p *Pin) Toggle() { p.Set(!p.Get()) }

func (p *Pin) Number() int { return p.number }

// caller holds lock
func (p *Pin) since() time.Duration {
	if p.clock == nil {
		return 0
	}
	return p.clock.Since()
}

// ---- test accessors ----

// Script queues external input levels; Get applies them as virtual time
// passes them.
func (p *Pin) Script(steps ...Step) {
	p.mu.Lock()
	p.script = append(p.script, steps...)
	sort.SliceStable(p.script, func(i, j int) bool { return p.script[i].At < p.script[j].At })
	p.mu.Unlock()
}

// Writes returns every level commanded through Set.
func (p *Pin) Writes() []Write {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Write(nil), p.writes...)
}

func (p *Pin) IsOutput() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.configured && p.modeOut
}

func (p *Pin) Pull() halcore.Pull {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pull
}

// Level reports the current level without consuming scripted steps.
func (p *Pin) Level() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// PinFactory returns stable *Pin instances per number.
type PinFactory struct {
	mu    sync.Mutex
	clock *Clock
	pins  map[int]*Pin

	// MaxPin bounds ByNumber when non-zero.
	MaxPin int
}

// NewPinFactory creates pins stamped with clk (may be nil).
func NewPinFactory(clk *Clock) *PinFactory {
	return &PinFactory{clock: clk, pins: make(map[int]*Pin)}
}

func (f *PinFactory) ByNumber(n int) (halcore.Pin, bool) {
	p, ok := f.pin(n)
	if !ok {
		return nil, false
	}
	return p, true
}

// Pin exposes the underlying *Pin for tests, creating it if needed.
func (f *PinFactory) Pin(n int) *Pin {
	p, _ := f.pin(n)
	return p
}

func (f *PinFactory) pin(n int) (*Pin, bool) {
	if n < 0 || (f.MaxPin > 0 && n > f.MaxPin) {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*Pin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &Pin{number: n, clock: f.clock}
		f.pins[n] = p
	}
	return p, true
}
