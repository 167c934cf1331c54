// Package game tracks the button game's state machine.
package game

import (
	"sync"
	"time"

	"pico-examples-go/services/hal/halcore"
	"pico-examples-go/x/logx"
	"pico-examples-go/x/timex"
)

type State uint8

const (
	Waiting State = iota
	Playing
	ComputingResults
	Finished
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Playing:
		return "playing"
	case ComputingResults:
		return "computing_results"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Game is the current state and how long it has been held.
type Game struct {
	state    State
	start    time.Time
	duration time.Duration

	clock halcore.Clock
	log   logx.Logger
}

// New starts a game in Waiting.
func New(clock halcore.Clock, log logx.Logger) *Game {
	return &Game{state: Waiting, start: clock.Now(), clock: clock, log: log}
}

func (g *Game) State() State { return g.state }

func (g *Game) Start() time.Time { return g.start }

func (g *Game) Duration() time.Duration { return g.duration }

// UpdateStateDuration refreshes the time spent in the current state.
func (g *Game) UpdateStateDuration() {
	g.duration = max(g.clock.Now().Sub(g.start), 0)
	g.log.Debug("state duration", "state", g.state.String(), "duration_ms", timex.ToMs(g.duration))
}

// Transition moves to next and restarts the state timer. Moving to the
// current state only refreshes the duration.
func (g *Game) Transition(next State) {
	g.UpdateStateDuration()
	if next == g.state {
		g.log.Info("already in state, no transition needed", "state", g.state.String())
		return
	}
	g.log.Info("state duration before transition",
		"from", g.state.String(),
		"to", next.String(),
		"duration_ms", timex.ToMs(g.duration))
	g.state = next
	g.start = g.clock.Now()
	g.duration = 0
	g.log.Info("transition finished", "state", g.state.String())
}

// Next is the state that follows s in a full round; Finished wraps to
// Waiting.
func (s State) Next() State {
	if s >= Finished {
		return Waiting
	}
	return s + 1
}

// Advance moves to the next state of the round.
func (g *Game) Advance() { g.Transition(g.state.Next()) }

// Tracker shares one Game between goroutines. The zero Tracker has no game
// until Init.
type Tracker struct {
	mu   sync.Mutex
	game *Game

	clock halcore.Clock
	log   logx.Logger
}

func NewTracker(clock halcore.Clock, log logx.Logger) *Tracker {
	return &Tracker{clock: clock, log: log}
}

// Init (re)starts the game in Waiting.
func (t *Tracker) Init() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.game = New(t.clock, t.log)
	t.log.Info("game initialized")
}

func (t *Tracker) TransitionTo(next State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.game == nil {
		t.log.Error("transition on uninitialized game", "to", next.String())
		return
	}
	t.game.Transition(next)
}

func (t *Tracker) UpdateDuration() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.game == nil {
		t.log.Warn("duration update on uninitialized game")
		return
	}
	t.game.UpdateStateDuration()
}

// StateOrReset returns the current state. Without a game it calls reset,
// which on hardware never returns; Waiting is returned if it does.
func (t *Tracker) StateOrReset(reset func()) State {
	t.mu.Lock()
	if t.game != nil {
		s := t.game.state
		t.mu.Unlock()
		return s
	}
	t.mu.Unlock()
	t.log.Warn("state read on uninitialized game, resetting")
	reset()
	return Waiting
}
