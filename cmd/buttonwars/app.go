package main

import (
	"time"

	"github.com/pkg/errors"

	"pico-examples-go/errcode"
	"pico-examples-go/services/blink"
	"pico-examples-go/services/button"
	"pico-examples-go/services/config"
	"pico-examples-go/services/game"
	"pico-examples-go/services/hal"
	"pico-examples-go/services/leds"
	"pico-examples-go/types"
	"pico-examples-go/x/logx"
	"pico-examples-go/x/timex"
)

const playingPause = time.Second

type app struct {
	p       hal.Platform
	setup   config.GameSetup
	leds    []*leds.Led
	player1 *button.Button
	player2 *button.Button
	game    *game.Tracker
	log     logx.Logger
}

func newApp(p hal.Platform, setup config.GameSetup, log logx.Logger) (*app, error) {
	onboard := int(blink.ResolveLEDPin(p.Board))
	if err := setup.Validate(p.Board, onboard); err != nil {
		return nil, err
	}
	pins := setup.Pins(onboard)

	a := &app{p: p, setup: setup, log: log}
	for i, role := range []types.LEDRole{types.LEDOnboard, types.LEDPlayer1, types.LEDPlayer2} {
		pin, ok := p.Pins.ByNumber(pins[i])
		if !ok {
			return nil, errors.Wrapf(errcode.UnknownPin, "led gpio %d", pins[i])
		}
		l, err := leds.New(pin, role, p.Clock, log)
		if err != nil {
			return nil, err
		}
		log.Info("Initializing " + l.String() + "...")
		a.leds = append(a.leds, l)
	}

	var err error
	if a.player1, err = a.newButton(pins[3], types.ButtonPlayer1); err != nil {
		return nil, err
	}
	if a.player2, err = a.newButton(pins[4], types.ButtonPlayer2); err != nil {
		return nil, err
	}

	a.game = game.NewTracker(p.Clock, log)
	a.game.Init()
	log.Info("OK for Game Singleton.")
	a.game.UpdateDuration()
	return a, nil
}

func (a *app) newButton(n int, role types.ButtonRole) (*button.Button, error) {
	pin, ok := a.p.Pins.ByNumber(n)
	if !ok {
		return nil, errors.Wrapf(errcode.UnknownPin, "button gpio %d", n)
	}
	b, err := button.New(pin, role, a.p.Clock, a.log)
	if err != nil {
		return nil, err
	}
	a.log.Info("Initializing " + b.String() + "...")
	return b, nil
}

// step runs one pass of the game loop.
func (a *app) step() {
	switch a.game.StateOrReset(a.p.Reset) {
	case game.Waiting:
		a.log.Info("We are waiting!")
		leds.WaitingStatePattern(a.leds)
		a.game.TransitionTo(game.Playing)
	case game.Playing:
		a.log.Info("We are playing!")
		a.p.Clock.Sleep(playingPause)
		d := a.player1.MeasureMinimalDebounce(a.setup.DebounceRange, a.setup.DebounceIterations)
		a.log.Info("min debounce", "ms", timex.ToMs(d))
	default:
		a.log.Error("unhandled game state, back to waiting")
		a.game.TransitionTo(game.Waiting)
	}
}

func (a *app) run() {
	for {
		a.step()
	}
}
