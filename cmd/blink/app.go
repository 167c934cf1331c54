package main

import (
	"pico-examples-go/services/blink"
	"pico-examples-go/services/config"
	"pico-examples-go/services/hal"
	"pico-examples-go/x/logx"
)

// newBlinker brings the LED up and returns a blinker using cfg's delay.
func newBlinker(p hal.Platform, cfg config.Config, log logx.Logger) (*blink.Blinker, error) {
	log.Info("Initializing LED...")
	led, err := blink.InitLED(p.Pins, p.Board, log)
	if err != nil {
		return nil, err
	}
	log.Info("LED initialized.", "pin", int(led.ID()), "delay", cfg.LEDDelay)
	return blink.New(led, p.Clock, cfg.LEDDelay, log), nil
}
