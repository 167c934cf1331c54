package main

import (
	"pico-examples-go/services/greeter"
	"pico-examples-go/services/hal"
	"pico-examples-go/x/logx"
)

// newGreeter configures the platform console and greets on it.
func newGreeter(p hal.Platform, log logx.Logger) (*greeter.Greeter, error) {
	if err := greeter.InitConsole(p.Console); err != nil {
		return nil, err
	}
	log.Debug("console ready")
	return greeter.New(p.Console, p.Clock), nil
}
