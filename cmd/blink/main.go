// Command blink toggles the board LED forever.
package main

import (
	"pico-examples-go/services/config"
	"pico-examples-go/services/hal"
	"pico-examples-go/x/logx"
)

func main() {
	log := logx.New("blink")

	cfg, err := config.Load()
	if err != nil {
		log.Warn("bad build override, using default", "err", err)
	}

	p, err := hal.Open(hal.Options{})
	if err != nil {
		panic(err)
	}

	b, err := newBlinker(p, cfg, log)
	if err != nil {
		panic(err)
	}
	b.Run()
}
