// Command buttonwars runs the two-player button game.
package main

import (
	"pico-examples-go/services/config"
	"pico-examples-go/services/hal"
	"pico-examples-go/x/logx"
)

func main() {
	log := logx.New("buttonwars")
	log.Info("Raspberry Pi Pico init in main executor...")

	cfg, err := config.Load()
	if err != nil {
		log.Warn("bad build override, using default", "err", err)
	}
	setup, err := config.SetupByName(cfg.Setup)
	if err != nil {
		panic(err)
	}

	p, err := hal.Open(hal.Options{})
	if err != nil {
		panic(err)
	}

	a, err := newApp(p, setup, log)
	if err != nil {
		panic(err)
	}
	a.run()
}
