// Command hello prints a greeting on the console once a second.
package main

import (
	"pico-examples-go/services/config"
	"pico-examples-go/services/hal"
	"pico-examples-go/x/logx"
)

func main() {
	log := logx.New("hello")

	cfg, err := config.Load()
	if err != nil {
		log.Warn("bad build override, using default", "err", err)
	}

	p, err := hal.Open(hal.Options{Console: cfg.Console})
	if err != nil {
		panic(err)
	}

	g, err := newGreeter(p, log)
	if err != nil {
		panic(err)
	}
	g.Run()
}
