package hal

import (
	"testing"

	"pico-examples-go/errcode"
)

func TestOpenWithoutConsole(t *testing.T) {
	p, err := Open(Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.Console != nil {
		t.Fatal("console opened without being asked for")
	}
	if p.Pins == nil || p.Clock == nil || p.Reset == nil {
		t.Fatalf("incomplete platform: %+v", p)
	}
	if p.Board.Name != "host" {
		t.Fatalf("board = %q, want host", p.Board.Name)
	}
}

func TestOpenConsole(t *testing.T) {
	p, err := Open(Options{Console: "usb"})
	if err != nil {
		t.Fatalf("Open(usb): %v", err)
	}
	if p.Console == nil {
		t.Fatal("console missing")
	}
	if err := p.Console.Configure(); err != nil {
		t.Fatalf("Configure: %v", err)
	}
}

func TestOpenUnknownConsole(t *testing.T) {
	_, err := Open(Options{Console: "can0"})
	if err == nil {
		t.Fatal("expected error for unknown console")
	}
	if errcode.Of(err) != errcode.UnknownConsole {
		t.Fatalf("code = %q, want unknown_console (err=%v)", errcode.Of(err), err)
	}
}
