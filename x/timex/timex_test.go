package timex

import (
	"testing"
	"time"
)

func TestMsRoundTrip(t *testing.T) {
	if Ms(500) != 500*time.Millisecond {
		t.Fatalf("Ms(500) = %v", Ms(500))
	}
	if ToMs(1999*time.Microsecond) != 1 {
		t.Fatalf("ToMs should truncate, got %d", ToMs(1999*time.Microsecond))
	}
	if ToMs(Ms(uint32(1000))) != 1000 {
		t.Fatal("round trip failed")
	}
}
