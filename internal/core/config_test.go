package core

import "testing"

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(42); got != 42 {
		t.Errorf("ResolveSeed(42) = %d, expected 42", got)
	}
	if ResolveSeed(0) == 0 {
		t.Error("seed 0 should be replaced by a time-based seed")
	}
}
