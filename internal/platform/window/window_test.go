package window

import (
	"testing"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
)

func TestWithDefaults(t *testing.T) {
	cfg, opts := withDefaults(core.RuntimeConfig{}, Options{})

	if cfg.Seed == 0 {
		t.Error("seed 0 should be replaced so sessions differ")
	}
	if cfg.TickRate != core.DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.TickRate, core.DefaultTickRate)
	}
	if opts.Scale != DefaultScale || opts.Player != "local" || opts.Palette != lcd.GreenPalette {
		t.Errorf("opts = %+v, expected defaults", opts)
	}
}

func TestWithDefaultsKeepsSettings(t *testing.T) {
	in := core.RuntimeConfig{TickRate: 30, Seed: 9}
	cfg, opts := withDefaults(in, Options{Scale: 2, Player: "ann"})

	if cfg.Seed != 9 || cfg.TickRate != 30 {
		t.Errorf("cfg = %+v, expected seed 9 at 30 TPS", cfg)
	}
	if opts.Scale != 2 || opts.Player != "ann" {
		t.Errorf("opts = %+v, expected scale 2 for ann", opts)
	}
}
