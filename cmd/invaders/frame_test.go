package main

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/vovakirdan/lcd-invaders/internal/config"
	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/games/invaders"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
)

func TestParseScript(t *testing.T) {
	frames, err := parseScript("Lr.F")
	if err != nil {
		t.Fatalf("parseScript() failed: %v", err)
	}
	if len(frames) != 4 {
		t.Fatalf("got %d frames, expected 4", len(frames))
	}
	if !frames[0].Pressed(core.ControlLeft) || !frames[1].Pressed(core.ControlRight) {
		t.Error("L and r should map to left and right")
	}
	if frames[2].AnyPressed() {
		t.Error(". should press nothing")
	}
	if !frames[3].Pressed(core.ControlFire) {
		t.Error("F should fire")
	}

	if _, err := parseScript("LX"); err == nil {
		t.Error("expected an error for an unknown input")
	}
}

func TestSimulateFollowsScript(t *testing.T) {
	game := invaders.NewWithConfig(config.DefaultInvadersConfig())
	game.Reset(core.RuntimeConfig{Seed: 3})
	startX := game.Model().Ship.X

	script, err := parseScript("LLL")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := simulate(context.Background(), game, script, 10, 1); err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if got := game.Model().Ship.X; got != startX-6 {
		t.Errorf("ship X = %d, expected %d", got, startX-6)
	}
}

// clearedBoard returns a game whose first tick ends the round.
func clearedBoard(seed int64) *invaders.Game {
	game := invaders.NewWithConfig(config.DefaultInvadersConfig())
	game.Reset(core.RuntimeConfig{Seed: seed})
	m := game.Model()
	for i := range m.Aliens {
		m.Aliens[i].Vitality = invaders.Vitality{}
	}
	m.AliensRemaining = 0
	return game
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	game := clearedBoard(1)

	state, err := simulate(context.Background(), game, nil, 20, 1)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if !state.GameOver || state.Round != 1 {
		t.Errorf("state = %+v, expected game over in round 1", state)
	}
}

func TestSimulateRestartsForMoreRounds(t *testing.T) {
	game := clearedBoard(1)

	state, err := simulate(context.Background(), game, nil, 20, 2)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if state.GameOver || state.Round != 2 {
		t.Errorf("state = %+v, expected round 2 in play", state)
	}
	if state.Ticks != 19 {
		t.Errorf("Ticks = %d, expected 19 played after the restart", state.Ticks)
	}
	if got := game.Model().AliensRemaining; got != invaders.AlienCount {
		t.Errorf("AliensRemaining = %d, expected a fresh board", got)
	}
}

func TestSimulateCancelledRestart(t *testing.T) {
	game := clearedBoard(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := simulate(ctx, game, nil, 20, 2); err == nil {
		t.Error("expected an error when the context is cancelled")
	}
	if !game.State().GameOver {
		t.Error("a cancelled restart must leave the game over screen up")
	}
}

func TestWritePNGScales(t *testing.T) {
	b := lcd.NewPixelBuffer()
	b.SetPixel(1, 0)
	f := b.Export()

	var out bytes.Buffer
	if err := writePNG(&out, &f, 3); err != nil {
		t.Fatalf("writePNG() failed: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if img.Bounds().Dx() != lcd.Width*3 || img.Bounds().Dy() != lcd.Height*3 {
		t.Fatalf("image size = %v", img.Bounds())
	}

	on := lcd.GreenPalette.On
	for _, p := range [][2]int{{3, 0}, {5, 2}} {
		r, g, bl, _ := img.At(p[0], p[1]).RGBA()
		if uint8(r>>8) != on.R || uint8(g>>8) != on.G || uint8(bl>>8) != on.B {
			t.Errorf("pixel %v should be lit", p)
		}
	}
	r, _, _, _ := img.At(6, 0).RGBA()
	if uint8(r>>8) != lcd.GreenPalette.Off.R {
		t.Error("pixel (6,0) should be unlit")
	}

	if err := writePNG(&out, &f, 0); err == nil {
		t.Error("expected an error for scale 0")
	}
}
