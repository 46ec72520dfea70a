package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/games/invaders"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
)

var (
	flagFrameTicks  int
	flagFrameRounds int
	flagFrameScript string
	flagFrameOut    string
	flagFramePNG    string
	flagFrameASCII  bool
	flagFrameScale  int
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Run headless and export the final frame",
	Long: `Run the simulation without a display for a number of ticks and
export the last frame.

The script gives the input for each tick, one character per tick:
  L  left    R  right    F  fire    .  nothing
Ticks past the end of the script get no input.

When a round ends the simulation stops there, with the game over banner on
the frame, unless --rounds asks for more: the next round is then started
through the usual release-and-press restart and the ticks carry on.
Seed 0 picks a time-based seed, which is logged with --verbose.

Outputs:
  --out    the raw 1024-byte display buffer (8 pages of 128 columns)
  --png    a PNG snapshot, upscaled by --scale
  --ascii  the frame as ASCII art on stdout (default if no output is given)

Examples:
  invaders frame --ticks 100 --seed 1 --ascii
  invaders frame --script RRRRFFFF --ticks 40 --out frame.bin
  invaders frame --ticks 500 --seed 7 --png shot.png --scale 8`,
	Args: cobra.NoArgs,
	RunE: runFrame,
}

func init() {
	addGameFlags(frameCmd)
	frameCmd.Flags().IntVar(&flagFrameTicks, "ticks", 100, "Number of ticks to simulate")
	frameCmd.Flags().IntVar(&flagFrameRounds, "rounds", 1, "Rounds to play before stopping")
	frameCmd.Flags().StringVar(&flagFrameScript, "script", "", "Input per tick: L, R, F or .")
	frameCmd.Flags().StringVar(&flagFrameOut, "out", "", "Write the raw display buffer to this file")
	frameCmd.Flags().StringVar(&flagFramePNG, "png", "", "Write a PNG snapshot to this file")
	frameCmd.Flags().BoolVar(&flagFrameASCII, "ascii", false, "Print the frame as ASCII art")
	frameCmd.Flags().IntVar(&flagFrameScale, "scale", 4, "PNG pixels per LCD pixel")
}

func runFrame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	script, err := parseScript(flagFrameScript)
	if err != nil {
		return err
	}
	if flagFrameTicks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", flagFrameTicks)
	}
	if flagFrameRounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", flagFrameRounds)
	}

	seed := core.ResolveSeed(flagSeed)
	game := invaders.NewWithConfig(cfg)
	game.Reset(core.RuntimeConfig{TickRate: flagTPS, Seed: seed})

	state, err := simulate(cmd.Context(), game, script, flagFrameTicks, flagFrameRounds)
	if err != nil {
		return err
	}
	frame := game.Frame()
	logger.Debug("simulation finished",
		"seed", seed,
		"ticks", flagFrameTicks,
		"round", state.Round,
		"score", state.Score,
		"lives", state.Lives,
		"game_over", state.GameOver,
	)

	if flagFrameOut != "" {
		if err := os.WriteFile(flagFrameOut, frame[:], 0o644); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}
	if flagFramePNG != "" {
		if err := writePNGFile(flagFramePNG, &frame, flagFrameScale); err != nil {
			return err
		}
	}
	if flagFrameASCII || (flagFrameOut == "" && flagFramePNG == "") {
		fmt.Println(frame.String())
	}
	return nil
}

// parseScript turns a script string into one input frame per tick.
func parseScript(s string) ([]core.InputFrame, error) {
	frames := make([]core.InputFrame, len(s))
	for i, c := range []byte(s) {
		switch c {
		case 'L', 'l':
			frames[i] = core.InputFrameOf(core.ControlLeft)
		case 'R', 'r':
			frames[i] = core.InputFrameOf(core.ControlRight)
		case 'F', 'f':
			frames[i] = core.InputFrameOf(core.ControlFire)
		case '.':
			frames[i] = core.NewInputFrame()
		default:
			return nil, fmt.Errorf("script: unknown input %q at position %d", c, i)
		}
	}
	return frames, nil
}

// simulate steps the game once per tick and returns the final state. It
// stops when the last of rounds ends; earlier rounds are followed by a
// restart that takes no ticks.
func simulate(ctx context.Context, game *invaders.Game, script []core.InputFrame, ticks, rounds int) (core.GameState, error) {
	idle := core.NewInputFrame()
	state := game.State()
	played := 0
	for i := 0; i < ticks; i++ {
		in := idle
		if i < len(script) {
			in = script[i]
		}
		res := game.Step(in)
		state = res.State
		if !res.RoundEnded {
			continue
		}

		played++
		if played >= rounds {
			break
		}
		if err := game.WaitForRestart(ctx, &restartKey{}, time.Millisecond); err != nil {
			return state, fmt.Errorf("restarting round %d: %w", played+1, err)
		}
		state = game.State()
	}
	return state, nil
}

// restartKey answers "nothing held" on its first poll and "pressed" after,
// the release then press the game over screen waits for.
type restartKey struct {
	polls int
}

func (k *restartKey) Pressed(core.Control) bool { return k.AnyPressed() }

func (k *restartKey) AnyPressed() bool {
	k.polls++
	return k.polls > 1
}

var _ core.InputState = (*restartKey)(nil)

// writePNG encodes the frame upscaled with nearest-neighbour sampling.
func writePNG(w io.Writer, f *lcd.Frame, scale int) error {
	if scale < 1 {
		return fmt.Errorf("png: scale must be at least 1, got %d", scale)
	}
	src := f.Image(lcd.GreenPalette)
	dst := image.NewRGBA(image.Rect(0, 0, lcd.Width*scale, lcd.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}

func writePNGFile(path string, f *lcd.Frame, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	if err := writePNG(file, f, scale); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
