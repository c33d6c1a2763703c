package engine

import (
	"testing"

	"github.com/vovakirdan/blink-runner/internal/core"
)

// The player fill must write complete cells: its rune, its foreground and
// the sky behind it, so a resize or partial redraw never shows stale
// background under the sprite.
func TestRenderPlayerCellCarriesSkyBackground(t *testing.T) {
	sim := NewSim(core.NewScreen(40, 12), DefaultSettings(), core.DefaultPalette(), 0, 1)
	sim.Step(frameTime(0))

	// Default canvas 800x300 on a 40x12 surface puts the grounded player
	// box exactly at cell (3, 9).
	got := sim.surface.Get(3, 9)
	if got.Rune != playerRune {
		t.Fatalf("player cell rune = %q, want %q", got.Rune, playerRune)
	}
	if want := core.DefaultPalette().PlayerDay; got.Fg != want {
		t.Errorf("player cell fg = %v, want %v", got.Fg, want)
	}
	if want := core.DefaultPalette().SkyDay; got.Bg != want {
		t.Errorf("player cell bg = %v, want day sky %v", got.Bg, want)
	}
}

func TestRenderDirtIsDarkenedGround(t *testing.T) {
	palette := core.DefaultPalette()
	sim := NewSim(core.NewScreen(40, 12), DefaultSettings(), palette, 0, 1)
	sim.Step(frameTime(0))

	// Ground line at row 10, dirt fill below it.
	if got := sim.surface.Get(0, 10); got.Rune != groundRune {
		t.Fatalf("ground row rune = %q, want %q", got.Rune, groundRune)
	}
	dirt := sim.surface.Get(0, 11)
	if dirt.Rune != dirtRune {
		t.Fatalf("dirt row rune = %q, want %q", dirt.Rune, dirtRune)
	}
	if want := palette.GroundDay.Scale(dirtShade); dirt.Fg != want {
		t.Errorf("dirt fg = %v, want shaded ground %v", dirt.Fg, want)
	}
}

// On a surface narrower than the status text the message head must stay
// visible at column 0 rather than being centered off-screen.
func TestRenderNarrowSurfaceKeepsMessageVisible(t *testing.T) {
	sim := NewSim(core.NewScreen(8, 6), DefaultSettings(), core.DefaultPalette(), 0, 1)
	sim.Step(frameTime(0))

	// Ready state shows "BLINK TO START" at a third of the height.
	if got := sim.surface.Get(0, 2); got.Rune != 'B' {
		t.Errorf("cell (0,2) rune = %q, want 'B'", got.Rune)
	}
}
