package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color. The engine blends colors in this space for the
// day/night cycle; the platform layer maps them to terminal colors.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#rrggbb" or "rrggbb" string into an RGB color.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("core: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the "#rrggbb" representation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend interpolates between c and other by t in [0,1].
// t=0 returns c, t=1 returns other.
func (c RGB) Blend(other RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	return RGB{
		R: uint8(Lerp(float64(c.R), float64(other.R), t) + 0.5),
		G: uint8(Lerp(float64(c.G), float64(other.G), t) + 0.5),
		B: uint8(Lerp(float64(c.B), float64(other.B), t) + 0.5),
	}
}

// Scale multiplies each channel by f in [0,1], darkening toward black.
func (c RGB) Scale(f float64) RGB {
	f = ClampF(f, 0, 1)
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Palette holds the day/night color pairs supplied by the host theme.
// Day colors are used while the cycle is in its day window, night colors in
// the night window; the sky is the only surface that blends between them.
type Palette struct {
	SkyDay      RGB
	SkyNight    RGB
	GroundDay   RGB
	GroundNight RGB
	PlayerDay   RGB
	PlayerNight RGB
	CactusDay   RGB
	CactusNight RGB
	TreeDay     RGB
	TreeNight   RGB
	BushDay     RGB
	BushNight   RGB
	Cloud       RGB
	Sun         RGB
	Moon        RGB
	Star        RGB
}

// DefaultPalette returns the built-in theme used when the host supplies none.
func DefaultPalette() Palette {
	return Palette{
		SkyDay:      RGB{135, 206, 235},
		SkyNight:    RGB{15, 18, 48},
		GroundDay:   RGB{222, 184, 135},
		GroundNight: RGB{72, 60, 50},
		PlayerDay:   RGB{60, 60, 60},
		PlayerNight: RGB{200, 200, 210},
		CactusDay:   RGB{34, 139, 34},
		CactusNight: RGB{20, 80, 30},
		TreeDay:     RGB{46, 110, 40},
		TreeNight:   RGB{26, 54, 28},
		BushDay:     RGB{240, 200, 50},
		BushNight:   RGB{140, 115, 35},
		Cloud:       RGB{245, 245, 245},
		Sun:         RGB{255, 215, 0},
		Moon:        RGB{230, 230, 220},
		Star:        RGB{255, 255, 240},
	}
}
