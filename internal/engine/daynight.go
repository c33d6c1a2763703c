package engine

import (
	"math"

	"github.com/vovakirdan/blink-runner/internal/core"
)

// Day/night cycle windows, as fractions of one full cycle. Day runs from
// the wrap point to duskAt; the sun and moon windows overlap briefly for
// the dawn/dusk handoff.
const (
	duskAt    = 0.6  // Day/night boundary
	dawnAt    = 0.98 // Night fades back to day just before wrap
	sunSets   = 0.65 // Sun stays visible a bit past dusk
	moonRises = 0.58 // Moon appears a bit before dusk

	starsFadeInFrom  = 0.68
	starsFadeInTo    = 0.75
	starsFadeOutFrom = 0.92
	starsFadeOutTo   = 0.98

	// Steepness of the sky's sigmoid blend. High on purpose: the sky
	// switches near-binary at dusk and dawn instead of drifting through
	// hour-long gradients.
	skyBlendSteepness = 60.0
)

// advanceClock moves time-of-day forward, wrapping modulo 1. Only called
// while playing, so a paused run holds its hour.
func (sim *Sim) advanceClock(dtMS float64) {
	sim.clock += dtMS / (sim.settings.CycleSeconds * 1000)
	sim.clock = math.Mod(sim.clock, 1)
}

// Clock returns the time-of-day scalar in [0,1).
func (sim *Sim) Clock() float64 {
	return sim.clock
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// nightness is the sky blend factor in [0,1]. The sky uses this sharp
// curve while foreground objects use the binary IsNight split; the
// asymmetry is intentional visual design, not an inconsistency.
func (sim *Sim) nightness() float64 {
	f := sim.clock
	in := sigmoid(skyBlendSteepness * (f - duskAt))
	out := sigmoid(skyBlendSteepness * (f - dawnAt))
	return core.ClampF(in-out, 0, 1)
}

// IsNight is the binary day/night split used for ground, trees, bushes,
// obstacles and the player.
func (sim *Sim) IsNight() bool {
	return sim.clock >= duskAt && sim.clock < dawnAt
}

// skyColor blends the host palette's day and night skies.
func (sim *Sim) skyColor() core.RGB {
	return sim.palette.SkyDay.Blend(sim.palette.SkyNight, sim.nightness())
}

// foreground picks the day or night color on the binary split.
func (sim *Sim) foreground(day, night core.RGB) core.RGB {
	if sim.IsNight() {
		return night
	}
	return day
}

// celestialPos maps a progress value in [0,1] to a position along the
// shared sky arc, in virtual canvas coordinates.
func (sim *Sim) celestialPos(progress float64) (x, y float64) {
	s := sim.settings
	arcTop := s.CanvasHeight * 0.08
	arcBottom := s.CanvasHeight * 0.45
	x = progress * s.CanvasWidth
	y = arcBottom - (arcBottom-arcTop)*math.Sin(math.Pi*progress)
	return x, y
}

// sunPos returns the sun's arc position and whether it is visible.
// The sun owns roughly the first 65% of the cycle.
func (sim *Sim) sunPos() (x, y float64, visible bool) {
	if sim.clock >= sunSets {
		return 0, 0, false
	}
	x, y = sim.celestialPos(sim.clock / sunSets)
	return x, y, true
}

// moonPos returns the moon's arc position and whether it is visible.
// Its window overlaps the sun's near dusk for the handoff.
func (sim *Sim) moonPos() (x, y float64, visible bool) {
	if sim.clock < moonRises {
		return 0, 0, false
	}
	x, y = sim.celestialPos((sim.clock - moonRises) / (1 - moonRises))
	return x, y, true
}

// starOpacity fades the star field in only around the deepest part of the
// night and back out before dawn.
func (sim *Sim) starOpacity() float64 {
	f := sim.clock
	switch {
	case f < starsFadeInFrom || f >= starsFadeOutTo:
		return 0
	case f < starsFadeInTo:
		return (f - starsFadeInFrom) / (starsFadeInTo - starsFadeInFrom)
	case f < starsFadeOutFrom:
		return 1
	default:
		return 1 - (f-starsFadeOutFrom)/(starsFadeOutTo-starsFadeOutFrom)
	}
}
