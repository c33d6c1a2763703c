package engine

import (
	"fmt"

	"github.com/vovakirdan/blink-runner/internal/core"
)

// Visual runes for the render pass.
const (
	playerRune   = '█'
	obstacleRune = '▓'
	cloudRune    = '▒'
	groundRune   = '═'
	dirtRune     = '░'
	treeCrown    = '♠'
	treeTrunk    = '║'
	bushRune     = '♣'
	sunRune      = '☀'
	moonRune     = '☾'
	starRune     = '·'
)

// starCells is the number of star field cells; positions are derived
// deterministically so the field is stable frame to frame.
const starCells = 40

// cellX maps a virtual x coordinate to a surface column.
func (sim *Sim) cellX(vx float64) int {
	return int(vx / sim.settings.CanvasWidth * float64(sim.surface.Width()))
}

// cellY maps a virtual y coordinate to a surface row.
func (sim *Sim) cellY(vy float64) int {
	return int(vy / sim.settings.CanvasHeight * float64(sim.surface.Height()))
}

// render draws the full scene back-to-front into the owned surface.
// Visual only; nothing here feeds back into the simulation.
func (sim *Sim) render() {
	s := sim.surface
	s.Clear()

	sky := sim.skyColor()
	s.FillBg(sky)

	sim.drawStars(sky)
	sim.drawCelestials()
	sim.drawClouds()
	sim.drawGround()
	if sim.settings.Bushes {
		sim.drawBushes()
	}
	if sim.settings.Trees {
		sim.drawTrees()
	}
	sim.drawObstacles()
	sim.drawPlayer()
	sim.drawHUD()
}

// drawStars scatters a deterministic star field over the upper sky,
// faded by the current star opacity.
func (sim *Sim) drawStars(sky core.RGB) {
	opacity := sim.starOpacity()
	if opacity <= 0 {
		return
	}
	color := sky.Blend(sim.palette.Star, opacity)
	w, h := sim.surface.Width(), sim.surface.Height()
	// Cheap integer hash walk keeps positions stable without stored state
	state := uint32(2463534242)
	for i := 0; i < starCells; i++ {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		x := int(state) % core.Max(w, 1)
		y := int(state>>16) % core.Max(h/2, 1)
		if x < 0 {
			x = -x
		}
		sim.surface.SetRune(x, y, starRune, color)
	}
}

func (sim *Sim) drawCelestials() {
	if x, y, ok := sim.sunPos(); ok {
		sim.surface.SetRune(sim.cellX(x), sim.cellY(y), sunRune, sim.palette.Sun)
	}
	if x, y, ok := sim.moonPos(); ok {
		sim.surface.SetRune(sim.cellX(x), sim.cellY(y), moonRune, sim.palette.Moon)
	}
}

// drawClouds renders each cloud as a short run of shaded cells whose
// length grows with depth.
func (sim *Sim) drawClouds() {
	for _, c := range sim.world.Clouds {
		cx := sim.cellX(c.X)
		cy := 1 + c.Variant
		length := 2 + int(c.Depth*6)
		for dx := 0; dx < length; dx++ {
			sim.surface.SetRune(cx+dx, cy, cloudRune, sim.palette.Cloud)
		}
	}
}

func (sim *Sim) groundRow() int {
	return sim.cellY(sim.settings.CanvasHeight - sim.settings.GroundOffset)
}

// dirtShade darkens the ground color for the fill below the ground line.
const dirtShade = 0.65

func (sim *Sim) drawGround() {
	color := sim.foreground(sim.palette.GroundDay, sim.palette.GroundNight)
	row := sim.groundRow()
	w := sim.surface.Width()
	for x := 0; x < w; x++ {
		sim.surface.SetRune(x, row, groundRune, color)
	}
	dirt := color.Scale(dirtShade)
	for y := row + 1; y < sim.surface.Height(); y++ {
		for x := 0; x < w; x++ {
			sim.surface.SetRune(x, y, dirtRune, dirt)
		}
	}
}

func (sim *Sim) drawBushes() {
	color := sim.foreground(sim.palette.BushDay, sim.palette.BushNight)
	row := sim.groundRow() - 1
	for _, b := range sim.world.Bushes {
		cx := sim.cellX(b.X)
		sim.surface.SetRune(cx, row, bushRune, color)
		// Wider variants get a second tuft
		if b.Variant%3 == 0 {
			sim.surface.SetRune(cx+1, row, bushRune, color)
		}
	}
}

// drawTrees renders each tree as a crown column over a trunk, scaled by
// its parallax depth.
func (sim *Sim) drawTrees() {
	color := sim.foreground(sim.palette.TreeDay, sim.palette.TreeNight)
	ground := sim.groundRow()
	for _, tr := range sim.world.Trees {
		cx := sim.cellX(tr.X)
		height := 2 + int(tr.Depth*3) + tr.Variant%2
		sim.surface.SetRune(cx, ground-1, treeTrunk, color)
		for dy := 0; dy < height; dy++ {
			sim.surface.SetRune(cx, ground-2-dy, treeCrown, color)
		}
	}
}

func (sim *Sim) drawObstacles() {
	cell := core.Cell{
		Rune: obstacleRune,
		Fg:   sim.foreground(sim.palette.CactusDay, sim.palette.CactusNight),
		Bg:   sim.skyColor(),
	}
	for _, ob := range sim.obstacles {
		box := sim.obstacleBox(ob)
		x := sim.cellX(box.X)
		y := sim.cellY(box.Y)
		w := core.Max(sim.cellX(box.Right())-x, 1)
		h := core.Max(sim.groundRow()-y, 1)
		sim.surface.FillRect(x, y, w, h, cell)
	}
}

func (sim *Sim) drawPlayer() {
	cell := core.Cell{
		Rune: playerRune,
		Fg:   sim.foreground(sim.palette.PlayerDay, sim.palette.PlayerNight),
		Bg:   sim.skyColor(),
	}
	box := sim.playerBox()
	x := sim.cellX(box.X)
	y := sim.cellY(box.Y)
	w := core.Max(sim.cellX(box.Right())-x, 1)
	h := core.Max(sim.cellY(box.Bottom())-y, 1)
	sim.surface.FillRect(x, y, w, h, cell)
}

func (sim *Sim) drawHUD() {
	hud := sim.foreground(sim.palette.PlayerDay, sim.palette.PlayerNight)
	text := fmt.Sprintf(" Score: %d  Best: %d ", sim.DisplayedScore(), int(sim.highScore/10))
	sim.surface.DrawText(2, 0, text, hud)

	switch sim.state {
	case StateReady:
		sim.drawCenteredMessage("BLINK TO START")
	case StatePaused:
		sim.drawCenteredMessage("PAUSED")
	case StateGameOver:
		sim.drawCenteredMessage(fmt.Sprintf("GAME OVER - %d", sim.DisplayedScore()))
	}
}

func (sim *Sim) drawCenteredMessage(msg string) {
	hud := sim.foreground(sim.palette.PlayerDay, sim.palette.PlayerNight)
	// Clamp so the head of the message survives on surfaces narrower than
	// the text instead of being centered off-screen.
	x := core.Clamp((sim.surface.Width()-len(msg))/2, 0, sim.surface.Width()-1)
	y := sim.surface.Height() / 3
	sim.surface.DrawText(x, y, msg, hud)
}
