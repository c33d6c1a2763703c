package engine

import "github.com/vovakirdan/blink-runner/internal/core"

// Collision insets, as fractions of the box dimensions. The player box is
// shrunk on both axes so grazing an obstacle feels fair; obstacle boxes are
// shrunk horizontally only, keeping their full height unforgiving.
const (
	playerInsetX   = 0.20
	playerInsetY   = 0.10
	obstacleInsetX = 0.15
)

// jump applies the upward impulse. Callers must check Grounded first.
func (sim *Sim) jump() {
	sim.player.Velocity = sim.settings.JumpStrength
}

// advancePlayer integrates vertical motion and clamps to the ground plane.
func (sim *Sim) advancePlayer(tf float64) {
	if sim.player.Grounded() && sim.player.Velocity == 0 {
		return
	}
	sim.player.Velocity += sim.settings.Gravity * tf
	sim.player.Offset += sim.player.Velocity * tf

	// Landing: snap to ground, kill velocity
	if sim.player.Offset >= 0 {
		sim.player.Offset = 0
		sim.player.Velocity = 0
	}
}

// advanceObstacles shifts, culls, spawns and marks obstacles for one tick.
func (sim *Sim) advanceObstacles(tf, dtMS float64) {
	speed := sim.settings.ScrollSpeed() * tf

	active := sim.obstacles[:0]
	for _, ob := range sim.obstacles {
		ob.X -= speed

		// Trailing edge past the left margin: drop it
		if ob.X+ob.Width < -cullMargin {
			continue
		}

		// Trailing edge behind the player anchor: cleared
		if !ob.Passed && ob.X+ob.Width < playerAnchorX {
			ob.Passed = true
			sim.cleared++
			sim.multiplier = 1 + float64(sim.cleared)*sim.settings.BonusFactor
		}
		active = append(active, ob)
	}
	sim.obstacles = active

	sim.spawnElapsedMS += dtMS
	if sim.spawnElapsedMS >= sim.settings.SpawnIntervalMS {
		sim.spawnElapsedMS = 0
		sim.spawnObstacle()
	}
}

// spawnObstacle creates one obstacle at the right edge with a uniformly
// sampled height and slightly jittered width. Spawning is interval-timed
// only, not position-aware; overlapping spawns cannot occur because the
// interval floor exceeds one obstacle width of travel.
func (sim *Sim) spawnObstacle() {
	s := sim.settings
	height := s.ObstacleMinHeight + sim.rng.Float64()*(s.ObstacleMaxHeight-s.ObstacleMinHeight)
	width := s.ObstacleWidth * (0.85 + sim.rng.Float64()*0.3)
	sim.obstacles = append(sim.obstacles, Obstacle{
		X:      s.CanvasWidth,
		Width:  width,
		Height: height,
	})
}

// playerBox returns the player's collision box in virtual canvas
// coordinates, before insets.
func (sim *Sim) playerBox() core.Rect {
	s := sim.settings
	groundY := s.CanvasHeight - s.GroundOffset
	top := groundY - s.PlayerHeight + sim.player.Offset
	return core.NewRect(playerAnchorX, top, s.PlayerWidth, s.PlayerHeight)
}

// obstacleBox returns an obstacle's collision box in canvas coordinates.
func (sim *Sim) obstacleBox(ob Obstacle) core.Rect {
	groundY := sim.settings.CanvasHeight - sim.settings.GroundOffset
	return core.NewRect(ob.X, groundY-ob.Height, ob.Width, ob.Height)
}

// collides tests the inset player box against every active obstacle,
// oldest first. The first overlap decides the tick; further obstacles are
// not inspected since any detected overlap is already a loss.
func (sim *Sim) collides() bool {
	pb := sim.playerBox()
	pb = pb.Inset(pb.W*playerInsetX, pb.H*playerInsetY)
	for _, ob := range sim.obstacles {
		box := sim.obstacleBox(ob)
		box = box.Inset(box.W*obstacleInsetX, 0)
		if pb.Intersects(box) {
			return true
		}
	}
	return false
}
