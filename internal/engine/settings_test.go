package engine

import "testing"

func TestValidateClampsInvalidValues(t *testing.T) {
	s := Settings{
		Gravity:           -5,
		JumpStrength:      10, // Wrong sign: upward impulses are negative
		JumpDistance:      -1,
		ObstacleMinHeight: 50,
		ObstacleMaxHeight: 20, // Below min
		SpawnIntervalMS:   1,
		CanvasWidth:       10,
		CanvasHeight:      5,
		CycleSeconds:      0,
		BonusFactor:       -1,
	}
	s.Validate()

	if s.Gravity <= 0 {
		t.Errorf("Gravity = %v, want > 0", s.Gravity)
	}
	if s.JumpStrength > 0 {
		t.Errorf("JumpStrength = %v, want <= 0", s.JumpStrength)
	}
	if s.JumpDistance < 0 {
		t.Errorf("JumpDistance = %v, want >= 0", s.JumpDistance)
	}
	if s.ObstacleMaxHeight < s.ObstacleMinHeight {
		t.Errorf("ObstacleMaxHeight %v < min %v", s.ObstacleMaxHeight, s.ObstacleMinHeight)
	}
	if s.CycleSeconds < 1 {
		t.Errorf("CycleSeconds = %v, want >= 1", s.CycleSeconds)
	}
	if s.BonusFactor < 0 {
		t.Errorf("BonusFactor = %v, want >= 0", s.BonusFactor)
	}
}

func TestPatchMergesOnlySetFields(t *testing.T) {
	s := DefaultSettings()
	origGravity := s.Gravity

	dist := 250.0
	bushes := false
	s.Apply(Patch{JumpDistance: &dist, Bushes: &bushes})

	if s.JumpDistance != 250 {
		t.Errorf("JumpDistance = %v, want 250", s.JumpDistance)
	}
	if s.Bushes {
		t.Error("Bushes should be disabled by the patch")
	}
	if s.Gravity != origGravity {
		t.Errorf("Gravity changed by an empty patch field: %v -> %v", origGravity, s.Gravity)
	}
}

func TestPatchRevalidates(t *testing.T) {
	s := DefaultSettings()
	bad := -3.0
	s.Apply(Patch{Gravity: &bad})

	if s.Gravity <= 0 {
		t.Errorf("Apply accepted invalid gravity: %v", s.Gravity)
	}
}

func TestEmptyPatchIsNoOp(t *testing.T) {
	s := DefaultSettings()
	before := s
	s.Apply(Patch{})
	if s != before {
		t.Errorf("empty patch changed settings: %+v -> %+v", before, s)
	}
}
