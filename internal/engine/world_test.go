package engine

import (
	"math/rand"
	"testing"
)

func TestWorldPoolsFixedCardinality(t *testing.T) {
	s := DefaultSettings()
	rng := rand.New(rand.NewSource(7))

	var w World
	w.populate(s, rng)

	clouds, trees, bushes := len(w.Clouds), len(w.Trees), len(w.Bushes)
	if clouds == 0 || trees == 0 || bushes == 0 {
		t.Fatalf("empty pools: clouds=%d trees=%d bushes=%d", clouds, trees, bushes)
	}

	// A long scroll must recycle, never grow or shrink the pools
	for i := 0; i < 5000; i++ {
		w.advance(s, 1, 3.0, rng)
	}
	if len(w.Clouds) != clouds || len(w.Trees) != trees || len(w.Bushes) != bushes {
		t.Errorf("pool sizes changed: clouds %d->%d trees %d->%d bushes %d->%d",
			clouds, len(w.Clouds), trees, len(w.Trees), bushes, len(w.Bushes))
	}
}

func TestWorldPoolsScaleWithCanvasWidth(t *testing.T) {
	narrow := DefaultSettings()
	narrow.CanvasWidth = 400
	wide := DefaultSettings()
	wide.CanvasWidth = 1600

	rng := rand.New(rand.NewSource(7))
	var a, b World
	a.populate(narrow, rng)
	b.populate(wide, rng)

	if len(b.Clouds) <= len(a.Clouds) || len(b.Bushes) <= len(a.Bushes) {
		t.Errorf("wider canvas should get denser pools: clouds %d vs %d, bushes %d vs %d",
			len(a.Clouds), len(b.Clouds), len(a.Bushes), len(b.Bushes))
	}
}

func TestWorldRecycleWrapsToLeadingEdge(t *testing.T) {
	s := DefaultSettings()
	rng := rand.New(rand.NewSource(7))

	var w World
	w.populate(s, rng)
	w.Trees[0].X = -s.CanvasWidth // Far past the trailing edge

	w.advance(s, 1, 3.0, rng)
	if w.Trees[0].X < s.CanvasWidth {
		t.Errorf("recycled tree at %v, want past the leading edge %v", w.Trees[0].X, s.CanvasWidth)
	}
	if w.Trees[0].Kind != KindTree {
		t.Error("recycling changed the entity kind")
	}
	if d := w.Trees[0].Depth; d < treeSpec.minDepth || d >= treeSpec.maxDepth {
		t.Errorf("recycled depth %v outside layer range [%v,%v)", d, treeSpec.minDepth, treeSpec.maxDepth)
	}
}

func TestWorldDepthScalesSpeed(t *testing.T) {
	s := DefaultSettings()
	rng := rand.New(rand.NewSource(7))

	var w World
	w.populate(s, rng)
	w.Trees = w.Trees[:2]
	w.Trees[0].Depth = 0.6
	w.Trees[1].Depth = 0.9
	w.Trees[0].X = s.CanvasWidth / 2
	w.Trees[1].X = s.CanvasWidth / 2

	w.advance(s, 1, 3.0, rng)
	shallow := s.CanvasWidth/2 - w.Trees[0].X
	deep := s.CanvasWidth/2 - w.Trees[1].X
	if deep <= shallow {
		t.Errorf("deeper entity moved %v, shallow %v; depth must scale speed", deep, shallow)
	}
}

func TestWorldFlagsDisableLayers(t *testing.T) {
	s := DefaultSettings()
	s.Trees = false
	s.Bushes = false
	rng := rand.New(rand.NewSource(7))

	var w World
	w.populate(s, rng)
	tx := w.Trees[0].X
	bx := w.Bushes[0].X

	w.advance(s, 1, 3.0, rng)
	if w.Trees[0].X != tx || w.Bushes[0].X != bx {
		t.Error("disabled layers must not advance")
	}
}

func TestBushLayersStayInTheirDepthBands(t *testing.T) {
	s := DefaultSettings()
	rng := rand.New(rand.NewSource(7))

	var w World
	w.populate(s, rng)
	for i := 0; i < 2000; i++ {
		w.advance(s, 1, 3.0, rng)
	}

	for _, b := range w.Bushes {
		spec := bushSpecs[b.Layer]
		if b.Depth < spec.minDepth || b.Depth >= spec.maxDepth {
			t.Fatalf("layer %d bush depth %v outside [%v,%v)", b.Layer, b.Depth, spec.minDepth, spec.maxDepth)
		}
		if b.Variant < 0 || b.Variant >= bushVariants {
			t.Fatalf("bush variant %d outside [0,%d)", b.Variant, bushVariants)
		}
	}
}
