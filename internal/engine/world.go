package engine

import "math/rand"

// EntityKind tags a parallax entity with the pool it belongs to.
type EntityKind int

const (
	KindCloud EntityKind = iota
	KindTree
	KindBush
)

// bushVariants is the number of bush sprite variants.
const bushVariants = 8

// treeVariants is the number of tree silhouettes.
const treeVariants = 3

// cloudDriftSpeed is the cloud speed per unscaled frame. Clouds are not
// tied to the game scroll speed, but like everything procedural they only
// advance while the run is playing.
const cloudDriftSpeed = 0.25

// bushLayerCount is the number of bush decoration layers; deeper layers
// draw first and move slower.
const bushLayerCount = 2

// ParallaxEntity is one slot in a fixed-size parallax pool. Recycling
// resets fields in place at a stable index; slots are never added or
// removed after populate.
type ParallaxEntity struct {
	Kind    EntityKind
	X       float64 // Left edge in virtual pixels
	Depth   float64 // Scalar controlling both scale and speed
	Variant int     // Sprite variant within the kind
	Layer   int     // Draw-order layer, 0 = farthest
}

// layerSpec is the randomization range for one pool layer.
type layerSpec struct {
	minDepth, maxDepth float64
	variants           int
}

var (
	cloudSpec = layerSpec{minDepth: 0.15, maxDepth: 0.45, variants: 3}
	treeSpec  = layerSpec{minDepth: 0.55, maxDepth: 1.0, variants: treeVariants}
	bushSpecs = [bushLayerCount]layerSpec{
		{minDepth: 0.45, maxDepth: 0.7, variants: bushVariants},
		{minDepth: 0.7, maxDepth: 1.0, variants: bushVariants},
	}
)

// World holds the fixed-cardinality parallax pools. Pool sizes derive from
// the canvas width, so wider canvases get denser scenery, and never grow
// afterwards.
type World struct {
	Clouds []ParallaxEntity
	Trees  []ParallaxEntity
	Bushes []ParallaxEntity // All layers in one arena, Layer field separates them
}

// populate (re)builds the pools, scattering entities across the full canvas
// width so the scene looks lived-in from the first frame.
func (w *World) populate(s Settings, rng *rand.Rand) {
	cloudCount := int(s.CanvasWidth/160) + 2
	treeCount := int(s.CanvasWidth/200) + 1
	bushPerLayer := int(s.CanvasWidth/90) + 2

	w.Clouds = make([]ParallaxEntity, cloudCount)
	for i := range w.Clouds {
		w.Clouds[i] = rollEntity(KindCloud, cloudSpec, 0, rng)
		w.Clouds[i].X = rng.Float64() * s.CanvasWidth
	}

	w.Trees = make([]ParallaxEntity, treeCount)
	for i := range w.Trees {
		w.Trees[i] = rollEntity(KindTree, treeSpec, 0, rng)
		w.Trees[i].X = rng.Float64() * s.CanvasWidth
	}

	w.Bushes = make([]ParallaxEntity, 0, bushPerLayer*bushLayerCount)
	for layer, spec := range bushSpecs {
		for i := 0; i < bushPerLayer; i++ {
			e := rollEntity(KindBush, spec, layer, rng)
			e.X = rng.Float64() * s.CanvasWidth
			w.Bushes = append(w.Bushes, e)
		}
	}
}

// rollEntity randomizes everything about a slot except its position.
func rollEntity(kind EntityKind, spec layerSpec, layer int, rng *rand.Rand) ParallaxEntity {
	return ParallaxEntity{
		Kind:    kind,
		Depth:   spec.minDepth + rng.Float64()*(spec.maxDepth-spec.minDepth),
		Variant: rng.Intn(spec.variants),
		Layer:   layer,
	}
}

// advance moves every pool one tick. Trees and bushes scroll at the game
// speed scaled by their depth; clouds drift at their own slow rate. An
// entity leaving the trailing edge is wrap-recycled: teleported past the
// leading edge at a random offset with freshly rolled depth and variant.
func (w *World) advance(s Settings, tf, scrollSpeed float64, rng *rand.Rand) {
	recycleAt := -s.CanvasWidth * 0.1

	for i := range w.Clouds {
		w.Clouds[i].X -= cloudDriftSpeed * (0.5 + w.Clouds[i].Depth) * tf
		if w.Clouds[i].X < recycleAt {
			w.Clouds[i] = recycle(w.Clouds[i], cloudSpec, s, rng)
		}
	}

	if s.Trees {
		for i := range w.Trees {
			w.Trees[i].X -= scrollSpeed * w.Trees[i].Depth * tf
			if w.Trees[i].X < recycleAt {
				w.Trees[i] = recycle(w.Trees[i], treeSpec, s, rng)
			}
		}
	}

	if s.Bushes {
		for i := range w.Bushes {
			spec := bushSpecs[w.Bushes[i].Layer]
			w.Bushes[i].X -= scrollSpeed * w.Bushes[i].Depth * tf
			if w.Bushes[i].X < recycleAt {
				w.Bushes[i] = recycle(w.Bushes[i], spec, s, rng)
			}
		}
	}
}

// recycle resets a slot in place: same kind and layer, new position past
// the leading edge, new depth and variant.
func recycle(e ParallaxEntity, spec layerSpec, s Settings, rng *rand.Rand) ParallaxEntity {
	fresh := rollEntity(e.Kind, spec, e.Layer, rng)
	fresh.X = s.CanvasWidth + rng.Float64()*s.CanvasWidth*0.25
	return fresh
}
