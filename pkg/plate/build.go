package plate

import (
	"math"

	"github.com/philipparndt/plateview/pkg/geometry"
	"github.com/philipparndt/plateview/pkg/stl"
)

// Extrusion settings of the plate
const (
	BevelSize      = 0.5
	BevelThickness = 0.5
	BevelSegments  = 2
	WallSteps      = 2
	HoleSegments   = 48
)

// Build creates the plate solid for the given dimensions. Any dimensions
// are accepted: a zero hole gives a full plate and an oversized hole gives
// a self-intersecting shape.
func Build(d Dimensions) *Solid {
	hl := math.Abs(d.Length) / 2
	hw := math.Abs(d.Width) / 2
	h := math.Abs(d.Thickness)
	r := d.HoleRadius()

	// Small plates get a smaller bevel
	bs := math.Min(BevelSize, math.Min(hl, hw)/2)
	bt := math.Min(BevelThickness, h/4)

	samples := sweepSamples(hl, hw, HoleSegments)
	rings := layerRings(samples, hl, hw, h, r, bs, bt)

	model := stl.NewModel("plate")
	bottom, top := rings[0], rings[len(rings)-1]

	addCap(model, top, false)
	addCap(model, bottom, true)

	for i := 0; i+1 < len(rings); i++ {
		addOuterWall(model, rings[i], rings[i+1])
		if r > 0 {
			addInnerWall(model, rings[i], rings[i+1])
		}
	}

	return &Solid{
		Dimensions: d,
		Model:      model,
		holeRing:   holeLoop(rings, r),
		params:     shapeParams{length: hl * 2, width: hw * 2, thickness: h, holeRadius: r, round: bt},
	}
}

// layerRings returns the cross-sections from bottom to top: the bottom
// bevel, the straight wall steps, then the top bevel
func layerRings(samples []sample, hl, hw, h, r, bs, bt float64) []ring {
	rings := make([]ring, 0, 2*(BevelSegments+1)+WallSteps-1)

	for k := 0; k <= BevelSegments; k++ {
		inset, dz := bevelOffset(k, bs, bt)
		rings = append(rings, buildRing(samples, hl, hw, r, inset, -h/2+dz))
	}

	wallBottom, wallTop := -h/2+bt, h/2-bt
	for j := 1; j < WallSteps; j++ {
		z := wallBottom + (wallTop-wallBottom)*float64(j)/float64(WallSteps)
		rings = append(rings, buildRing(samples, hl, hw, r, 0, z))
	}

	for k := BevelSegments; k >= 0; k-- {
		inset, dz := bevelOffset(k, bs, bt)
		rings = append(rings, buildRing(samples, hl, hw, r, inset, h/2-dz))
	}

	return rings
}

// bevelOffset returns how far bevel layer k sits inside the outline and
// away from its face. Layer 0 lies on the face, the last layer on the wall.
func bevelOffset(k int, size, thickness float64) (inset, fromFace float64) {
	phi := float64(k) / float64(BevelSegments) * math.Pi / 2
	return size * (1 - math.Sin(phi)), thickness * (1 - math.Cos(phi))
}

// addCap fills the ring between hole and outline. Caps face +Z unless
// flipped.
func addCap(model *stl.Model, r ring, flip bool) {
	n := len(r.outer)
	for a := 0; a < n; a++ {
		b := (a + 1) % n
		if flip {
			model.AddFacet(r.inner[a], r.outer[b], r.outer[a])
			model.AddFacet(r.inner[a], r.inner[b], r.outer[b])
		} else {
			model.AddFacet(r.inner[a], r.outer[a], r.outer[b])
			model.AddFacet(r.inner[a], r.outer[b], r.inner[b])
		}
	}
}

func addOuterWall(model *stl.Model, lower, upper ring) {
	n := len(lower.outer)
	for a := 0; a < n; a++ {
		b := (a + 1) % n
		model.AddFacet(lower.outer[a], lower.outer[b], upper.outer[b])
		model.AddFacet(lower.outer[a], upper.outer[b], upper.outer[a])
	}
}

// addInnerWall lines the hole with faces pointing toward its axis
func addInnerWall(model *stl.Model, lower, upper ring) {
	n := len(lower.inner)
	for a := 0; a < n; a++ {
		b := (a + 1) % n
		model.AddFacet(lower.inner[a], upper.inner[a], upper.inner[b])
		model.AddFacet(lower.inner[a], upper.inner[b], lower.inner[b])
	}
}

// holeLoop returns the hole boundary of the middle cross-section, where
// the hole has its nominal radius
func holeLoop(rings []ring, r float64) []geometry.Vector3 {
	if r <= 0 {
		return nil
	}
	mid := rings[len(rings)/2]
	loop := make([]geometry.Vector3, len(mid.inner))
	copy(loop, mid.inner)
	return loop
}
