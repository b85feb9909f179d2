package plate

import (
	"math"
	"sort"

	"github.com/philipparndt/plateview/pkg/geometry"
)

const angleEpsilon = 1e-12

// sample is one angular position of the cap profile. outer is the point
// on the nominal rectangle, dir the unit direction used for the hole.
type sample struct {
	angle float64
	outer [2]float64
	dir   [2]float64
}

// ring is one closed cross-section of the plate at a fixed height
type ring struct {
	z     float64
	outer []geometry.Vector3
	inner []geometry.Vector3
}

// sweepSamples merges the hole sample angles with the rectangle corner
// angles so every outline corner is hit exactly
func sweepSamples(halfLength, halfWidth float64, segments int) []sample {
	angles := make([]float64, 0, segments+4)
	for i := 0; i < segments; i++ {
		angles = append(angles, 2*math.Pi*float64(i)/float64(segments))
	}

	corners := map[int][2]float64{}
	for _, c := range [][2]float64{
		{halfLength, halfWidth},
		{-halfLength, halfWidth},
		{-halfLength, -halfWidth},
		{halfLength, -halfWidth},
	} {
		a := normalizeAngle(math.Atan2(c[1], c[0]))
		corners[len(angles)] = c
		angles = append(angles, a)
	}

	order := make([]int, len(angles))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return angles[order[i]] < angles[order[j]]
	})

	samples := make([]sample, 0, len(order))
	for _, idx := range order {
		a := angles[idx]
		c, isCorner := corners[idx]

		if n := len(samples); n > 0 && a-samples[n-1].angle < angleEpsilon {
			// A corner wins over a hole sample at the same angle
			if isCorner {
				samples[n-1].outer = c
			}
			continue
		}

		s := sample{
			angle: a,
			dir:   [2]float64{math.Cos(a), math.Sin(a)},
		}
		if isCorner {
			s.outer = c
		} else {
			s.outer = rayToRectangle(s.dir, halfLength, halfWidth)
		}
		samples = append(samples, s)
	}

	return samples
}

// rayToRectangle intersects a ray from the origin with the rectangle
// outline of the given half extents
func rayToRectangle(dir [2]float64, halfLength, halfWidth float64) [2]float64 {
	t := math.Inf(1)
	if math.Abs(dir[0]) > angleEpsilon {
		t = halfLength / math.Abs(dir[0])
	}
	if math.Abs(dir[1]) > angleEpsilon {
		t = math.Min(t, halfWidth/math.Abs(dir[1]))
	}
	if math.IsInf(t, 1) {
		return [2]float64{}
	}

	return [2]float64{
		clamp(dir[0]*t, -halfLength, halfLength),
		clamp(dir[1]*t, -halfWidth, halfWidth),
	}
}

// buildRing places the samples at height z. The outline is pulled in by
// inset on every side and the hole widened by the same amount.
func buildRing(samples []sample, halfLength, halfWidth, holeRadius, inset, z float64) ring {
	r := ring{
		z:     z,
		outer: make([]geometry.Vector3, len(samples)),
		inner: make([]geometry.Vector3, len(samples)),
	}

	hl := math.Max(halfLength-inset, 0)
	hw := math.Max(halfWidth-inset, 0)

	radius := 0.0
	if holeRadius > 0 {
		radius = holeRadius + inset
	}

	for i, s := range samples {
		r.outer[i] = geometry.NewVector3(clamp(s.outer[0], -hl, hl), clamp(s.outer[1], -hw, hw), z)
		r.inner[i] = geometry.NewVector3(s.dir[0]*radius, s.dir[1]*radius, z)
	}

	return r
}

func normalizeAngle(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
