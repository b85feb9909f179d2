// Package analysis measures plate meshes.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/plateview/pkg/geometry"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/pkg/stl"
)

// MeasurementResult contains the measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64 // Enclosed mesh volume
	BoundsVolume  float64 // Volume of the bounding box
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int // Distinct edges
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// HoleMeasurement is the hole diameter recovered from the mesh. Through is
// set when the fitted center is clear of material.
type HoleMeasurement struct {
	Diameter float64
	Center   geometry.Vector3
	StdDev   float64
	Through  bool
}

// AnalyzeModel measures a mesh
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		Volume:        model.Volume(),
	}

	if result.TriangleCount == 0 {
		result.BoundingBox = geometry.BoundingBox{}
		return result
	}

	result.Dimensions = result.BoundingBox.Size()
	result.BoundsVolume = result.BoundingBox.Volume()

	type edge struct{ a, b geometry.Vector3 }
	seen := make(map[edge]bool)

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		vertices := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for i := 0; i < 3; i++ {
			a, b := vertices[i], vertices[(i+1)%3]
			if seen[edge{a, b}] || seen[edge{b, a}] {
				continue
			}
			seen[edge{a, b}] = true

			length := a.Distance(b)
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(seen)
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)

	return result
}

// MeasureHole fits a circle to the hole wall of a plate. It returns nil
// when the plate has no hole.
func MeasureHole(s *plate.Solid) (*HoleMeasurement, error) {
	if !s.HasHole() {
		return nil, nil
	}

	fit, err := geometry.FitCircleToPoints3D(s.HoleLoop(), 2)
	if err != nil {
		return nil, fmt.Errorf("failed to fit hole: %w", err)
	}

	return &HoleMeasurement{
		Diameter: fit.Radius * 2,
		Center:   fit.Center,
		StdDev:   fit.StdDev,
		Through:  !s.Contains(fit.Center),
	}, nil
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "mm"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
