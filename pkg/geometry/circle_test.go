package geometry

import (
	"errors"
	"math"
	"testing"
)

func circlePoints(center Vector3, radius float64, axis, count int) []Vector3 {
	points := make([]Vector3, count)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(count)
		u, v := radius*math.Cos(angle), radius*math.Sin(angle)
		switch axis {
		case 0:
			points[i] = center.Add(NewVector3(0, u, v))
		case 1:
			points[i] = center.Add(NewVector3(u, 0, v))
		default:
			points[i] = center.Add(NewVector3(u, v, 0))
		}
	}
	return points
}

func TestFitCircleToPoints3D(t *testing.T) {
	center := NewVector3(3, -2, 7)

	for axis := 0; axis < 3; axis++ {
		fit, err := FitCircleToPoints3D(circlePoints(center, 4.5, axis, 48), axis)
		if err != nil {
			t.Fatalf("FitCircleToPoints3D failed on axis %d: %v", axis, err)
		}
		if math.Abs(fit.Radius-4.5) > 1e-9 {
			t.Errorf("FitCircleToPoints3D failed on axis %d: expected radius 4.5, got %f", axis, fit.Radius)
		}
		if !fit.Center.ApproxEqual(center, 1e-9) {
			t.Errorf("FitCircleToPoints3D failed on axis %d: expected center %v, got %v", axis, center, fit.Center)
		}
		if fit.Normal.Axis(axis) != 1 {
			t.Errorf("FitCircleToPoints3D failed on axis %d: unexpected normal %v", axis, fit.Normal)
		}
		if fit.StdDev > 1e-9 {
			t.Errorf("FitCircleToPoints3D failed on axis %d: expected exact fit, got std dev %f", axis, fit.StdDev)
		}
	}
}

func TestFitCircleToArc(t *testing.T) {
	points := circlePoints(Vector3{}, 10, 2, 36)[:6]

	fit, err := FitCircleToPoints3D(points, 2)
	if err != nil {
		t.Fatalf("FitCircleToPoints3D failed: %v", err)
	}
	if math.Abs(fit.Radius-10) > 1e-6 {
		t.Errorf("FitCircleToPoints3D failed: expected radius 10, got %f", fit.Radius)
	}
}

func TestFitCircleErrors(t *testing.T) {
	if _, err := FitCircleToPoints3D([]Vector3{{}, {X: 1}}, 2); err == nil {
		t.Error("Expected error for two points")
	}
	if _, err := FitCircleToPoints3D(circlePoints(Vector3{}, 1, 2, 8), 3); err == nil {
		t.Error("Expected error for invalid axis")
	}

	line := []Vector3{NewVector3(0, 0, 0), NewVector3(1, 1, 0), NewVector3(2, 2, 0), NewVector3(3, 3, 0)}
	if _, err := FitCircleToPoints3D(line, 2); !errors.Is(err, ErrCollinear) {
		t.Errorf("Expected ErrCollinear, got %v", err)
	}
}

func TestVectorAxis(t *testing.T) {
	v := NewVector3(1, 2, 3)
	for axis, want := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != want {
			t.Errorf("Axis(%d) failed: expected %f, got %f", axis, want, got)
		}
	}
	if got := v.WithAxis(1, 9); got != NewVector3(1, 9, 3) {
		t.Errorf("WithAxis failed: got %v", got)
	}
	if got := v.Lerp(NewVector3(3, 2, 1), 0.5); got != NewVector3(2, 2, 2) {
		t.Errorf("Lerp failed: got %v", got)
	}
}
