package geometry

import (
	"errors"
	"fmt"
	"math"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
	StdDev float64 // Standard deviation of fit (quality measure)
}

// ErrCollinear is returned when the points do not span a circle
var ErrCollinear = errors.New("points are collinear")

// FitCircleToPoints3D fits a circle to points lying in a plane of constant
// constraintAxis (0=X, 1=Y, 2=Z). The constant coordinate is taken as the
// mean over all points.
//
// The fit is the algebraic least squares fit over all points: with u, v
// relative to the centroid, the center (uc, vc) solves
//
//	Suu*uc + Suv*vc = (Suuu + Suvv) / 2
//	Suv*uc + Svv*vc = (Svvv + Suuv) / 2
//
// and r² = uc² + vc² + (Suu + Svv) / n.
func FitCircleToPoints3D(points []Vector3, constraintAxis int) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}
	if constraintAxis < 0 || constraintAxis > 2 {
		return nil, fmt.Errorf("invalid constraint axis: %d (must be 0, 1, or 2)", constraintAxis)
	}

	// In-plane axes: YZ, XZ or XY
	ua, va := (constraintAxis+1)%3, (constraintAxis+2)%3
	if constraintAxis == 1 {
		ua, va = 0, 2
	}

	n := float64(len(points))
	var mu, mv, mc float64
	for _, p := range points {
		mu += p.Axis(ua)
		mv += p.Axis(va)
		mc += p.Axis(constraintAxis)
	}
	mu, mv, mc = mu/n, mv/n, mc/n

	var suu, svv, suv, suuu, svvv, suvv, svuu float64
	for _, p := range points {
		u := p.Axis(ua) - mu
		v := p.Axis(va) - mv
		suu += u * u
		svv += v * v
		suv += u * v
		suuu += u * u * u
		svvv += v * v * v
		suvv += u * v * v
		svuu += v * u * u
	}

	det := suu*svv - suv*suv
	if math.Abs(det) < 1e-12*math.Max(1, (suu+svv)*(suu+svv)) {
		return nil, ErrCollinear
	}

	bu := (suuu + suvv) / 2
	bv := (svvv + svuu) / 2
	uc := (bu*svv - bv*suv) / det
	vc := (bv*suu - bu*suv) / det
	radius := math.Sqrt(uc*uc + vc*vc + (suu+svv)/n)

	cu, cv := uc+mu, vc+mv

	var center Vector3
	center = center.WithAxis(ua, cu).WithAxis(va, cv).WithAxis(constraintAxis, mc)

	var sumError float64
	for _, p := range points {
		du := p.Axis(ua) - cu
		dv := p.Axis(va) - cv
		e := math.Sqrt(du*du+dv*dv) - radius
		sumError += e * e
	}

	return &CircleFit{
		Center: center,
		Radius: radius,
		Normal: Vector3{}.WithAxis(constraintAxis, 1),
		StdDev: math.Sqrt(sumError / n),
	}, nil
}
