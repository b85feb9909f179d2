package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenVertex is a projected vertex: pixel position plus view depth
type screenVertex struct {
	x, y, z float64
}

// canvas couples a color buffer with its depth buffer
type canvas struct {
	img     *image.RGBA
	zbuffer []float64
	width   int
	height  int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuffer: make([]float64, width*height),
		width:   width,
		height:  height,
	}
	return c
}

// clear fills the color buffer and resets depth to infinity
func (c *canvas) clear(background color.RGBA) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = background.R
		pix[i+1] = background.G
		pix[i+2] = background.B
		pix[i+3] = background.A
	}
	for i := range c.zbuffer {
		c.zbuffer[i] = math.Inf(1)
	}
}

// plot writes one depth tested fragment, blending with what is there
func (c *canvas) plot(x, y int, z float64, col color.RGBA, alpha float64) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	idx := y*c.width + x
	if z >= c.zbuffer[idx] {
		return
	}
	c.zbuffer[idx] = z

	if alpha >= 1 {
		c.img.SetRGBA(x, y, col)
		return
	}
	c.img.SetRGBA(x, y, blend(c.img.RGBAAt(x, y), col, alpha))
}

// fillTriangle rasterizes a triangle with scanlines, interpolating depth
func (c *canvas) fillTriangle(v [3]screenVertex, col color.RGBA, alpha float64) {
	// Sort vertices by Y coordinate (top to bottom)
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].y > v[2].y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}

	top, mid, bottom := v[0], v[1], v[2]
	if bottom.y == top.y {
		return
	}

	yStart := int(math.Max(0, math.Ceil(top.y)))
	yEnd := int(math.Min(float64(c.height-1), math.Floor(bottom.y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// Long edge top-bottom
		t := (fy - top.y) / (bottom.y - top.y)
		xa := top.x + t*(bottom.x-top.x)
		za := top.z + t*(bottom.z-top.z)

		// Short edge, upper or lower half
		var xb, zb float64
		if fy < mid.y {
			if mid.y == top.y {
				continue
			}
			s := (fy - top.y) / (mid.y - top.y)
			xb = top.x + s*(mid.x-top.x)
			zb = top.z + s*(mid.z-top.z)
		} else {
			if bottom.y == mid.y {
				xb, zb = mid.x, mid.z
			} else {
				s := (fy - mid.y) / (bottom.y - mid.y)
				xb = mid.x + s*(bottom.x-mid.x)
				zb = mid.z + s*(bottom.z-mid.z)
			}
		}

		if xa > xb {
			xa, xb = xb, xa
			za, zb = zb, za
		}

		xStart := int(math.Max(0, math.Ceil(xa)))
		xEnd := int(math.Min(float64(c.width-1), math.Floor(xb)))

		for x := xStart; x <= xEnd; x++ {
			u := 0.0
			if xb != xa {
				u = (float64(x) - xa) / (xb - xa)
			}
			c.plot(x, y, za+u*(zb-za), col, alpha)
		}
	}
}

// drawLine draws a depth tested line using Bresenham's algorithm.
// The bias pulls lines slightly toward the camera so edges lying on a
// face win the depth test against it.
func (c *canvas) drawLine(a, b screenVertex, col color.RGBA, alpha, bias float64) {
	a, b, ok := c.clipSegment(a, b)
	if !ok {
		return
	}

	x1, y1 := int(math.Round(a.x)), int(math.Round(a.y))
	x2, y2 := int(math.Round(b.x)), int(math.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	steps := max(dx, dy)
	err := dx - dy

	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		c.plot(x1, y1, a.z+t*(b.z-a.z)-bias, col, alpha)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// clipSegment trims a segment to the pixel rectangle with Liang-Barsky,
// interpolating depth at the new end points. It reports false when
// nothing of the segment is on screen.
func (c *canvas) clipSegment(a, b screenVertex) (screenVertex, screenVertex, bool) {
	if !finite(a) || !finite(b) {
		return a, b, false
	}

	dx, dy := b.x-a.x, b.y-a.y
	t0, t1 := 0.0, 1.0

	maxX, maxY := float64(c.width-1), float64(c.height-1)
	edges := [4][2]float64{
		{-dx, a.x},
		{dx, maxX - a.x},
		{-dy, a.y},
		{dy, maxY - a.y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return lerpScreen(a, b, t0), lerpScreen(a, b, t1), true
}

func lerpScreen(a, b screenVertex, t float64) screenVertex {
	return screenVertex{
		x: a.x + t*(b.x-a.x),
		y: a.y + t*(b.y-a.y),
		z: a.z + t*(b.z-a.z),
	}
}

func finite(v screenVertex) bool {
	for _, f := range [3]float64{v.x, v.y, v.z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// blend mixes src over dst with the given opacity
func blend(dst, src color.RGBA, alpha float64) color.RGBA {
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*alpha + float64(d)*(1-alpha)))
	}
	return color.RGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: 255,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
