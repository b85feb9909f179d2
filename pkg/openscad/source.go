package openscad

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/plateview/pkg/plate"
)

// Source returns an OpenSCAD program for the plate. The plate is centered
// on the origin like the tessellated mesh.
func Source(d plate.Dimensions) string {
	l, w, h := math.Abs(d.Length), math.Abs(d.Width), math.Abs(d.Thickness)
	r := d.HoleRadius()

	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", d)
	if r == 0 {
		fmt.Fprintf(&b, "cube([%s, %s, %s], center = true);\n", num(l), num(w), num(h))
		return b.String()
	}

	b.WriteString("difference() {\n")
	fmt.Fprintf(&b, "  cube([%s, %s, %s], center = true);\n", num(l), num(w), num(h))
	fmt.Fprintf(&b, "  cylinder(h = %s, r = %s, center = true, $fn = %d);\n", num(h+2), num(r), plate.HoleSegments)
	b.WriteString("}\n")
	return b.String()
}

// WriteFile writes the plate source to path.
func WriteFile(path string, d plate.Dimensions) error {
	if err := os.WriteFile(path, []byte(Source(d)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
