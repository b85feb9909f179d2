package openscad

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceWithHole(t *testing.T) {
	src := Source(plate.DefaultDimensions())

	assert.Contains(t, src, "difference() {")
	assert.Contains(t, src, "cube([100, 50, 5], center = true);")
	assert.Contains(t, src, "cylinder(h = 7, r = 5, center = true, $fn = 48);")
}

func TestSourceWithoutHole(t *testing.T) {
	src := Source(plate.Dimensions{Length: 20.5, Width: 10, Thickness: 2})

	assert.NotContains(t, src, "difference")
	assert.NotContains(t, src, "cylinder")
	assert.Contains(t, src, "cube([20.5, 10, 2], center = true);")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.scad")
	require.NoError(t, WriteFile(path, plate.DefaultDimensions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Source(plate.DefaultDimensions()), string(data))
}

func TestRenderWithoutBinary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	r.binary = "openscad-does-not-exist"

	_, err := r.RenderPlate(context.Background(), plate.DefaultDimensions())
	assert.ErrorIs(t, err, ErrNotInstalled)
}
