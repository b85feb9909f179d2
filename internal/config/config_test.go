package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:12000", cfg.Server.Addr())
	assert.Equal(t, 0.001, cfg.Pricing.BasePrice)
	assert.Equal(t, 3.0, cfg.Pricing.MaterialMultiplier["titanium"])
	assert.Equal(t, 1.2, cfg.Pricing.SurfaceMultiplier["powder_coating"])
	assert.Equal(t, "5-7 business days", cfg.Pricing.DeliveryTime)
	assert.Equal(t, plate.DefaultDimensions(), cfg.Viewer.Dimensions)
	assert.Equal(t, 10*time.Second, cfg.Quote.Timeout.Duration)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateview.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 8080

[pricing.material_multipliers]
steel = 2.0

[viewer]
fps = 30

[viewer.dimensions]
length = 80.0

[quote]
timeout = "2s"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 2.0, cfg.Pricing.MaterialMultiplier["steel"])
	assert.Equal(t, 3.0, cfg.Pricing.MaterialMultiplier["titanium"])
	assert.Equal(t, 30, cfg.Viewer.FPS)
	assert.Equal(t, 80.0, cfg.Viewer.Dimensions.Length)
	assert.Equal(t, 50.0, cfg.Viewer.Dimensions.Width)
	assert.Equal(t, 2*time.Second, cfg.Quote.Timeout.Duration)
}

func TestDecodeRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"port":     "[server]\nport = 0\n",
		"fps":      "[viewer]\nfps = -1\n",
		"size":     "[viewer]\nwidth = 0\n",
		"timeout":  "[quote]\ntimeout = \"soon\"\n",
		"unknown":  "[server]\nprot = 1\n",
		"syntax":   "[server\n",
		"negative": "[pricing]\nbase_price = -1.0\n",
	}

	for name, text := range cases {
		cfg := Default()
		assert.Error(t, Decode(text, &cfg), name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDimensionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.toml")
	want := plate.Dimensions{Length: 120, Width: 40, Thickness: 3, HoleDiameter: 0}

	require.NoError(t, SaveDimensions(path, want))
	got, err := LoadDimensions(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, os.WriteFile(path, []byte("thickness = 8.0\n"), 0o644))
	got, err = LoadDimensions(path)
	require.NoError(t, err)
	assert.Equal(t, plate.Dimensions{Length: 100, Width: 50, Thickness: 8, HoleDiameter: 10}, got)
}
