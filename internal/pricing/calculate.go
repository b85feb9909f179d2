// Package pricing estimates part prices and serves them over HTTP.
package pricing

import (
	"math"
	"strings"

	"github.com/philipparndt/plateview/internal/config"
	"github.com/philipparndt/plateview/internal/quote"
)

// Estimate prices a configuration: base price per cubic millimeter times
// the material and surface multipliers, the bounding volume and the
// quantity, rounded to cents. Unknown names count as 1.0.
func Estimate(cfg quote.Configuration, p config.Pricing) float64 {
	material := multiplier(p.MaterialMultiplier, cfg.Material)
	surface := multiplier(p.SurfaceMultiplier, cfg.SurfaceTreatment)

	d := cfg.Dimensions
	volume := d.Length * d.Width * d.Thickness

	price := p.BasePrice * material * surface * volume * float64(cfg.Quantity)
	return roundCents(price)
}

// Quote builds the full answer for a configuration
func Quote(cfg quote.Configuration, p config.Pricing) quote.Quote {
	return quote.Quote{
		Status:            "success",
		Configuration:     cfg,
		EstimatedPrice:    Estimate(cfg, p),
		EstimatedDelivery: p.DeliveryTime,
	}
}

func multiplier(table map[string]float64, name string) float64 {
	if m, ok := table[strings.ToLower(name)]; ok {
		return m
	}
	return 1.0
}

// roundCents rounds half to even, so 0.125 becomes 0.12
func roundCents(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
