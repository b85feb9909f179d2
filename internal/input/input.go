// Package input turns raw form values into engine calls.
package input

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/rs/zerolog"
)

// Fields are the raw text values of the dimension inputs
type Fields struct {
	Length       string
	Width        string
	Thickness    string
	HoleDiameter string
}

// FieldsOf formats dimensions as field values
func FieldsOf(d plate.Dimensions) Fields {
	format := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return Fields{
		Length:       format(d.Length),
		Width:        format(d.Width),
		Thickness:    format(d.Thickness),
		HoleDiameter: format(d.HoleDiameter),
	}
}

// A number at the start of the text, the way form inputs are read
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseField reads a leading decimal number from s. Empty or
// unparseable text yields def.
func ParseField(s string, def float64) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(s))
	if match == "" {
		return def
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// ParseDimensions reads all four fields, substituting the default of
// each field that cannot be read
func ParseDimensions(f Fields) plate.Dimensions {
	def := plate.DefaultDimensions()
	return plate.Dimensions{
		Length:       ParseField(f.Length, def.Length),
		Width:        ParseField(f.Width, def.Width),
		Thickness:    ParseField(f.Thickness, def.Thickness),
		HoleDiameter: ParseField(f.HoleDiameter, def.HoleDiameter),
	}
}

// Target receives the parsed input
type Target interface {
	SetPlate(d plate.Dimensions)
	SetMaterialColor(name string)
}

// Bridge forwards form changes to a Target. It holds no state, so
// repeated or nested calls are safe.
type Bridge struct {
	target Target
	log    zerolog.Logger
}

// NewBridge creates a bridge to target
func NewBridge(target Target, log zerolog.Logger) *Bridge {
	return &Bridge{target: target, log: log}
}

// DimensionsChanged parses the fields and rebuilds the plate
func (b *Bridge) DimensionsChanged(f Fields) plate.Dimensions {
	d := ParseDimensions(f)
	b.log.Debug().Stringer("dimensions", d).Msg("dimensions changed")
	b.target.SetPlate(d)
	return d
}

// MaterialChanged recolors the plate
func (b *Bridge) MaterialChanged(name string) {
	b.log.Debug().Str("material", name).Msg("material changed")
	b.target.SetMaterialColor(name)
}
