// Package quote holds the quote request and response types, the client
// that submits a configuration to the pricing service, and the display
// rows of a returned quote.
package quote

import (
	"net/url"
	"strconv"

	"github.com/philipparndt/plateview/pkg/plate"
)

// Configuration is a part order as submitted for pricing
type Configuration struct {
	Material         string           `json:"material"`
	SurfaceTreatment string           `json:"surface_treatment"`
	Dimensions       plate.Dimensions `json:"dimensions"`
	Quantity         int              `json:"quantity"`
}

// Quote is the pricing service answer
type Quote struct {
	Status            string        `json:"status"`
	Configuration     Configuration `json:"configuration"`
	EstimatedPrice    float64       `json:"estimated_price"`
	EstimatedDelivery string        `json:"estimated_delivery"`
}

// Form field names of a configuration
const (
	FieldMaterial         = "material"
	FieldSurfaceTreatment = "surface_treatment"
	FieldLength           = "length"
	FieldWidth            = "width"
	FieldThickness        = "thickness"
	FieldHoleDiameter     = "hole_diameter"
	FieldQuantity         = "quantity"
)

// Materials returns the known material names in display order
func Materials() []string {
	return []string{"aluminum", "steel", "titanium", "plastic"}
}

// SurfaceTreatments returns the known treatment names in display order
func SurfaceTreatments() []string {
	return []string{"none", "anodizing", "powder_coating", "machining"}
}

// Form encodes the configuration as form values
func (c Configuration) Form() url.Values {
	format := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return url.Values{
		FieldMaterial:         {c.Material},
		FieldSurfaceTreatment: {c.SurfaceTreatment},
		FieldLength:           {format(c.Dimensions.Length)},
		FieldWidth:            {format(c.Dimensions.Width)},
		FieldThickness:        {format(c.Dimensions.Thickness)},
		FieldHoleDiameter:     {format(c.Dimensions.HoleDiameter)},
		FieldQuantity:         {strconv.Itoa(c.Quantity)},
	}
}
