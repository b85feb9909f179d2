package quote

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrorMessage is shown in place of a quote when submission fails
const ErrorMessage = "Failed to get quote. Please try again."

// LoadingMessage is shown while a quote is requested
const LoadingMessage = "Calculating quote..."

// Line is one label and value row of a displayed quote
type Line struct {
	Label string
	Value string
}

// Lines returns the display rows of a quote
func Lines(q Quote) []Line {
	cfg := q.Configuration
	d := cfg.Dimensions

	return []Line{
		{"Material", capitalizeFirst(cfg.Material)},
		{"Surface Treatment", capitalizeFirst(strings.Replace(cfg.SurfaceTreatment, "_", " ", 1))},
		{"Dimensions", number(d.Length) + " × " + number(d.Width) + " × " + number(d.Thickness) + " mm"},
		{"Hole Diameter", number(d.HoleDiameter) + " mm"},
		{"Quantity", strconv.Itoa(cfg.Quantity)},
		{"Estimated Delivery", q.EstimatedDelivery},
		{"Total Price", "$" + number(q.EstimatedPrice)},
	}
}

// Text renders the rows as "Label: value" lines
func Text(q Quote) string {
	var b strings.Builder
	for _, line := range Lines(q) {
		b.WriteString(line.Label)
		b.WriteString(": ")
		b.WriteString(line.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// number prints the shortest decimal form, so 100 prints as "100" and
// 32.5 as "32.5"
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
