package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfiguration() Configuration {
	return Configuration{
		Material:         "aluminum",
		SurfaceTreatment: "powder_coating",
		Dimensions:       plate.DefaultDimensions(),
		Quantity:         3,
	}
}

func TestFormEncodesAllFields(t *testing.T) {
	form := sampleConfiguration().Form()

	assert.Equal(t, "aluminum", form.Get(FieldMaterial))
	assert.Equal(t, "powder_coating", form.Get(FieldSurfaceTreatment))
	assert.Equal(t, "100", form.Get(FieldLength))
	assert.Equal(t, "50", form.Get(FieldWidth))
	assert.Equal(t, "5", form.Get(FieldThickness))
	assert.Equal(t, "10", form.Get(FieldHoleDiameter))
	assert.Equal(t, "3", form.Get(FieldQuantity))
}

func TestLines(t *testing.T) {
	q := Quote{
		Status:            "success",
		Configuration:     sampleConfiguration(),
		EstimatedPrice:    32.5,
		EstimatedDelivery: "5-7 business days",
	}

	assert.Equal(t, []Line{
		{"Material", "Aluminum"},
		{"Surface Treatment", "Powder coating"},
		{"Dimensions", "100 × 50 × 5 mm"},
		{"Hole Diameter", "10 mm"},
		{"Quantity", "3"},
		{"Estimated Delivery", "5-7 business days"},
		{"Total Price", "$32.5"},
	}, Lines(q))
}

func TestLinesEdgeCases(t *testing.T) {
	q := Quote{Configuration: Configuration{
		Material:         "",
		SurfaceTreatment: "a_b_c",
		Dimensions:       plate.Dimensions{Length: 0.1, Width: 12.25, Thickness: 1e-7},
	}}

	lines := Lines(q)
	assert.Equal(t, "", lines[0].Value)
	assert.Equal(t, "A b_c", lines[1].Value)
	assert.Equal(t, "0.1 × 12.25 × 0.0000001 mm", lines[2].Value)
	assert.Equal(t, "$0", lines[6].Value)
}

func TestText(t *testing.T) {
	q := Quote{Configuration: sampleConfiguration(), EstimatedPrice: 7.5}
	text := Text(q)

	assert.Contains(t, text, "Material: Aluminum\n")
	assert.Contains(t, text, "Total Price: $7.5\n")
}

func TestSubmit(t *testing.T) {
	var got Configuration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/configure", r.URL.Path)
		require.NoError(t, r.ParseForm())

		got.Material = r.PostForm.Get(FieldMaterial)
		got.SurfaceTreatment = r.PostForm.Get(FieldSurfaceTreatment)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Quote{
			Status:            "success",
			Configuration:     sampleConfiguration(),
			EstimatedPrice:    12.34,
			EstimatedDelivery: "5-7 business days",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second)
	q, err := client.Submit(context.Background(), sampleConfiguration())
	require.NoError(t, err)

	assert.Equal(t, "aluminum", got.Material)
	assert.Equal(t, "powder_coating", got.SurfaceTreatment)
	assert.Equal(t, 12.34, q.EstimatedPrice)
	assert.Equal(t, plate.DefaultDimensions(), q.Configuration.Dimensions)
}

func TestSubmitStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"thickness: field required"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Submit(context.Background(), sampleConfiguration())
	assert.ErrorIs(t, err, ErrStatus)
	assert.Contains(t, err.Error(), "422")
}

func TestSubmitBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Submit(context.Background(), sampleConfiguration())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrStatus)
}

func TestSubmitCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, time.Second).Submit(ctx, sampleConfiguration())
	assert.ErrorIs(t, err, context.Canceled)
}
