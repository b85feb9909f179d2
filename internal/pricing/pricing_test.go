package pricing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/philipparndt/plateview/internal/config"
	"github.com/philipparndt/plateview/internal/quote"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(config.Default(), zerolog.Nop())
}

func validForm() url.Values {
	return url.Values{
		"material":          {"aluminum"},
		"surface_treatment": {"anodizing"},
		"length":            {"100.0"},
		"width":             {"50.0"},
		"thickness":         {"5.0"},
		"hole_diameter":     {"10.0"},
		"quantity":          {"1"},
	}
}

func post(t *testing.T, s *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/configure", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestEstimate(t *testing.T) {
	p := config.Default().Pricing
	dims := plate.Dimensions{Length: 100, Width: 50, Thickness: 5, HoleDiameter: 10}

	cases := []struct {
		material, surface string
		quantity          int
		want              float64
	}{
		{"aluminum", "anodizing", 1, 32.5},
		{"aluminum", "none", 1, 25},
		{"steel", "none", 2, 60},
		{"titanium", "machining", 1, 112.5},
		{"plastic", "powder_coating", 10, 150},
		{"TITANIUM", "None", 1, 75},
		{"unobtainium", "gilding", 1, 25},
	}

	for _, c := range cases {
		got := Estimate(quote.Configuration{
			Material:         c.material,
			SurfaceTreatment: c.surface,
			Dimensions:       dims,
			Quantity:         c.quantity,
		}, p)
		assert.InDelta(t, c.want, got, 1e-9, "%s/%s x%d", c.material, c.surface, c.quantity)
	}
}

func TestEstimateRoundsToCents(t *testing.T) {
	p := config.Default().Pricing
	got := Estimate(quote.Configuration{
		Material:   "steel",
		Dimensions: plate.Dimensions{Length: 33.3, Width: 7.7, Thickness: 1.1},
		Quantity:   1,
	}, p)
	// 0.001 * 1.2 * 282.051 = 0.3384612
	assert.Equal(t, 0.34, got)

	// 0.001 * 125 = 0.125 sits on a half cent and rounds to even
	got = Estimate(quote.Configuration{
		Material:         "aluminum",
		SurfaceTreatment: "none",
		Dimensions:       plate.Dimensions{Length: 5, Width: 5, Thickness: 5},
		Quantity:         1,
	}, p)
	assert.Equal(t, 0.12, got)

	// 0.001 * 375 = 0.375 rounds up to the even cent
	got = Estimate(quote.Configuration{
		Material:   "aluminum",
		Dimensions: plate.Dimensions{Length: 15, Width: 5, Thickness: 5},
		Quantity:   1,
	}, p)
	assert.Equal(t, 0.38, got)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestIndexPage(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "3DNavi")
	assert.Contains(t, body, "On-Demand Manufacturing Platform")
	assert.Contains(t, body, `name="hole_diameter"`)
	assert.Contains(t, body, `<option value="powder_coating">`)
}

func TestConfigureValid(t *testing.T) {
	rec := post(t, newTestServer(), validForm())
	require.Equal(t, http.StatusOK, rec.Code)

	var q quote.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))

	assert.Equal(t, "success", q.Status)
	assert.Equal(t, "aluminum", q.Configuration.Material)
	assert.Equal(t, "anodizing", q.Configuration.SurfaceTreatment)
	assert.Equal(t, 1, q.Configuration.Quantity)
	assert.Equal(t, plate.DefaultDimensions(), q.Configuration.Dimensions)
	assert.Equal(t, 32.5, q.EstimatedPrice)
	assert.Equal(t, "5-7 business days", q.EstimatedDelivery)
}

func TestConfigureEveryMaterialAndTreatment(t *testing.T) {
	s := newTestServer()

	for _, material := range quote.Materials() {
		for _, treatment := range quote.SurfaceTreatments() {
			form := validForm()
			form.Set("material", material)
			form.Set("surface_treatment", treatment)

			rec := post(t, s, form)
			require.Equal(t, http.StatusOK, rec.Code, "%s/%s", material, treatment)

			var q quote.Quote
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
			assert.Equal(t, material, q.Configuration.Material)
			assert.Equal(t, treatment, q.Configuration.SurfaceTreatment)
			assert.Greater(t, q.EstimatedPrice, 0.0)
		}
	}
}

func TestConfigureMissingField(t *testing.T) {
	form := validForm()
	form.Del("thickness")

	rec := post(t, newTestServer(), form)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "thickness")
}

func TestConfigureInvalidNumbers(t *testing.T) {
	s := newTestServer()

	form := validForm()
	form.Set("length", "long")
	assert.Equal(t, http.StatusUnprocessableEntity, post(t, s, form).Code)

	form = validForm()
	form.Set("quantity", "1.5")
	assert.Equal(t, http.StatusUnprocessableEntity, post(t, s, form).Code)
}

func TestSortedKeys(t *testing.T) {
	m := map[string]float64{"b": 1, "z": 1, "a": 1, "steel": 1}
	assert.Equal(t, []string{"steel", "a", "b", "z"}, sortedKeys(m, []string{"steel", "missing"}))
}
