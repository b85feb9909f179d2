package pricing

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/philipparndt/plateview/internal/config"
	"github.com/philipparndt/plateview/internal/quote"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Server is the pricing HTTP service
type Server struct {
	echo *echo.Echo
	cfg  config.Config
	log  zerolog.Logger
	page *template.Template
}

// NewServer wires the routes for cfg
func NewServer(cfg config.Config, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo: e,
		cfg:  cfg,
		log:  log,
		page: template.Must(template.New("index").Parse(indexPage)),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	e.GET("/", s.handleIndex)
	e.GET("/health", s.handleHealth)
	e.POST("/configure", s.handleConfigure)

	return s
}

// Handler exposes the routes for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on the configured address until ctx is canceled
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Server.Addr()
	errc := make(chan error, 1)

	go func() {
		s.log.Info().Str("addr", addr).Msg("pricing service listening")
		errc <- s.echo.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("pricing service failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	s.log.Info().Msg("pricing service stopped")
	return nil
}

type pageData struct {
	Title        string
	Description  string
	Defaults     plate.Dimensions
	Materials    []string
	Treatments   []string
	MinDimension float64
	MaxDimension float64
	MaxQuantity  int
}

func (s *Server) handleIndex(c echo.Context) error {
	var b strings.Builder
	err := s.page.Execute(&b, pageData{
		Title:        s.cfg.App.Title,
		Description:  s.cfg.App.Description,
		Defaults:     s.cfg.Viewer.Dimensions,
		Materials:    sortedKeys(s.cfg.Pricing.MaterialMultiplier, quote.Materials()),
		Treatments:   sortedKeys(s.cfg.Pricing.SurfaceMultiplier, quote.SurfaceTreatments()),
		MinDimension: s.cfg.Pricing.MinDimension,
		MaxDimension: s.cfg.Pricing.MaxDimension,
		MaxQuantity:  s.cfg.Pricing.MaxQuantity,
	})
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return c.HTML(http.StatusOK, b.String())
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleConfigure(c echo.Context) error {
	cfg, err := parseConfiguration(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
	}

	q := Quote(cfg, s.cfg.Pricing)
	s.log.Debug().
		Str("material", cfg.Material).
		Str("surface_treatment", cfg.SurfaceTreatment).
		Int("quantity", cfg.Quantity).
		Float64("price", q.EstimatedPrice).
		Msg("quote computed")

	return c.JSON(http.StatusOK, q)
}

// parseConfiguration reads every form field; all of them are required
func parseConfiguration(c echo.Context) (quote.Configuration, error) {
	var cfg quote.Configuration
	var errs []error

	text := func(name string) string {
		v := c.FormValue(name)
		if v == "" {
			errs = append(errs, fmt.Errorf("%s: field required", name))
		}
		return v
	}
	number := func(name string) float64 {
		raw := text(name)
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: value is not a valid float", name))
		}
		return v
	}

	cfg.Material = text(quote.FieldMaterial)
	cfg.SurfaceTreatment = text(quote.FieldSurfaceTreatment)
	cfg.Dimensions.Length = number(quote.FieldLength)
	cfg.Dimensions.Width = number(quote.FieldWidth)
	cfg.Dimensions.Thickness = number(quote.FieldThickness)
	cfg.Dimensions.HoleDiameter = number(quote.FieldHoleDiameter)

	if raw := text(quote.FieldQuantity); raw != "" {
		q, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: value is not a valid integer", quote.FieldQuantity))
		}
		cfg.Quantity = q
	}

	return cfg, errors.Join(errs...)
}

// sortedKeys lists the preferred names first, then any other keys of m
func sortedKeys(m map[string]float64, preferred []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range preferred {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}
