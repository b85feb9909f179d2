// Package config loads plateview settings from TOML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/plateview/pkg/plate"
)

// Config is the complete application configuration
type Config struct {
	Server  Server  `toml:"server"`
	App     App     `toml:"app"`
	Pricing Pricing `toml:"pricing"`
	Viewer  Viewer  `toml:"viewer"`
	Quote   Quote   `toml:"quote"`
	Log     Log     `toml:"log"`
}

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug"`
}

// Addr returns host:port for listening
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type App struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Pricing holds the quote formula inputs. BasePrice is per cubic millimeter.
type Pricing struct {
	BasePrice          float64            `toml:"base_price"`
	MaterialMultiplier map[string]float64 `toml:"material_multipliers"`
	SurfaceMultiplier  map[string]float64 `toml:"surface_multipliers"`
	DeliveryTime       string             `toml:"delivery_time"`
	MaxQuantity        int                `toml:"max_quantity"`
	MinDimension       float64            `toml:"min_dimension"`
	MaxDimension       float64            `toml:"max_dimension"`
}

type Viewer struct {
	Width      int              `toml:"width"`
	Height     int              `toml:"height"`
	FPS        int              `toml:"fps"`
	Damping    float64          `toml:"damping"`
	Material   string           `toml:"material"`
	Dimensions plate.Dimensions `toml:"dimensions"`
}

type Quote struct {
	Endpoint string   `toml:"endpoint"`
	Timeout  Duration `toml:"timeout"`
}

type Log struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Duration reads TOML strings like "10s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Server: Server{
			Host:  "0.0.0.0",
			Port:  12000,
			Debug: true,
		},
		App: App{
			Title:       "3DNavi - On-Demand Manufacturing Platform",
			Description: "Modern on-demand manufacturing with real-time 3D visualization",
		},
		Pricing: Pricing{
			BasePrice: 0.001,
			MaterialMultiplier: map[string]float64{
				"aluminum": 1.0,
				"steel":    1.2,
				"titanium": 3.0,
				"plastic":  0.5,
			},
			SurfaceMultiplier: map[string]float64{
				"none":           1.0,
				"anodizing":      1.3,
				"powder_coating": 1.2,
				"machining":      1.5,
			},
			DeliveryTime: "5-7 business days",
			MaxQuantity:  10000,
			MinDimension: 0.1,
			MaxDimension: 1000,
		},
		Viewer: Viewer{
			Width:      1200,
			Height:     800,
			FPS:        60,
			Damping:    6.0,
			Material:   "aluminum",
			Dimensions: plate.DefaultDimensions(),
		},
		Quote: Quote{
			Endpoint: "http://localhost:12000",
			Timeout:  Duration{10 * time.Second},
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Decode applies TOML text on top of cfg and validates the result
func Decode(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks values that would break the server or viewer
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewer size must be positive: %dx%d", c.Viewer.Width, c.Viewer.Height))
	}
	if c.Viewer.FPS <= 0 {
		errs = append(errs, fmt.Errorf("viewer.fps must be positive: %d", c.Viewer.FPS))
	}
	if c.Viewer.Damping < 0 {
		errs = append(errs, fmt.Errorf("viewer.damping must not be negative: %g", c.Viewer.Damping))
	}
	if c.Pricing.BasePrice < 0 {
		errs = append(errs, fmt.Errorf("pricing.base_price must not be negative: %g", c.Pricing.BasePrice))
	}
	if c.Quote.Timeout.Duration <= 0 {
		errs = append(errs, errors.New("quote.timeout must be positive"))
	}
	return errors.Join(errs...)
}

// LoadDimensions reads a plate file: a TOML document with the four
// dimension keys at top level. Missing keys keep the defaults.
func LoadDimensions(path string) (plate.Dimensions, error) {
	d := plate.DefaultDimensions()
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return d, fmt.Errorf("failed to read plate file: %w", err)
	}
	return d, nil
}

// SaveDimensions writes d as a plate file
func SaveDimensions(path string, d plate.Dimensions) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plate file: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(d); err != nil {
		file.Close()
		return fmt.Errorf("failed to write plate file: %w", err)
	}
	return file.Close()
}
