package main

import (
	"github.com/philipparndt/plateview/internal/config"
	"github.com/philipparndt/plateview/internal/logging"
	"github.com/philipparndt/plateview/internal/session"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logPretty  bool

	cfg config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "plateview",
	Short: "Configure, preview and price rectangular plates",
	Long: `plateview configures rectangular plates with an optional center hole.
It previews the plate in 3D, exports it as STL or OpenSCAD and requests
manufacturing quotes from the pricing service.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "TOML configuration file")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&logPretty, "log-pretty", false, "human readable log output")
}

// setup loads the configuration and builds the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-pretty") {
		cfg.Log.Pretty = logPretty
	}

	log, err = logging.New(logging.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	return err
}

// plateFlags are the dimension flags shared by the plate commands
type plateFlags struct {
	file         string
	length       float64
	width        float64
	thickness    float64
	holeDiameter float64
}

func addPlateFlags(cmd *cobra.Command, p *plateFlags) {
	def := plate.DefaultDimensions()
	flags := cmd.Flags()
	flags.StringVar(&p.file, "plate", "", "plate TOML file with length, width, thickness and hole_diameter")
	flags.Float64VarP(&p.length, "length", "l", def.Length, "plate length in mm")
	flags.Float64VarP(&p.width, "width", "w", def.Width, "plate width in mm")
	flags.Float64VarP(&p.thickness, "thickness", "t", def.Thickness, "plate thickness in mm")
	flags.Float64Var(&p.holeDiameter, "hole", def.HoleDiameter, "hole diameter in mm, 0 for none")
}

// dimensions resolves the configured defaults, then the plate file, then
// explicitly set flags
func (p *plateFlags) dimensions(cmd *cobra.Command) (plate.Dimensions, error) {
	d := cfg.Viewer.Dimensions
	if p.file != "" {
		var err error
		if d, err = config.LoadDimensions(p.file); err != nil {
			return d, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		d.Length = p.length
	}
	if flags.Changed("width") {
		d.Width = p.width
	}
	if flags.Changed("thickness") {
		d.Thickness = p.thickness
	}
	if flags.Changed("hole") {
		d.HoleDiameter = p.holeDiameter
	}
	return d, nil
}

// sessionPath returns the session file, empty when disabled or unknown
func sessionPath(disabled bool) string {
	if disabled {
		return ""
	}
	path, err := session.DefaultPath()
	if err != nil {
		log.Warn().Err(err).Msg("sessions disabled")
		return ""
	}
	return path
}
