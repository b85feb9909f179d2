package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/philipparndt/plateview/internal/engine"
	"github.com/spf13/cobra"
)

var (
	snapshotPlate     plateFlags
	snapshotOutput    string
	snapshotWidth     int
	snapshotHeight    int
	snapshotMaterial  string
	snapshotWireframe bool
	snapshotOverlay   bool
	snapshotRotate    []float64
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the plate preview to a PNG file",
	Long:  "Render one preview frame without opening a window and write it as PNG.",
	Args:  cobra.NoArgs,
	RunE:  runSnapshot,
}

func init() {
	addPlateFlags(snapshotCmd, &snapshotPlate)
	flags := snapshotCmd.Flags()
	flags.StringVarP(&snapshotOutput, "output", "o", "plate.png", "output PNG file")
	flags.IntVar(&snapshotWidth, "width-px", 0, "image width, defaults to the viewer width")
	flags.IntVar(&snapshotHeight, "height-px", 0, "image height, defaults to the viewer height")
	flags.StringVarP(&snapshotMaterial, "material", "m", "", "material color (aluminum, steel, titanium, plastic)")
	flags.BoolVar(&snapshotWireframe, "wireframe", false, "draw the plate as wireframe")
	flags.BoolVar(&snapshotOverlay, "overlay", true, "print the dimensions into the image")
	flags.Float64SliceVar(&snapshotRotate, "rotate", nil, "orbit by dx,dy pixels before rendering")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	d, err := snapshotPlate.dimensions(cmd)
	if err != nil {
		return err
	}

	width, height := snapshotWidth, snapshotHeight
	if width <= 0 {
		width = cfg.Viewer.Width
	}
	if height <= 0 {
		height = cfg.Viewer.Height
	}
	material := snapshotMaterial
	if material == "" {
		material = cfg.Viewer.Material
	}

	e, err := engine.Create(engine.Options{
		Width:      width,
		Height:     height,
		Dimensions: d,
		Material:   material,
		Overlay:    snapshotOverlay,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	defer e.Teardown()

	if snapshotWireframe {
		e.ToggleWireframe()
	}
	if len(snapshotRotate) > 0 {
		if len(snapshotRotate) != 2 {
			return fmt.Errorf("--rotate takes dx,dy")
		}
		e.Rotate(snapshotRotate[0], snapshotRotate[1])
		e.Controls().Update()
	}

	file, err := os.Create(snapshotOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", snapshotOutput, err)
	}
	if err := png.Encode(file, e.Render()); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", snapshotOutput, err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%dx%d, %s)\n", snapshotOutput, width, height, d)
	return nil
}
