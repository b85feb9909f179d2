package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/philipparndt/plateview/pkg/openscad"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	exportPlate  plateFlags
	exportOutput string
	exportFormat string
	exportSmooth bool
	exportCells  int
	exportRender bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plate as STL or OpenSCAD",
	Long: `Export the plate mesh.

Formats:
  stl    binary STL of the preview mesh (default)
  ascii  ASCII STL of the preview mesh
  scad   OpenSCAD source

--smooth tessellates the signed distance model instead of the preview mesh.
--render generates OpenSCAD source and renders it with the openscad binary.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addPlateFlags(exportCmd, &exportPlate)
	flags := exportCmd.Flags()
	flags.StringVarP(&exportOutput, "output", "o", "", "output file, defaults to plate.<ext>")
	flags.StringVarP(&exportFormat, "format", "f", "stl", "output format: stl, ascii or scad")
	flags.BoolVar(&exportSmooth, "smooth", false, "tessellate the signed distance model")
	flags.IntVar(&exportCells, "cells", plate.DefaultMeshCells, "marching cubes cells along the longest side for --smooth")
	flags.BoolVar(&exportRender, "render", false, "render generated OpenSCAD source with openscad")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := exportPlate.dimensions(cmd)
	if err != nil {
		return err
	}

	format := strings.ToLower(exportFormat)
	output := exportOutput
	if output == "" {
		ext := "stl"
		if format == "scad" {
			ext = "scad"
		}
		output = "plate." + ext
	}

	var stlFormat stl.Format
	switch format {
	case "scad":
		if err := openscad.WriteFile(output, d); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", output)
		return nil
	case "stl":
		stlFormat = stl.Binary
	case "ascii":
		stlFormat = stl.ASCII
	default:
		return fmt.Errorf("unknown format %q (expected stl, ascii or scad)", exportFormat)
	}

	model, err := exportModel(cmd.Context(), d)
	if err != nil {
		return err
	}
	model.Name = "plate"

	if err := stl.Save(output, model, stlFormat); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d triangles, %s)\n", output, model.TriangleCount(), d)
	return nil
}

func exportModel(ctx context.Context, d plate.Dimensions) (*stl.Model, error) {
	switch {
	case exportRender:
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		workDir, err := os.MkdirTemp("", "plateview")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(workDir)

		log.Info().Str("dir", filepath.Base(workDir)).Msg("rendering with openscad")
		return openscad.NewRenderer(workDir).RenderPlate(ctx, d)
	case exportSmooth:
		return plate.Build(d).Tessellate(exportCells)
	default:
		return plate.Build(d).Model, nil
	}
}
