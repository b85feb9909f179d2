package main

import (
	"fmt"

	"github.com/philipparndt/plateview/pkg/analysis"
	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/pkg/stl"
	"github.com/spf13/cobra"
)

var infoPlate plateFlags

var infoCmd = &cobra.Command{
	Use:   "info [file.stl]",
	Short: "Display geometry information about a plate or STL file",
	Long: `Show triangle count, bounding box, surface area, volume and edge statistics.

Without a file the plate given by the dimension flags is built and its hole
diameter is measured from the mesh.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	addPlateFlags(infoCmd, &infoPlate)
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	var model *stl.Model
	var solid *plate.Solid

	if len(args) == 1 {
		var err error
		if model, err = stl.Parse(args[0]); err != nil {
			return fmt.Errorf("error parsing STL file: %w", err)
		}
	} else {
		d, err := infoPlate.dimensions(cmd)
		if err != nil {
			return err
		}
		solid = plate.Build(d)
		model = solid.Model
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("Plate Information")
	fmt.Println("=================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	if solid != nil {
		fmt.Printf("Plate: %s\n", solid.Dimensions)
	}
	fmt.Println()

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %s\n\n", analysis.FormatMeasurement(result.SurfaceArea, "mm²"))

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Length (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
	fmt.Printf("  Width (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
	fmt.Printf("  Thickness (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, ""))
	fmt.Printf("  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))
	fmt.Printf("  Volume: %s\n", analysis.FormatMeasurement(result.Volume, "mm³"))
	fmt.Printf("  Bounding Volume: %s\n\n", analysis.FormatMeasurement(result.BoundsVolume, "mm³"))

	if result.EdgeCount > 0 {
		fmt.Println("Edge Lengths:")
		fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
		fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
		fmt.Printf("  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))
	}

	if solid != nil {
		hole, err := analysis.MeasureHole(solid)
		if err != nil {
			return err
		}
		fmt.Println()
		if hole == nil {
			fmt.Println("Hole: none")
		} else {
			fmt.Println("Hole:")
			fmt.Printf("  Diameter: %s\n", analysis.FormatMeasurement(hole.Diameter, ""))
			fmt.Printf("  Center: %s\n", analysis.FormatVector(hole.Center))
			fmt.Printf("  Through: %s\n", yesNo(hole.Through))
			if !solid.Dimensions.HoleFits() {
				fmt.Println("  Warning: hole is wider than the plate")
			}
		}
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
