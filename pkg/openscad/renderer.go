// Package openscad exports plates as OpenSCAD sources and renders them
// through the openscad binary.
package openscad

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/philipparndt/plateview/pkg/plate"
	"github.com/philipparndt/plateview/pkg/stl"
)

// ErrNotInstalled is returned when openscad is not on the PATH.
var ErrNotInstalled = errors.New("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a new OpenSCAD renderer
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
	}
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	absScadFile := scadFile
	if !filepath.IsAbs(scadFile) {
		absScadFile = filepath.Join(r.workDir, scadFile)
	}

	if _, err := exec.LookPath(r.binary); err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, r.binary, "-o", outputFile, absScadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		fmt.Fprintf(&errMsg, "failed to render %s: %v\n", scadFile, err)
		if stderr.Len() > 0 {
			errMsg.WriteString("stderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("stdout: ")
			errMsg.WriteString(stdout.String())
		}
		return errors.New(errMsg.String())
	}

	return nil
}

// RenderPlate writes the plate source into the work directory, renders it
// and parses the resulting mesh.
func (r *Renderer) RenderPlate(ctx context.Context, d plate.Dimensions) (*stl.Model, error) {
	scadFile := filepath.Join(r.workDir, "plate.scad")
	if err := WriteFile(scadFile, d); err != nil {
		return nil, err
	}

	outputFile := filepath.Join(r.workDir, "plate.stl")
	if err := r.RenderToSTL(ctx, scadFile, outputFile); err != nil {
		return nil, err
	}
	defer os.Remove(outputFile)

	return stl.Parse(outputFile)
}
