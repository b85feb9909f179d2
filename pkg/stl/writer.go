package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/philipparndt/plateview/pkg/geometry"
)

// Format selects the STL encoding used by Write
type Format int

const (
	Binary Format = iota
	ASCII
)

// Save writes the model to filename in the given format
func Save(filename string, model *Model, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, model, format); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Write encodes the model to w in the given format
func Write(w io.Writer, model *Model, format Format) error {
	bw := bufio.NewWriter(w)

	var err error
	switch format {
	case ASCII:
		err = writeASCII(bw, model)
	default:
		err = writeBinary(bw, model)
	}
	if err != nil {
		return err
	}

	return bw.Flush()
}

// writeBinary writes the 80-byte header, the triangle count and one
// 50-byte record per triangle
func writeBinary(w io.Writer, model *Model) error {
	header := make([]byte, 80)
	copy(header, model.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if uint64(len(model.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(model.Triangles))
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	record := make([]byte, 50)
	for i, triangle := range model.Triangles {
		vectors := []geometry.Vector3{triangle.Normal, triangle.V1, triangle.V2, triangle.V3}
		for j, v := range vectors {
			offset := j * 12
			binary.LittleEndian.PutUint32(record[offset:], math.Float32bits(float32(v.X)))
			binary.LittleEndian.PutUint32(record[offset+4:], math.Float32bits(float32(v.Y)))
			binary.LittleEndian.PutUint32(record[offset+8:], math.Float32bits(float32(v.Z)))
		}
		// attribute byte count stays zero
		record[48], record[49] = 0, 0

		if _, err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return nil
}

func writeASCII(w io.Writer, model *Model) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", model.Name); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, t := range model.Triangles {
		_, err := fmt.Fprintf(w,
			"  facet normal %g %g %g\n    outer loop\n      vertex %g %g %g\n      vertex %g %g %g\n      vertex %g %g %g\n    endloop\n  endfacet\n",
			t.Normal.X, t.Normal.Y, t.Normal.Z,
			t.V1.X, t.V1.Y, t.V1.Z,
			t.V2.X, t.V2.Y, t.V2.Z,
			t.V3.X, t.V3.Y, t.V3.Z,
		)
		if err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if _, err := fmt.Fprintf(w, "endsolid %s\n", model.Name); err != nil {
		return fmt.Errorf("failed to write footer: %w", err)
	}

	return nil
}
