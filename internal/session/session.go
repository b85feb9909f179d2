// Package session remembers the last configuration between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/plateview/pkg/plate"
)

// Version is written to every saved session
const Version = "1.0"

// FileName is the session file inside the user config directory
const FileName = "session.json"

// Data is the saved state of the configurator
type Data struct {
	Version          string           `json:"version"`
	Dimensions       plate.Dimensions `json:"dimensions"`
	Material         string           `json:"material"`
	SurfaceTreatment string           `json:"surfaceTreatment"`
	Quantity         int              `json:"quantity"`
	Wireframe        bool             `json:"wireframe,omitempty"`
}

// Default returns the state of a fresh start
func Default() Data {
	return Data{
		Version:          Version,
		Dimensions:       plate.DefaultDimensions(),
		Material:         "aluminum",
		SurfaceTreatment: "none",
		Quantity:         1,
	}
}

// DefaultPath returns the session file in the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "plateview", FileName), nil
}

// Load reads the session at path. A missing file yields the defaults.
func Load(path string) (Data, error) {
	data := Default()

	jsonData, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return data, fmt.Errorf("failed to read session file: %w", err)
	}

	if err := json.Unmarshal(jsonData, &data); err != nil {
		return Default(), fmt.Errorf("failed to parse session file: %w", err)
	}

	if data.Quantity < 1 {
		data.Quantity = 1
	}
	return data, nil
}

// Save writes the session to path, creating its directory
func Save(path string, data Data) error {
	data.Version = Version

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
