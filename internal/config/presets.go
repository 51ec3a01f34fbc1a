package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrPresetNotFound indicates a preset name missing from the loaded set.
var ErrPresetNotFound = errors.New("config: preset not found")

//go:embed presets.yaml
var defaultPresets []byte

// Presets is an ordered list of preset records.
type Presets []Record

// ParsePresets decodes a YAML list of records.
func ParsePresets(data []byte) (Presets, error) {
	var ps Presets
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("%w: presets: %v", ErrInvalid, err)
	}
	for i, p := range ps {
		if p.Name() == "" {
			return nil, fmt.Errorf("%w: preset %d has no name", ErrInvalid, i)
		}
	}
	return ps, nil
}

// LoadPresets reads a preset file.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePresets(data)
}

// DefaultPresets returns the presets shipped with the binary.
func DefaultPresets() Presets {
	ps, err := ParsePresets(defaultPresets)
	if err != nil {
		panic(err)
	}
	return ps
}

// Find returns a copy of the preset called name.
func (ps Presets) Find(name string) (Record, error) {
	for _, p := range ps {
		if p.Name() == name {
			return p.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

// Names lists preset names in file order.
func (ps Presets) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name()
	}
	return names
}
