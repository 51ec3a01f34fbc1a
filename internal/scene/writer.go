package scene

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EncodeScene writes sc to w as a YAML document.
func EncodeScene(w io.Writer, sc *Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeScene reads one YAML document from r and validates it, so a decoded
// scene can go straight to rendering.
func DecodeScene(r io.Reader) (*Scene, error) {
	var sc Scene
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// WriteScene dumps a valid scene to path.
func WriteScene(sc *Scene, path string) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeScene(f, sc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadScene loads and validates a scene dump.
func ReadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := DecodeScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}
