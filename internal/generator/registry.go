package generator

import (
	"fmt"

	"github.com/ivlev/genart/internal/config"
)

// New creates the generator for the specified module
func New(module string) (Generator, error) {
	switch module {
	case config.ModuleBubbles:
		return Bubbles{}, nil
	case config.ModuleFilters:
		return Filters{}, nil
	case config.ModuleWaves:
		return Waves{}, nil
	case config.ModuleSplotches:
		return Splotches{}, nil
	case config.ModuleRadialWaves:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, module)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}
}
