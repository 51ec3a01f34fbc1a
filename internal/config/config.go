// Package config turns a flat preset record into typed, defaulted and
// validated settings for one generation run.
package config

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/genart/internal/geometry"
	"github.com/ivlev/genart/internal/palette"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid configuration")

// Module names accepted by MODULE.
const (
	ModuleBubbles     = "Bubbles"
	ModuleFilters     = "Filters"
	ModuleWaves       = "Waves"
	ModuleRadialWaves = "Radial Waves"
	ModuleSplotches   = "Splotches"
)

// Modules lists every module name in menu order.
var Modules = []string{ModuleBubbles, ModuleFilters, ModuleWaves, ModuleRadialWaves, ModuleSplotches}

// Config is the full, immutable input of a run.
type Config struct {
	General   General
	Bubbles   Bubbles
	Filters   Filters
	Waves     Waves
	Splotches Splotches

	OutputPath   string
	Workers      int
	DumpScene    bool
	Stamp        bool
	ShowStats    bool
	BuildVersion string
}

// General holds the settings shared by every module.
type General struct {
	Seed              int64   `yaml:"SEED"`
	Width             int     `yaml:"W"`
	Height            int     `yaml:"H"`
	ColorScheme       string  `yaml:"COLOR_SCHEME"`
	HasBackground     bool    `yaml:"HAS_BACKGROUND"`
	BackgroundColor   string  `yaml:"BACKGROUND_COLOR"`
	IsAnimated        bool    `yaml:"IS_ANIMATED"`
	RepeatAnimation   bool    `yaml:"REPEAT_ANIMATION"`
	AnimationDuration float64 `yaml:"ANIMATION_DURATION"`
	Module            string  `yaml:"MODULE"`
}

// Fill selects between one fixed color and palette picks.
type Fill struct {
	SingleColor bool   `yaml:"SINGLE_COLOR"`
	FillColor   string `yaml:"FILL_COLOR"`
}

// Drift bounds a random travel distance in percent of the canvas.
type Drift struct {
	MinX float64 `yaml:"MIN_X_DISTANCE_PERC"`
	MaxX float64 `yaml:"MAX_X_DISTANCE_PERC"`
	MinY float64 `yaml:"MIN_Y_DISTANCE_PERC"`
	MaxY float64 `yaml:"MAX_Y_DISTANCE_PERC"`
}

// Shadow configures the blurred drop shadow of waves and splotches.
type Shadow struct {
	HasShadow     bool    `yaml:"HAS_SHADOW"`
	Complementary bool    `yaml:"SHADOW_COLOR_COMPLEMENTARY"`
	Color         string  `yaml:"SHADOW_COLOR"`
	Blurriness    float64 `yaml:"SHADOW_BLURRINESS"`
	Opacity       float64 `yaml:"SHADOW_OPACITY"`
	OffsetX       float64 `yaml:"SHADOW_OFFSET_X"`
	OffsetY       float64 `yaml:"SHADOW_OFFSET_Y"`
}

// Fade darkens or lightens shapes along their index.
type Fade struct {
	Enabled       bool    `yaml:"ADD_FADING_EFFECT"`
	Invert        bool    `yaml:"INVERT_FADE"`
	MinLuminosity float64 `yaml:"MIN_LUMINOSITY"`
	MaxLuminosity float64 `yaml:"MAX_LUMINOSITY"`
}

// Luminosity returns the fade lightness of shape i out of n.
func (f Fade) Luminosity(i, n int) float64 {
	l := f.MaxLuminosity - float64(i)*(f.MaxLuminosity-f.MinLuminosity)/float64(n)
	if f.Invert {
		return l
	}
	return 1 - l
}

// Texture configures the turbulence and diffuse lighting filter.
type Texture struct {
	TextureType     string  `yaml:"TEXTURE_TYPE"`
	BaseFrequency   float64 `yaml:"BASE_FREQUENCY"`
	NumOctaves      int     `yaml:"NUM_OCTAVES"`
	SurfaceScale    float64 `yaml:"SURFACE_SCALE"`
	DiffuseConstant float64 `yaml:"DIFFUSE_CONSTANT"`
	LightingColor   string  `yaml:"LIGHTING_COLOR_INPUT"`
}

// Bubbles configures the Bubbles module.
type Bubbles struct {
	Count       int     `yaml:"NUMBER_OF_BUBBLES"`
	IsDistorted bool    `yaml:"IS_DISTORTED"`
	HasNoise    bool    `yaml:"HAS_NOISE"`
	MinRadius   float64 `yaml:"MIN_RADIUS"`
	MaxRadius   float64 `yaml:"MAX_RADIUS"`
	HasGradient bool    `yaml:"HAS_GRADIENT"`

	Fill  `yaml:",inline"`
	Drift `yaml:",inline"`
}

// Filters configures the Filters module.
type Filters struct {
	Shape           string  `yaml:"SHAPE"`
	ShapeDimensions float64 `yaml:"SHAPE_DIMENSIONS"`
	MinXPerc        float64 `yaml:"MIN_X_PERC"`
	MaxXPerc        float64 `yaml:"MAX_X_PERC"`
	MinYPerc        float64 `yaml:"MIN_Y_PERC"`
	MaxYPerc        float64 `yaml:"MAX_Y_PERC"`
	MinZ            float64 `yaml:"MIN_Z"`
	MaxZ            float64 `yaml:"MAX_Z"`

	Texture `yaml:",inline"`
	Fill    `yaml:",inline"`
}

// Waves configures the Waves module.
type Waves struct {
	Count                  int     `yaml:"NUMBER_OF_WAVES"`
	HorizonY               float64 `yaml:"HORIZON_Y"`
	LastWaveY              float64 `yaml:"LAST_WAVE_Y"`
	SpacingType            string  `yaml:"SPACING_TYPE"`
	SpacingRandomness      float64 `yaml:"WAVE_SPACING_RANDOMNESS"`
	PointsMin              int     `yaml:"NUMBER_OF_WAVE_POINTS_MIN"`
	PointsMax              int     `yaml:"NUMBER_OF_WAVE_POINTS_MAX"`
	HeightFactor           float64 `yaml:"WAVE_HEIGHT_FACTOR"`
	FirstPointStartMax     float64 `yaml:"FIRST_POINT_START_MAX"`
	PointSpacingRandomness float64 `yaml:"WAVE_POINT_SPACING_RANDOMNESS"`
	ControlArmLength       float64 `yaml:"CONTROL_ARM_LENGTH"`
	HasNoise               bool    `yaml:"HAS_NOISE"`
	AnimationStrength      float64 `yaml:"ANIMATION_STRENGTH"`

	Fill   `yaml:",inline"`
	Fade   `yaml:",inline"`
	Shadow `yaml:",inline"`
}

// Splotches configures the Splotches module.
type Splotches struct {
	Count                  int     `yaml:"NUMBER_OF_SPLOTCHES"`
	SizeMin                float64 `yaml:"SPLOTCH_SIZE_MIN"`
	SizeMax                float64 `yaml:"SPLOTCH_SIZE_MAX"`
	PointsMin              int     `yaml:"NUMBER_OF_SPLOTCH_POINTS_MIN"`
	PointsMax              int     `yaml:"NUMBER_OF_SPLOTCH_POINTS_MAX"`
	PointSpacingRandomness float64 `yaml:"SPLOTCH_POINT_SPACING_RANDOMNESS"`
	PointRadialRandomness  float64 `yaml:"SPLOTCH_POINT_RADIAL_RANDOMNESS"`
	ControlArmLength       float64 `yaml:"CONTROL_ARM_LENGTH"`
	HasNoise               bool    `yaml:"HAS_NOISE"`

	PointsAnimated         bool    `yaml:"SPLOTCH_POINTS_ANIMATED"`
	PointAnimationDuration float64 `yaml:"SPLOTCH_POINT_ANIMATION_DURATION"`
	PointAnimationStrength float64 `yaml:"SPLOTCH_POINT_ANIMATION_STRENGTH"`
	Translate              bool    `yaml:"SPLOTCHES_TRANSLATE"`
	TranslationDuration    float64 `yaml:"SPLOTCH_TRANSLATION_DURATION"`
	Rotate                 bool    `yaml:"SPLOTCHES_ROTATE"`
	MinRotationDuration    float64 `yaml:"MIN_SPLOTCH_ROTATION_DURATION"`
	MaxRotationDuration    float64 `yaml:"MAX_SPLOTCH_ROTATION_DURATION"`

	// SPLOTCH_TEXTURED reuses the texture keys of the Filters module.
	Textured   bool    `yaml:"SPLOTCH_TEXTURED"`
	LightXPerc float64 `yaml:"LIGHT_X_PERC"`
	LightYPerc float64 `yaml:"LIGHT_Y_PERC"`
	LightZ     float64 `yaml:"LIGHT_Z"`
	SizeFade   bool    `yaml:"SPLOTCH_SIZE_FADE"`

	Fill    `yaml:",inline"`
	Shadow  `yaml:",inline"`
	Drift   `yaml:",inline"`
	Texture `yaml:",inline"`
	Fade    `yaml:",inline"`
}

// Default returns the configuration used for keys a record leaves out.
func Default() *Config {
	texture := Texture{
		TextureType:     "fractalNoise",
		BaseFrequency:   0.05,
		NumOctaves:      20,
		SurfaceScale:    20,
		DiffuseConstant: 1,
		LightingColor:   "#fff",
	}
	shadow := Shadow{
		Color:      "#000",
		Blurriness: 20,
		Opacity:    0.2,
		OffsetX:    2,
		OffsetY:    2,
	}
	drift := Drift{MinX: 0, MaxX: 0, MinY: 4, MaxY: 20}

	return &Config{
		General: General{
			Seed:              3,
			Width:             600,
			Height:            600,
			ColorScheme:       "Pastel1",
			HasBackground:     true,
			BackgroundColor:   "#ffffff",
			IsAnimated:        true,
			RepeatAnimation:   true,
			AnimationDuration: 5,
			Module:            ModuleWaves,
		},
		Bubbles: Bubbles{
			Count:       20,
			IsDistorted: true,
			MinRadius:   5,
			MaxRadius:   30,
			HasGradient: true,
			Fill:        Fill{SingleColor: false, FillColor: "#D412BC"},
			Drift:       drift,
		},
		Filters: Filters{
			Shape:           "Circle",
			ShapeDimensions: 80,
			Texture:         texture,
			Fill:            Fill{SingleColor: true, FillColor: "#D412BC"},
			MinXPerc:        10,
			MaxXPerc:        90,
			MinYPerc:        10,
			MaxYPerc:        10,
			MinZ:            5,
			MaxZ:            500,
		},
		Waves: Waves{
			Count:             30,
			HorizonY:          15,
			LastWaveY:         80,
			SpacingType:       "Logarithmic",
			PointsMin:         2,
			PointsMax:         6,
			HeightFactor:      15,
			ControlArmLength:  0.2,
			Fill:              Fill{SingleColor: true, FillColor: "#FF4800"},
			HasNoise:          true,
			Fade:              Fade{Enabled: true, MinLuminosity: 1, MaxLuminosity: 0.2},
			Shadow:            shadow,
			AnimationStrength: 0.15,
		},
		Splotches: Splotches{
			Count:                  20,
			SizeMin:                5,
			SizeMax:                30,
			PointsMin:              5,
			PointsMax:              10,
			PointSpacingRandomness: 1,
			PointRadialRandomness:  5,
			ControlArmLength:       0.2,
			Fill:                   Fill{SingleColor: true, FillColor: "#FF4800"},
			HasNoise:               true,
			Shadow:                 shadow,
			PointsAnimated:         true,
			PointAnimationDuration: 5,
			PointAnimationStrength: 0.25,
			Translate:              true,
			TranslationDuration:    5,
			Drift:                  drift,
			Rotate:                 true,
			MinRotationDuration:    5,
			MaxRotationDuration:    5,
			Texture:                texture,
			LightXPerc:             50,
			LightYPerc:             0,
			LightZ:                 200,
			Fade:                   Fade{MinLuminosity: 1, MaxLuminosity: 0.2},
		},
		Workers: 1,
	}
}

// Load decodes rec over the defaults and validates the result.
func Load(rec Record) (*Config, error) {
	cfg := Default()

	data, err := yaml.Marshal(map[string]any(rec))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	sections := []any{&cfg.General, &cfg.Bubbles, &cfg.Filters, &cfg.Waves, &cfg.Splotches}
	for _, s := range sections {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the general settings and those of the selected module.
func (c *Config) Validate() error {
	g := c.General
	if g.Width <= 0 || g.Height <= 0 {
		return invalid("canvas size must be positive, got %dx%d", g.Width, g.Height)
	}
	if g.AnimationDuration < 0 {
		return invalid("ANIMATION_DURATION must not be negative")
	}
	if _, err := palette.Lookup(g.ColorScheme); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch g.Module {
	case ModuleBubbles:
		return c.Bubbles.validate()
	case ModuleFilters:
		return c.Filters.validate()
	case ModuleWaves:
		return c.Waves.validate()
	case ModuleSplotches:
		return c.Splotches.validate()
	case ModuleRadialWaves:
		return nil
	default:
		return invalid("unknown MODULE %q", g.Module)
	}
}

func (b Bubbles) validate() error {
	if b.Count < 0 {
		return invalid("NUMBER_OF_BUBBLES must not be negative")
	}
	if b.MinRadius > b.MaxRadius {
		return invalid("MIN_RADIUS %v exceeds MAX_RADIUS %v", b.MinRadius, b.MaxRadius)
	}
	return nil
}

func (f Filters) validate() error {
	if !slices.Contains([]string{"Circle", "Square"}, f.Shape) {
		return invalid("unknown SHAPE %q", f.Shape)
	}
	return f.Texture.validate()
}

func (t Texture) validate() error {
	if !slices.Contains([]string{"fractalNoise", "turbulence"}, t.TextureType) {
		return invalid("unknown TEXTURE_TYPE %q", t.TextureType)
	}
	if t.NumOctaves < 0 {
		return invalid("NUM_OCTAVES must not be negative")
	}
	return nil
}

func (w Waves) validate() error {
	if w.Count < 0 {
		return invalid("NUMBER_OF_WAVES must not be negative")
	}
	if w.PointsMin < 1 || w.PointsMin > w.PointsMax {
		return invalid("wave points must satisfy 1 <= MIN <= MAX, got %d..%d", w.PointsMin, w.PointsMax)
	}
	switch w.SpacingType {
	case "Linear":
	case "Logarithmic":
		if w.HorizonY <= 0 || w.LastWaveY <= 0 {
			return fmt.Errorf("%w: logarithmic spacing: %w", ErrInvalid, geometry.ErrNonPositiveBound)
		}
	default:
		return invalid("unknown SPACING_TYPE %q", w.SpacingType)
	}
	if err := w.Fade.validate(); err != nil {
		return err
	}
	return w.Shadow.validate()
}

func (s Splotches) validate() error {
	if s.Count < 0 {
		return invalid("NUMBER_OF_SPLOTCHES must not be negative")
	}
	if s.SizeMin > s.SizeMax {
		return invalid("SPLOTCH_SIZE_MIN %v exceeds SPLOTCH_SIZE_MAX %v", s.SizeMin, s.SizeMax)
	}
	if s.PointsMin < 2 || s.PointsMin > s.PointsMax {
		return invalid("splotch points must satisfy 2 <= MIN <= MAX, got %d..%d", s.PointsMin, s.PointsMax)
	}
	if s.PointAnimationDuration < 0 || s.TranslationDuration < 0 || s.MinRotationDuration < 0 {
		return invalid("splotch durations must not be negative")
	}
	if s.MinRotationDuration > s.MaxRotationDuration {
		return invalid("MIN_SPLOTCH_ROTATION_DURATION exceeds MAX_SPLOTCH_ROTATION_DURATION")
	}
	if s.Textured {
		if err := s.Texture.validate(); err != nil {
			return err
		}
	}
	if err := s.Fade.validate(); err != nil {
		return err
	}
	return s.Shadow.validate()
}

func (f Fade) validate() error {
	if !f.Enabled {
		return nil
	}
	for _, l := range []float64{f.MinLuminosity, f.MaxLuminosity} {
		if l < 0 || l > 1 {
			return invalid("luminosity %v outside [0, 1]", l)
		}
	}
	return nil
}

func (s Shadow) validate() error {
	if !s.HasShadow {
		return nil
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return invalid("SHADOW_OPACITY %v outside [0, 1]", s.Opacity)
	}
	if s.Blurriness < 0 {
		return invalid("SHADOW_BLURRINESS must not be negative")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
