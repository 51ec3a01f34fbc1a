package scene

import "fmt"

// Filter is a filter definition: an id, an optional filter region and an
// ordered chain of primitives.
type Filter struct {
	ID         string      `yaml:"id"`
	X          string      `yaml:"x,omitempty"`
	Y          string      `yaml:"y,omitempty"`
	Width      string      `yaml:"width,omitempty"`
	Height     string      `yaml:"height,omitempty"`
	Primitives []Primitive `yaml:"primitives"`
}

// Attr is an ordered attribute.
type Attr struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Primitive is a filter primitive element such as feTurbulence. Light
// sources are children of their lighting primitive and may be animated.
type Primitive struct {
	Name       string      `yaml:"name"`
	Attrs      []Attr      `yaml:"attrs,omitempty"`
	Children   []Primitive `yaml:"children,omitempty"`
	Animations []Animation `yaml:"animations,omitempty"`
}

// Fe creates a primitive from alternating attribute names and values.
func Fe(name string, kv ...string) Primitive {
	p := Primitive{Name: name}
	for i := 0; i+1 < len(kv); i += 2 {
		p.Attrs = append(p.Attrs, Attr{Name: kv[i], Value: kv[i+1]})
	}
	return p
}

// With appends child primitives.
func (p Primitive) With(children ...Primitive) Primitive {
	p.Children = append(p.Children, children...)
	return p
}

// Animate attaches animations.
func (p Primitive) Animate(animations ...Animation) Primitive {
	p.Animations = append(p.Animations, animations...)
	return p
}

// Attr returns the value of the named attribute.
func (p Primitive) Attr(name string) (string, bool) {
	for _, a := range p.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (p Primitive) validate() error {
	if p.Name == "" {
		return fmt.Errorf("primitive without name")
	}
	for _, a := range p.Animations {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
	}
	for _, c := range p.Children {
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}
