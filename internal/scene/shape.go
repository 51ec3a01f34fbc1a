package scene

// Kind is the SVG element a shape is drawn with.
type Kind string

const (
	KindCircle Kind = "circle"
	KindRect   Kind = "rect"
	KindPath   Kind = "path"
)

// Shape is one drawable element. Only the geometry fields of its Kind are
// meaningful.
type Shape struct {
	Kind Kind `yaml:"kind"`

	CX float64 `yaml:"cx,omitempty"`
	CY float64 `yaml:"cy,omitempty"`
	R  float64 `yaml:"r,omitempty"`

	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	D string `yaml:"d,omitempty"`

	Fill        string      `yaml:"fill"`
	FillOpacity float64     `yaml:"fill_opacity,omitempty"` // 0 leaves the attribute out
	Filter      string      `yaml:"filter,omitempty"`       // filter id, not url()
	Transform   string      `yaml:"transform,omitempty"`
	Animations  []Animation `yaml:"animations,omitempty"`
}

// Circle creates a circle shape.
func Circle(cx, cy, r float64, fill string) Shape {
	return Shape{Kind: KindCircle, CX: cx, CY: cy, R: r, Fill: fill}
}

// Rect creates a rectangle shape.
func Rect(x, y, width, height float64, fill string) Shape {
	return Shape{Kind: KindRect, X: x, Y: y, Width: width, Height: height, Fill: fill}
}

// Path creates a path shape from formatted path data.
func Path(d, fill string) Shape {
	return Shape{Kind: KindPath, D: d, Fill: fill}
}

// Animate attaches animations and returns the shape.
func (s Shape) Animate(animations ...Animation) Shape {
	s.Animations = append(s.Animations, animations...)
	return s
}

// Gradient is a linear gradient between two points given in percent of the
// shape's bounding box.
type Gradient struct {
	ID    string `yaml:"id"`
	X1    uint8  `yaml:"x1"`
	Y1    uint8  `yaml:"y1"`
	X2    uint8  `yaml:"x2"`
	Y2    uint8  `yaml:"y2"`
	Stops []Stop `yaml:"stops"`
}

// Stop is a gradient stop at Offset percent.
type Stop struct {
	Offset  uint8   `yaml:"offset"`
	Color   string  `yaml:"color"`
	Opacity float64 `yaml:"opacity"`
}
