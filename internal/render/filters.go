package render

import (
	"io"

	"github.com/ivlev/genart/internal/scene"
)

func writeFilter(w io.Writer, f scene.Filter) {
	attrs := []string{attr("id", f.ID)}
	for _, a := range []scene.Attr{{Name: "x", Value: f.X}, {Name: "y", Value: f.Y}, {Name: "width", Value: f.Width}, {Name: "height", Value: f.Height}} {
		if a.Value != "" {
			attrs = append(attrs, attr(a.Name, a.Value))
		}
	}

	writeElement(w, "filter", attrs, nil, func() {
		for _, p := range f.Primitives {
			writePrimitive(w, p)
		}
	})
}

func writePrimitive(w io.Writer, p scene.Primitive) {
	attrs := make([]string, len(p.Attrs))
	for i, a := range p.Attrs {
		attrs[i] = attr(a.Name, a.Value)
	}

	var children func()
	if len(p.Children) > 0 {
		children = func() {
			for _, c := range p.Children {
				writePrimitive(w, c)
			}
		}
	}
	writeElement(w, p.Name, attrs, p.Animations, children)
}
