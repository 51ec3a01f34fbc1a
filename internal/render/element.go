package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ivlev/genart/internal/geometry"
	"github.com/ivlev/genart/internal/scene"
)

func attr(name, value string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(`="`)
	xml.EscapeText(&b, []byte(value))
	b.WriteByte('"')
	return b.String()
}

func numAttr(name string, v float64) string {
	return attr(name, geometry.FormatNumber(v))
}

// writeElement writes <name attrs/> or, with animations or children, an open
// element containing them.
func writeElement(w io.Writer, name string, attrs []string, anims []scene.Animation, children func()) {
	fmt.Fprintf(w, "<%s %s", name, strings.Join(attrs, " "))
	if len(anims) == 0 && children == nil {
		io.WriteString(w, "/>\n")
		return
	}

	io.WriteString(w, ">\n")
	for _, a := range anims {
		writeAnimation(w, a)
	}
	if children != nil {
		children()
	}
	fmt.Fprintf(w, "</%s>\n", name)
}

func writeAnimation(w io.Writer, a scene.Animation) {
	attrs := []string{attr("attributeName", a.Attribute)}
	if a.Type != "" {
		attrs = append(attrs, attr("type", a.Type))
	}
	attrs = append(attrs, attr("dur", a.Dur()), attr("repeatCount", a.Repeat))

	if len(a.Values) > 0 {
		attrs = append(attrs, attr("values", a.ValuesAttr()))
		if len(a.KeyTimes) > 0 {
			attrs = append(attrs, attr("keyTimes", a.KeyTimesAttr()))
		}
		if mode := a.CalcMode(); mode != "" {
			attrs = append(attrs, attr("calcMode", mode), attr("keySplines", a.KeySplinesAttr()))
		}
	} else {
		attrs = append(attrs, attr("from", a.From), attr("to", a.To))
	}
	if a.Additive != "" {
		attrs = append(attrs, attr("additive", a.Additive))
	}

	writeElement(w, a.Element, attrs, nil, nil)
}
