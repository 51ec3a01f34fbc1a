package generator

import (
	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/scene"
)

const (
	distortFilterID  = "distortFilter"
	noiseFilterID    = "noiseFilter"
	shadowFilterID   = "shadow"
	texturedFilterID = "filterTextured"
)

func distortFilter() scene.Filter {
	return scene.Filter{
		ID: distortFilterID,
		Primitives: []scene.Primitive{
			scene.Fe("feTurbulence", "type", "fractalNoise", "baseFrequency", "0.05", "numOctaves", "10", "result", "turbulence"),
			scene.Fe("feDisplacementMap", "in2", "turbulence", "in", "SourceGraphic", "scale", "100"),
		},
	}
}

func noiseFilter() scene.Filter {
	return scene.Filter{
		ID: noiseFilterID,
		Primitives: []scene.Primitive{
			scene.Fe("feTurbulence", "type", "fractalNoise", "baseFrequency", "0.8", "numOctaves", "10", "result", "turbulence"),
			scene.Fe("feComposite", "operator", "in", "in", "turbulence", "in2", "SourceAlpha", "result", "composite"),
			scene.Fe("feColorMatrix", "in", "composite", "type", "luminanceToAlpha"),
			scene.Fe("feBlend", "in", "SourceGraphic", "in2", "composite", "mode", "multiply"),
		},
	}
}

// shadowFilter blurs the alpha of the source and floods it with color. A
// non-zero dy shifts the blur vertically before flooding.
func shadowFilter(s config.Shadow, color string, dy float64) scene.Filter {
	prims := []scene.Primitive{
		scene.Fe("feGaussianBlur", "in", "SourceAlpha", "stdDeviation", num(s.Blurriness), "result", "blur"),
	}
	in2 := "blur"
	if dy != 0 {
		prims = append(prims, scene.Fe("feOffset", "in", "blur", "dx", "0", "dy", num(dy), "result", "offsetBlur"))
		in2 = "offsetBlur"
	}
	prims = append(prims,
		scene.Fe("feFlood", "flood-color", color, "flood-opacity", num(s.Opacity), "result", "floodShadow"),
		scene.Fe("feComposite", "in", "floodShadow", "in2", in2, "operator", "in", "result", "compositeShadow"),
	)

	return scene.Filter{
		ID:         shadowFilterID,
		X:          "-50%",
		Y:          "-50%",
		Width:      "200%",
		Height:     "200%",
		Primitives: prims,
	}
}

// pointLight places a light at pixel position (x, y) and height z.
func pointLight(x, y, z float64) scene.Primitive {
	return scene.Fe("fePointLight", "x", num(x), "y", num(y), "z", num(z))
}

// texturedFilter lights a turbulence height map with light and multiplies
// the result into the source graphic.
func texturedFilter(id string, t config.Texture, lighting string, light scene.Primitive) scene.Filter {
	return scene.Filter{
		ID: id,
		Primitives: []scene.Primitive{
			scene.Fe("feTurbulence", "type", t.TextureType, "baseFrequency", num(t.BaseFrequency), "numOctaves", num(float64(t.NumOctaves)), "result", "turbulence"),
			scene.Fe("feDiffuseLighting", "in", "turbulence", "surfaceScale", num(t.SurfaceScale), "diffuseConstant", num(t.DiffuseConstant), "lighting-color", lighting, "result", "highlight").With(light),
			scene.Fe("feComposite", "operator", "in", "in", "highlight", "in2", "SourceAlpha", "result", "highlightApplied"),
			scene.Fe("feBlend", "in", "SourceGraphic", "in2", "highlightApplied", "mode", "multiply"),
		},
	}
}

// addNoise overlays the full canvas with a translucent palette color seen
// through noiseFilter. Draws one palette color.
func addNoise(sc *scene.Scene, in Input) error {
	c, err := in.Rand.Choice(in.Palette)
	if err != nil {
		return err
	}
	color, ok := checkColor(sc, "noise", c)
	if !ok {
		return nil
	}

	sc.AddFilter(noiseFilter())
	rect := scene.Rect(0, 0, float64(sc.Width), float64(sc.Height), color)
	rect.FillOpacity = 0.2
	rect.Filter = noiseFilterID
	sc.Add(rect)
	return nil
}
