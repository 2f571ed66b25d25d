package flash

import "image/color"

// ColorPolicy decides how gradient stops are represented for the target
// renderer. It is picked once when the engine is built.
type ColorPolicy interface {
	Name() string
	// Stops returns the start and end stop for c as RGBA floats in [0,1].
	Stops(c color.RGBA) (start, end [4]float32)
	// Straight reports whether stops carry straight alpha and must be
	// premultiplied after interpolation.
	Straight() bool
}

// ExtendedColorPolicy keeps full float precision and straight alpha so the
// transparent stop still carries the flash hue. Interpolation happens before
// premultiplication, which avoids banding at full saturation.
type ExtendedColorPolicy struct{}

func (ExtendedColorPolicy) Name() string   { return "extended" }
func (ExtendedColorPolicy) Straight() bool { return true }

func (ExtendedColorPolicy) Stops(c color.RGBA) (start, end [4]float32) {
	r, g, b := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
	return [4]float32{r, g, b, 0}, [4]float32{r, g, b, 1}
}

// StandardColorPolicy uses 8-bit premultiplied stops.
type StandardColorPolicy struct{}

func (StandardColorPolicy) Name() string   { return "standard" }
func (StandardColorPolicy) Straight() bool { return false }

func (StandardColorPolicy) Stops(c color.RGBA) (start, end [4]float32) {
	s := color.RGBAModel.Convert(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0}).(color.RGBA)
	e := color.RGBAModel.Convert(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}).(color.RGBA)
	return rgbaFloats(s), rgbaFloats(e)
}

// SelectColorPolicy returns the extended policy when the renderer can use
// float stops, the 8-bit fallback otherwise.
func SelectColorPolicy(extended bool) ColorPolicy {
	if extended {
		return ExtendedColorPolicy{}
	}
	return StandardColorPolicy{}
}

func rgbaFloats(c color.RGBA) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
