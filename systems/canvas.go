package systems

import (
	"math"

	"github.com/automoto/camflash/assets"
	"github.com/automoto/camflash/flash"
	"github.com/hajimehoshi/ebiten/v2"
)

// shaderCanvas fills regions of dst with the flash shader.
type shaderCanvas struct {
	dst *ebiten.Image
}

func (c shaderCanvas) FillRect(r flash.Rect, s flash.Shader) {
	c.fill(r, 0, s)
}

func (c shaderCanvas) FillRoundRect(r flash.Rect, radius float64, s flash.Shader) {
	c.fill(r, radius, s)
}

func (c shaderCanvas) fill(r flash.Rect, radius float64, s flash.Shader) {
	if assets.FlashShader == nil || s.Gradient == nil {
		return
	}
	w, h := int(math.Ceil(r.W)), int(math.Ceil(r.H))
	if w <= 0 || h <= 0 {
		return
	}
	// The shader walks local pixels back into gradient space.
	toGradient := s.Matrix
	if !toGradient.IsInvertible() {
		return
	}
	toGradient.Invert()

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(r.X, r.Y)
	op.Uniforms = shaderUniforms(r, radius, s, toGradient)
	c.dst.DrawRectShader(w, h, assets.FlashShader, op)
}

func shaderUniforms(r flash.Rect, radius float64, s flash.Shader, toGradient ebiten.GeoM) map[string]any {
	g := s.Gradient
	straight := float32(0)
	if g.Straight {
		straight = 1
	}
	return map[string]any{
		"Matrix": []float32{
			float32(toGradient.Element(0, 0)), float32(toGradient.Element(0, 1)),
			float32(toGradient.Element(1, 0)), float32(toGradient.Element(1, 1)),
		},
		"Offset":       []float32{float32(toGradient.Element(0, 2)), float32(toGradient.Element(1, 2))},
		"Origin":       []float32{float32(r.X), float32(r.Y)},
		"Size":         []float32{float32(r.W), float32(r.H)},
		"CornerRadius": float32(radius),
		"Center":       []float32{float32(g.CenterX), float32(g.CenterY)},
		"Radius":       float32(g.Radius),
		"Stops":        []float32{float32(g.InnerStop), float32(g.OuterStop)},
		"ColorStart":   g.Start[:],
		"ColorEnd":     g.End[:],
		"Straight":     straight,
		"Alpha":        float32(s.Alpha) / 255,
	}
}
