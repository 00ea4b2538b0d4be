//go:build cputext

package mtxt

import "image/color"

import "github.com/tinne26/mtxt/core"

// Blend functions take premultiplied glyph and target colors in
// [0, 1] and return the composed color.
type blendFunc = func(new, curr [4]float32) color.RGBA

func getBlendFunc(mode core.BlendMode) blendFunc {
	switch mode {
	case BlendOver: return blendOverFunc
	case BlendReplace: return replaceFunc
	case BlendAdd: return addFunc
	case BlendSub: return subFunc
	case BlendMultiply: return multiplyFunc
	case BlendCut: return cutFunc
	case BlendHue: return hueFunc
	default:
		panic("invalid blend mode")
	}
}

func blendOverFunc(new, curr [4]float32) color.RGBA {
	if new[3]  == 1.0 { return f32toRGBA(new)  }
	if new[3]  == 0.0 { return f32toRGBA(curr) }
	if curr[3] == 0.0 { return f32toRGBA(new)  }
	oma := 1.0 - new[3] // one minus alpha
	return color.RGBA {
		R: uint8((new[0] + curr[0]*oma)*255.0),
		G: uint8((new[1] + curr[1]*oma)*255.0),
		B: uint8((new[2] + curr[2]*oma)*255.0),
		A: uint8((new[3] + curr[3]*oma)*255.0),
	}
}

func replaceFunc(new, _ [4]float32) color.RGBA {
	return f32toRGBA(new)
}

func cutFunc(new, curr [4]float32) color.RGBA {
	newAlpha := new[3]
	if newAlpha == 0 { return f32toRGBA(curr) }
	alpha := max(curr[3] - newAlpha, 0)
	return color.RGBA {
		R: uint8(min(curr[0], alpha)*255.0),
		G: uint8(min(curr[1], alpha)*255.0),
		B: uint8(min(curr[2], alpha)*255.0),
		A: uint8(alpha*255.0),
	}
}

func hueFunc(new, curr [4]float32) color.RGBA {
	if new[3]  == 0 { return f32toRGBA(curr) }
	if curr[3] == 0 { return f32toRGBA(new) }

	// hue contribution is proportional to alpha.
	// if both alphas are equal, hue contributions are 50/50
	ta := new[3] + curr[3] // alpha sum (total)
	ma := max(new[3], curr[3]) // max alpha
	r := ((new[0] + curr[0])*ma)/ta
	g := ((new[1] + curr[1])*ma)/ta
	b := ((new[2] + curr[2])*ma)/ta
	return blendOverFunc([4]float32{r, g, b, ma}, curr)
}

func subFunc(new, curr [4]float32) color.RGBA {
	if new[3] == 0 { return f32toRGBA(curr) }
	return color.RGBA{
		R: uint8(max(curr[0] - new[0], 0)*255.0),
		G: uint8(max(curr[1] - new[1], 0)*255.0),
		B: uint8(max(curr[2] - new[2], 0)*255.0),
		A: uint8(curr[3]*255.0),
	}
}

func addFunc(new, curr [4]float32) color.RGBA {
	return color.RGBA{
		R: uint8(min(curr[0] + new[0], 1)*255.0),
		G: uint8(min(curr[1] + new[1], 1)*255.0),
		B: uint8(min(curr[2] + new[2], 1)*255.0),
		A: uint8(min(curr[3] + new[3], 1)*255.0),
	}
}

func multiplyFunc(new, curr [4]float32) color.RGBA {
	if curr[3] == 0 || new[3] == 0 { return color.RGBA{0, 0, 0, 0} }
	return color.RGBA{
		R: uint8(min(curr[0]*new[0], 1)*255.0),
		G: uint8(min(curr[1]*new[1], 1)*255.0),
		B: uint8(min(curr[2]*new[2], 1)*255.0),
		A: uint8(min(curr[3]*new[3], 1)*255.0),
	}
}

func f32toRGBA(rgba [4]float32) color.RGBA {
	return color.RGBA{
		R: uint8(rgba[0]*255.0),
		G: uint8(rgba[1]*255.0),
		B: uint8(rgba[2]*255.0),
		A: uint8(rgba[3]*255.0),
	}
}

func rgba8ToFloat32(rgba color.RGBA) [4]float32 {
	return [4]float32{
		float32(rgba.R)/255.0,
		float32(rgba.G)/255.0,
		float32(rgba.B)/255.0,
		float32(rgba.A)/255.0,
	}
}

func rgba32ToFloat32(r, g, b, a uint32) [4]float32 {
	return [4]float32{
		float32(r)/65535.0,
		float32(g)/65535.0,
		float32(b)/65535.0,
		float32(a)/65535.0,
	}
}
