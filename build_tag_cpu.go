//go:build cputext

package mtxt

import "image"
import "image/color"
import "math"

import "golang.org/x/image/draw"
import "golang.org/x/image/math/f64"

import "github.com/tinne26/mtxt/core"

// Note: good reference for alpha compositing:
// https://developer.android.com/reference/android/graphics/PorterDuff.Mode#alpha-compositing-modes

const (
	BlendOver     core.BlendMode = core.BlendOver     // glyphs drawn over target (default mode)
	BlendReplace  core.BlendMode = core.BlendReplace  // glyph quad only (transparent pixels included!)
	BlendAdd      core.BlendMode = core.BlendAdd      // add colors (black adds nothing, white stays white)
	BlendSub      core.BlendMode = core.BlendSub      // subtract colors (black removes nothing) (alpha = target)
	BlendMultiply core.BlendMode = core.BlendMultiply // multiply % of glyph and target colors and MixOver
	BlendCut      core.BlendMode = core.BlendCut      // cut glyph shape hole based on alpha (cutout text)
	BlendHue      core.BlendMode = core.BlendHue      // keep highest alpha, blend hues proportionally
)

type cpuDrawBuffers struct {
	tinted *image.RGBA // mask colored with the glyph color
	composed *image.RGBA // tinted mask transformed to target space
}

// Draws the mask scaled to the glyph rect, rotated around the rect
// center and tinted with the glyph color.
func (self *Renderer) drawMask(target core.Target, mask core.GlyphMask, glyph PositionedGlyph) {
	rect := glyph.Rect
	srcRect := mask.Rect
	if rect.Width == 0 || rect.Height == 0 || srcRect.Empty() { return }

	tinted := self.cpu.tint(mask, glyph.Color)
	transform := maskTransform(srcRect, rect, glyph.Rotation)
	interpolator := draw.Interpolator(draw.ApproxBiLinear)
	if glyph.Rotation == 0 { interpolator = draw.NearestNeighbor }

	switch self.blendMode {
	case BlendOver:
		interpolator.Transform(target, transform, tinted, srcRect, draw.Over, nil)
	case BlendReplace:
		interpolator.Transform(target, transform, tinted, srcRect, draw.Src, nil)
	default:
		// transform to an intermediate buffer and compose manually
		dstRect := transformedBounds(rect, glyph.Rotation).Intersect(target.Bounds())
		if dstRect.Empty() { return }
		composed := self.cpu.composeBuffer(dstRect)
		interpolator.Transform(composed, transform, tinted, srcRect, draw.Src, nil)
		compose := getBlendFunc(self.blendMode)
		for y := dstRect.Min.Y; y < dstRect.Max.Y; y++ {
			for x := dstRect.Min.X; x < dstRect.Max.X; x++ {
				glyphRGBA := composed.RGBAAt(x, y)
				if glyphRGBA.A == 0 { continue }
				r, g, b, a := target.At(x, y).RGBA()
				target.Set(x, y, compose(rgba8ToFloat32(glyphRGBA), rgba32ToFloat32(r, g, b, a)))
			}
		}
	}
}

// Returns the mask tinted with the given color, premultiplied.
// The returned image is reused on subsequent calls.
func (self *cpuDrawBuffers) tint(mask *image.Alpha, clr color.Color) *image.RGBA {
	bounds := mask.Rect
	size := bounds.Dx()*bounds.Dy()*4
	if self.tinted == nil || cap(self.tinted.Pix) < size {
		self.tinted = image.NewRGBA(bounds)
	} else {
		self.tinted.Rect = bounds
		self.tinted.Stride = bounds.Dx()*4
		self.tinted.Pix = self.tinted.Pix[ : size]
	}

	r, g, b, a := clr.RGBA()
	width := bounds.Dx()
	for y := 0; y < bounds.Dy(); y++ {
		src := mask.Pix[y*mask.Stride : y*mask.Stride + width]
		dst := self.tinted.Pix[y*self.tinted.Stride : y*self.tinted.Stride + width*4]
		for x, value := range src {
			factor := uint32(value)*0x101 // 0xFFFF max
			dst[x*4 + 0] = uint8(((r*factor)/0xFFFF) >> 8)
			dst[x*4 + 1] = uint8(((g*factor)/0xFFFF) >> 8)
			dst[x*4 + 2] = uint8(((b*factor)/0xFFFF) >> 8)
			dst[x*4 + 3] = uint8(((a*factor)/0xFFFF) >> 8)
		}
	}
	return self.tinted
}

func (self *cpuDrawBuffers) composeBuffer(bounds image.Rectangle) *image.RGBA {
	size := bounds.Dx()*bounds.Dy()*4
	if self.composed == nil || cap(self.composed.Pix) < size {
		self.composed = image.NewRGBA(bounds)
		return self.composed
	}
	self.composed.Rect = bounds
	self.composed.Stride = bounds.Dx()*4
	self.composed.Pix = self.composed.Pix[ : size]
	clear(self.composed.Pix)
	return self.composed
}

// Affine transform from mask space to target space: scale the
// mask to the rect size, then rotate around the rect center.
func maskTransform(srcRect image.Rectangle, rect Rect, rotation float32) f64.Aff3 {
	sx := float64(rect.Width)/float64(srcRect.Dx())
	sy := float64(rect.Height)/float64(srcRect.Dy())
	sin, cos := math.Sincos(float64(rotation))
	cx, cy := rect.Center()
	// mask point (u, v) before rotation, relative to the rect center
	px := float64(rect.X) - float64(srcRect.Min.X)*sx - float64(cx)
	py := float64(rect.Y) - float64(srcRect.Min.Y)*sy - float64(cy)
	return f64.Aff3{
		cos*sx, -sin*sy, float64(cx) + px*cos - py*sin,
		sin*sx,  cos*sy, float64(cy) + px*sin + py*cos,
	}
}

func transformedBounds(rect Rect, rotation float32) image.Rectangle {
	corners := rotatedCorners(rect, rotation)
	minX, minY := corners[0][0], corners[0][1]
	maxX, maxY := minX, minY
	for _, corner := range corners[1 : ] {
		minX, maxX = min(minX, corner[0]), max(maxX, corner[0])
		minY, maxY = min(minY, corner[1]), max(maxY, corner[1])
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}
