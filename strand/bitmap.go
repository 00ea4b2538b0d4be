package strand

import "image"

import "golang.org/x/image/draw"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font"

import "github.com/tinne26/mtxt/core"

// Returns the integer pixel box containing the given glyph bounds.
func pixelBox(bounds fixed.Rectangle26_6) image.Rectangle {
	return image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
}

func boxMetrics(box image.Rectangle, advance float32, scale int) core.GlyphMetrics {
	k := float32(scale)
	return core.GlyphMetrics{
		Advance: advance*k,
		Width: float32(box.Dx())*k,
		Height: float32(box.Dy())*k,
		OffsetX: float32(box.Min.X)*k,
		OffsetY: float32(-box.Max.Y)*k,
	}
}

func fixedToFloat32(value fixed.Int26_6) float32 {
	return float32(value)/64.0
}

func faceGlyphMetrics(face font.Face, codePoint rune, scale int) (core.GlyphMetrics, bool) {
	bounds, advance, ok := face.GlyphBounds(codePoint)
	if !ok { return core.GlyphMetrics{}, false }
	return boxMetrics(pixelBox(bounds), fixedToFloat32(advance), scale), true
}

func faceRasterizeGlyph(face font.Face, codePoint rune, scale int) *image.Alpha {
	bounds, _, ok := face.GlyphBounds(codePoint)
	if !ok { return nil }
	box := pixelBox(bounds)
	if box.Empty() { return nil }

	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, codePoint)
	if !ok || mask == nil { return nil }
	alpha := image.NewAlpha(box)
	draw.DrawMask(alpha, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
	return upscaleAlpha(alpha, scale)
}

// Nearest neighbor upscaling, keeping the origin in place.
func upscaleAlpha(src *image.Alpha, scale int) *image.Alpha {
	if scale <= 1 || src == nil { return src }
	b := src.Rect
	dst := image.NewAlpha(image.Rect(b.Min.X*scale, b.Min.Y*scale, b.Max.X*scale, b.Max.Y*scale))
	draw.NearestNeighbor.Scale(dst, dst.Rect, src, b, draw.Src, nil)
	return dst
}

// Converts a paletted bitmap mask (any non-zero value is ink) into
// a coverage mask.
func inkToCoverage(src *image.Alpha) *image.Alpha {
	if src == nil { return nil }
	dst := image.NewAlpha(src.Rect)
	width := src.Rect.Dx()
	for y := 0; y < src.Rect.Dy(); y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride + width]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride + width]
		for x, value := range srcRow {
			if value != 0 { dstRow[x] = 255 }
		}
	}
	return dst
}
