package mtxt

import "math"
import "sync/atomic"

import "golang.org/x/image/font/basicfont"

import "github.com/tinne26/mtxt/strand"

var defaultStrand atomic.Pointer[strand.Strand]

// Returns the strand used when no font is given. Unless changed
// with [SetDefaultStrand](), this is a 7x13 fixed font strand from
// [basicfont.Face7x13].
func DefaultStrand() *strand.Strand {
	fontStrand := defaultStrand.Load()
	if fontStrand != nil { return fontStrand }
	fontStrand = strand.New(strand.NewFaceSource(basicfont.Face7x13))
	if defaultStrand.CompareAndSwap(nil, fontStrand) { return fontStrand }
	return defaultStrand.Load()
}

// Sets the strand used by [Measure](), [Layout]() and renderers when
// no strand is given. Passing nil restores the built-in default.
func SetDefaultStrand(fontStrand *strand.Strand) {
	defaultStrand.Store(fontStrand)
}

// Measures the given text. A nil font uses [DefaultStrand](), and a
// zero size uses the strand's default size. The max line width is in
// unscaled units, with [NoWrap] disabling line wrapping.
//
// Markup tags are interpreted and never measured. Empty text returns
// zero dimensions.
func Measure(text string, font *strand.Strand, size uint16, scaleX, scaleY, maxLineWidth float32) TextDimensions {
	params := DefaultTextParams()
	params.Font = font
	params.FontSize = size
	params.MaxLineWidth = maxLineWidth

	var run layoutRun
	run.Configure(&params, 1.0)
	run.scaleX, run.scaleY = scaleX, scaleY
	return run.Run(text, nil)
}

// Lays out the given text with the first line's baseline starting at
// (x, y), passing each visible glyph to fn in left to right, top to
// bottom order. The returned dimensions are always the same that
// [Measure]() returns for the same text and params.
//
// A nil fn is allowed, in which case the text is only measured.
func Layout(text string, x, y float32, params TextParams, fn func(PositionedGlyph)) TextDimensions {
	var run layoutRun
	run.Configure(&params, 1.0)
	if fn == nil { return run.Run(text, nil) }

	sin, cos := sincos32(params.Rotation)
	return run.Run(text, func(placement glyphPlacement) {
		fn(run.positionGlyph(placement, x, y, params.Rotation, sin, cos))
	})
}

// Converts a placement into a positioned glyph, with (x, y) being the
// first line's baseline origin in unscaled units.
func (self *layoutRun) positionGlyph(placement glyphPlacement, x, y float32, rotation, sin, cos float32) PositionedGlyph {
	dx, dy, w, h := glyphDest(placement.entry.metrics, self.scaleX, self.scaleY, sin, cos)
	return PositionedGlyph{
		CodePoint: placement.entry.codePoint,
		Size: self.size,
		Rect: Rect{
			X: x + (placement.penX + dx)/self.dpi,
			Y: y + (placement.penY + dy)/self.dpi,
			Width: w/self.dpi,
			Height: h/self.dpi,
		},
		Color: placement.entry.color,
		Rotation: rotation,
		Line: placement.line,
	}
}

func sincos32(angle float32) (sin, cos float32) {
	if angle == 0 { return 0, 1 }
	sin64, cos64 := math.Sincos(float64(angle))
	return float32(sin64), float32(cos64)
}
