package mtxt

import "math"

import "github.com/tinne26/mtxt/core"
import "github.com/tinne26/mtxt/markup"

// This type exists only for documentation and structuring purposes,
// acting as a [gateway] to advanced renderer functions and configurations
// that most users rarely need to touch.
//
// In general, this type is used through method chaining:
//   renderer.Advanced().SetDPIScale(2.0)
//
// [gateway]: https://pkg.go.dev/github.com/tinne26/mtxt#Renderer
type RendererAdvanced Renderer

// Sets a custom drawing function for the renderer. The function
// receives each glyph right after it's laid out, and can use
// [RendererAdvanced.LoadMask]() and [RendererAdvanced.DrawMask]()
// to draw it. Can be set to nil to go back to the default drawing
// function.
func (self *RendererAdvanced) SetDrawFunc(fn func(core.Target, PositionedGlyph)) {
	self.drawFunc = fn
}

// Sets the DPI scale. Glyphs are rasterized at size*scale and all
// internal computations are done at that resolution, but inputs and
// outputs remain in unscaled units. Invalid values are ignored.
func (self *RendererAdvanced) SetDPIScale(scale float32) {
	if scale <= 0 || math.IsNaN(float64(scale)) || math.IsInf(float64(scale), 0) {
		return
	}
	self.dpiScale = scale
}

// Returns the DPI scale. See also [RendererAdvanced.SetDPIScale]().
func (self *RendererAdvanced) GetDPIScale() float32 {
	return self.dpiScale
}

// Lays out the text like [Renderer.Draw]() would, but passing the
// positioned glyphs to fn instead of drawing them.
func (self *RendererAdvanced) Layout(text string, x, y float32, fn func(PositionedGlyph)) TextDimensions {
	return self.LayoutWithWrap(text, x, y, NoWrap, fn)
}

// Like [RendererAdvanced.Layout](), but with line wrapping.
func (self *RendererAdvanced) LayoutWithWrap(text string, x, y float32, maxLineWidth float32, fn func(PositionedGlyph)) TextDimensions {
	if fn == nil { fn = func(PositionedGlyph) {} }
	return (*Renderer)(self).layout(text, x, y, maxLineWidth, fn)
}

// Loads the mask for the given glyph. Mostly needed to implement
// custom drawing functions for [RendererAdvanced.SetDrawFunc]().
func (self *RendererAdvanced) LoadMask(glyph PositionedGlyph) core.GlyphMask {
	return (*Renderer)(self).Strand().Mask(glyph.CodePoint, glyph.Size)
}

// Draws a mask into the given target, with the glyph's destination,
// color and rotation. Mostly needed to implement custom drawing
// functions for [RendererAdvanced.SetDrawFunc]().
func (self *RendererAdvanced) DrawMask(target core.Target, mask core.GlyphMask, glyph PositionedGlyph) {
	if mask == nil { return }
	(*Renderer)(self).drawMask(target, mask, glyph)
}

// Utility method to cache the glyphs of the given text in advance,
// masks included. Notice that if the cache is too small, not all
// glyphs might remain cached.
//
// This method is virtually never strictly necessary, but in some
// cases it may help smooth performance (e.g. pre-cache glyphs before
// switching to a new scene that uses a different font).
func (self *RendererAdvanced) Cache(text string) {
	renderer := (*Renderer)(self)
	renderer.configureRun(NoWrap)
	fontStrand, size := renderer.run.strand, renderer.run.size
	for _, codePoint := range markup.Strip(fontStrand.NormalizeText(text)) {
		if codePoint == '\n' { continue }
		resolved, _ := fontStrand.Glyph(codePoint, size)
		_ = fontStrand.Mask(resolved, size)
	}
}

// Utility method that returns false if the current font strand is
// missing any of the glyphs required to display the given text,
// which would be replaced by substitutes or fallbacks. Markup tags
// and line breaks are ignored.
func (self *RendererAdvanced) AllGlyphsAvailable(text string) bool {
	renderer := (*Renderer)(self)
	renderer.configureRun(NoWrap)
	fontStrand, size := renderer.run.strand, renderer.run.size
	for _, codePoint := range markup.Strip(fontStrand.NormalizeText(text)) {
		if codePoint == '\n' { continue }
		if !fontStrand.HasGlyph(codePoint, size) { return false }
	}
	return true
}

// Single-rune version of [RendererAdvanced.AllGlyphsAvailable]().
func (self *RendererAdvanced) IsRuneAvailable(codePoint rune) bool {
	renderer := (*Renderer)(self)
	renderer.configureRun(NoWrap)
	return renderer.run.strand.HasGlyph(codePoint, renderer.run.size)
}

// Returns the line records from the last measure or draw operation.
// The returned slice is reused by subsequent operations.
func (self *RendererAdvanced) LastLineRecords() []LineRecord {
	return self.lastLines
}
