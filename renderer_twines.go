package mtxt

import "github.com/tinne26/mtxt/core"

// This type exists only for documentation and structuring purposes,
// acting as a [gateway] to [Twine] operations.
//
// In general, this type is used through method chaining:
//   renderer.Twine().Draw(canvas, twine, x, y)
//
// [gateway]: https://pkg.go.dev/github.com/tinne26/mtxt#Renderer
type RendererTwine Renderer

// Like [Renderer.Draw](), but accepting a twine instead of a string.
func (self *RendererTwine) Draw(target core.Target, twine Twine, x, y float32) {
	(*Renderer)(self).Draw(target, twine.String(), x, y)
}

// Like [Renderer.DrawWithWrap](), but accepting a twine instead of a string.
func (self *RendererTwine) DrawWithWrap(target core.Target, twine Twine, x, y float32, maxLineWidth float32) {
	(*Renderer)(self).DrawWithWrap(target, twine.String(), x, y, maxLineWidth)
}

// Like [Renderer.Measure](), but accepting a twine instead of a string.
func (self *RendererTwine) Measure(twine Twine) TextDimensions {
	return (*Renderer)(self).Measure(twine.String())
}

// Like [Renderer.MeasureWithWrap](), but accepting a twine instead of a string.
func (self *RendererTwine) MeasureWithWrap(twine Twine, maxLineWidth float32) TextDimensions {
	return (*Renderer)(self).MeasureWithWrap(twine.String(), maxLineWidth)
}

// Like [RendererAdvanced.Cache](), but accepting a twine instead of a string.
func (self *RendererTwine) Cache(twine Twine) {
	(*Renderer)(self).Advanced().Cache(twine.String())
}

// Like [RendererAdvanced.AllGlyphsAvailable](), but accepting a twine instead of a string.
func (self *RendererTwine) AllGlyphsAvailable(twine Twine) bool {
	return (*Renderer)(self).Advanced().AllGlyphsAvailable(twine.String())
}
