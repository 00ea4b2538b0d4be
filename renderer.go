package mtxt

import "image/color"

import "github.com/tinne26/mtxt/core"
import "github.com/tinne26/mtxt/markup"
import "github.com/tinne26/mtxt/strand"

// The [Renderer] is the stateful front end of mtxt. It holds the text
// configuration (font strand, size, scale, color, align...) and
// provides simple functions to draw and measure text with markup.
//
// Renderers have three groups of functions:
//  - Simple functions to adjust basic text properties like color, font,
//    align, scale...
//  - Simple functions to draw and measure text.
//  - Gateways to access more advanced or specific functionality.
//
// Gateways are auxiliary types that group specialized functions together
// and keep them out of the way for most workflows that won't require them.
// The following gateways are available:
//  - [Renderer.Twine](), to draw and measure [Twine] markup builders.
//  - [Renderer.Advanced](), for advanced options and configurations.
//
// Renderers are not safe for concurrent use. The package level [Measure]()
// and [Layout]() functions can be used concurrently instead.
type Renderer struct {
	strand *strand.Strand
	size uint16
	scale float32
	scaleAspect float32
	rotation float32
	align Align
	color markup.Color
	markupDisabled bool
	dpiScale float32

	blendMode core.BlendMode
	drawFunc func(core.Target, PositionedGlyph)

	// operation buffers
	run layoutRun
	lineShifts []float32
	lastLines []LineRecord
	cpu cpuDrawBuffers // empty unless -tags cputext
}

// Creates a new [Renderer] with the following defaults:
//  - Font strand set to [DefaultStrand]() at draw time.
//  - Size set to the strand's default size.
//  - Scale and scale aspect set to 1.
//  - Align set to (mtxt.[Left] | mtxt.[Baseline]).
//  - Color set to opaque white and markup enabled.
func NewRenderer() *Renderer {
	var renderer Renderer
	renderer.scale = 1
	renderer.scaleAspect = 1
	renderer.align = Left | Baseline
	renderer.color = markup.White
	renderer.dpiScale = 1
	return &renderer
}

// ---- gateways ----

// Gateway to [RendererTwine]. For context on gateways, see [Renderer].
func (self *Renderer) Twine() *RendererTwine {
	return (*RendererTwine)(self)
}

// Gateway to [RendererAdvanced]. For context on gateways, see [Renderer].
func (self *Renderer) Advanced() *RendererAdvanced {
	return (*RendererAdvanced)(self)
}

// ---- main getters / setters ----

// Sets the base text color. Markup color tags are applied on top of it,
// and popping all the color scopes restores it.
func (self *Renderer) SetColor(clr color.Color) {
	self.color = markup.ColorFrom(clr)
}

// Returns the base text color. See also [Renderer.SetColor]().
func (self *Renderer) GetColor() markup.Color {
	return self.color
}

// The renderer's [Align] defines how [Renderer.Draw]() and other operations
// interpret the coordinates passed to them:
//  - If the align is set to (mtxt.[Top] | mtxt.[Left]), coordinates will be
//    interpreted as the top-left corner of the box that the text occupies.
//  - If the align is set to (mtxt.[Center]), coordinates will be interpreted
//    as the center of the box that the text occupies.
//
// Aligns have a horizontal and a vertical component, so you can use
// [Renderer.SetAlign](mtxt.[Right]) and similar to change only one of the
// components at a time.
func (self *Renderer) SetAlign(align Align) {
	self.align = self.align.Adjusted(align)
}

// Returns the current [Align]. See also [Renderer.SetAlign]().
func (self *Renderer) GetAlign() Align {
	return self.align
}

// Sets the [core.BlendMode] to be applied on subsequent drawing operations.
// The default mode is always regular source over target alpha blending.
func (self *Renderer) SetBlendMode(mode core.BlendMode) {
	self.blendMode = mode
}

// Returns the current blend mode. See also [Renderer.SetBlendMode]().
func (self *Renderer) GetBlendMode() core.BlendMode {
	return self.blendMode
}

// Sets the rasterization size in pixels. Zero means the strand's
// default size.
func (self *Renderer) SetSize(size uint16) {
	self.size = size
}

// Returns the size set with [Renderer.SetSize]().
func (self *Renderer) GetSize() uint16 {
	return self.size
}

// Sets the uniform glyph scale. Unlike the size, scaling doesn't
// rasterize glyphs again, so it's cheap to animate.
func (self *Renderer) SetScale(scale float32) {
	self.scale = scale
}

// Returns the current text scale. See also [Renderer.SetScale]().
func (self *Renderer) GetScale() float32 {
	return self.scale
}

// Sets an additional horizontal scale factor, applied on top of the
// uniform scale.
func (self *Renderer) SetScaleAspect(aspect float32) {
	self.scaleAspect = aspect
}

// Sets the glyph rotation, in radians. Each glyph is rotated around
// its own center, while lines still advance horizontally.
func (self *Renderer) SetRotation(radians float32) {
	self.rotation = radians
}

// Enables or disables markup. When disabled, tags are still removed
// from the text, but they don't change the color.
func (self *Renderer) SetMarkupEnabled(enabled bool) {
	self.markupDisabled = !enabled
}

// Returns the currently active font [*strand.Strand]. If no strand
// has been set, [DefaultStrand]() is returned.
func (self *Renderer) Strand() *strand.Strand {
	if self.strand == nil { return DefaultStrand() }
	return self.strand
}

// Sets the font [*strand.Strand] to use. Nil strands will cause
// the method to panic.
func (self *Renderer) SetStrand(fontStrand *strand.Strand) {
	if fontStrand == nil { panic("nil strand") }
	self.strand = fontStrand
}

// ---- main operations ----

// Draws the given text with the current renderer's configuration.
// The drawing position depends on the given coordinates and the
// renderer's align, as specified on [Renderer.SetAlign]().
func (self *Renderer) Draw(target core.Target, text string, x, y float32) {
	self.DrawWithWrap(target, text, x, y, NoWrap)
}

// Like [Renderer.Draw](), but automatically wraps a line and jumps to
// the next one if the line width would exceed the given 'maxLineWidth'.
func (self *Renderer) DrawWithWrap(target core.Target, text string, x, y float32, maxLineWidth float32) {
	drawFunc := self.drawFunc
	if drawFunc == nil { drawFunc = self.defaultDrawFunc }
	self.layout(text, x, y, maxLineWidth, func(glyph PositionedGlyph) {
		drawFunc(target, glyph)
	})
}

// Returns the dimensions of the given text. See [TextDimensions]
// for the meaning of each field.
func (self *Renderer) Measure(text string) TextDimensions {
	return self.MeasureWithWrap(text, NoWrap)
}

// Like [Renderer.Measure](), but considering automatic line wrapping
// at the given 'maxLineWidth'.
func (self *Renderer) MeasureWithWrap(text string, maxLineWidth float32) TextDimensions {
	self.configureRun(maxLineWidth)
	dims := self.run.Run(text, nil)
	self.lastLines = append(self.lastLines[ : 0], dims.Lines...)
	return dims
}

func (self *Renderer) textParams(maxLineWidth float32) TextParams {
	return TextParams{
		Font: self.Strand(),
		FontSize: self.size,
		FontScale: self.scale,
		FontScaleAspect: self.scaleAspect,
		Rotation: self.rotation,
		Color: self.color,
		EnableMarkup: !self.markupDisabled,
		MaxLineWidth: maxLineWidth,
	}
}

func (self *Renderer) configureRun(maxLineWidth float32) {
	params := self.textParams(maxLineWidth)
	self.run.Configure(&params, self.dpiScale)
}
