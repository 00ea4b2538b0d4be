package mtxt

import "github.com/tinne26/mtxt/core"

// Lays out the text with the renderer's configuration and align,
// passing each glyph to fn. Non default aligns require an additional
// measuring pass, which makes the same line breaks as the layout pass.
func (self *Renderer) layout(text string, x, y float32, maxLineWidth float32, fn func(PositionedGlyph)) TextDimensions {
	self.configureRun(maxLineWidth)

	// determine text origin and line shifts
	self.lineShifts = self.lineShifts[ : 0]
	if self.align.needsMeasuring() {
		dims := self.run.Run(text, nil)
		for _, line := range dims.Lines {
			self.lineShifts = append(self.lineShifts, self.align.lineShift(line.Width))
		}
		y = self.align.firstBaseline(y, dims)
	}

	// layout pass
	rotation := self.rotation
	sin, cos := sincos32(rotation)
	dims := self.run.Run(text, func(placement glyphPlacement) {
		ox := x
		if placement.line < len(self.lineShifts) {
			ox += self.lineShifts[placement.line]
		}
		fn(self.run.positionGlyph(placement, ox, y, rotation, sin, cos))
	})
	self.lastLines = append(self.lastLines[ : 0], dims.Lines...)
	return dims
}

func (self *Renderer) defaultDrawFunc(target core.Target, glyph PositionedGlyph) {
	mask := self.Advanced().LoadMask(glyph)
	if mask == nil { return }
	self.drawMask(target, mask, glyph)
}
