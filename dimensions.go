package mtxt

import "math"

import "github.com/tinne26/mtxt/core"
import "github.com/tinne26/mtxt/markup"

// Width and layout height of a single line, in unscaled units.
// The width doesn't include trailing spaces or tabs.
type LineRecord struct {
	Width float32
	Height float32
}

// Result of measuring or laying out some text. All values are in
// unscaled units.
//
// Drawing text at (x, y) covers the rectangle with top-left corner
// (x, y - OffsetY) and size (Width, Height).
type TextDimensions struct {
	Width float32 // max line width
	Height float32 // sum of line heights
	OffsetY float32 // max glyph extent above the first baseline
	Lines []LineRecord
}

// Returns the number of lines.
func (self TextDimensions) NumLines() int { return len(self.Lines) }

// Returns the rectangle covered by the text when drawn at (x, y).
func (self TextDimensions) Bounds(x, y float32) Rect {
	return Rect{ X: x, Y: y - self.OffsetY, Width: self.Width, Height: self.Height }
}

// Returns the offset from the text origin to the center of the text
// box, considering the given rotation.
func TextCenter(dims TextDimensions, rotation float32) (x, y float32) {
	sin, cos := math.Sincos(float64(rotation))
	halfW, halfH := float64(dims.Width)/2, float64(dims.Height)/2
	x = float32(halfW*cos + halfH*sin)
	y = float32(halfW*sin - halfH*cos)
	return x, y
}

type Rect struct {
	X, Y float32
	Width, Height float32
}

// Returns the center point of the rect.
func (self Rect) Center() (x, y float32) {
	return self.X + self.Width/2, self.Y + self.Height/2
}

// A glyph ready to be drawn.
type PositionedGlyph struct {
	CodePoint rune // after substitutions and fallbacks
	Size uint16 // rasterization size, needed to load the mask
	Rect Rect // destination, before rotation
	Color markup.Color
	Rotation float32 // radians, around the rect center
	Line int
}

// Returns the glyph destination rect before rotation, relative to the
// pen position, for the given scales. Values are in scaled units.
func glyphDest(metrics core.GlyphMetrics, scaleX, scaleY float32, sin, cos float32) (dx, dy, w, h float32) {
	ox := metrics.OffsetX*scaleX
	oy := metrics.OffsetY*scaleY
	h = metrics.Height*scaleY
	dx = ox*cos + (h + oy)*sin
	dy = ox*sin - (h + oy)*cos
	return dx, dy, metrics.Width*scaleX, h
}
