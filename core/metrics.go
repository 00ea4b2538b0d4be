package core

// Glyph metrics as reported by a glyph source for a specific
// rasterization size. All values are in rasterizer pixels and
// don't include any renderer scaling.
//
// OffsetX is the horizontal distance from the pen position to the
// left side of the glyph box. OffsetY is the distance from the
// baseline up to the bottom of the glyph box, so descending glyphs
// have negative values. The top of the glyph box is at
// -(Height + OffsetY) relative to the baseline.
type GlyphMetrics struct {
	Advance float32
	Width   float32
	Height  float32
	OffsetX float32
	OffsetY float32
}

// Returns the maximum vertical extent of the glyph above the
// baseline, after applying the given vertical scale.
func (self GlyphMetrics) Ascent(scaleY float32) float32 {
	return (self.Height + self.OffsetY)*scaleY
}
