package strand

import "image"

import "github.com/tinne26/mtxt/core"

// A Source is the glyph provider behind a [Strand]. It maps a code point
// and a rasterization size (in pixels) to the glyph metrics and, when
// the glyph has to be drawn, to its coverage mask.
//
// Sources are expected to be safe for concurrent use. The values
// returned for a given (code point, size) pair must not change over
// time, as strands cache them aggressively.
type Source interface {
	// Key identifying the source in the glyph cache. Different sources
	// must use different keys.
	FontKey() uint64

	// The size at which the source looks best. Bitmap sources use this
	// as the scaling unit.
	NativeSize() uint16

	// Returns the glyph metrics for the given code point, or false if
	// the source can't provide the glyph.
	GlyphMetrics(codePoint rune, size uint16) (core.GlyphMetrics, bool)

	// Rasterizes the given glyph. The mask bounds must match the metrics
	// box: image.Rect(OffsetX, -(Height + OffsetY), OffsetX + Width, -OffsetY).
	// Blank glyphs may return nil.
	RasterizeGlyph(codePoint rune, size uint16) *image.Alpha
}
