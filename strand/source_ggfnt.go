package strand

import "image"
import "sync"

import "github.com/tinne26/ggfnt"

import "github.com/tinne26/mtxt/core"

// Source for ggfnt pixel art fonts. Glyphs are always mapped with the
// font's default settings, taking the first glyph of each mapping group.
//
// Masks are converted to coverage: any non transparent palette index
// counts as ink, and the markup color is applied on top at draw time.
type GgfntSource struct {
	font *ggfnt.Font
	nativeSize uint16

	mutex sync.Mutex
	settings *ggfnt.SettingsCache
}

func NewGgfntSource(font *ggfnt.Font) *GgfntSource {
	if font == nil { panic("nil font") }
	height := int(font.Metrics().Ascent()) + int(font.Metrics().Descent())
	return &GgfntSource{
		font: font,
		nativeSize: uint16(max(1, height)),
		settings: ggfnt.NewSettingsCache(font),
	}
}

// Returns the underlying font.
func (self *GgfntSource) Font() *ggfnt.Font { return self.font }

func (self *GgfntSource) FontKey() uint64 { return self.font.Header().ID() }
func (self *GgfntSource) NativeSize() uint16 { return self.nativeSize }

func (self *GgfntSource) GlyphMetrics(codePoint rune, size uint16) (core.GlyphMetrics, bool) {
	glyphIndex, found := self.glyphIndex(codePoint)
	if !found { return core.GlyphMetrics{}, false }

	var box image.Rectangle
	mask := self.font.Glyphs().RasterizeMask(glyphIndex)
	if mask != nil { box = mask.Rect }
	advance := float32(self.font.Glyphs().Advance(glyphIndex))
	return boxMetrics(box, advance, bitmapScaleFactor(size, self.nativeSize)), true
}

func (self *GgfntSource) RasterizeGlyph(codePoint rune, size uint16) *image.Alpha {
	glyphIndex, found := self.glyphIndex(codePoint)
	if !found { return nil }
	mask := self.font.Glyphs().RasterizeMask(glyphIndex)
	if mask == nil || mask.Rect.Empty() { return nil }
	return upscaleAlpha(inkToCoverage(mask), bitmapScaleFactor(size, self.nativeSize))
}

func (self *GgfntSource) glyphIndex(codePoint rune) (ggfnt.GlyphIndex, bool) {
	self.mutex.Lock()
	group, found := self.font.Mapping().Utf8(codePoint, self.settings.UnsafeSlice())
	self.mutex.Unlock()
	if !found || group.Size() == 0 { return 0, false }
	return group.Select(0), true
}
