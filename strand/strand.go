package strand

import "unicode"

import "golang.org/x/text/unicode/norm"

import "github.com/tinne26/mtxt/core"
import "github.com/tinne26/mtxt/internal"

// Default fallback rune used when a glyph is missing from the source.
const DefaultFallback rune = ':'

// Default substitute for code points above the maximum rune.
const DefaultSubstitute rune = '='

// A strand is a font reference with a glyph resolution policy on
// top: which code points are representable, what to draw when a glyph
// is missing and the default size to use when none is given.
//
// Metrics and masks are cached in the package level glyph cache,
// keyed by the source font key, so multiple strands of the same
// source share cached glyphs.
//
// Strands are safe for concurrent lookups, but configuration methods
// must not be called while the strand is in use.
type Strand struct {
	source Source
	fallback rune
	substitute rune
	maxRune rune
	defaultSize uint16
	normalize bool
}

// Creates a strand for the given glyph source.
func New(source Source) *Strand {
	if source == nil { panic("nil source") }
	return &Strand{
		source: source,
		fallback: DefaultFallback,
		substitute: DefaultSubstitute,
		maxRune: unicode.MaxRune,
		defaultSize: max(source.NativeSize(), 1),
	}
}

// Returns the underlying glyph source.
func (self *Strand) Source() Source { return self.source }

// Sets the glyph used when the requested one is missing.
func (self *Strand) SetFallback(codePoint rune) { self.fallback = codePoint }
func (self *Strand) Fallback() rune { return self.fallback }

// Sets the maximum representable code point and the glyph used as a
// substitute for code points above it. Code points are substituted
// before any lookup, so the substitute can still fall back if missing.
func (self *Strand) SetMaxRune(maxRune, substitute rune) {
	if maxRune < 0 { panic("negative max rune") }
	self.maxRune = maxRune
	self.substitute = substitute
}

func (self *Strand) MaxRune() rune { return self.maxRune }
func (self *Strand) Substitute() rune { return self.substitute }

// Sets the size used when text is drawn with size 0.
func (self *Strand) SetDefaultSize(size uint16) {
	if size == 0 { panic("default size can't be zero") }
	self.defaultSize = size
}

func (self *Strand) DefaultSize() uint16 { return self.defaultSize }

// When enabled, text is converted to Unicode NFC before layout, so
// decomposed sequences (e.g. 'e' + U+0301) become single code points
// that bitmap fonts are more likely to include.
func (self *Strand) SetNormalization(enabled bool) { self.normalize = enabled }

// Returns the text as the layout engine will process it.
func (self *Strand) NormalizeText(text string) string {
	if !self.normalize { return text }
	return norm.NFC.String(text)
}

// Resolves the glyph to be used for the given code point and returns
// it together with its metrics. Missing glyphs are replaced by the
// fallback. If the fallback is missing too, the original code point
// is returned with zero metrics.
func (self *Strand) Glyph(codePoint rune, size uint16) (rune, core.GlyphMetrics) {
	if codePoint > self.maxRune || codePoint < 0 {
		internal.Logger().Debug("glyph substituted", "code", runeToUnicodeCode(codePoint), "substitute", string(self.substitute))
		codePoint = self.substitute
	}

	metrics, found := self.metrics(codePoint, size)
	if found { return codePoint, metrics }
	if codePoint != self.fallback {
		metrics, found = self.metrics(self.fallback, size)
		if found {
			internal.Logger().Debug("glyph missing, using fallback", "code", runeToUnicodeCode(codePoint), "size", size)
			return self.fallback, metrics
		}
	}
	internal.Logger().Debug("glyph and fallback missing", "code", runeToUnicodeCode(codePoint), "size", size)
	return codePoint, core.GlyphMetrics{}
}

// Returns whether the source can provide the given glyph directly,
// without substitutions or fallbacks.
func (self *Strand) HasGlyph(codePoint rune, size uint16) bool {
	if codePoint > self.maxRune || codePoint < 0 { return false }
	_, found := self.metrics(codePoint, size)
	return found
}

// Returns the mask for the given glyph, loading it if necessary.
// The code point is not resolved again: pass the one returned by
// [Strand.Glyph]. Blank and missing glyphs return nil.
func (self *Strand) Mask(codePoint rune, size uint16) core.GlyphMask {
	fontKey := self.source.FontKey()
	data, found := internal.DefaultCache.Get(fontKey, codePoint, size)
	if found && (data.MaskLoaded || data.Missing) { return data.Mask }
	if !found {
		metrics, ok := self.source.GlyphMetrics(codePoint, size)
		data = internal.GlyphData{ Metrics: metrics, Missing: !ok }
		if data.Missing {
			_ = internal.DefaultCache.Set(fontKey, codePoint, size, data)
			return nil
		}
	}

	data.Mask = alphaMaskToMask(self.source.RasterizeGlyph(codePoint, size))
	data.MaskLoaded = true
	_ = internal.DefaultCache.Set(fontKey, codePoint, size, data)
	return data.Mask
}

func (self *Strand) metrics(codePoint rune, size uint16) (core.GlyphMetrics, bool) {
	fontKey := self.source.FontKey()
	data, found := internal.DefaultCache.Get(fontKey, codePoint, size)
	if found { return data.Metrics, !data.Missing }

	metrics, ok := self.source.GlyphMetrics(codePoint, size)
	_ = internal.DefaultCache.Set(fontKey, codePoint, size, internal.GlyphData{ Metrics: metrics, Missing: !ok })
	return metrics, ok
}
