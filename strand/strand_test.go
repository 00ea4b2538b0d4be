package strand

import "image"
import "testing"

import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/mtxt/core"

// Monospaced fake source with exact metrics: every glyph advances
// size/2 and has a size x size box sitting on the baseline.
type fakeSource struct {
	key uint64
	missing map[rune]bool
	metricsCalls int
}

func newFakeSource(missing ...rune) *fakeSource {
	source := &fakeSource{ key: nextSourceKey(), missing: make(map[rune]bool) }
	for _, codePoint := range missing { source.missing[codePoint] = true }
	return source
}

func (self *fakeSource) FontKey() uint64 { return self.key }
func (self *fakeSource) NativeSize() uint16 { return 10 }
func (self *fakeSource) GlyphMetrics(codePoint rune, size uint16) (core.GlyphMetrics, bool) {
	self.metricsCalls += 1
	if self.missing[codePoint] { return core.GlyphMetrics{}, false }
	s := float32(size)
	return core.GlyphMetrics{ Advance: s/2, Width: s/2, Height: s }, true
}
func (self *fakeSource) RasterizeGlyph(codePoint rune, size uint16) *image.Alpha {
	if self.missing[codePoint] { return nil }
	mask := image.NewAlpha(image.Rect(0, -int(size), int(size)/2, 0))
	for i := range mask.Pix { mask.Pix[i] = 255 }
	return mask
}

func TestStrandFallbacks(t *testing.T) {
	source := newFakeSource('x', 'y', '=', DefaultFallback)
	strand := New(source)
	if strand.DefaultSize() != 10 {
		t.Fatalf("expected default size 10, got %d", strand.DefaultSize())
	}

	codePoint, metrics := strand.Glyph('a', 10)
	if codePoint != 'a' || metrics.Advance != 5 {
		t.Fatalf("unexpected glyph 'a': %q %v", codePoint, metrics)
	}

	// missing glyph, missing fallback
	codePoint, metrics = strand.Glyph('x', 10)
	if codePoint != 'x' || metrics != (core.GlyphMetrics{}) {
		t.Fatalf("expected zero metrics for 'x', got %q %v", codePoint, metrics)
	}

	// missing glyph, available fallback
	strand.SetFallback('?')
	codePoint, metrics = strand.Glyph('y', 12)
	if codePoint != '?' || metrics.Advance != 6 {
		t.Fatalf("expected fallback '?', got %q %v", codePoint, metrics)
	}

	// substitution (substitute missing too, so it falls back)
	strand.SetMaxRune(0xFF, '=')
	codePoint, _ = strand.Glyph('Ā', 12)
	if codePoint != '?' {
		t.Fatalf("expected 'Ā' to end up as '?', got %q", codePoint)
	}
	strand.SetMaxRune(0xFF, '#')
	codePoint, _ = strand.Glyph('Ā', 12)
	if codePoint != '#' {
		t.Fatalf("expected 'Ā' to be substituted by '#', got %q", codePoint)
	}

	if strand.HasGlyph('x', 10) || strand.HasGlyph('Ā', 10) || !strand.HasGlyph('a', 10) {
		t.Fatal("unexpected HasGlyph() results")
	}
}

func TestStrandCachesLookups(t *testing.T) {
	source := newFakeSource('x')
	strand := New(source)
	for i := 0; i < 3; i++ {
		_, _ = strand.Glyph('a', 16)
		_ = strand.HasGlyph('x', 16)
	}
	if source.metricsCalls != 2 {
		t.Fatalf("expected 2 source lookups, got %d", source.metricsCalls)
	}
}

func TestStrandNormalization(t *testing.T) {
	strand := New(newFakeSource())
	text := "cafe\u0301"
	if strand.NormalizeText(text) != text {
		t.Fatal("normalization should be disabled by default")
	}
	strand.SetNormalization(true)
	if got := strand.NormalizeText(text); got != "caf\u00e9" {
		t.Fatalf("expected composed text, got %q", got)
	}
}

func TestFaceSource(t *testing.T) {
	source := NewFaceSource(basicfont.Face7x13)
	if source.NativeSize() != 13 {
		t.Fatalf("expected native size 13, got %d", source.NativeSize())
	}

	metrics, found := source.GlyphMetrics('A', 13)
	expected := core.GlyphMetrics{ Advance: 7, Width: 6, Height: 13, OffsetX: 0, OffsetY: -2 }
	if !found || metrics != expected {
		t.Fatalf("expected %v, got %v (found = %t)", expected, metrics, found)
	}
	if metrics.Ascent(1) != 11 {
		t.Fatalf("expected ascent 11, got %v", metrics.Ascent(1))
	}

	metrics, _ = source.GlyphMetrics('A', 26)
	if metrics.Advance != 14 || metrics.Height != 26 {
		t.Fatalf("expected x2 metrics, got %v", metrics)
	}

	mask := source.RasterizeGlyph('A', 13)
	if mask == nil || mask.Rect != image.Rect(0, -11, 6, 2) {
		t.Fatalf("unexpected mask for 'A': %v", mask)
	}
	if !hasInk(mask) { t.Fatal("expected ink on 'A' mask") }

	mask = source.RasterizeGlyph('A', 26)
	if mask == nil || mask.Rect != image.Rect(0, -22, 12, 4) {
		t.Fatalf("unexpected x2 mask for 'A': %v", mask)
	}
}

func TestOpenTypeSource(t *testing.T) {
	source, err := ParseOpenTypeSource(goregular.TTF, 16)
	if err != nil { t.Fatal(err) }

	metrics, found := source.GlyphMetrics('H', 16)
	if !found { t.Fatal("expected 'H' to be found") }
	if metrics.Advance <= 0 || metrics.Height <= 0 || metrics.Width <= 0 {
		t.Fatalf("unexpected metrics for 'H': %v", metrics)
	}
	bigger, _ := source.GlyphMetrics('H', 32)
	if bigger.Advance <= metrics.Advance {
		t.Fatalf("expected bigger advance at size 32, got %v vs %v", bigger.Advance, metrics.Advance)
	}

	_, found = source.GlyphMetrics('一', 16)
	if found { t.Fatal("didn't expect CJK glyph in Go Regular") }

	mask := source.RasterizeGlyph('H', 16)
	if mask == nil || !hasInk(mask) { t.Fatal("expected ink on 'H' mask") }
	box := image.Rect(int(metrics.OffsetX), -int(metrics.Height + metrics.OffsetY), int(metrics.OffsetX + metrics.Width), -int(metrics.OffsetY))
	if mask.Rect != box {
		t.Fatalf("expected mask bounds %v, got %v", box, mask.Rect)
	}

	if _, err := ParseOpenTypeSource(nil, 16); err != ErrEmptyFontData {
		t.Fatalf("expected ErrEmptyFontData, got %v", err)
	}
	if _, err := ParseOpenTypeSource([]byte("not a font"), 16); err == nil {
		t.Fatal("expected parsing error")
	}
}

func TestBitmapScaleFactor(t *testing.T) {
	tests := []struct{ size, native uint16; factor int }{
		{13, 13, 1}, {12, 13, 1}, {19, 13, 1}, {20, 13, 2}, {26, 13, 2}, {40, 13, 3}, {5, 0, 1},
	}
	for _, test := range tests {
		got := bitmapScaleFactor(test.size, test.native)
		if got != test.factor {
			t.Fatalf("bitmapScaleFactor(%d, %d) = %d, expected %d", test.size, test.native, got, test.factor)
		}
	}
}

func TestInkToCoverage(t *testing.T) {
	src := image.NewAlpha(image.Rect(-1, -2, 2, 0))
	src.Pix[src.PixOffset(0, -1)] = 3 // palette index, not alpha
	dst := inkToCoverage(src)
	if dst.Rect != src.Rect { t.Fatalf("bounds changed: %v", dst.Rect) }
	for y := -2; y < 0; y++ {
		for x := -1; x < 2; x++ {
			expected := uint8(0)
			if x == 0 && y == -1 { expected = 255 }
			if got := dst.AlphaAt(x, y).A; got != expected {
				t.Fatalf("at (%d, %d) expected %d, got %d", x, y, expected, got)
			}
		}
	}
}

func hasInk(mask *image.Alpha) bool {
	for _, value := range mask.Pix {
		if value != 0 { return true }
	}
	return false
}
