package mtxt

import "bytes"
import "errors"
import "image/color"
import "log/slog"
import "testing"

import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/mtxt/markup"
import "github.com/tinne26/mtxt/strand"

func TestMeasure(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetStrand(newTestStrand(10, 12, 2))

	// basic measuring
	dims := renderer.Measure("HELLO")
	if dims.Width != 50 || dims.Height != 14 || dims.OffsetY != 10 {
		t.Fatalf("unexpected dimensions %+v", dims)
	}

	// consistency with the package level function
	pkgDims := Measure("HELLO", renderer.Strand(), 0, 1, 1, NoWrap)
	if !equalDims(dims, pkgDims) {
		t.Fatalf("renderer measured %+v, package function measured %+v", dims, pkgDims)
	}

	// aligns don't affect measuring
	for _, align := range []Align{Left | Top, Center, Right | Bottom, HorzCenter | LastBaseline} {
		renderer.SetAlign(align)
		alignDims := renderer.Measure("HELLO\nHI")
		renderer.SetAlign(Left | Baseline)
		baseDims := renderer.Measure("HELLO\nHI")
		if !equalDims(alignDims, baseDims) {
			t.Fatalf("align %s changed measuring: %+v vs %+v", align, alignDims, baseDims)
		}
	}

	// wrap and last line records
	dims = renderer.MeasureWithWrap("HELLO HELLO", 50)
	records := renderer.Advanced().LastLineRecords()
	if len(records) != 2 || records[0].Width != 50 || records[1].Width != 50 {
		t.Fatalf("unexpected line records %+v", records)
	}
	if dims.NumLines() != 2 { t.Fatalf("expected 2 lines, got %d", dims.NumLines()) }

	// scale
	renderer.SetScale(2)
	dims = renderer.Measure("HELLO")
	if dims.Width != 100 || dims.Height != 26 {
		t.Fatalf("unexpected scaled dimensions %+v", dims)
	}
	renderer.SetScaleAspect(0.5)
	dims = renderer.Measure("HELLO")
	if dims.Width != 50 || dims.Height != 26 {
		t.Fatalf("unexpected aspect scaled dimensions %+v", dims)
	}
}

func TestMeasureDPIScale(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetStrand(newTestStrand(10, 12, 2))
	base := renderer.Measure("HELLO")

	renderer.Advanced().SetDPIScale(2)
	if renderer.Advanced().GetDPIScale() != 2 { t.Fatalf("dpi scale not set") }
	dims := renderer.Measure("HELLO")
	if dims.Width != base.Width || dims.OffsetY != base.OffsetY {
		t.Fatalf("dpi scaling changed unscaled dimensions: %+v vs %+v", dims, base)
	}
	if dims.Height != 13 { // padding is applied at the rasterization resolution
		t.Fatalf("expected height 13, got %f", dims.Height)
	}

	var sizes []uint16
	renderer.Advanced().Layout("AB", 0, 0, func(glyph PositionedGlyph) {
		sizes = append(sizes, glyph.Size)
	})
	if len(sizes) != 2 || sizes[0] != 24 || sizes[1] != 24 {
		t.Fatalf("expected glyphs rasterized at size 24, got %v", sizes)
	}

	renderer.Advanced().SetDPIScale(-1)
	if renderer.Advanced().GetDPIScale() != 2 { t.Fatalf("invalid dpi scale accepted") }
}

func TestRendererAligns(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetStrand(newTestStrand(10, 12, 2))

	type glyphPos struct { x, y float32 }
	layoutPositions := func(text string, x, y float32) []glyphPos {
		var positions []glyphPos
		renderer.Advanced().Layout(text, x, y, func(glyph PositionedGlyph) {
			positions = append(positions, glyphPos{glyph.Rect.X, glyph.Rect.Y})
		})
		return positions
	}

	// default align: first baseline at y, glyph tops at y - ascent
	positions := layoutPositions("AB\nC", 0, 100)
	if positions[0] != (glyphPos{0, 90}) || positions[2] != (glyphPos{0, 104}) {
		t.Fatalf("unexpected baseline positions %v", positions)
	}

	renderer.SetAlign(Top | Left)
	positions = layoutPositions("AB\nC", 0, 100)
	if positions[0] != (glyphPos{0, 100}) {
		t.Fatalf("unexpected top aligned position %v", positions[0])
	}

	renderer.SetAlign(Right)
	if renderer.GetAlign() != (Top | Right) {
		t.Fatalf("expected (Top | Right), got %s", renderer.GetAlign())
	}
	positions = layoutPositions("AB\nC", 100, 100)
	if positions[0].x != 80 || positions[1].x != 90 || positions[2].x != 90 {
		t.Fatalf("unexpected right aligned positions %v", positions)
	}

	renderer.SetAlign(Center)
	positions = layoutPositions("AB\nC", 100, 100)
	if positions[0] != (glyphPos{90, 86}) || positions[2] != (glyphPos{95, 100}) {
		t.Fatalf("unexpected centered positions %v", positions)
	}

	renderer.SetAlign(Left | Bottom)
	positions = layoutPositions("AB\nC", 0, 100)
	if positions[2].y + 12 != 98 {
		t.Fatalf("unexpected bottom aligned positions %v", positions)
	}

	renderer.SetAlign(LastBaseline)
	positions = layoutPositions("AB\nC", 0, 100)
	if positions[2].y != 90 {
		t.Fatalf("unexpected last baseline positions %v", positions)
	}
}

func TestRendererColors(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetStrand(newTestStrand(10, 12, 2))
	renderer.SetColor(color.RGBA{0, 0, 255, 255})
	blue := markup.Color{B: 1, A: 1}
	if renderer.GetColor() != blue { t.Fatalf("unexpected color %v", renderer.GetColor()) }

	var colors []markup.Color
	collect := func(glyph PositionedGlyph) { colors = append(colors, glyph.Color) }
	renderer.Advanced().Layout("A[#ff0000]B[]C", 0, 0, collect)
	if len(colors) != 3 || colors[0] != blue || colors[1] != (markup.Color{R: 1, A: 1}) || colors[2] != blue {
		t.Fatalf("unexpected colors %v", colors)
	}

	colors = colors[ : 0]
	renderer.SetMarkupEnabled(false)
	renderer.Advanced().Layout("A[#ff0000]B[]C", 0, 0, collect)
	if len(colors) != 3 || colors[1] != blue {
		t.Fatalf("unexpected colors with markup disabled %v", colors)
	}
}

func TestRendererGlyphAvailability(t *testing.T) {
	source := newTestSource(10, 12, 2)
	source.missing['#'] = true
	renderer := NewRenderer()
	renderer.SetStrand(strand.New(source))

	if !renderer.Advanced().AllGlyphsAvailable("[#ff0000]AB[]\nC") {
		t.Fatalf("markup tags shouldn't require glyphs")
	}
	if renderer.Advanced().AllGlyphsAvailable("A#B") {
		t.Fatalf("expected '#' to be missing")
	}
	if renderer.Advanced().IsRuneAvailable('#') || !renderer.Advanced().IsRuneAvailable('A') {
		t.Fatalf("unexpected rune availability")
	}

	renderer.Strand().SetMaxRune(0xFF, '?')
	if renderer.Advanced().IsRuneAvailable('あ') {
		t.Fatalf("code point above the max rune reported as available")
	}
}

func TestTwine(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	twine := Weave("A[B", red, "C", 'D', Pop, "E")
	if twine.String() != "A[[B[#ff0000ff]CD[]E" {
		t.Fatalf("unexpected twine markup %q", twine.String())
	}
	if twine.Depth() != 0 { t.Fatalf("expected depth 0, got %d", twine.Depth()) }

	twine = Weave(twine, red, red, "F")
	if twine.Depth() != 2 { t.Fatalf("expected depth 2, got %d", twine.Depth()) }
	twine.PopAll()
	if twine.Depth() != 0 || twine.String() != "A[[B[#ff0000ff]CD[]E[#ff0000ff][#ff0000ff]F[][]" {
		t.Fatalf("unexpected twine after PopAll %q", twine.String())
	}

	renderer := NewRenderer()
	renderer.SetStrand(newTestStrand(10, 12, 2))
	var visible []rune
	var colors []markup.Color
	renderer.Advanced().Layout(twine.String(), 0, 0, func(glyph PositionedGlyph) {
		visible = append(visible, glyph.CodePoint)
		colors = append(colors, glyph.Color)
	})
	if string(visible) != "A[BCDEF" {
		t.Fatalf("unexpected visible twine text %q", string(visible))
	}
	if colors[0] != markup.White || colors[3] != (markup.Color{R: 1, A: 1}) || colors[5] != markup.White {
		t.Fatalf("unexpected twine colors %v", colors)
	}

	dims := renderer.Twine().Measure(twine)
	if dims.Width != 70 { t.Fatalf("expected twine width 70, got %f", dims.Width) }

	twine.Reset()
	twine.AddRunes('[', 'x').AddLineBreak().Add("y")
	if twine.String() != "[[x\ny" { t.Fatalf("unexpected twine markup %q", twine.String()) }
	dims = renderer.Twine().MeasureWithWrap(twine, NoWrap)
	if dims.NumLines() != 2 || dims.Width != 20 {
		t.Fatalf("unexpected twine dimensions %+v", dims)
	}
}

func TestTwineLiveTagLogging(t *testing.T) {
	var buffer bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{ Level: slog.LevelDebug })))
	defer SetLogger(nil)

	var twine Twine
	for _, text := range []string{"a[b", "[[", "[x]", "[#12]", "end["} {
		twine.Add(text)
		if buffer.Len() != 0 {
			t.Fatalf("unexpected log for %q: %s", text, buffer.String())
		}
	}
	twine.AddRunes('[', 'q')
	if buffer.Len() != 0 { t.Fatalf("unexpected log for runes: %s", buffer.String()) }

	for _, text := range []string{"a[]b", "[#ff0000]x", "[[]"} {
		buffer.Reset()
		twine.Add(text)
		if !bytes.Contains(buffer.Bytes(), []byte("live markup tag")) {
			t.Fatalf("expected a debug record for %q, got %q", text, buffer.String())
		}
	}
	buffer.Reset()
	twine.AddRunes('[', ']')
	if !bytes.Contains(buffer.Bytes(), []byte("live markup tag")) {
		t.Fatalf("expected a debug record for runes, got %q", buffer.String())
	}
}

func TestNewStrand(t *testing.T) {
	fontStrand, err := NewStrand(basicfont.Face7x13)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if fontStrand.DefaultSize() != 13 {
		t.Fatalf("expected default size 13, got %d", fontStrand.DefaultSize())
	}

	fontStrand, err = NewStrand(goregular.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if fontStrand.DefaultSize() != DefaultVectorSize {
		t.Fatalf("expected default size %d, got %d", DefaultVectorSize, fontStrand.DefaultSize())
	}
	if Measure("HELLO", fontStrand, 0, 1, 1, NoWrap).Width <= 0 {
		t.Fatalf("expected positive width for vector font text")
	}

	_, err = NewStrand(bytes.NewReader(goregular.TTF))
	if err != nil { t.Fatalf("unexpected error from reader: %s", err) }

	fontStrand, err = NewStrand(newTestSource(10, 12, 2))
	if err != nil || fontStrand.DefaultSize() != 12 {
		t.Fatalf("unexpected result from custom source: %v", err)
	}

	_, err = NewStrand(42)
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}
	_, err = NewStrand([]byte{})
	if !errors.Is(err, strand.ErrEmptyFontData) {
		t.Fatalf("expected ErrEmptyFontData, got %v", err)
	}
	_, err = NewStrand([]byte("not a font at all"))
	if err == nil { t.Fatalf("expected error for invalid font data") }
	_, err = NewStrand("this/path/does/not/exist.ttf")
	if err == nil { t.Fatalf("expected error for missing font file") }
}

func TestAlignString(t *testing.T) {
	tests := []struct{ align Align ; str string }{
		{Top | Right, "(Top | Right)"},
		{Center, "(VertCenter | HorzCenter)"},
		{Baseline | Left, "(Baseline | Left)"},
		{HorzCenter, "(HorzCenter)"},
		{Bottom, "(Bottom)"},
		{LastBaseline, "(LastBaseline)"},
		{0, "(ZeroAlign)"},
	}
	for _, test := range tests {
		if test.align.String() != test.str {
			t.Fatalf("expected %s, got %s", test.str, test.align.String())
		}
	}

	if (Top | Left).Adjusted(Right) != (Top | Right) { t.Fatalf("bad horz adjustment") }
	if (Top | Left).Adjusted(Bottom) != (Bottom | Left) { t.Fatalf("bad vert adjustment") }
	if Center.Adjusted(0) != Center { t.Fatalf("bad empty adjustment") }
}
