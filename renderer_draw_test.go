//go:build cputext

package mtxt

import "image"
import "image/color"
import "testing"

import "github.com/tinne26/mtxt/core"

func inkBounds(img *image.RGBA) (image.Rectangle, int) {
	var bounds image.Rectangle
	var count int
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 { continue }
			count += 1
			bounds = bounds.Union(image.Rect(x, y, x + 1, y + 1))
		}
	}
	return bounds, count
}

func TestDrawWrap(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetColor(color.RGBA{0, 0, 0, 255})
	renderer.SetAlign(Top | Left)
	renderer.SetScale(2)

	w := renderer.Measure("HELLO").Width
	target1 := image.NewRGBA(image.Rect(0, 0, 128, 128))
	target2 := image.NewRGBA(image.Rect(0, 0, 128, 128))
	renderer.Draw(target1, "HELLO\nHELLO", 4, 4)
	renderer.DrawWithWrap(target2, "HELLO HELLO", 4, 4, w)
	if !equalSlices(target1.Pix, target2.Pix) {
		exportAsPNG("debug_draw_wrap_1.png", target1)
		exportAsPNG("debug_draw_wrap_2.png", target2)
		t.Fatalf("expected target1 == target2")
	}

	_, count := inkBounds(target1)
	if count == 0 { t.Fatalf("nothing was drawn") }
}

func TestDrawBounds(t *testing.T) {
	renderer := NewRenderer()
	target := image.NewRGBA(image.Rect(0, 0, 64, 64))

	// basicfont glyphs are 6x13, with 2 pixels below the baseline
	renderer.Draw(target, "A", 10, 20)
	bounds, count := inkBounds(target)
	if count == 0 { t.Fatalf("nothing was drawn") }
	if !bounds.In(image.Rect(10, 9, 16, 22)) {
		t.Fatalf("ink bounds %v outside of glyph rect", bounds)
	}

	// measured bounds contain the drawn text
	clear(target.Pix)
	dims := renderer.Measure("HELLO\nWORLD")
	renderer.Draw(target, "HELLO\nWORLD", 2, 20)
	bounds, _ = inkBounds(target)
	measured := dims.Bounds(2, 20)
	box := image.Rect(int(measured.X), int(measured.Y), int(measured.X + measured.Width), int(measured.Y + measured.Height))
	if !bounds.In(box) {
		t.Fatalf("ink bounds %v outside of measured box %v", bounds, box)
	}
}

func TestDrawColors(t *testing.T) {
	renderer := NewRenderer()
	target := image.NewRGBA(image.Rect(0, 0, 64, 32))
	renderer.Draw(target, "[#ff0000]AB[][#0000ff]CD", 2, 16)

	var reds, blues int
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			rgba := target.RGBAAt(x, y)
			if rgba.A == 0 { continue }
			if rgba.G != 0 { t.Fatalf("unexpected green at (%d, %d): %v", x, y, rgba) }
			switch {
			case rgba.R > 0 && rgba.B == 0 && x < 16: reds += 1
			case rgba.B > 0 && rgba.R == 0 && x >= 16: blues += 1
			default:
				t.Fatalf("unexpected color at (%d, %d): %v", x, y, rgba)
			}
		}
	}
	if reds == 0 || blues == 0 {
		t.Fatalf("expected red and blue pixels, got %d and %d", reds, blues)
	}
}

func TestDrawRotated(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetRotation(0.5)
	target := image.NewRGBA(image.Rect(0, 0, 64, 64))
	renderer.Draw(target, "HI", 20, 30)
	_, count := inkBounds(target)
	if count == 0 { t.Fatalf("nothing was drawn") }
}

func TestDrawBlendModes(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetColor(color.RGBA{255, 255, 255, 255})

	// cut blend removes opacity where glyphs are drawn
	target := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for i := range target.Pix { target.Pix[i] = 255 }
	renderer.SetBlendMode(BlendCut)
	renderer.Draw(target, "A", 4, 20)
	var holes int
	for i := 3; i < len(target.Pix); i += 4 {
		if target.Pix[i] < 255 { holes += 1 }
	}
	if holes == 0 { t.Fatalf("expected BlendCut to cut glyph holes") }

	// custom draw funcs receive every glyph
	var drawn []rune
	renderer.SetBlendMode(BlendOver)
	renderer.Advanced().SetDrawFunc(func(target core.Target, glyph PositionedGlyph) {
		drawn = append(drawn, glyph.CodePoint)
		renderer.Advanced().DrawMask(target, renderer.Advanced().LoadMask(glyph), glyph)
	})
	renderer.Draw(target, "A B", 4, 20)
	if string(drawn) != "A B" {
		t.Fatalf("expected draw func to receive \"A B\", got %q", string(drawn))
	}
}
