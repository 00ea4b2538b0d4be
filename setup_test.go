package mtxt

// This file contains test helpers shared by the package tests.

import "os"
import "image"
import "image/png"

import "github.com/tinne26/mtxt/core"
import "github.com/tinne26/mtxt/strand"

// Glyph source with exact metrics for layout tests. At the native
// size (the height), glyphs advance 'advance' units, except for the
// ones in 'advances'. All glyphs are 'height' tall with 'descent'
// units below the baseline. Metrics scale linearly with the size.
type testSource struct {
	key uint64
	advance float32
	advances map[rune]float32
	height float32
	descent float32
	missing map[rune]bool
}

var testSourceKeys uint64 = 0xFFFF_0000

func newTestSource(advance, height, descent float32) *testSource {
	testSourceKeys += 1
	return &testSource{
		key: testSourceKeys,
		advance: advance,
		advances: make(map[rune]float32),
		height: height,
		descent: descent,
		missing: make(map[rune]bool),
	}
}

func newTestStrand(advance, height, descent float32) *strand.Strand {
	return strand.New(newTestSource(advance, height, descent))
}

func (self *testSource) FontKey() uint64 { return self.key }
func (self *testSource) NativeSize() uint16 { return uint16(self.height) }
func (self *testSource) GlyphMetrics(codePoint rune, size uint16) (core.GlyphMetrics, bool) {
	if self.missing[codePoint] { return core.GlyphMetrics{}, false }
	advance, found := self.advances[codePoint]
	if !found { advance = self.advance }
	factor := float32(size)/self.height
	return core.GlyphMetrics{
		Advance: advance*factor,
		Width: advance*factor,
		Height: self.height*factor,
		OffsetY: -self.descent*factor,
	}, true
}
func (self *testSource) RasterizeGlyph(codePoint rune, size uint16) *image.Alpha {
	if self.missing[codePoint] || codePoint == ' ' { return nil }
	metrics, _ := self.GlyphMetrics(codePoint, size)
	rect := image.Rect(0, -int(metrics.Height + metrics.OffsetY), int(metrics.Width), -int(metrics.OffsetY))
	mask := image.NewAlpha(rect)
	for i := range mask.Pix { mask.Pix[i] = 255 }
	return mask
}

// --- helpers ---

func exportAsPNG(filename string, img image.Image) {
	file, err := os.Create(filename)
	if err != nil { panic(err) }
	err = png.Encode(file, img)
	if err != nil { panic(err) }
	err = file.Close()
	if err != nil { panic(err) }
}

func equalSlices(a, b []byte) bool {
	if len(a) != len(b) { return false }
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] { return false }
	}
	return true
}
