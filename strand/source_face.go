package strand

import "image"
import "math"
import "sync"

import "golang.org/x/image/font"

import "github.com/tinne26/mtxt/core"

// Source wrapping a fixed size [font.Face], like the faces from
// golang.org/x/image/font/basicfont. Requests for sizes noticeably
// bigger than the native one are served by integer upscaling.
type FaceSource struct {
	face font.Face
	key uint64
	nativeSize uint16
	mutex sync.Mutex // faces are not safe for concurrent use
}

// Creates a source from the given face. The native size is taken
// from the face line height.
func NewFaceSource(face font.Face) *FaceSource {
	if face == nil { panic("nil face") }
	height := math.Round(float64(face.Metrics().Height)/64.0)
	return &FaceSource{
		face: face,
		key: nextSourceKey(),
		nativeSize: uint16(max(1, min(height, math.MaxUint16))),
	}
}

func (self *FaceSource) FontKey() uint64 { return self.key }
func (self *FaceSource) NativeSize() uint16 { return self.nativeSize }

func (self *FaceSource) GlyphMetrics(codePoint rune, size uint16) (core.GlyphMetrics, bool) {
	scale := bitmapScaleFactor(size, self.nativeSize)
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return faceGlyphMetrics(self.face, codePoint, scale)
}

func (self *FaceSource) RasterizeGlyph(codePoint rune, size uint16) *image.Alpha {
	scale := bitmapScaleFactor(size, self.nativeSize)
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return faceRasterizeGlyph(self.face, codePoint, scale)
}
