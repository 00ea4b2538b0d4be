package strand

import "fmt"
import "image"
import "sync"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/mtxt/core"
import "github.com/tinne26/mtxt/internal"

// Source for scalable TrueType and OpenType fonts. A face is created
// lazily for each requested size, so glyphs are always rasterized
// at their final size.
type OpenTypeSource struct {
	font *opentype.Font
	key uint64
	nativeSize uint16

	mutex sync.Mutex
	buffer sfnt.Buffer
	faces map[uint16]font.Face
}

// Creates a source for the given font. The native size is only used
// as the default size for strands.
func NewOpenTypeSource(otFont *opentype.Font, nativeSize uint16) *OpenTypeSource {
	if otFont == nil { panic("nil font") }
	if nativeSize == 0 { panic("native size can't be zero") }
	return &OpenTypeSource{
		font: otFont,
		key: nextSourceKey(),
		nativeSize: nativeSize,
		faces: make(map[uint16]font.Face, 2),
	}
}

// Parses the given font data and creates a source for it.
func ParseOpenTypeSource(data []byte, nativeSize uint16) (*OpenTypeSource, error) {
	if len(data) == 0 { return nil, ErrEmptyFontData }
	otFont, err := opentype.Parse(data)
	if err != nil { return nil, fmt.Errorf("strand: parsing opentype font: %w", err) }
	return NewOpenTypeSource(otFont, nativeSize), nil
}

func (self *OpenTypeSource) FontKey() uint64 { return self.key }
func (self *OpenTypeSource) NativeSize() uint16 { return self.nativeSize }

// Returns the underlying font.
func (self *OpenTypeSource) Font() *opentype.Font { return self.font }

func (self *OpenTypeSource) GlyphMetrics(codePoint rune, size uint16) (core.GlyphMetrics, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	face := self.lockedFace(codePoint, size)
	if face == nil { return core.GlyphMetrics{}, false }
	return faceGlyphMetrics(face, codePoint, 1)
}

func (self *OpenTypeSource) RasterizeGlyph(codePoint rune, size uint16) *image.Alpha {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	face := self.lockedFace(codePoint, size)
	if face == nil { return nil }
	return faceRasterizeGlyph(face, codePoint, 1)
}

// Returns nil if the glyph is not in the font or the face can't be
// created. Must be called with the source locked.
func (self *OpenTypeSource) lockedFace(codePoint rune, size uint16) font.Face {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil || index == 0 { return nil }

	face, found := self.faces[size]
	if found { return face }
	face, err = opentype.NewFace(self.font, &opentype.FaceOptions{
		Size: float64(max(size, 1)),
		DPI: 72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		internal.Logger().Warn("opentype face creation failed", "size", size, "error", err)
		return nil
	}
	self.faces[size] = face
	return face
}
