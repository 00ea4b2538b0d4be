package mtxt

import "bytes"
import "fmt"
import "io"
import "os"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"

import "github.com/tinne26/ggfnt"

import "github.com/tinne26/mtxt/strand"

// Default native size for scalable fonts created through [NewStrand]().
const DefaultVectorSize uint16 = 16

// Tries to create a default strand from the given source. Accepted
// types are:
//  - [strand.Source], [*ggfnt.Font], [*opentype.Font] and [font.Face].
//  - []byte and [io.Reader] with TTF, OTF or ggfnt font data.
//  - string, as a path to a font file.
//
// For sources that don't need parsing, the returned error is always
// nil. The returned strand is always non-nil if error is nil.
func NewStrand(source any) (*strand.Strand, error) {
	switch typedSource := source.(type) {
	case ggfnt.Font:
		panic("[mtxt.NewStrand] please use *ggfnt.Font, not ggfnt.Font")
	case *ggfnt.Font:
		return strand.New(strand.NewGgfntSource(typedSource)), nil
	case *opentype.Font:
		return strand.New(strand.NewOpenTypeSource(typedSource, DefaultVectorSize)), nil
	case strand.Source:
		return strand.New(typedSource), nil
	case font.Face:
		return strand.New(strand.NewFaceSource(typedSource)), nil
	case []byte:
		return newStrandFromBytes(typedSource)
	case io.Reader:
		data, err := io.ReadAll(typedSource)
		if err != nil { return nil, fmt.Errorf("mtxt: reading font data: %w", err) }
		return newStrandFromBytes(data)
	case string:
		data, err := os.ReadFile(typedSource)
		if err != nil { return nil, err }
		return newStrandFromBytes(data)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}
}

// Detects the font format from the first bytes and parses it.
func newStrandFromBytes(data []byte) (*strand.Strand, error) {
	if len(data) == 0 { return nil, strand.ErrEmptyFontData }
	if isSfntData(data) {
		source, err := strand.ParseOpenTypeSource(data, DefaultVectorSize)
		if err != nil { return nil, err }
		return strand.New(source), nil
	}

	ggFont, err := ggfnt.Parse(&byteSliceReader{ data: data })
	if err != nil { return nil, fmt.Errorf("mtxt: parsing ggfnt font: %w", err) }
	return strand.New(strand.NewGgfntSource(ggFont)), nil
}

func isSfntData(data []byte) bool {
	if len(data) < 4 { return false }
	magic := data[ : 4]
	return bytes.Equal(magic, []byte{0x00, 0x01, 0x00, 0x00}) ||
		bytes.Equal(magic, []byte("OTTO")) || bytes.Equal(magic, []byte("true"))
}
