package mtxt

import "math"

import "github.com/tinne26/mtxt/markup"
import "github.com/tinne26/mtxt/strand"

// Max line width value that disables line wrapping.
var NoWrap float32 = float32(math.Inf(1))

// Padding added to the line height, in scaled units.
const lineHeightPadding = 2.0

// Configuration for [Layout]. Use [DefaultTextParams]() as the
// starting point, as the zero value has a zero font scale.
type TextParams struct {
	// Font strand. If nil, [DefaultStrand]() is used.
	Font *strand.Strand

	// Rasterization size in pixels. If zero, the strand's
	// default size is used.
	FontSize uint16

	// Uniform glyph scale applied to both axes.
	FontScale float32

	// Additional horizontal-only scale factor.
	FontScaleAspect float32

	// Glyph rotation in radians, applied around each glyph's center.
	Rotation float32

	// Base text color, restored when all markup scopes are closed.
	Color markup.Color

	// When false, markup tags are still removed from the text, but
	// they don't change the color.
	EnableMarkup bool

	// Maximum line width, in unscaled units. [NoWrap] disables wrapping.
	// Any other value, including zero or negative widths, is enforced.
	MaxLineWidth float32
}

// Returns the default text params: default strand and size, unit
// scales, no rotation, opaque white, markup enabled and no wrapping.
func DefaultTextParams() TextParams {
	return TextParams{
		FontScale: 1.0,
		FontScaleAspect: 1.0,
		Color: markup.White,
		EnableMarkup: true,
		MaxLineWidth: NoWrap,
	}
}
