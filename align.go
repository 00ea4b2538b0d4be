package mtxt

// Aligns tell a [Renderer] how to interpret the coordinates
// that [Renderer.Draw]() and other operations receive.
//
// Given some text, we have a text box that contains it. The align
// specifies which part of that box has to be placed at the given
// coordinates. For example, drawing "HELLO" at (0, 0) with a centered
// align means that the center of the text box will be at (0, 0).
//
// The horizontal component is applied to each line individually, so
// centered and right aligned multiline text looks as expected. The
// vertical component is applied to the text box as a whole.
//
// The default (Left | Baseline) align places the first line's baseline
// at the given coordinates and is the only one that doesn't require
// measuring the text before drawing it.
//
// See [Renderer.SetAlign]() for further explanations.
type Align uint8

// Returns the vertical component of the align. If the align
// is valid and [Align.HasVertComponent](), the result can only
// be [Top], [VertCenter], [Baseline], [LastBaseline] or [Bottom].
func (self Align) Vert() Align { return alignVertBits & self }

// Returns the horizontal component of the align. If the
// align is valid and [Align.HasHorzComponent]() is true,
// the result can only be [Left], [HorzCenter] or [Right].
func (self Align) Horz() Align { return alignHorzBits & self }

// Returns whether the vertical component of the align is set.
func (self Align) HasVertComponent() bool { return alignVertBits & self != 0 }

// Returns whether the horizontal component of the align is set.
func (self Align) HasHorzComponent() bool { return alignHorzBits & self != 0 }

// Returns the result of overriding the current align with
// the non-empty components of the new align. If both
// components are defined for the new align, the result
// will be the new align itself. If only one component
// is defined, only that component will be overwritten.
// If the new align is completely empty, the value of
// the current align will be returned unmodified.
func (self Align) Adjusted(align Align) Align {
	horz := align.Horz()
	vert := align.Vert()
	if horz != 0 {
		if vert != 0 { return align }
		return horz | self.Vert()
	} else if vert != 0 {
		return self.Horz() | vert
	} else {
		return self
	}
}

// Returns the horizontal shift to apply to a line of the given
// width based on the current horizontal align.
func (self Align) lineShift(lineWidth float32) float32 {
	switch self.Horz() {
	case HorzCenter: return -lineWidth/2
	case Right: return -lineWidth
	default: // assume left when undefined
		return 0
	}
}

// Returns the baseline y for the first line, given the y coordinate
// the text box is aligned to.
func (self Align) firstBaseline(y float32, dims TextDimensions) float32 {
	switch self.Vert() {
	case Top: return y + dims.OffsetY
	case VertCenter: return y + dims.OffsetY - dims.Height/2
	case Bottom: return y + dims.OffsetY - dims.Height
	case LastBaseline:
		if len(dims.Lines) <= 1 { return y }
		return y - dims.Height + dims.Lines[len(dims.Lines) - 1].Height
	default: // assume baseline when undefined
		return y
	}
}

// Returns whether the align requires measuring text before drawing.
func (self Align) needsMeasuring() bool {
	return self.Horz() != Left || self.Vert() != Baseline
}

// Returns a textual representation of the align. Some examples:
//   (Top | Right).String() == "(Top | Right)"
//   (Right | Top).String() == "(Top | Right)"
//   Center.String() == "(VertCenter | HorzCenter)"
//   (Baseline | Left).String() == "(Baseline | Left)"
//   HorzCenter.String() == "(HorzCenter)"
//   Bottom.String() == "(Bottom)"
func (self Align) String() string {
	if self == 0 { return "(ZeroAlign)" }
	if self.Vert() == 0 { return "(" + self.horzString() + ")" }
	if self.Horz() == 0 { return "(" + self.vertString() + ")" }
	return "(" + self.vertString() + " | " + self.horzString() + ")"
}

func (self Align) vertString() string {
	switch self.Vert() {
	case Top: return "Top"
	case VertCenter: return "VertCenter"
	case Baseline: return "Baseline"
	case Bottom: return "Bottom"
	case LastBaseline: return "LastBaseline"
	default:
		return "VertUnknown"
	}
}

func (self Align) horzString() string {
	switch self.Horz() {
	case Left: return "Left"
	case HorzCenter: return "HorzCenter"
	case Right: return "Right"
	default:
		return "HorzUnknown"
	}
}

// Aligns have a vertical and a horizontal component. To set
// both components at once, you can use a bitwise OR:
//   Renderer.SetAlign(mtxt.Left | mtxt.Bottom)
// To retrieve or compare the individual components, avoid
// bitwise operations and use [Align.Vert]() and [Align.Horz]()
// instead.
const (
	// Horizontal aligns
	Left       Align = 0b0010_0000
	HorzCenter Align = 0b0100_0000
	Right      Align = 0b1000_0000

	// Vertical aligns
	Top          Align = 0b0000_0001 // top of the tallest glyph
	VertCenter   Align = 0b0000_1001 // middle of the text box
	Baseline     Align = 0b0000_0100 // first line's baseline
	Bottom       Align = 0b0000_1000 // bottom of the last line
	LastBaseline Align = 0b0000_1100 // last line's baseline

	// Full aligns
	Center Align = HorzCenter | VertCenter
	
	alignVertBits Align = 0b0000_1111 // bit mask
	alignHorzBits Align = 0b1111_0000 // bit mask
)
