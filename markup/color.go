package markup

import "image/color"
import "strconv"

// Colors are straight alpha RGBA values, each channel normalized
// to the [0, 1] range.
type Color struct {
	R, G, B, A float32
}

// Opaque white, the default text color.
var White = Color{1, 1, 1, 1}

// Creates a [Color] from any [color.Color].
func ColorFrom(clr color.Color) Color {
	if clr == nil { return Color{} }
	if same, isColor := clr.(Color); isColor { return same }
	if nrgba, isNRGBA := clr.(color.NRGBA); isNRGBA {
		return rgba8(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
	}
	r, g, b, a := clr.RGBA()
	if a == 0 { return Color{} }
	fa := float32(a)
	return Color{
		R: float32(r)/fa,
		G: float32(g)/fa,
		B: float32(b)/fa,
		A: fa/65535.0,
	}
}

func rgba8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r)/255.0,
		G: float32(g)/255.0,
		B: float32(b)/255.0,
		A: float32(a)/255.0,
	}
}

func colorFromHex32(rgba uint32) Color {
	return rgba8(uint8(rgba >> 24), uint8(rgba >> 16), uint8(rgba >> 8), uint8(rgba))
}

// Implements [color.Color]. The returned values are alpha-premultiplied.
func (self Color) RGBA() (r, g, b, a uint32) {
	a = unitToUint16(self.A)
	r = unitToUint16(self.R*self.A)
	g = unitToUint16(self.G*self.A)
	b = unitToUint16(self.B*self.A)
	return r, g, b, a
}

// Returns the color as 8-bit non-premultiplied values.
func (self Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unitToUint8(self.R),
		G: unitToUint8(self.G),
		B: unitToUint8(self.B),
		A: unitToUint8(self.A),
	}
}

// Returns the color in the "#RRGGBBAA" format used by color tags.
func (self Color) Hex() string {
	nrgba := self.NRGBA()
	value := uint64(nrgba.R) << 24 | uint64(nrgba.G) << 16 | uint64(nrgba.B) << 8 | uint64(nrgba.A)
	hex := strconv.FormatUint(value, 16)
	for len(hex) < 8 { hex = "0" + hex }
	return "#" + hex
}

// Returns the opening tag for this color, e.g. "[#ff0000ff]".
func (self Color) Tag() string {
	return "[" + self.Hex() + "]"
}

func unitToUint16(value float32) uint32 {
	if value <= 0 { return 0 }
	if value >= 1 { return 65535 }
	return uint32(value*65535.0 + 0.5)
}

func unitToUint8(value float32) uint8 {
	if value <= 0 { return 0 }
	if value >= 1 { return 255 }
	return uint8(value*255.0 + 0.5)
}
