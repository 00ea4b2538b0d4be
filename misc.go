package mtxt

import "cmp"
import "io"

const brokenCode = "broken code"

type errMsg string
func (self errMsg) Error() string { return string(self) }

// Returned by [NewStrand]() when the source type is not supported.
const ErrUnsupportedSource errMsg = "mtxt: unsupported font source type"

func clamp[T cmp.Ordered](x, a, b T) T {
	if x <= a { return a }
	if x >= b { return b }
	return x
}

// Returns the rect corners after rotating them around the rect
// center, in top-left, top-right, bottom-left, bottom-right order.
func rotatedCorners(rect Rect, rotation float32) [4][2]float32 {
	minX, minY := rect.X, rect.Y
	maxX, maxY := rect.X + rect.Width, rect.Y + rect.Height
	corners := [4][2]float32{{minX, minY}, {maxX, minY}, {minX, maxY}, {maxX, maxY}}
	if rotation == 0 { return corners }

	sin, cos := sincos32(rotation)
	cx, cy := rect.Center()
	for i, corner := range corners {
		dx, dy := corner[0] - cx, corner[1] - cy
		corners[i] = [2]float32{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
	}
	return corners
}

// implements io.Reader for []byte
type byteSliceReader struct { data []byte ; index int }
func (self *byteSliceReader) Read(buffer []byte) (int, error) {
	maxRead := len(self.data) - self.index
	if maxRead <= 0 { return 0, io.EOF }
	if len(buffer) == 0 { return 0, nil }
	if len(buffer) >= maxRead {
		copy(buffer, self.data[self.index : self.index + maxRead])
		self.index += maxRead
		return maxRead, io.EOF
	} else {
		copy(buffer, self.data[self.index : self.index + len(buffer)])
		self.index += len(buffer)
		return len(buffer), nil
	}
}
