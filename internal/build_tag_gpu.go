//go:build !cputext

package internal

import "github.com/tinne26/mtxt/core"

// Based on Ebitengine internals, plus the cached metrics.
const constMaskSizeFactor = 192 + 40

// With Ebitengine, the exact amount of mipmaps and helper fields is
// not known, so the values may not be completely accurate, and should
// be treated as a lower bound. With -tags cputext, the returned values
// are exact.
func glyphMaskByteSize(mask core.GlyphMask) uint32 {
	if mask == nil { return constMaskSizeFactor }
	bounds := mask.Bounds()
	return maskDimsByteSize(bounds.Dx(), bounds.Dy())
}

func maskDimsByteSize(width, height int) uint32 {
	return uint32(width*height)*4 + constMaskSizeFactor
}
