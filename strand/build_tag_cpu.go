//go:build cputext

package strand

import "image"

import "github.com/tinne26/mtxt/core"

func alphaMaskToMask(alphaMask *image.Alpha) core.GlyphMask {
	return alphaMask
}
