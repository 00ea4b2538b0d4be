//go:build !cputext

package strand

import "image"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/mtxt/core"

func alphaMaskToMask(alphaMask *image.Alpha) core.GlyphMask {
	if alphaMask == nil { return nil }

	// ebitengine has no alpha-only images, so coverage is
	// expanded to premultiplied white
	rgba := image.NewRGBA(alphaMask.Rect)
	width := alphaMask.Rect.Dx()
	for y := 0; y < alphaMask.Rect.Dy(); y++ {
		src := alphaMask.Pix[y*alphaMask.Stride : y*alphaMask.Stride + width]
		dst := rgba.Pix[y*rgba.Stride : y*rgba.Stride + width*4]
		for x, value := range src {
			dst[x*4 + 0] = value
			dst[x*4 + 1] = value
			dst[x*4 + 2] = value
			dst[x*4 + 3] = value
		}
	}
	opts := ebiten.NewImageFromImageOptions{ PreserveBounds: true }
	return ebiten.NewImageFromImageWithOptions(rgba, &opts)
}
