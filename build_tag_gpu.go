//go:build !cputext

package mtxt

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/mtxt/core"

// Only used with -tags cputext.
type cpuDrawBuffers struct{}

var glyphQuadIndices = []uint16{0, 1, 2, 2, 1, 3}

// Draws the mask as a quad covering the glyph rect, rotated around
// the rect center and tinted with the glyph color.
func (self *Renderer) drawMask(target core.Target, mask core.GlyphMask, glyph PositionedGlyph) {
	rect := glyph.Rect
	if rect.Width == 0 || rect.Height == 0 { return }

	var vertices [4]ebiten.Vertex
	srcRect := mask.Bounds()
	setQuadSrc(&vertices, float32(srcRect.Min.X), float32(srcRect.Min.Y), float32(srcRect.Max.X), float32(srcRect.Max.Y))
	setQuadDst(&vertices, rect, glyph.Rotation)
	clr := glyph.Color
	for i := 0; i < 4; i++ {
		vertices[i].ColorR = clr.R
		vertices[i].ColorG = clr.G
		vertices[i].ColorB = clr.B
		vertices[i].ColorA = clr.A
	}

	var opts ebiten.DrawTrianglesOptions
	opts.Blend = self.blendMode
	opts.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	if glyph.Rotation != 0 { opts.Filter = ebiten.FilterLinear }
	target.DrawTriangles(vertices[:], glyphQuadIndices, mask, &opts)
}

func setQuadSrc(vertices *[4]ebiten.Vertex, minX, minY, maxX, maxY float32) {
	// (0 = top-left, 1 = top-right, 2 = bottom-left, 3 = bottom-right)
	vertices[0].SrcX, vertices[0].SrcY = minX, minY
	vertices[1].SrcX, vertices[1].SrcY = maxX, minY
	vertices[2].SrcX, vertices[2].SrcY = minX, maxY
	vertices[3].SrcX, vertices[3].SrcY = maxX, maxY
}

func setQuadDst(vertices *[4]ebiten.Vertex, rect Rect, rotation float32) {
	corners := rotatedCorners(rect, rotation)
	for i, corner := range corners {
		vertices[i].DstX, vertices[i].DstY = corner[0], corner[1]
	}
}
