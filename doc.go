// mtxt is a package for text layout and drawing with inline color
// markup, designed to be used with Ebitengine, a 2D game engine made
// by Hajime Hoshi for Golang.
//
// Text can contain color tags that are interpreted while laying it out:
//   [#RRGGBB]    pushes an opaque color
//   [#RRGGBBAA]  pushes a color with alpha
//   []           pops the last color (or restores the base color)
//   [[           a literal '['
// Malformed tags are displayed as regular text.
//
// The simplest way to use the package is through a [*Renderer]:
//   strand, err := mtxt.NewStrand(font) // *ggfnt.Font, *opentype.Font, []byte, filename...
//   if err != nil { panic(err) }
//
//   text := mtxt.NewRenderer()
//   text.SetStrand(strand)
//   text.SetAlign(mtxt.Center)
//   text.SetColor(color.RGBA{192, 0, 255, 255})
//   text.Draw(canvas, "HELLO [#ff0000]RED[] WORLD", x, y)
//
// For lower level control, [Measure]() and [Layout]() operate directly
// on [TextParams] and positioned glyphs. Both always make the same line
// breaking decisions, so measured text can be used to place backgrounds
// or highlights before drawing.
//
// Without Ebitengine (-tags cputext), targets are [image/draw.Image]
// values instead of [*ebiten.Image].
package mtxt
