//go:build !cputext

package core

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (-tags cputext).
// 
// Without Ebitengine, [Target] defaults to [image/draw.Image].
type Target = *ebiten.Image

// A GlyphMask is the opaque sprite handle that results from rasterizing
// a glyph. You rarely need to use glyph masks directly unless you are
// working with custom draw functions.
// 
// Without Ebitengine, [GlyphMask] defaults to [*image.Alpha]. The image
// bounds are preserved from the rasterizer: y = 0 corresponds to the
// glyph's baseline, y < 0 to the ascending portions and y > 0 to the
// descending ones.
//
// Mask values are coverage. The glyph color is applied at draw time,
// so the same mask can be reused for every markup color.
type GlyphMask = *ebiten.Image

// The blend mode specifies how to compose colors when drawing glyphs:
//  - Without Ebitengine, the blend mode can be BlendOver, BlendReplace, BlendAdd, BlendSub, BlendMultiply, BlendCut and BlendHue.
//  - With Ebitengine, the blend mode is [ebiten.Blend].
type BlendMode = ebiten.Blend
