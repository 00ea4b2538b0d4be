//go:build !cputext

package main

import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "github.com/tinne26/mtxt"

type game struct {
	renderer *mtxt.Renderer
	opts options
	rotate bool
	angle float32
}

func (self *game) Layout(w, h int) (int, int) {
	return w, h
}

func (self *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) { self.rotate = !self.rotate }
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) { return ebiten.Termination }
	if self.rotate {
		self.angle += 0.02
	} else {
		self.angle = 0
	}
	self.renderer.SetRotation(self.angle)
	return nil
}

func (self *game) Draw(canvas *ebiten.Image) {
	canvas.Fill(color.RGBA{24, 22, 32, 255})
	bounds := canvas.Bounds()
	self.opts.canvasWidth, self.opts.canvasHeight = bounds.Dx(), bounds.Dy()
	x, y := textOrigin(self.renderer, self.opts)
	self.renderer.DrawWithWrap(canvas, self.opts.text, x, y, maxLineWidth(self.opts))
}

// Opens a window with the text. R toggles glyph rotation.
func run(renderer *mtxt.Renderer, opts options) error {
	ebiten.SetWindowTitle("mtxtview")
	ebiten.SetWindowSize(opts.canvasWidth, opts.canvasHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{ renderer: renderer, opts: opts })
}
