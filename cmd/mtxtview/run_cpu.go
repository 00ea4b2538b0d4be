//go:build cputext

package main

import "fmt"
import "image"
import "image/color"
import "image/draw"
import "image/png"
import "os"

import "github.com/tinne26/mtxt"

// Draws the text into an image and saves it as a PNG file.
func run(renderer *mtxt.Renderer, opts options) error {
	canvas := image.NewRGBA(image.Rect(0, 0, opts.canvasWidth, opts.canvasHeight))
	background := image.NewUniform(color.RGBA{24, 22, 32, 255})
	draw.Draw(canvas, canvas.Bounds(), background, image.Point{}, draw.Src)

	x, y := textOrigin(renderer, opts)
	renderer.DrawWithWrap(canvas, opts.text, x, y, maxLineWidth(opts))

	file, err := os.Create(opts.output)
	if err != nil { return err }
	err = png.Encode(file, canvas)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding %s: %w", opts.output, err)
	}
	err = file.Close()
	if err != nil { return err }
	fmt.Printf("saved %s\n", opts.output)
	return nil
}
