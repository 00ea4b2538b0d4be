// Command mtxtview draws markup text with mtxt, either to a window
// or, when built with -tags cputext, to a PNG file.
//
// Example:
//   mtxtview -text "HELLO [#ff8000]ORANGE[] WORLD" -scale 3 -width 120
package main

import "flag"
import "fmt"
import "log"
import "log/slog"
import "os"

import "github.com/dustin/go-humanize"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/cache"

type options struct {
	text string
	fontPath string
	size uint
	scale float64
	maxWidth float64
	align string
	output string
	canvasWidth int
	canvasHeight int
}

func main() {
	var opts options
	var verbose bool
	flag.StringVar(&opts.text, "text", "HELLO [#ff8000]ORANGE[] WORLD\n[[escaped] [#40c0ff]markup[]", "markup text to draw")
	flag.StringVar(&opts.fontPath, "font", "", "TTF, OTF or ggfnt font file (default: built-in 7x13 font)")
	flag.UintVar(&opts.size, "size", 0, "rasterization size (default: font native size)")
	flag.Float64Var(&opts.scale, "scale", 2, "text scale")
	flag.Float64Var(&opts.maxWidth, "width", 0, "max line width, unscaled (0 disables wrapping)")
	flag.StringVar(&opts.align, "align", "center", "text align: center, top-left or baseline")
	flag.StringVar(&opts.output, "out", "mtxtview.png", "output file (cputext builds only)")
	flag.IntVar(&opts.canvasWidth, "canvas-width", 640, "canvas width")
	flag.IntVar(&opts.canvasHeight, "canvas-height", 360, "canvas height")
	flag.BoolVar(&verbose, "v", false, "log glyph fallbacks and warnings")
	flag.Parse()

	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: slog.LevelDebug })
		mtxt.SetLogger(slog.New(handler))
	}

	renderer, err := newRenderer(opts)
	if err != nil { log.Fatalf("mtxtview: %v", err) }

	dims := renderer.MeasureWithWrap(opts.text, maxLineWidth(opts))
	fmt.Printf("text size: %.1fx%.1f, %d lines\n", dims.Width, dims.Height, dims.NumLines())
	if !renderer.Advanced().AllGlyphsAvailable(opts.text) {
		fmt.Println("warning: some glyphs are missing and will be replaced by fallbacks")
	}

	err = run(renderer, opts)
	if err != nil { log.Fatalf("mtxtview: %v", err) }
	printCacheStats()
}

func newRenderer(opts options) (*mtxt.Renderer, error) {
	renderer := mtxt.NewRenderer()
	if opts.fontPath != "" {
		fontStrand, err := mtxt.NewStrand(opts.fontPath)
		if err != nil { return nil, err }
		fontStrand.SetNormalization(true)
		renderer.SetStrand(fontStrand)
	}
	if opts.size > 0 {
		renderer.SetSize(uint16(min(opts.size, 65535)))
	}
	renderer.SetScale(float32(opts.scale))

	switch opts.align {
	case "center":
		renderer.SetAlign(mtxt.Center)
	case "top-left":
		renderer.SetAlign(mtxt.Top | mtxt.Left)
	case "baseline":
		renderer.SetAlign(mtxt.Baseline | mtxt.Left)
	default:
		return nil, fmt.Errorf("unknown align %q", opts.align)
	}
	return renderer, nil
}

// Returns the text origin for the renderer's align.
func textOrigin(renderer *mtxt.Renderer, opts options) (x, y float32) {
	switch renderer.GetAlign() {
	case mtxt.Center:
		return float32(opts.canvasWidth)/2, float32(opts.canvasHeight)/2
	case mtxt.Top | mtxt.Left:
		return 16, 16
	default:
		return 16, 16 + renderer.Measure(opts.text).OffsetY
	}
}

func maxLineWidth(opts options) float32 {
	if opts.maxWidth <= 0 { return mtxt.NoWrap }
	return float32(opts.maxWidth)
}

func printCacheStats() {
	stats := cache.GetStats()
	fmt.Printf(
		"glyph cache: %d entries, %s in use (peak %s, capacity %s)\n",
		stats.NumEntries,
		humanize.IBytes(uint64(stats.CurrentSize)),
		humanize.IBytes(uint64(stats.PeakSize)),
		humanize.IBytes(uint64(stats.Capacity)),
	)
}
