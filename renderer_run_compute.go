package mtxt

import "math"

import "github.com/tinne26/mtxt/markup"
import "github.com/tinne26/mtxt/strand"

// A glyph placed by the layout pass, with the pen position still in
// scaled units and relative to the text origin.
type glyphPlacement struct {
	entry wordEntry
	penX float32
	penY float32
	line int
}

// State for a single measure or layout pass. The same code path is
// used for both, the only difference being whether a placement
// function is set. This guarantees that measuring and drawing always
// break lines at the same points.
type layoutRun struct {
	// configuration
	strand *strand.Strand
	size uint16 // rasterization size, already dpi scaled
	scaleX float32
	scaleY float32
	dpi float32
	maxLineWidth float32 // scaled
	baseColor markup.Color
	markupEnabled bool

	// pass state
	chars []rune
	decoder markup.Decoder
	colors markup.ColorStack
	word pendingWord
	lines lineBreaker
	maxExtent float32 // max glyph extent above the baseline, scaled
	place func(glyphPlacement) // nil when only measuring
}

// Configures the run from the given params. The max line width is
// taken in unscaled units.
func (self *layoutRun) Configure(params *TextParams, dpi float32) {
	self.strand = params.Font
	if self.strand == nil { self.strand = DefaultStrand() }
	if dpi <= 0 || math.IsNaN(float64(dpi)) { dpi = 1 }
	self.dpi = dpi

	size := params.FontSize
	if size == 0 { size = self.strand.DefaultSize() }
	self.size = uint16(clamp(math.Round(float64(size)*float64(dpi)), 1, math.MaxUint16))
	self.scaleX = params.FontScale*params.FontScaleAspect
	self.scaleY = params.FontScale
	self.baseColor = params.Color
	self.markupEnabled = params.EnableMarkup
	if isWrapDisabled(params.MaxLineWidth) {
		self.maxLineWidth = float32(math.Inf(1))
	} else {
		self.maxLineWidth = params.MaxLineWidth*dpi
	}
}

// Runs the layout for the given text. If place is nil, glyphs are only
// measured.
func (self *layoutRun) Run(text string, place func(glyphPlacement)) TextDimensions {
	if text == "" { return TextDimensions{} }

	// initialize pass state
	text = self.strand.NormalizeText(text)
	self.chars = self.chars[ : 0]
	for _, char := range text {
		self.chars = append(self.chars, char)
	}
	self.place = place
	self.colors.Reset(self.baseColor)
	self.word.Reset()
	self.lines.Reset(self.maxLineWidth, self.computeLineHeight())
	self.maxExtent = float32(math.Inf(-1))

	// main loop
	self.decoder.Reset(self.chars)
	for {
		token, ok := self.decoder.Next()
		if !ok { break }
		switch token.Kind {
		case markup.Push:
			self.flushWord()
			if self.markupEnabled { self.colors.Push(token.Color) }
		case markup.Pop:
			self.flushWord()
			if self.markupEnabled { self.colors.Pop() }
		case markup.Literal:
			self.processChar(token.Literal)
		default:
			panic(brokenCode)
		}
	}

	// text end
	self.flushWord()
	self.lines.Break()
	self.place = nil
	return self.dimensions()
}

// Line height shared by all lines: the tallest glyph among all the
// characters of the text, tags included, plus some padding.
func (self *layoutRun) computeLineHeight() float32 {
	var height float32
	for _, char := range self.chars {
		_, metrics := self.strand.Glyph(char, self.size)
		height = max(height, metrics.Height*self.scaleY)
	}
	if height == 0 {
		height = float32(self.size)*self.scaleY
	}
	if height <= 0 {
		height = float32(self.size)
		if height <= 0 { height = self.dpi }
	}
	return height + lineHeightPadding
}

func (self *layoutRun) processChar(char rune) {
	if char == '\n' {
		self.flushWord()
		self.lines.Break()
		return
	}

	codePoint, metrics := self.strand.Glyph(char, self.size)
	self.maxExtent = max(self.maxExtent, metrics.Ascent(self.scaleY))
	entry := wordEntry{
		codePoint: codePoint,
		advance: metrics.Advance*self.scaleX,
		metrics: metrics,
		color: self.colors.Current(),
	}

	switch char {
	case ' ', '\t', '-':
		self.flushWord()
		if self.lines.Overflows(entry.advance) && !self.lines.IsLineEmpty() {
			self.lines.Break()
			if char != '-' { return } // spaces and tabs are dropped on wraps
		}
		self.placeEntry(entry, char != '-')
	default:
		if self.lines.Overflows(self.word.width + entry.advance) {
			if !self.lines.IsLineEmpty() {
				self.lines.Break() // the word moves to the new line
			}
			if self.lines.Overflows(self.word.width + entry.advance) {
				// the word doesn't fit in a line on its own
				self.drainWord()
				if self.lines.Overflows(entry.advance) && !self.lines.IsLineEmpty() {
					self.lines.Break()
				}
			}
		}
		self.word.Push(entry)
	}
}

// Places all the pending word glyphs on the current line.
func (self *layoutRun) flushWord() {
	for _, entry := range self.word.entries {
		self.placeEntry(entry, false)
	}
	self.word.Reset()
}

// Like flushWord, but breaking the line whenever the next glyph
// doesn't fit. Lines always get at least one glyph.
func (self *layoutRun) drainWord() {
	for _, entry := range self.word.entries {
		if self.lines.Overflows(entry.advance) && !self.lines.IsLineEmpty() {
			self.lines.Break()
		}
		self.placeEntry(entry, false)
	}
	self.word.Reset()
}

func (self *layoutRun) placeEntry(entry wordEntry, trimmable bool) {
	if self.place != nil {
		self.place(glyphPlacement{
			entry: entry,
			penX: self.lines.width,
			penY: self.lines.PenY(),
			line: self.lines.Line(),
		})
	}
	self.lines.Advance(entry.advance, trimmable)
}

func (self *layoutRun) dimensions() TextDimensions {
	var dims TextDimensions
	dims.Lines = make([]LineRecord, len(self.lines.records))
	for i, record := range self.lines.records {
		dims.Lines[i] = LineRecord{ Width: record.Width/self.dpi, Height: record.Height/self.dpi }
	}
	dims.Width = self.lines.maxRecordWidth/self.dpi
	dims.Height = float32(len(self.lines.records))*self.lines.lineHeight/self.dpi
	if !math.IsInf(float64(self.maxExtent), -1) {
		dims.OffsetY = self.maxExtent/self.dpi
	}
	return dims
}
