package mtxt

import "math"

import "github.com/tinne26/mtxt/core"
import "github.com/tinne26/mtxt/markup"

// --- pending word ---

type wordEntry struct {
	codePoint rune // already resolved by the strand
	advance float32 // scaled
	metrics core.GlyphMetrics
	color markup.Color
}

// Characters between two break opportunities, waiting to be placed.
type pendingWord struct {
	entries []wordEntry
	width float32 // scaled
}

func (self *pendingWord) Push(entry wordEntry) {
	self.entries = append(self.entries, entry)
	self.width += entry.advance
}

func (self *pendingWord) IsEmpty() bool { return len(self.entries) == 0 }

func (self *pendingWord) Reset() {
	self.entries = self.entries[ : 0]
	self.width = 0
}

// --- line breaker ---

// Keeps track of the current line and the completed ones. All values
// are scaled.
type lineBreaker struct {
	maxWidth float32 // +Inf if wrapping is disabled
	lineHeight float32
	width float32 // including trailing spaces and tabs
	contentWidth float32 // width up to the last non trimmable glyph
	records []LineRecord
	maxRecordWidth float32
}

func (self *lineBreaker) Reset(maxWidth, lineHeight float32) {
	self.maxWidth = maxWidth
	self.lineHeight = lineHeight
	self.width, self.contentWidth = 0, 0
	self.records = self.records[ : 0]
	self.maxRecordWidth = 0
}

// Returns whether adding the given width to the current line would
// exceed the maximum line width. Reaching the limit exactly is fine.
func (self *lineBreaker) Overflows(width float32) bool {
	return self.width + width > self.maxWidth
}

func (self *lineBreaker) IsLineEmpty() bool { return self.width <= 0 }

func (self *lineBreaker) Advance(advance float32, trimmable bool) {
	self.width += advance
	if !trimmable { self.contentWidth = self.width }
}

// Records the current line without its trailing spaces and tabs,
// and starts a new one.
func (self *lineBreaker) Break() {
	self.records = append(self.records, LineRecord{ Width: self.contentWidth, Height: self.lineHeight })
	self.maxRecordWidth = max(self.maxRecordWidth, self.contentWidth)
	self.width, self.contentWidth = 0, 0
}

// Index of the current line.
func (self *lineBreaker) Line() int { return len(self.records) }

func (self *lineBreaker) PenY() float32 {
	return float32(len(self.records))*self.lineHeight
}

func isWrapDisabled(maxLineWidth float32) bool {
	return math.IsInf(float64(maxLineWidth), 1) || math.IsNaN(float64(maxLineWidth))
}
