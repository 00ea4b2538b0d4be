package markup

import "strings"

// A Decoder walks a sequence of characters and yields the visible
// characters and color tags in order. Visible characters are always
// reported as [Literal] tokens, including brackets that don't start
// a recognized tag.
//
// The second bracket of a "[[" escape is scanned again: if it opens a
// color or pop tag, that tag is reported; otherwise it's consumed as
// part of the escape. This makes "[[" a single visible '[' while
// "[[]" still closes a scope.
type Decoder struct {
	chars []rune
	index int
	escapeTail bool
}

// Resets the decoder to the start of the given characters.
func (self *Decoder) Reset(chars []rune) {
	self.chars = chars
	self.index = 0
	self.escapeTail = false
}

// Returns the index of the next character to be decoded.
func (self *Decoder) Index() int { return self.index }

// Returns the next token, or false at the end of the input.
// Noop tokens are never returned.
func (self *Decoder) Next() (Token, bool) {
	for self.index < len(self.chars) {
		char := self.chars[self.index]
		if char != '[' {
			self.escapeTail = false
			self.index += 1
			return Token{ Kind: Literal, Literal: char }, true
		}

		token, next := Scan(self.chars, self.index)
		if self.escapeTail {
			self.escapeTail = false
			if token.Kind == Push || token.Kind == Pop {
				self.index = next
				return token, true
			}
			self.index += 1 // swallowed by the escape
			continue
		}

		self.index = next
		switch token.Kind {
		case Push, Pop:
			return token, true
		case Literal:
			self.escapeTail = token.Escape
			return literalBracket, true
		default: // Noop
			return literalBracket, true
		}
	}
	return Token{}, false
}

// Returns the visible text, with all tags removed and escapes resolved.
func Strip(text string) string {
	var decoder Decoder
	decoder.Reset([]rune(text))
	var builder strings.Builder
	builder.Grow(len(text))
	for {
		token, ok := decoder.Next()
		if !ok { return builder.String() }
		if token.Kind == Literal {
			builder.WriteRune(token.Literal)
		}
	}
}

// Returns the text with every '[' escaped, so it can be embedded
// in markup and displayed literally.
func Escape(text string) string {
	return strings.ReplaceAll(text, "[", "[[")
}
