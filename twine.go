package mtxt

import "fmt"
import "image/color"
import "strings"
import "unicode/utf8"

import "github.com/tinne26/mtxt/internal"
import "github.com/tinne26/mtxt/markup"

// A Twine is a builder for markup text. Text added to a twine is
// escaped, so it's always displayed as is, while colors are added as
// markup tags. Use [Twine.String]() to get the resulting markup.
//
// Notice that the markup format can't express a literal '[' directly
// followed by ']' or a valid color tag. In these cases, the escaped
// bracket will still be displayed, but the rest will be interpreted
// as a tag. These cases are reported through [Logger]() at debug level.
type Twine struct {
	contents []byte
	depth int // open color scopes
}

type twinePopSpecialDirective uint8

// Constants for popping colors when working with [Weave]()
// and [Twine.Weave]().
const (
	Pop    twinePopSpecialDirective = 66 // pop last color still active
	PopAll twinePopSpecialDirective = 67 // pop all colors still active
)

// Creates a [Twine] from the given arguments. For example:
//   rgba  := color.RGBA{ 80, 200, 120, 255 }
//   twine := mtxt.Weave("NICE ", rgba, "EMERALD", mtxt.Pop, '!')
// You can also pass a twine as the first argument to append to it
// instead of creating a new one. Strings, runes and rune slices are
// added as text, [color.Color] values are pushed as colors, and the
// mtxt.[Pop] and mtxt.[PopAll] constants pop colors.
func Weave(args ...any) Twine {
	var twine Twine
	if len(args) > 0 {
		base, isTwine := args[0].(Twine)
		if isTwine {
			twine.contents = append(twine.contents, base.contents...)
			twine.depth = base.depth
			args = args[1 : ]
		}
	}
	twine.Weave(args...)
	return twine
}

// Like [Weave](), but appending to the current twine.
func (self *Twine) Weave(args ...any) *Twine {
	for _, arg := range args {
		switch typedArg := arg.(type) {
		case string:
			self.Add(typedArg)
		case rune:
			self.AddRunes(typedArg)
		case []rune:
			self.AddRunes(typedArg...)
		case markup.Color:
			self.PushColor(typedArg)
		case color.Color:
			self.PushColor(typedArg)
		case twinePopSpecialDirective:
			switch typedArg {
			case Pop: self.Pop()
			case PopAll: self.PopAll()
			default:
				panic("invalid twine pop directive")
			}
		case Twine:
			self.contents = append(self.contents, typedArg.contents...)
			self.depth += typedArg.depth
		default:
			panic(fmt.Sprintf("unexpected Weave() argument type %T", arg))
		}
	}
	return self
}

// --- twine basic text content addition ---

// Adds the given text, escaping any '['.
func (self *Twine) Add(text string) *Twine {
	if strings.IndexByte(text, '[') != -1 {
		self.reportLiveTags([]rune(text))
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '[' {
			self.contents = append(self.contents, '[', '[')
		} else {
			self.contents = append(self.contents, text[i])
		}
	}
	return self
}

// Adds the given code points, escaping any '['.
func (self *Twine) AddRunes(codePoints ...rune) *Twine {
	self.reportLiveTags(codePoints)
	for _, codePoint := range codePoints {
		if codePoint == '[' {
			self.contents = append(self.contents, '[', '[')
		} else {
			self.contents = utf8.AppendRune(self.contents, codePoint)
		}
	}
	return self
}

// Escaped brackets followed by "]" or a color tag leave the tag live.
func (self *Twine) reportLiveTags(chars []rune) {
	for i, char := range chars {
		if char != '[' { continue }
		token, _ := markup.Scan(chars, i)
		if token.Kind == markup.Push || token.Kind == markup.Pop {
			internal.Logger().Debug("twine text contains a live markup tag", "tag", token.Kind.String(), "text", string(chars))
			return
		}
	}
}

func (self *Twine) AddLineBreak() *Twine {
	self.contents = append(self.contents, '\n')
	return self
}

// Clears the twine contents, retaining the underlying buffer.
func (self *Twine) Reset() {
	self.contents = self.contents[ : 0]
	self.depth = 0
}

// --- push / pop ---

// Pushes a color scope. Text added afterwards uses the given color
// until the scope is popped.
func (self *Twine) PushColor(textColor color.Color) *Twine {
	self.contents = append(self.contents, markup.ColorFrom(textColor).Tag()...)
	self.depth += 1
	return self
}

// Pops the last color scope. Popping with no open scopes is allowed,
// and restores the base color.
func (self *Twine) Pop() *Twine {
	self.contents = append(self.contents, '[', ']')
	self.depth = max(self.depth - 1, 0)
	return self
}

// Pops all open color scopes.
func (self *Twine) PopAll() *Twine {
	for self.depth > 0 { self.Pop() }
	return self
}

// Returns the number of open color scopes.
func (self *Twine) Depth() int { return self.depth }

// Returns the twine as markup text.
func (self Twine) String() string {
	return string(self.contents)
}
