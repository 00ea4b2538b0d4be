package markup

// Token kinds produced by [Scan].
type TokenKind uint8
const (
	Noop    TokenKind = iota // not a tag, the bracket is ordinary text
	Literal                  // a literal character
	Push                     // open a new color scope
	Pop                      // close the innermost color scope
)

// Returns a string representation of the token kind.
func (self TokenKind) String() string {
	switch self {
	case Noop    : return "Noop"
	case Literal : return "Literal"
	case Push    : return "Push"
	case Pop     : return "Pop"
	default:
		return "TokenKindUnknown"
	}
}

// Tokens are the result of scanning a '[' led sequence.
type Token struct {
	Kind TokenKind
	Literal rune // only relevant for Literal tokens
	Color Color // only relevant for Push tokens

	// Set for the literal produced by a "[[" escape. The second
	// bracket is not consumed by [Scan].
	Escape bool
}

var literalBracket = Token{ Kind: Literal, Literal: '[' }

// Scans the markup sequence that starts at chars[pos], which is
// expected to be '[', and returns the resulting token and the
// index at which scanning should resume:
//  - "[[" results in a literal '[' with Escape set, resuming at pos + 1.
//  - "[]" results in a Pop, resuming at pos + 2.
//  - "[#RRGGBB]" and "[#RRGGBBAA]" result in a Push. Hex digits are
//    case insensitive and 6 digit colors are fully opaque.
//  - Malformed color tags result in a literal '[', resuming at pos + 1,
//    so the rest of the malformed content is scanned as regular text.
//  - Anything else, including a '[' at the end of the input, results
//    in a Noop, resuming at pos + 1.
func Scan(chars []rune, pos int) (Token, int) {
	if pos < 0 || pos >= len(chars) || chars[pos] != '[' {
		return Token{ Kind: Noop }, pos + 1
	}
	if pos + 1 >= len(chars) { return Token{ Kind: Noop }, pos + 1 }

	switch chars[pos + 1] {
	case '[':
		token := literalBracket
		token.Escape = true
		return token, pos + 1
	case ']':
		return Token{ Kind: Pop }, pos + 2
	case '#':
		return scanColor(chars, pos)
	default:
		return Token{ Kind: Noop }, pos + 1
	}
}

// Precondition: chars[pos : pos + 2] == "[#".
func scanColor(chars []rune, pos int) (Token, int) {
	var rgba uint32
	var digits int
	for i := pos + 2; i < len(chars); i++ {
		char := chars[i]
		if char == ']' {
			switch digits {
			case 6: return Token{ Kind: Push, Color: colorFromHex32(rgba << 8 | 0xFF) }, i + 1
			case 8: return Token{ Kind: Push, Color: colorFromHex32(rgba) }, i + 1
			default:
				return literalBracket, pos + 1
			}
		}

		nibble, isHex := hexNibble(char)
		if !isHex || digits == 8 { return literalBracket, pos + 1 }
		rgba = (rgba << 4) | nibble
		digits += 1
	}
	return literalBracket, pos + 1 // unterminated
}

func hexNibble(char rune) (uint32, bool) {
	switch {
	case char >= '0' && char <= '9': return uint32(char - '0'), true
	case char >= 'a' && char <= 'f': return uint32(char - 'a') + 10, true
	case char >= 'A' && char <= 'F': return uint32(char - 'A') + 10, true
	default:
		return 0, false
	}
}
