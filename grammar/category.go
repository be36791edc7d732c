package grammar

// Category is the syntactic class expected at one position of an operand list.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	CAT_REGISTER  = Category(0) // register
	CAT_COMMA     = Category(1) // comma
	CAT_LABEL     = Category(2) // label
	CAT_IMMEDIATE = Category(3) // decimal|hex|binary
	CAT_PAREN_L   = Category(4) // (
	CAT_PAREN_R   = Category(5) // )
	CAT_EOL       = Category(6) // eol
)

// Match returns true if a token of kind is acceptable where cat is expected.
// A bare symbol stands in for an immediate, so constants may be declared
// after their first use.
func Match(kind TokenKind, cat Category) bool {
	switch cat {
	case CAT_REGISTER:
		return kind == TOKEN_REGISTER
	case CAT_COMMA:
		return kind == TOKEN_COMMA
	case CAT_LABEL:
		return kind == TOKEN_LABEL
	case CAT_IMMEDIATE:
		switch kind {
		case TOKEN_DECIMAL, TOKEN_HEX, TOKEN_BINARY, TOKEN_SYMBOL:
			return true
		}
	case CAT_PAREN_L:
		return kind == TOKEN_PAREN_L
	case CAT_PAREN_R:
		return kind == TOKEN_PAREN_R
	case CAT_EOL:
		return kind == TOKEN_EOL
	}

	return false
}
