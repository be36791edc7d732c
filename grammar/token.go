package grammar

import (
	"fmt"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_REGISTER  = TokenKind(0)  // register
	TOKEN_SYMBOL    = TokenKind(1)  // symbol
	TOKEN_LABEL     = TokenKind(2)  // label
	TOKEN_DECIMAL   = TokenKind(3)  // decimal
	TOKEN_HEX       = TokenKind(4)  // hex
	TOKEN_BINARY    = TokenKind(5)  // binary
	TOKEN_COMMA     = TokenKind(6)  // comma
	TOKEN_PAREN_L   = TokenKind(7)  // (
	TOKEN_PAREN_R   = TokenKind(8)  // )
	TOKEN_EOL       = TokenKind(9)  // eol
	TOKEN_DIRECTIVE = TokenKind(10) // directive
	TOKEN_MNEMONIC  = TokenKind(11) // mnemonic
	TOKEN_LABEL_DEF = TokenKind(12) // label:
)

// Token is one lexical token of a source line.
type Token struct {
	Kind   TokenKind
	Text   string // Source text; empty for TOKEN_EOL.
	Column int    // 1-based column of the first character.
}

// Matches returns true if the token is acceptable where cat is expected.
func (tok Token) Matches(cat Category) bool {
	return Match(tok.Kind, cat)
}

func (tok Token) String() string {
	if len(tok.Text) == 0 {
		return tok.Kind.String()
	}
	return fmt.Sprintf("%v '%v'", tok.Kind, tok.Text)
}
