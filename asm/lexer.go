package asm

import (
	"regexp"
	"strings"

	"github.com/ezrec/wordisa/grammar"
	"github.com/ezrec/wordisa/isa"
)

// lexemes are tried in order at each position of a line.
var lexemes = []struct {
	kind grammar.TokenKind
	re   *regexp.Regexp
}{
	{grammar.TOKEN_LABEL_DEF, regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*:`)},
	{grammar.TOKEN_DIRECTIVE, regexp.MustCompile(`^\.[A-Za-z_][A-Za-z0-9_]*`)},
	{grammar.TOKEN_HEX, regexp.MustCompile(`^[-+]?0[xX][0-9a-fA-F_]+`)},
	{grammar.TOKEN_BINARY, regexp.MustCompile(`^[-+]?0[bB][01_]+`)},
	{grammar.TOKEN_DECIMAL, regexp.MustCompile(`^[-+]?[0-9][0-9_]*`)},
	{grammar.TOKEN_SYMBOL, regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)},
	{grammar.TOKEN_COMMA, regexp.MustCompile(`^,`)},
	{grammar.TOKEN_PAREN_L, regexp.MustCompile(`^\(`)},
	{grammar.TOKEN_PAREN_R, regexp.MustCompile(`^\)`)},
}

// uncomment removes a trailing ';' or '#' comment.
func uncomment(line string) string {
	if n := strings.IndexAny(line, ";#"); n >= 0 {
		line = line[:n]
	}
	return line
}

// Lexer splits one source line into grammar tokens.
type Lexer struct {
	// IsLabel reports whether an identifier names a label. If nil, every
	// identifier that is neither a mnemonic nor a register is a symbol.
	IsLabel func(name string) bool
}

// identify refines an identifier into a mnemonic, register, label or symbol.
// Mnemonics are only recognized before the operands start.
func (lex *Lexer) identify(name string, operands bool) grammar.TokenKind {
	if !operands {
		if _, ok := isa.ParseMnemonic(name); ok {
			return grammar.TOKEN_MNEMONIC
		}
	}
	if _, ok := isa.ParseRegister(name); ok {
		return grammar.TOKEN_REGISTER
	}
	if lex.IsLabel != nil && lex.IsLabel(name) {
		return grammar.TOKEN_LABEL
	}
	return grammar.TOKEN_SYMBOL
}

// Tokens splits a line into tokens. The list always ends with TOKEN_EOL.
// Label definitions carry their name without the trailing colon.
func (lex *Lexer) Tokens(line string) (tokens []grammar.Token, err error) {
	line = uncomment(line)

	operands := false
	column := 1
	for {
		trimmed := strings.TrimLeft(line, " \t")
		column += len(line) - len(trimmed)
		line = trimmed
		if len(line) == 0 {
			break
		}

		tok := grammar.Token{Column: column}
		for _, lexeme := range lexemes {
			text := lexeme.re.FindString(line)
			if len(text) == 0 {
				continue
			}
			tok.Kind = lexeme.kind
			tok.Text = text
			break
		}

		if len(tok.Text) == 0 {
			err = ErrTokenInvalid{Column: column, Text: line}
			return
		}

		line = line[len(tok.Text):]
		column += len(tok.Text)

		switch tok.Kind {
		case grammar.TOKEN_LABEL_DEF:
			tok.Text = strings.TrimSuffix(tok.Text, ":")
		case grammar.TOKEN_DIRECTIVE:
			operands = true
		case grammar.TOKEN_SYMBOL:
			tok.Kind = lex.identify(tok.Text, operands)
			operands = true
		}

		tokens = append(tokens, tok)
	}

	tokens = append(tokens, grammar.Token{Kind: grammar.TOKEN_EOL, Column: column})

	return
}
