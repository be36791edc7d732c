package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wordisa/grammar"
)

func TestLexer(t *testing.T) {
	assert := assert.New(t)

	lexer := &Lexer{}

	tokens, err := lexer.Tokens("loop: lw t0, -8(sp) ; comment")
	assert.NoError(err)
	assert.Equal([]grammar.Token{
		{Kind: grammar.TOKEN_LABEL_DEF, Text: "loop", Column: 1},
		{Kind: grammar.TOKEN_MNEMONIC, Text: "lw", Column: 7},
		{Kind: grammar.TOKEN_REGISTER, Text: "t0", Column: 10},
		{Kind: grammar.TOKEN_COMMA, Text: ",", Column: 12},
		{Kind: grammar.TOKEN_DECIMAL, Text: "-8", Column: 14},
		{Kind: grammar.TOKEN_PAREN_L, Text: "(", Column: 16},
		{Kind: grammar.TOKEN_REGISTER, Text: "sp", Column: 17},
		{Kind: grammar.TOKEN_PAREN_R, Text: ")", Column: 19},
		{Kind: grammar.TOKEN_EOL, Column: 21},
	}, tokens)
}

func TestLexerKinds(t *testing.T) {
	assert := assert.New(t)

	lexer := &Lexer{IsLabel: func(name string) bool { return name == "done" }}

	table := [](struct {
		line  string
		kinds []grammar.TokenKind
	}){
		{"", []grammar.TokenKind{grammar.TOKEN_EOL}},
		{"   # only a comment", []grammar.TokenKind{grammar.TOKEN_EOL}},
		{".word 0x10, 0b101, 7", []grammar.TokenKind{
			grammar.TOKEN_DIRECTIVE, grammar.TOKEN_HEX, grammar.TOKEN_COMMA, grammar.TOKEN_BINARY,
			grammar.TOKEN_COMMA, grammar.TOKEN_DECIMAL, grammar.TOKEN_EOL}},
		{"jal ra, done", []grammar.TokenKind{
			grammar.TOKEN_MNEMONIC, grammar.TOKEN_REGISTER, grammar.TOKEN_COMMA, grammar.TOKEN_LABEL, grammar.TOKEN_EOL}},
		{"jal ra, later", []grammar.TokenKind{
			grammar.TOKEN_MNEMONIC, grammar.TOKEN_REGISTER, grammar.TOKEN_COMMA, grammar.TOKEN_SYMBOL, grammar.TOKEN_EOL}},
		{"add add, x5", []grammar.TokenKind{
			grammar.TOKEN_MNEMONIC, grammar.TOKEN_SYMBOL, grammar.TOKEN_COMMA, grammar.TOKEN_REGISTER, grammar.TOKEN_EOL}},
		{"a: b: sub", []grammar.TokenKind{
			grammar.TOKEN_LABEL_DEF, grammar.TOKEN_LABEL_DEF, grammar.TOKEN_MNEMONIC, grammar.TOKEN_EOL}},
		{"frob a0", []grammar.TokenKind{
			grammar.TOKEN_SYMBOL, grammar.TOKEN_REGISTER, grammar.TOKEN_EOL}},
	}

	for _, entry := range table {
		tokens, err := lexer.Tokens(entry.line)
		assert.NoError(err, entry.line)
		var kinds []grammar.TokenKind
		for _, tok := range tokens {
			kinds = append(kinds, tok.Kind)
		}
		assert.Equal(entry.kinds, kinds, entry.line)
	}
}

func TestLexerInvalid(t *testing.T) {
	assert := assert.New(t)

	lexer := &Lexer{}

	_, err := lexer.Tokens("add a0, a0, @")
	assert.Equal(ErrTokenInvalid{Column: 13, Text: "@"}, err)
	assert.ErrorIs(err, ErrTokenInvalid{})
}
