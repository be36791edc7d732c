package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wordisa/isa"
)

func tokens(kinds ...TokenKind) (list []Token) {
	for n, kind := range kinds {
		list = append(list, Token{Kind: kind, Column: n + 1})
	}
	return
}

func TestMatch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		kind  TokenKind
		cat   Category
		match bool
	}){
		{TOKEN_REGISTER, CAT_REGISTER, true},
		{TOKEN_SYMBOL, CAT_REGISTER, false},
		{TOKEN_DECIMAL, CAT_IMMEDIATE, true},
		{TOKEN_HEX, CAT_IMMEDIATE, true},
		{TOKEN_BINARY, CAT_IMMEDIATE, true},
		{TOKEN_SYMBOL, CAT_IMMEDIATE, true},
		{TOKEN_LABEL, CAT_IMMEDIATE, false},
		{TOKEN_LABEL, CAT_LABEL, true},
		{TOKEN_SYMBOL, CAT_LABEL, false},
		{TOKEN_COMMA, CAT_COMMA, true},
		{TOKEN_PAREN_L, CAT_PAREN_L, true},
		{TOKEN_PAREN_R, CAT_PAREN_L, false},
		{TOKEN_PAREN_R, CAT_PAREN_R, true},
		{TOKEN_EOL, CAT_EOL, true},
		{TOKEN_COMMA, CAT_EOL, false},
	}

	for _, entry := range table {
		assert.Equal(entry.match, Match(entry.kind, entry.cat), "%v %v", entry.kind, entry.cat)
	}
}

func TestFamilyOf(t *testing.T) {
	assert := assert.New(t)

	table := map[isa.Mnemonic]Family{
		isa.OP_ADD:     FAMILY_R3,
		isa.OP_SHRA:    FAMILY_R3,
		isa.OP_SYSCALL: FAMILY_R3,
		isa.OP_ADDI:    FAMILY_R2I,
		isa.OP_JALR:    FAMILY_R2I,
		isa.OP_LW:      FAMILY_RIR,
		isa.OP_SW:      FAMILY_RIR,
		isa.OP_BEQ:     FAMILY_R2L,
		isa.OP_BNE:     FAMILY_R2L,
		isa.OP_JAL:     FAMILY_RL,
		isa.OP_LUI:     FAMILY_RI,
		isa.OP_LI:      FAMILY_RI,
	}

	for m, family := range table {
		assert.Equal(family, FamilyOf(m), m.String())
	}
}

func TestRuleShape(t *testing.T) {
	assert := assert.New(t)

	for family := range FAMILY_COUNT {
		rule := RuleFor(Family(family))
		assert.Equal(Family(family), rule.Family)
		assert.Equal(CAT_EOL, rule.Get(rule.Len()-1), rule.Family.String())
		for n, cat := range rule.All() {
			if n < rule.Len()-1 {
				assert.NotEqual(CAT_EOL, cat)
			}
		}
	}

	assert.Equal(6, RuleFor(FAMILY_R3).Len())
	assert.Equal(4, RuleFor(FAMILY_RI).Len())
	assert.Equal(7, RuleFor(FAMILY_RIR).Len())
}

func TestRuleOfCached(t *testing.T) {
	assert := assert.New(t)

	for m := range isa.MNEMONIC_COUNT {
		first := RuleOf(isa.Mnemonic(m))
		second := RuleOf(isa.Mnemonic(m))
		assert.Same(first, second)
	}

	assert.Same(RuleOf(isa.OP_ADD), RuleOf(isa.OP_XOR))
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mnemonic isa.Mnemonic
		tokens   []Token
		err      error
	}){
		{isa.OP_ADD, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_REGISTER, TOKEN_COMMA, TOKEN_REGISTER, TOKEN_EOL), nil},
		{isa.OP_ADDI, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_REGISTER, TOKEN_COMMA, TOKEN_HEX, TOKEN_EOL), nil},
		{isa.OP_ADDI, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_REGISTER, TOKEN_COMMA, TOKEN_SYMBOL, TOKEN_EOL), nil},
		{isa.OP_LW, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_DECIMAL, TOKEN_PAREN_L, TOKEN_REGISTER, TOKEN_PAREN_R, TOKEN_EOL), nil},
		{isa.OP_BEQ, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_REGISTER, TOKEN_COMMA, TOKEN_LABEL, TOKEN_EOL), nil},
		{isa.OP_JAL, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_LABEL, TOKEN_EOL), nil},
		{isa.OP_LUI, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_BINARY, TOKEN_EOL), nil},
		// Tokens past the end of line are not examined.
		{isa.OP_LUI, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_BINARY, TOKEN_EOL, TOKEN_COMMA), nil},
		{isa.OP_ADD, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_LABEL),
			ErrInvalidInstructionSequence{Expected: CAT_REGISTER, Position: 2, Found: Token{Kind: TOKEN_LABEL, Column: 3}}},
		{isa.OP_ADD, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_REGISTER),
			ErrInvalidInstructionSequence{Expected: CAT_COMMA, Position: 3, Found: Token{Kind: TOKEN_EOL}}},
		{isa.OP_LW, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_DECIMAL, TOKEN_PAREN_L, TOKEN_REGISTER, TOKEN_EOL),
			ErrInvalidInstructionSequence{Expected: CAT_PAREN_R, Position: 5, Found: Token{Kind: TOKEN_EOL, Column: 6}}},
		{isa.OP_JAL, tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_LABEL, TOKEN_COMMA),
			ErrInvalidInstructionSequence{Expected: CAT_EOL, Position: 3, Found: Token{Kind: TOKEN_COMMA, Column: 4}}},
		{isa.OP_ADD, nil,
			ErrInvalidInstructionSequence{Expected: CAT_REGISTER, Position: 0, Found: Token{Kind: TOKEN_EOL}}},
	}

	for _, entry := range table {
		err := RuleOf(entry.mnemonic).Validate(entry.tokens)
		if entry.err == nil {
			assert.NoError(err, entry.mnemonic.String())
			continue
		}
		assert.Equal(entry.err, err, entry.mnemonic.String())
		assert.True(errors.Is(err, ErrInvalidInstructionSequence{}))
	}
}

func TestValidateIdempotent(t *testing.T) {
	assert := assert.New(t)

	list := tokens(TOKEN_REGISTER, TOKEN_COMMA, TOKEN_REGISTER, TOKEN_COMMA, TOKEN_SYMBOL, TOKEN_EOL)
	rule := RuleOf(isa.OP_BNE)

	first := rule.Validate(list)
	second := rule.Validate(list)
	assert.Error(first)
	assert.Equal(first, second)
	assert.Equal(6, rule.Len())
}
