package grammar

import (
	"iter"
	"slices"

	"github.com/ezrec/wordisa/isa"
)

// Family is an operand rule shared by several mnemonics.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_R3  = Family(0) // r3
	FAMILY_R2I = Family(1) // r2i
	FAMILY_R2L = Family(2) // r2l
	FAMILY_RI  = Family(3) // ri
	FAMILY_RIR = Family(4) // rir
	FAMILY_RL  = Family(5) // rl
)

// FAMILY_COUNT is the number of operand rule families.
const FAMILY_COUNT = int(FAMILY_RL) + 1

// formatFamily maps instruction formats to their operand rule.
var formatFamily = map[isa.Format]Family{
	isa.FORMAT_R:  FAMILY_R3,
	isa.FORMAT_IA: FAMILY_R2I,
	isa.FORMAT_IJ: FAMILY_R2I,
	isa.FORMAT_IL: FAMILY_RIR,
	isa.FORMAT_S:  FAMILY_RIR,
	isa.FORMAT_B:  FAMILY_R2L,
	isa.FORMAT_J:  FAMILY_RL,
	isa.FORMAT_U:  FAMILY_RI,
}

// Rule is the expanded token category sequence of a family.
type Rule struct {
	Family Family

	sequence []Category
}

// rules holds the expanded rule of every family. It is never modified.
var rules = [FAMILY_COUNT]Rule{
	FAMILY_R3:  {FAMILY_R3, []Category{CAT_REGISTER, CAT_COMMA, CAT_REGISTER, CAT_COMMA, CAT_REGISTER, CAT_EOL}},
	FAMILY_R2I: {FAMILY_R2I, []Category{CAT_REGISTER, CAT_COMMA, CAT_REGISTER, CAT_COMMA, CAT_IMMEDIATE, CAT_EOL}},
	FAMILY_R2L: {FAMILY_R2L, []Category{CAT_REGISTER, CAT_COMMA, CAT_REGISTER, CAT_COMMA, CAT_LABEL, CAT_EOL}},
	FAMILY_RI:  {FAMILY_RI, []Category{CAT_REGISTER, CAT_COMMA, CAT_IMMEDIATE, CAT_EOL}},
	FAMILY_RIR: {FAMILY_RIR, []Category{CAT_REGISTER, CAT_COMMA, CAT_IMMEDIATE, CAT_PAREN_L, CAT_REGISTER, CAT_PAREN_R, CAT_EOL}},
	FAMILY_RL:  {FAMILY_RL, []Category{CAT_REGISTER, CAT_COMMA, CAT_LABEL, CAT_EOL}},
}

// FamilyOf returns the operand rule family of a mnemonic.
func FamilyOf(m isa.Mnemonic) Family {
	return formatFamily[m.Format()]
}

// RuleFor returns the rule of a family.
func RuleFor(family Family) *Rule {
	return &rules[family]
}

// RuleOf returns the rule of a mnemonic. Repeated calls return the same Rule.
func RuleOf(m isa.Mnemonic) *Rule {
	return RuleFor(FamilyOf(m))
}

// Len returns the number of categories, including the final CAT_EOL.
func (rule *Rule) Len() int {
	return len(rule.sequence)
}

// Get returns the category expected at position n.
func (rule *Rule) Get(n int) Category {
	return rule.sequence[n]
}

// All iterates the positions and categories of the rule.
func (rule *Rule) All() iter.Seq2[int, Category] {
	return slices.All(rule.sequence)
}

// Validate compares tokens with the rule position by position. The first
// mismatch, or the first position with no token, fails with
// ErrInvalidInstructionSequence. Tokens after the CAT_EOL position are not
// examined.
func (rule *Rule) Validate(tokens []Token) (err error) {
	for n, want := range rule.sequence {
		if n >= len(tokens) {
			err = ErrInvalidInstructionSequence{Expected: want, Position: n, Found: Token{Kind: TOKEN_EOL}}
			return
		}
		if !tokens[n].Matches(want) {
			err = ErrInvalidInstructionSequence{Expected: want, Position: n, Found: tokens[n]}
			return
		}
	}

	return
}
