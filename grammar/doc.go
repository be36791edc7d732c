// Package grammar validates the shape of assembler source lines.
//
// Every mnemonic of package isa belongs to one operand rule Family, and each
// family expands to a fixed sequence of token categories ending in CAT_EOL:
//
//	r3   register , register , register
//	r2i  register , register , immediate
//	r2l  register , register , label
//	ri   register , immediate
//	rir  register , immediate ( register )
//	rl   register , label
//
// Rule.Validate compares a token sequence against the rule position by
// position and stops at the first mismatch. Classify decides whether a line is
// a directive, an instruction or a label definition, in that order.
package grammar
