// Package isa is the 32-bit word instruction set with 5-bit register fields.
//
// Every word starts with an 8-bit opcode in its low byte. The operand fields of
// the instruction follow immediately above it, in declaration order:
//
//	add   dest:5 src1:5 src2:5
//	addi  dest:5 src:5 value:s14
//	lui   dest:5 value:s19
//
// Each mnemonic has its own Instruction type. Encode and Decode convert between
// instructions and words through the package Table; Make builds an instruction
// from plain integers with full range checking.
package isa
