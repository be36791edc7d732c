// Package asm is a two pass line assembler for the isa instruction set.
//
// Each source line holds at most one instruction or directive, optionally
// preceded by label definitions:
//
//	    .equ  STACK 0x1000
//	    li    sp, STACK
//	loop:
//	    addi  a0, a0, -1
//	    bne   a0, zero, loop
//	    lw    t0, $(STACK - 8)(sp)
//	    .word 0xcafe, 'A'
//
// The first pass records label addresses, evaluates .equ definitions and
// lays out .org and .word directives. The second pass validates every line
// against its operand rule from package grammar and encodes it with isa.Make.
//
// Expressions inside $( ) and .equ values are evaluated by Starlark, with all
// equates and known labels in scope. Label operands of branches and jumps are
// encoded as byte offsets from the instruction's own address.
//
// A failing line does not stop assembly. Every failure is reported as an
// ErrSyntax, and the lines that did assemble are still returned.
package asm
