// Package vm is the byte oriented sibling of package isa.
//
// The 8-bit opcode occupies the low byte of a word and every register field
// is a full byte, so most instructions are four bytes: opcode, then operands.
// Because a byte can hold indices with no register, Decode can fail with
// schema.ErrInvalidRegister as well as schema.ErrUnknownOpcode.
package vm
