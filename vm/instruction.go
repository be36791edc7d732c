package vm

import (
	"fmt"
)

// Instruction is one decoded instruction.
type Instruction interface {
	fmt.Stringer
	Mnemonic() Mnemonic

	fields() []uint32
}

// Nop does nothing.
type Nop struct{}

func (Nop) Mnemonic() Mnemonic { return OP_NOP }

func (ins Nop) fields() []uint32 { return nil }

func (ins Nop) String() string { return text(ins) }

// Add sets Dest to Src1 + Src2.
type Add struct {
	Dest, Src1, Src2 Register
}

func (Add) Mnemonic() Mnemonic { return OP_ADD }

func (ins Add) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src1.Index(), ins.Src2.Index()}
}

func (ins Add) String() string { return text(ins) }

// Sub sets Dest to Src1 - Src2.
type Sub struct {
	Dest, Src1, Src2 Register
}

func (Sub) Mnemonic() Mnemonic { return OP_SUB }

func (ins Sub) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src1.Index(), ins.Src2.Index()}
}

func (ins Sub) String() string { return text(ins) }

// Mul sets Dest to Src1 * Src2.
type Mul struct {
	Dest, Src1, Src2 Register
}

func (Mul) Mnemonic() Mnemonic { return OP_MUL }

func (ins Mul) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src1.Index(), ins.Src2.Index()}
}

func (ins Mul) String() string { return text(ins) }

// And sets Dest to Src1 & Src2.
type And struct {
	Dest, Src1, Src2 Register
}

func (And) Mnemonic() Mnemonic { return OP_AND }

func (ins And) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src1.Index(), ins.Src2.Index()}
}

func (ins And) String() string { return text(ins) }

// Or sets Dest to Src1 | Src2.
type Or struct {
	Dest, Src1, Src2 Register
}

func (Or) Mnemonic() Mnemonic { return OP_OR }

func (ins Or) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src1.Index(), ins.Src2.Index()}
}

func (ins Or) String() string { return text(ins) }

// Xor sets Dest to Src1 ^ Src2.
type Xor struct {
	Dest, Src1, Src2 Register
}

func (Xor) Mnemonic() Mnemonic { return OP_XOR }

func (ins Xor) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src1.Index(), ins.Src2.Index()}
}

func (ins Xor) String() string { return text(ins) }

// Shl shifts Src left by Shift.
type Shl struct {
	Dest, Src, Shift Register
}

func (Shl) Mnemonic() Mnemonic { return OP_SHL }

func (ins Shl) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Shift.Index()}
}

func (ins Shl) String() string { return text(ins) }

// Shr shifts Src right by Shift.
type Shr struct {
	Dest, Src, Shift Register
}

func (Shr) Mnemonic() Mnemonic { return OP_SHR }

func (ins Shr) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Shift.Index()}
}

func (ins Shr) String() string { return text(ins) }

// ShrA shifts Src right by Shift, keeping the sign.
type ShrA struct {
	Dest, Src, Shift Register
}

func (ShrA) Mnemonic() Mnemonic { return OP_SHRA }

func (ins ShrA) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Shift.Index()}
}

func (ins ShrA) String() string { return text(ins) }

// AddI adds Value to Dest.
type AddI struct {
	Dest  Register
	Value Imm16
}

func (AddI) Mnemonic() Mnemonic { return OP_ADDI }

func (ins AddI) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Value.Bits()}
}

func (ins AddI) String() string { return text(ins) }

// LoadWord loads Dest from the word at Src + Offset.
type LoadWord struct {
	Dest, Src Register
	Offset    Imm8
}

func (LoadWord) Mnemonic() Mnemonic { return OP_LOAD_WORD }

func (ins LoadWord) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Offset.Bits()}
}

func (ins LoadWord) String() string { return text(ins) }

// StoreWord stores Dest to the word at Src + Offset.
type StoreWord struct {
	Dest, Src Register
	Offset    Imm8
}

func (StoreWord) Mnemonic() Mnemonic { return OP_STORE_WORD }

func (ins StoreWord) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Offset.Bits()}
}

func (ins StoreWord) String() string { return text(ins) }

// Syscall traps to the host; Number holds the call number.
type Syscall struct {
	Number Register
}

func (Syscall) Mnemonic() Mnemonic { return OP_SYSCALL }

func (ins Syscall) fields() []uint32 {
	return []uint32{ins.Number.Index()}
}

func (ins Syscall) String() string { return text(ins) }
