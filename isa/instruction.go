package isa

import (
	"fmt"
)

// Instruction is one decoded instruction. Each mnemonic has its own type,
// whose fields are the operands of the mnemonic in encoding order.
type Instruction interface {
	fmt.Stringer
	Mnemonic() Mnemonic

	fields() []uint32
}

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

// Mul sets Dest to the low word of Src1 * Src2.
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

// Shr shifts Src right by Shift, zero filling.
type Shr struct {
	Dest, Src, Shift Register
}

func (Shr) Mnemonic() Mnemonic { return OP_SHR }

func (ins Shr) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Shift.Index()}
}

func (ins Shr) String() string { return text(ins) }

// ShrA shifts Src right by Shift, sign filling.
type ShrA struct {
	Dest, Src, Shift Register
}

func (ShrA) Mnemonic() Mnemonic { return OP_SHRA }

func (ins ShrA) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Shift.Index()}
}

func (ins ShrA) String() string { return text(ins) }

// Lw loads Dest from the word at Src + Offset.
type Lw struct {
	Dest, Src Register
	Offset    Imm14
}

func (Lw) Mnemonic() Mnemonic { return OP_LW }

func (ins Lw) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Offset.Bits()}
}

func (ins Lw) String() string { return text(ins) }

// Sw stores Dest to the word at Src + Offset.
type Sw struct {
	Dest, Src Register
	Offset    Imm14
}

func (Sw) Mnemonic() Mnemonic { return OP_SW }

func (ins Sw) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Offset.Bits()}
}

func (ins Sw) String() string { return text(ins) }

// AddI sets Dest to Src + Value.
type AddI struct {
	Dest, Src Register
	Value     Imm14
}

func (AddI) Mnemonic() Mnemonic { return OP_ADDI }

func (ins AddI) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Value.Bits()}
}

func (ins AddI) String() string { return text(ins) }

// Lui loads Value into the upper bits of Dest.
type Lui struct {
	Dest  Register
	Value Imm19
}

func (Lui) Mnemonic() Mnemonic { return OP_LUI }

func (ins Lui) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Value.Bits()}
}

func (ins Lui) String() string { return text(ins) }

// Beq branches by Offset bytes if Src1 == Src2.
type Beq struct {
	Src1, Src2 Register
	Offset     Imm14
}

func (Beq) Mnemonic() Mnemonic { return OP_BEQ }

func (ins Beq) fields() []uint32 {
	return []uint32{ins.Src1.Index(), ins.Src2.Index(), ins.Offset.Bits()}
}

func (ins Beq) String() string { return text(ins) }

// Bne branches by Offset bytes if Src1 != Src2.
type Bne struct {
	Src1, Src2 Register
	Offset     Imm14
}

func (Bne) Mnemonic() Mnemonic { return OP_BNE }

func (ins Bne) fields() []uint32 {
	return []uint32{ins.Src1.Index(), ins.Src2.Index(), ins.Offset.Bits()}
}

func (ins Bne) String() string { return text(ins) }

// Jalr jumps to Src + Offset, saving the return address in Dest.
type Jalr struct {
	Dest, Src Register
	Offset    Imm14
}

func (Jalr) Mnemonic() Mnemonic { return OP_JALR }

func (ins Jalr) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Src.Index(), ins.Offset.Bits()}
}

func (ins Jalr) String() string { return text(ins) }

// Jal jumps by Offset bytes, saving the return address in Dest.
type Jal struct {
	Dest   Register
	Offset Imm19
}

func (Jal) Mnemonic() Mnemonic { return OP_JAL }

func (ins Jal) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Offset.Bits()}
}

func (ins Jal) String() string { return text(ins) }

// Syscall traps to the host with three argument registers.
type Syscall struct {
	Src1, Src2, Src3 Register
}

func (Syscall) Mnemonic() Mnemonic { return OP_SYSCALL }

func (ins Syscall) fields() []uint32 {
	return []uint32{ins.Src1.Index(), ins.Src2.Index(), ins.Src3.Index()}
}

func (ins Syscall) String() string { return text(ins) }

// Li is the load immediate pseudo instruction.
type Li struct {
	Dest  Register
	Value Imm19
}

func (Li) Mnemonic() Mnemonic { return OP_LI }

func (ins Li) fields() []uint32 {
	return []uint32{ins.Dest.Index(), ins.Value.Bits()}
}

func (ins Li) String() string { return text(ins) }
