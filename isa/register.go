package isa

import (
	"fmt"

	"github.com/ezrec/wordisa/schema"
)

// Register is a general purpose register. REG_ZERO always reads as zero.
type Register uint8

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_ZERO = Register(0)  // zero
	REG_RA   = Register(1)  // ra
	REG_SP   = Register(2)  // sp
	REG_GP   = Register(3)  // gp
	REG_TP   = Register(4)  // tp
	REG_T0   = Register(5)  // t0
	REG_T1   = Register(6)  // t1
	REG_T2   = Register(7)  // t2
	REG_S0   = Register(8)  // s0
	REG_S1   = Register(9)  // s1
	REG_A0   = Register(10) // a0
	REG_A1   = Register(11) // a1
	REG_A2   = Register(12) // a2
	REG_A3   = Register(13) // a3
	REG_A4   = Register(14) // a4
	REG_A5   = Register(15) // a5
	REG_A6   = Register(16) // a6
	REG_A7   = Register(17) // a7
	REG_S2   = Register(18) // s2
	REG_S3   = Register(19) // s3
	REG_S4   = Register(20) // s4
	REG_S5   = Register(21) // s5
	REG_S6   = Register(22) // s6
	REG_S7   = Register(23) // s7
	REG_S8   = Register(24) // s8
	REG_S9   = Register(25) // s9
	REG_S10  = Register(26) // s10
	REG_S11  = Register(27) // s11
	REG_T3   = Register(28) // t3
	REG_T4   = Register(29) // t4
	REG_T5   = Register(30) // t5
	REG_T6   = Register(31) // t6
)

const (
	REGISTER_WIDTH = 5  // Bits of a register field.
	REGISTER_COUNT = 32 // Number of named registers.
)

// registerMap maps assembler names to registers: ABI names, xN and fp.
var registerMap = func() map[string]Register {
	names := make(map[string]Register, 2*REGISTER_COUNT+1)
	for n := range REGISTER_COUNT {
		reg := Register(n)
		names[reg.String()] = reg
		names[fmt.Sprintf("x%d", n)] = reg
	}
	names["fp"] = REG_S0
	return names
}()

// RegisterFromIndex returns the register of a field index.
func RegisterFromIndex(index uint32) (reg Register, err error) {
	if index >= REGISTER_COUNT {
		err = schema.ErrInvalidRegister(index)
		return
	}

	reg = Register(index)

	return
}

// Index returns the field encoding of the register.
func (reg Register) Index() uint32 {
	return uint32(reg) & (1<<REGISTER_WIDTH - 1)
}

// ParseRegister resolves an assembler register name.
func ParseRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}
