package vm

import (
	"github.com/ezrec/wordisa/schema"
)

// Register is one of the 32 machine registers.
type Register uint8

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_X0  = Register(0)  // x0
	REG_X1  = Register(1)  // x1
	REG_X2  = Register(2)  // x2
	REG_X3  = Register(3)  // x3
	REG_X4  = Register(4)  // x4
	REG_X5  = Register(5)  // x5
	REG_X6  = Register(6)  // x6
	REG_X7  = Register(7)  // x7
	REG_X8  = Register(8)  // x8
	REG_X9  = Register(9)  // x9
	REG_X10 = Register(10) // x10
	REG_X11 = Register(11) // x11
	REG_X12 = Register(12) // x12
	REG_X13 = Register(13) // x13
	REG_X14 = Register(14) // x14
	REG_X15 = Register(15) // x15
	REG_X16 = Register(16) // x16
	REG_X17 = Register(17) // x17
	REG_X18 = Register(18) // x18
	REG_X19 = Register(19) // x19
	REG_X20 = Register(20) // x20
	REG_X21 = Register(21) // x21
	REG_X22 = Register(22) // x22
	REG_X23 = Register(23) // x23
	REG_X24 = Register(24) // x24
	REG_X25 = Register(25) // x25
	REG_X26 = Register(26) // x26
	REG_X27 = Register(27) // x27
	REG_X28 = Register(28) // x28
	REG_X29 = Register(29) // x29
	REG_X30 = Register(30) // x30
	REG_X31 = Register(31) // x31
)

const (
	REGISTER_WIDTH = 8  // Bits of a register field.
	REGISTER_COUNT = 32 // Number of named registers.
)

var registerMap = func() map[string]Register {
	names := make(map[string]Register, REGISTER_COUNT)
	for n := range REGISTER_COUNT {
		names[Register(n).String()] = Register(n)
	}
	return names
}()

// RegisterFromIndex returns the register of a field index. Register fields
// are a full byte wide, so indices 32..255 have no register.
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
	return uint32(reg)
}

// ParseRegister resolves an assembler register name, x0..x31.
func ParseRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}
