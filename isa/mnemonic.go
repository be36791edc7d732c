package isa

// Mnemonic identifies an instruction of the set.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_ADD     = Mnemonic(0)  // add
	OP_SUB     = Mnemonic(1)  // sub
	OP_MUL     = Mnemonic(2)  // mul
	OP_AND     = Mnemonic(3)  // and
	OP_OR      = Mnemonic(4)  // or
	OP_XOR     = Mnemonic(5)  // xor
	OP_SHL     = Mnemonic(6)  // shl
	OP_SHR     = Mnemonic(7)  // shr
	OP_SHRA    = Mnemonic(8)  // shra
	OP_LW      = Mnemonic(9)  // lw
	OP_SW      = Mnemonic(10) // sw
	OP_ADDI    = Mnemonic(11) // addi
	OP_LUI     = Mnemonic(12) // lui
	OP_BEQ     = Mnemonic(13) // beq
	OP_BNE     = Mnemonic(14) // bne
	OP_JALR    = Mnemonic(15) // jalr
	OP_JAL     = Mnemonic(16) // jal
	OP_SYSCALL = Mnemonic(17) // syscall
	OP_LI      = Mnemonic(18) // li
)

// MNEMONIC_COUNT is the number of mnemonics.
const MNEMONIC_COUNT = int(OP_LI) + 1

// Format is the operand shape class of a mnemonic.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R  = Format(0) // r
	FORMAT_IA = Format(1) // ia
	FORMAT_IJ = Format(2) // ij
	FORMAT_IL = Format(3) // il
	FORMAT_S  = Format(4) // s
	FORMAT_B  = Format(5) // b
	FORMAT_J  = Format(6) // j
	FORMAT_U  = Format(7) // u
)

var mnemonicMap = func() map[string]Mnemonic {
	names := make(map[string]Mnemonic, MNEMONIC_COUNT)
	for n := range MNEMONIC_COUNT {
		names[Mnemonic(n).String()] = Mnemonic(n)
	}
	return names
}()

// ParseMnemonic resolves an assembler mnemonic.
func ParseMnemonic(name string) (m Mnemonic, ok bool) {
	m, ok = mnemonicMap[name]
	return
}

// Valid returns true if m is a declared mnemonic.
func (m Mnemonic) Valid() bool {
	return m >= 0 && int(m) < MNEMONIC_COUNT
}

// Format returns the operand format of the mnemonic.
func (m Mnemonic) Format() Format {
	return definitions[m].format
}

// Opcode returns the opcode value of the mnemonic.
func (m Mnemonic) Opcode() uint32 {
	return definitions[m].decl.Opcode
}
