package vm

// Mnemonic identifies an instruction of the set.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_NOP        = Mnemonic(0)  // nop
	OP_ADD        = Mnemonic(1)  // add
	OP_SUB        = Mnemonic(2)  // sub
	OP_MUL        = Mnemonic(3)  // mul
	OP_AND        = Mnemonic(4)  // and
	OP_OR         = Mnemonic(5)  // or
	OP_XOR        = Mnemonic(6)  // xor
	OP_SHL        = Mnemonic(7)  // shl
	OP_SHR        = Mnemonic(8)  // shr
	OP_SHRA       = Mnemonic(9)  // shra
	OP_ADDI       = Mnemonic(10) // addi
	OP_LOAD_WORD  = Mnemonic(11) // lw
	OP_STORE_WORD = Mnemonic(12) // sw
	OP_SYSCALL    = Mnemonic(13) // syscall
)

// MNEMONIC_COUNT is the number of mnemonics.
const MNEMONIC_COUNT = int(OP_SYSCALL) + 1

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

// Opcode returns the opcode value of the mnemonic.
func (m Mnemonic) Opcode() uint32 {
	return definitions[m].decl.Opcode
}
