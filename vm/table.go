package vm

import (
	"fmt"
	"strings"

	"github.com/ezrec/wordisa/schema"
)

// OPCODE_WIDTH is the number of opcode bits at the bottom of a word.
const OPCODE_WIDTH = 8

var (
	fDest   = schema.Register("dest", REGISTER_WIDTH)
	fSrc    = schema.Register("src", REGISTER_WIDTH)
	fSrc1   = schema.Register("src1", REGISTER_WIDTH)
	fSrc2   = schema.Register("src2", REGISTER_WIDTH)
	fShift  = schema.Register("shift", REGISTER_WIDTH)
	fOffset = schema.Unsigned("offset", imm8.Width)
	fieldsR = []schema.Field{fDest, fSrc1, fSrc2}
	fieldsS = []schema.Field{fDest, fSrc, fShift}
	fieldsM = []schema.Field{fDest, fSrc, fOffset}
)

// definition ties a mnemonic to its layout and constructor. The constructor
// receives the raw field values and, at the same positions, the already
// validated registers.
type definition struct {
	decl  schema.Decl
	build func(v []uint32, r []Register) Instruction
}

func define(m Mnemonic, opcode uint32, fields []schema.Field, build func(v []uint32, r []Register) Instruction) definition {
	return definition{
		decl:  schema.Decl{Mnemonic: m.String(), Opcode: opcode, Fields: fields},
		build: build,
	}
}

var definitions = [MNEMONIC_COUNT]definition{
	OP_NOP: define(OP_NOP, 0xff, nil, func(v []uint32, r []Register) Instruction {
		return Nop{}
	}),
	OP_ADD: define(OP_ADD, 0x01, fieldsR, func(v []uint32, r []Register) Instruction {
		return Add{r[0], r[1], r[2]}
	}),
	OP_SUB: define(OP_SUB, 0x02, fieldsR, func(v []uint32, r []Register) Instruction {
		return Sub{r[0], r[1], r[2]}
	}),
	OP_MUL: define(OP_MUL, 0x03, fieldsR, func(v []uint32, r []Register) Instruction {
		return Mul{r[0], r[1], r[2]}
	}),
	OP_AND: define(OP_AND, 0x04, fieldsR, func(v []uint32, r []Register) Instruction {
		return And{r[0], r[1], r[2]}
	}),
	OP_OR: define(OP_OR, 0x05, fieldsR, func(v []uint32, r []Register) Instruction {
		return Or{r[0], r[1], r[2]}
	}),
	OP_XOR: define(OP_XOR, 0x06, fieldsR, func(v []uint32, r []Register) Instruction {
		return Xor{r[0], r[1], r[2]}
	}),
	OP_SHL: define(OP_SHL, 0x07, fieldsS, func(v []uint32, r []Register) Instruction {
		return Shl{r[0], r[1], r[2]}
	}),
	OP_SHR: define(OP_SHR, 0x08, fieldsS, func(v []uint32, r []Register) Instruction {
		return Shr{r[0], r[1], r[2]}
	}),
	OP_SHRA: define(OP_SHRA, 0x09, fieldsS, func(v []uint32, r []Register) Instruction {
		return ShrA{r[0], r[1], r[2]}
	}),
	OP_ADDI: define(OP_ADDI, 0x13, []schema.Field{fDest, schema.Signed("value", imm16.Width)}, func(v []uint32, r []Register) Instruction {
		return AddI{r[0], Imm16FromBits(v[1])}
	}),
	OP_LOAD_WORD: define(OP_LOAD_WORD, 0x0c, fieldsM, func(v []uint32, r []Register) Instruction {
		return LoadWord{r[0], r[1], Imm8FromBits(v[2])}
	}),
	OP_STORE_WORD: define(OP_STORE_WORD, 0x0d, fieldsM, func(v []uint32, r []Register) Instruction {
		return StoreWord{r[0], r[1], Imm8FromBits(v[2])}
	}),
	OP_SYSCALL: define(OP_SYSCALL, 0x73, []schema.Field{schema.Register("number", REGISTER_WIDTH)}, func(v []uint32, r []Register) Instruction {
		return Syscall{r[0]}
	}),
}

// Table is the word layout of every mnemonic, in Mnemonic order.
var Table = func() *schema.Table {
	decls := make([]schema.Decl, MNEMONIC_COUNT)
	for n, def := range definitions {
		decls[n] = def.decl
	}
	return schema.MustTable("vm", OPCODE_WIDTH, decls...)
}()

var layout = func() (entries [MNEMONIC_COUNT]*schema.Entry) {
	for n := range definitions {
		entries[n], _ = Table.Lookup(definitions[n].decl.Mnemonic)
	}
	return
}()

// Entry returns the word layout of the mnemonic.
func (m Mnemonic) Entry() *schema.Entry {
	return layout[m]
}

// Encode packs an instruction into its word.
func Encode(ins Instruction) uint32 {
	return Table.Encode(layout[ins.Mnemonic()], ins.fields()...)
}

// Decode unpacks a word.
func Decode(word uint32) (ins Instruction, err error) {
	entry, values, err := Table.Decode(word)
	if err != nil {
		return
	}

	regs := make([]Register, len(values))
	for n, field := range entry.Fields() {
		if field.Kind != schema.KIND_REGISTER {
			continue
		}
		regs[n], err = RegisterFromIndex(values[n])
		if err != nil {
			return
		}
	}

	ins = definitions[mnemonicMap[entry.Mnemonic()]].build(values, regs)

	return
}

func text(ins Instruction) string {
	m := ins.Mnemonic()
	entry := layout[m]
	values := ins.fields()

	ops := make([]string, len(values))
	for n, field := range entry.Fields() {
		if field.Kind == schema.KIND_REGISTER {
			ops[n] = Register(values[n]).String()
		} else {
			ops[n] = fmt.Sprint(field.Range().Value(values[n]))
		}
	}

	switch {
	case len(ops) == 0:
		return m.String()
	case m == OP_LOAD_WORD || m == OP_STORE_WORD:
		return fmt.Sprintf("%v %v, %v(%v)", m, ops[0], ops[2], ops[1])
	}

	return fmt.Sprintf("%v %v", m, strings.Join(ops, ", "))
}
