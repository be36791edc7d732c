package isa

import (
	"fmt"
	"math"
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
	fSrc3   = schema.Register("src3", REGISTER_WIDTH)
	fShift  = schema.Register("shift", REGISTER_WIDTH)
	fOff14  = schema.Signed("offset", imm14.Width)
	fOff19  = schema.Signed("offset", imm19.Width)
	fValue  = schema.Signed("value", imm14.Width)
	fUpper  = schema.Signed("value", imm19.Width)
	fieldsR = []schema.Field{fDest, fSrc1, fSrc2}
	fieldsS = []schema.Field{fDest, fSrc, fShift}
	fieldsI = []schema.Field{fDest, fSrc, fOff14}
	fieldsB = []schema.Field{fSrc1, fSrc2, fOff14}
)

// definition ties a mnemonic to its format, its layout and the constructor
// used to rebuild it. The constructor receives the raw field values and, at
// the same positions, the already validated registers.
type definition struct {
	format Format
	decl   schema.Decl
	build  func(v []uint32, r []Register) Instruction
}

func define(m Mnemonic, opcode uint32, format Format, fields []schema.Field, build func(v []uint32, r []Register) Instruction) definition {
	return definition{
		format: format,
		decl:   schema.Decl{Mnemonic: m.String(), Opcode: opcode, Fields: fields},
		build:  build,
	}
}

var definitions = [MNEMONIC_COUNT]definition{
	OP_ADD: define(OP_ADD, 0x01, FORMAT_R, fieldsR, func(v []uint32, r []Register) Instruction {
		return Add{r[0], r[1], r[2]}
	}),
	OP_SUB: define(OP_SUB, 0x02, FORMAT_R, fieldsR, func(v []uint32, r []Register) Instruction {
		return Sub{r[0], r[1], r[2]}
	}),
	OP_MUL: define(OP_MUL, 0x03, FORMAT_R, fieldsR, func(v []uint32, r []Register) Instruction {
		return Mul{r[0], r[1], r[2]}
	}),
	OP_AND: define(OP_AND, 0x04, FORMAT_R, fieldsR, func(v []uint32, r []Register) Instruction {
		return And{r[0], r[1], r[2]}
	}),
	OP_OR: define(OP_OR, 0x05, FORMAT_R, fieldsR, func(v []uint32, r []Register) Instruction {
		return Or{r[0], r[1], r[2]}
	}),
	OP_XOR: define(OP_XOR, 0x06, FORMAT_R, fieldsR, func(v []uint32, r []Register) Instruction {
		return Xor{r[0], r[1], r[2]}
	}),
	OP_SHL: define(OP_SHL, 0x07, FORMAT_R, fieldsS, func(v []uint32, r []Register) Instruction {
		return Shl{r[0], r[1], r[2]}
	}),
	OP_SHR: define(OP_SHR, 0x08, FORMAT_R, fieldsS, func(v []uint32, r []Register) Instruction {
		return Shr{r[0], r[1], r[2]}
	}),
	OP_SHRA: define(OP_SHRA, 0x09, FORMAT_R, fieldsS, func(v []uint32, r []Register) Instruction {
		return ShrA{r[0], r[1], r[2]}
	}),
	OP_LW: define(OP_LW, 0x0c, FORMAT_IL, fieldsI, func(v []uint32, r []Register) Instruction {
		return Lw{r[0], r[1], Imm14FromBits(v[2])}
	}),
	OP_SW: define(OP_SW, 0x0d, FORMAT_S, fieldsI, func(v []uint32, r []Register) Instruction {
		return Sw{r[0], r[1], Imm14FromBits(v[2])}
	}),
	OP_ADDI: define(OP_ADDI, 0x13, FORMAT_IA, []schema.Field{fDest, fSrc, fValue}, func(v []uint32, r []Register) Instruction {
		return AddI{r[0], r[1], Imm14FromBits(v[2])}
	}),
	OP_LUI: define(OP_LUI, 0x14, FORMAT_U, []schema.Field{fDest, fUpper}, func(v []uint32, r []Register) Instruction {
		return Lui{r[0], Imm19FromBits(v[1])}
	}),
	OP_BEQ: define(OP_BEQ, 0x63, FORMAT_B, fieldsB, func(v []uint32, r []Register) Instruction {
		return Beq{r[0], r[1], Imm14FromBits(v[2])}
	}),
	OP_BNE: define(OP_BNE, 0x64, FORMAT_B, fieldsB, func(v []uint32, r []Register) Instruction {
		return Bne{r[0], r[1], Imm14FromBits(v[2])}
	}),
	OP_JALR: define(OP_JALR, 0x67, FORMAT_IJ, fieldsI, func(v []uint32, r []Register) Instruction {
		return Jalr{r[0], r[1], Imm14FromBits(v[2])}
	}),
	OP_JAL: define(OP_JAL, 0x6f, FORMAT_J, []schema.Field{fDest, fOff19}, func(v []uint32, r []Register) Instruction {
		return Jal{r[0], Imm19FromBits(v[1])}
	}),
	OP_SYSCALL: define(OP_SYSCALL, 0x73, FORMAT_R, []schema.Field{fSrc1, fSrc2, fSrc3}, func(v []uint32, r []Register) Instruction {
		return Syscall{r[0], r[1], r[2]}
	}),
	OP_LI: define(OP_LI, 0xff, FORMAT_U, []schema.Field{fDest, fUpper}, func(v []uint32, r []Register) Instruction {
		return Li{r[0], Imm19FromBits(v[1])}
	}),
}

// Table is the word layout of every mnemonic, in Mnemonic order.
var Table = func() *schema.Table {
	decls := make([]schema.Decl, MNEMONIC_COUNT)
	for n, def := range definitions {
		decls[n] = def.decl
	}
	return schema.MustTable("isa", OPCODE_WIDTH, decls...)
}()

// layout indexes the Table entries by Mnemonic.
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

// registers converts the register fields of an entry. Other positions are
// left as REG_ZERO.
func registers(entry *schema.Entry, values []uint32) (regs []Register, err error) {
	regs = make([]Register, len(values))
	for n, field := range entry.Fields() {
		if field.Kind != schema.KIND_REGISTER {
			continue
		}
		regs[n], err = RegisterFromIndex(values[n])
		if err != nil {
			return
		}
	}

	return
}

// Decode unpacks a word. Register fields are 5 bits wide, so every index
// names a register and Decode fails only with schema.ErrUnknownOpcode.
func Decode(word uint32) (ins Instruction, err error) {
	entry, values, err := Table.Decode(word)
	if err != nil {
		return
	}

	regs, err := registers(entry, values)
	if err != nil {
		return
	}

	ins = definitions[mnemonicMap[entry.Mnemonic()]].build(values, regs)

	return
}

// Make builds an instruction from its operands, given in encoding order:
// register indices for register fields, values for immediate fields.
func Make(m Mnemonic, args ...int64) (ins Instruction, err error) {
	if !m.Valid() {
		err = ErrMnemonicInvalid
		return
	}

	entry := layout[m]
	if len(args) != entry.Len() {
		err = ErrOperandCount{Mnemonic: m, Want: entry.Len(), Got: len(args)}
		return
	}

	values := make([]uint32, len(args))
	for n, field := range entry.Fields() {
		arg := args[n]
		switch field.Kind {
		case schema.KIND_REGISTER:
			if arg < 0 || arg > math.MaxUint32 {
				err = schema.ErrInvalidRegister(uint32(arg))
				return
			}
			var r Register
			r, err = RegisterFromIndex(uint32(arg))
			if err != nil {
				return
			}
			values[n] = r.Index()
		default:
			rng := field.Range()
			err = rng.Check(arg)
			if err != nil {
				return
			}
			values[n] = rng.Bits(arg)
		}
	}

	regs, err := registers(entry, values)
	if err != nil {
		return
	}

	ins = definitions[m].build(values, regs)

	return
}

// text formats an instruction in assembler syntax. Branch and jump offsets
// are printed as numbers.
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
	case m.Format() == FORMAT_IL || m.Format() == FORMAT_S:
		return fmt.Sprintf("%v %v, %v(%v)", m, ops[0], ops[2], ops[1])
	}

	return fmt.Sprintf("%v %v", m, strings.Join(ops, ", "))
}
