package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wordisa/grammar"
	"github.com/ezrec/wordisa/internal"
	"github.com/ezrec/wordisa/isa"
	"github.com/ezrec/wordisa/schema"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Lines))
	assert.Equal(0, len(prog.Binary()))

	assert.Equal(int64(0), asm.Equate["LINENO"])
	assert.Equal(int64(internal.WORD_SIZE), asm.Equate["WORD_SIZE"])
	assert.Equal(int64(isa.REGISTER_COUNT), asm.Equate["REGISTER_COUNT"])
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".equ COUNT 3",
		"start:",
		"    li    a0, COUNT        ; 0x00",
		"loop:",
		"    addi  a0, a0, -1       ; 0x04",
		"    bne   a0, zero, loop   ; 0x08",
		"    jal   ra, done         ; 0x0c",
		"    .word 0xcafe, 'A'      ; 0x10",
		"done: lw t0, $(COUNT*4)(sp)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(map[string]int{"start": 0, "loop": 4, "done": 24}, asm.Label)
	assert.Equal(int64(3), asm.Equate["COUNT"])

	expected := []Line{
		{3, 0x00, program[2], isa.Li{Dest: isa.REG_A0, Value: isa.MustImm19(3)}, nil},
		{5, 0x04, program[4], isa.AddI{Dest: isa.REG_A0, Src: isa.REG_A0, Value: isa.MustImm14(-1)}, nil},
		{6, 0x08, program[5], isa.Bne{Src1: isa.REG_A0, Src2: isa.REG_ZERO, Offset: isa.MustImm14(-4)}, nil},
		{7, 0x0c, program[6], isa.Jal{Dest: isa.REG_RA, Offset: isa.MustImm19(12)}, nil},
		{8, 0x10, program[7], nil, []uint32{0xcafe, 'A'}},
		{9, 0x18, program[8], isa.Lw{Dest: isa.REG_T0, Src: isa.REG_SP, Offset: isa.MustImm14(12)}, nil},
	}
	for n := range expected {
		if expected[n].Instruction != nil {
			expected[n].Words = []uint32{isa.Encode(expected[n].Instruction)}
		}
	}

	assert.Equal(expected, prog.Lines)

	bins := prog.Binary()
	assert.Equal(7, len(bins))
	assert.Equal(uint32(0xcafe), bins[4])
	assert.Equal(uint32('A'), bins[5])
	assert.Equal(28, len(prog.Bytes()))

	// Branches back to an earlier label decode to a negative offset.
	ins, err := isa.Decode(bins[2])
	assert.NoError(err)
	assert.Equal(int64(-4), ins.(isa.Bne).Offset.Value())

	line, ok := prog.At(0x14)
	assert.True(ok)
	assert.Equal(8, line.LineNo)
	_, ok = prog.At(0x40)
	assert.False(ok)
}

func TestAssemblerEncoding(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("add a0, a1, a2\naddi x1, x2, -1"))
	assert.NoError(err)
	assert.Equal([]uint32{
		0x01 | 10<<8 | 11<<13 | 12<<18,
		0x13 | 1<<8 | 2<<13 | 0x3fff<<18,
	}, prog.Binary())
	assert.Equal([]byte{0x01, 0x6a, 0x31, 0x00}, prog.Bytes()[:4])
}

func TestAssemblerOrg(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", 0x10)

	program := []string{
		"add a0, a0, a0",
		".org BASE",
		"here: sub a0, a0, a0",
		"jal zero, here",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	bins := prog.Binary()
	assert.Equal(6, len(bins))
	assert.Equal([]uint32{0, 0, 0}, bins[1:4])
	assert.Equal(isa.Encode(isa.Sub{Dest: isa.REG_A0, Src1: isa.REG_A0, Src2: isa.REG_A0}), bins[4])
	assert.Equal(isa.Encode(isa.Jal{Dest: isa.REG_ZERO, Offset: isa.MustImm19(-4)}), bins[5])
	assert.Equal(0x10, asm.Label["here"])

	_, err = asm.Parse(strings.NewReader("add a0, a0, a0\n.org 0"))
	assert.ErrorIs(err, ErrOrgInvalid(0))
	_, err = asm.Parse(strings.NewReader(".org 6"))
	assert.ErrorIs(err, ErrOrgInvalid(0))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"add a0, a1, later", grammar.ErrInvalidInstructionSequence{}},
		{"add a0, a1", grammar.ErrInvalidInstructionSequence{}},
		{"frob a0", ErrMnemonicInvalid("")},
		{"a0, a1", grammar.ErrInvalidLabelSequence},
		{"addi a0, a0, 0x2000", schema.ErrImmediateOutOfRange{}},
		{"addi a0, a0, MISSING", ErrSymbolMissing("")},
		{"addi a0, a0, $(1 +)", ErrParseExpression("")},
		{"addi a0, a0, 99999999999999999999", ErrParseNumber("")},
		{"add a0, a0, a0 @", ErrTokenInvalid{}},
		{".frob 1", ErrDirectiveInvalid("")},
		{".word", ErrWordSyntax},
		{".word 1 2", ErrWordSyntax},
		{".word 0x100000000", schema.ErrImmediateOutOfRange{}},
		{".equ", ErrEquateSyntax},
		{".equ 3x 1", ErrEquateSyntax},
		{".equ LINENO 1", ErrEquateDuplicate},
		{".org 1, 2", ErrOrgSyntax},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.line))
		assert.ErrorIs(err, entry.err, entry.line)
		var syntax ErrSyntax
		assert.True(errors.As(err, &syntax), entry.line)
		assert.Equal(1, syntax.LineNo, entry.line)
		assert.NotNil(prog, entry.line)
		assert.Equal(0, len(prog.Lines), entry.line)
	}
}

func TestAssemblerDuplicates(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("a:\na:"))
	assert.ErrorIs(err, ErrLabelDuplicate)

	_, err = asm.Parse(strings.NewReader(".equ A 1\n.equ A 2"))
	assert.ErrorIs(err, ErrEquateDuplicate)
}

func TestAssemblerIsolation(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"add a0, a1, a2",
		"add a0, a1, later",
		"frob a0",
		"addi a0, a0, 0x2000",
		"sub a0, a1, a2",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Error(err)

	joined, ok := err.(interface{ Unwrap() []error })
	assert.True(ok)
	if !ok {
		return
	}

	var lines []int
	for _, e := range joined.Unwrap() {
		var syntax ErrSyntax
		assert.True(errors.As(e, &syntax))
		lines = append(lines, syntax.LineNo)
	}
	assert.Equal([]int{2, 3, 4}, lines)

	// Failing lines keep their slot.
	assert.Equal(2, len(prog.Lines))
	assert.Equal(1, prog.Lines[0].LineNo)
	assert.Equal(0x00, prog.Lines[0].Address)
	assert.Equal(5, prog.Lines[1].LineNo)
	assert.Equal(0x10, prog.Lines[1].Address)
}

func TestAssemblerFailedSlot(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"bogus a0",
		"add a0, a1, a2",
		"next: sub a0, a1, a2",
		".frob 1",
		"x: .word 1 2",
		"last: add a0, a0, a0",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.ErrorIs(err, ErrMnemonicInvalid(""))
	assert.ErrorIs(err, ErrDirectiveInvalid(""))
	assert.ErrorIs(err, ErrWordSyntax)

	assert.Equal(3, len(prog.Lines))
	assert.Equal(0x04, prog.Lines[0].Address)
	assert.Equal(0x0c, prog.Lines[2].Address)
	assert.Equal(0x08, asm.Label["next"])
	assert.Equal(0x0c, asm.Label["x"])
	assert.Equal(0x0c, asm.Label["last"])
}

func TestAssemblerComment(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"add a0, a1, a2 ; see $(undefined_thing)",
		"addi a0, a0, $(1 + 1) # not $(this)",
		".word 3 ; $(",
		"; $(nothing) at all",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(3, len(prog.Lines))
	assert.Equal(isa.Add{Dest: isa.REG_A0, Src1: isa.REG_A1, Src2: isa.REG_A2}, prog.Lines[0].Instruction)
	assert.Equal(int64(2), prog.Lines[1].Instruction.(isa.AddI).Value.Value())
	assert.Equal([]uint32{3}, prog.Lines[2].Words)
}

func TestAssemblerDecimal(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value int64
	}){
		{"010", 10},
		{"09", 9},
		{"-010", -10},
		{"1_000", 1000},
		{"0x10", 16},
		{"0b101", 5},
		{"-0x10", -16},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader("addi a0, zero, " + entry.text))
		assert.NoError(err, entry.text)
		if !assert.Equal(1, len(prog.Lines), entry.text) {
			continue
		}
		assert.Equal(entry.value, prog.Lines[0].Instruction.(isa.AddI).Value.Value(), entry.text)
	}
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".equ SIZE 4 * WORD_SIZE",
		"top:",
		"addi a0, zero, $(SIZE - 1)",
		"addi a1, zero, $(LINENO)",
		"addi a2, zero, $(PC + top)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(int64(16), asm.Equate["SIZE"])

	values := []int64{15, 4, 8}
	for n, line := range prog.Lines {
		assert.Equal(values[n], line.Instruction.(isa.AddI).Value.Value())
	}
}
