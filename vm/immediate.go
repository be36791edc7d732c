package vm

import (
	"strconv"

	"github.com/ezrec/wordisa/schema"
)

var (
	imm8  = schema.Range{Width: 8}
	imm16 = schema.Range{Width: 16, Signed: true}
)

// Imm8 is an unsigned byte offset.
type Imm8 struct {
	value uint8
}

// NewImm8 returns value as an Imm8.
func NewImm8(value int64) (imm Imm8, err error) {
	err = imm8.Check(value)
	if err != nil {
		return
	}

	imm.value = uint8(value)

	return
}

// Imm8FromBits returns the low byte of pattern.
func Imm8FromBits(pattern uint32) Imm8 {
	return Imm8{value: uint8(imm8.Value(pattern))}
}

func (imm Imm8) Value() int64 {
	return int64(imm.value)
}

func (imm Imm8) Bits() uint32 {
	return imm8.Bits(int64(imm.value))
}

func (imm Imm8) String() string {
	return strconv.FormatInt(int64(imm.value), 10)
}

// Imm16 is a signed 16-bit immediate.
type Imm16 struct {
	value int16
}

// NewImm16 returns value as an Imm16.
func NewImm16(value int64) (imm Imm16, err error) {
	err = imm16.Check(value)
	if err != nil {
		return
	}

	imm.value = int16(value)

	return
}

// Imm16FromBits sign extends a 16-bit field pattern.
func Imm16FromBits(pattern uint32) Imm16 {
	return Imm16{value: int16(imm16.Value(pattern))}
}

func (imm Imm16) Value() int64 {
	return int64(imm.value)
}

func (imm Imm16) Bits() uint32 {
	return imm16.Bits(int64(imm.value))
}

func (imm Imm16) String() string {
	return strconv.FormatInt(int64(imm.value), 10)
}
