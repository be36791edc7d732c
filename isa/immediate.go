package isa

import (
	"strconv"

	"github.com/ezrec/wordisa/schema"
)

var (
	imm14 = schema.Range{Width: 14, Signed: true}
	imm19 = schema.Range{Width: 19, Signed: true}
)

// Imm14 is a signed 14-bit immediate, -8192..8191.
type Imm14 struct {
	value int32
}

// NewImm14 returns value as an Imm14.
func NewImm14(value int64) (imm Imm14, err error) {
	err = imm14.Check(value)
	if err != nil {
		return
	}

	imm.value = int32(value)

	return
}

// MustImm14 is NewImm14 for constants; it panics if value is out of range.
func MustImm14(value int64) Imm14 {
	imm, err := NewImm14(value)
	if err != nil {
		panic(err)
	}
	return imm
}

// Imm14FromBits sign extends a 14-bit field pattern.
func Imm14FromBits(pattern uint32) Imm14 {
	return Imm14{value: int32(imm14.Value(pattern))}
}

func (imm Imm14) Value() int64 {
	return int64(imm.value)
}

// Bits returns the 14-bit two's complement field pattern.
func (imm Imm14) Bits() uint32 {
	return imm14.Bits(int64(imm.value))
}

func (imm Imm14) String() string {
	return strconv.FormatInt(int64(imm.value), 10)
}

// Imm19 is a signed 19-bit immediate, -262144..262143.
type Imm19 struct {
	value int32
}

// NewImm19 returns value as an Imm19.
func NewImm19(value int64) (imm Imm19, err error) {
	err = imm19.Check(value)
	if err != nil {
		return
	}

	imm.value = int32(value)

	return
}

// MustImm19 is NewImm19 for constants; it panics if value is out of range.
func MustImm19(value int64) Imm19 {
	imm, err := NewImm19(value)
	if err != nil {
		panic(err)
	}
	return imm
}

// Imm19FromBits sign extends a 19-bit field pattern.
func Imm19FromBits(pattern uint32) Imm19 {
	return Imm19{value: int32(imm19.Value(pattern))}
}

func (imm Imm19) Value() int64 {
	return int64(imm.value)
}

// Bits returns the 19-bit two's complement field pattern.
func (imm Imm19) Bits() uint32 {
	return imm19.Bits(int64(imm.value))
}

func (imm Imm19) String() string {
	return strconv.FormatInt(int64(imm.value), 10)
}
