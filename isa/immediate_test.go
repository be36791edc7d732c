package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wordisa/schema"
)

func TestImm14(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int64{-8192, -1, 0, 1, 8191} {
		imm, err := NewImm14(value)
		assert.NoError(err)
		assert.Equal(value, imm.Value())
		assert.Equal(value, Imm14FromBits(imm.Bits()).Value())
	}

	for _, value := range []int64{-8193, 8192, 1 << 40} {
		_, err := NewImm14(value)
		assert.True(errors.Is(err, schema.ErrImmediateOutOfRange{}), value)
	}

	assert.Equal(uint32(0x3fff), MustImm14(-1).Bits())
	assert.Equal(int64(-1), Imm14FromBits(0x3fff).Value())
	assert.Equal(MustImm14(-1), Imm14FromBits(0x3fff))
	assert.Equal(Imm14{}, MustImm14(0))
	assert.Equal("-31", MustImm14(-31).String())

	assert.Panics(func() { MustImm14(8192) })
}

func TestImm19(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int64{-262144, -150, 0, 150, 262143} {
		imm, err := NewImm19(value)
		assert.NoError(err)
		assert.Equal(imm, Imm19FromBits(imm.Bits()))
	}

	_, err := NewImm19(262144)
	assert.Equal(schema.ErrImmediateOutOfRange{Value: 262144, Range: schema.Range{Width: 19, Signed: true}}, err)

	_, err = NewImm19(-262145)
	assert.Error(err)

	assert.Equal(uint32(0x7ffff), MustImm19(-1).Bits())
	assert.Panics(func() { MustImm19(-262145) })
}
