package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wordisa/schema"
)

func TestRegisterRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for n := range REGISTER_COUNT {
		reg := Register(n)
		assert.Less(reg.Index(), uint32(1<<REGISTER_WIDTH))

		got, err := RegisterFromIndex(reg.Index())
		assert.NoError(err)
		assert.Equal(reg, got)
	}
}

func TestRegisterFromIndexInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, index := range []uint32{32, 33, 0xff, 0xffffffff} {
		_, err := RegisterFromIndex(index)
		assert.Equal(schema.ErrInvalidRegister(index), err)
		assert.True(errors.Is(err, schema.ErrInvalidRegister(0)))
	}
}

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		reg  Register
	}){
		{"zero", REG_ZERO},
		{"x0", REG_ZERO},
		{"ra", REG_RA},
		{"sp", REG_SP},
		{"fp", REG_S0},
		{"s0", REG_S0},
		{"x8", REG_S0},
		{"a0", REG_A0},
		{"x10", REG_A0},
		{"s11", REG_S11},
		{"t6", REG_T6},
		{"x31", REG_T6},
	}

	for _, entry := range table {
		reg, ok := ParseRegister(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.reg, reg, entry.name)
	}

	for _, name := range []string{"x32", "a8", "r0", "", "ZERO"} {
		_, ok := ParseRegister(name)
		assert.False(ok, name)
	}

	assert.Equal("a0", REG_A0.String())
	assert.Equal("s10", REG_S10.String())
}
