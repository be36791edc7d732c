package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wordisa/schema"
)

func FuzzDecode(f *testing.F) {
	for _, ins := range every {
		f.Add(Encode(ins))
	}
	f.Add(uint32(0xab))
	f.Add(uint32(0xffffffff))

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		ins, err := Decode(word)
		if err != nil {
			assert.True(errors.Is(err, schema.ErrUnknownOpcode(0)))
			assert.Nil(ins)
			_, known := Table.Opcode(word & 0xff)
			assert.False(known)
			return
		}

		entry := ins.Mnemonic().Entry()
		assert.Equal(word&entry.Mask(), Encode(ins))

		again, err := Decode(Encode(ins))
		assert.NoError(err)
		assert.Equal(ins, again)
	})
}
