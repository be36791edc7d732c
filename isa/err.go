package isa

import (
	"errors"

	"github.com/ezrec/wordisa/translate"
)

var f = translate.From

var (
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))
)

// ErrOperandCount is returned by Make when the number of operands is wrong.
type ErrOperandCount struct {
	Mnemonic Mnemonic
	Want     int
	Got      int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %d operands, got %d", err.Mnemonic, err.Want, err.Got)
}
