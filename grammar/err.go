package grammar

import (
	"errors"

	"github.com/ezrec/wordisa/translate"
)

var f = translate.From

var (
	ErrInvalidLabelSequence = errors.New(f("expected directive|instruction|label"))
)

// ErrInvalidInstructionSequence reports the first operand token that does
// not fit the rule of a mnemonic.
type ErrInvalidInstructionSequence struct {
	Expected Category // Category expected at Position.
	Position int      // Index into the token sequence.
	Found    Token    // Token found at Position.
}

func (err ErrInvalidInstructionSequence) Error() string {
	return f("expected `%v`, found %v", err.Expected, err.Found)
}

func (err ErrInvalidInstructionSequence) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidInstructionSequence)
	return
}
