package schema

import (
	"errors"

	"github.com/ezrec/wordisa/translate"
)

var f = translate.From

var (
	// Table construction errors
	ErrSchemaOpcodeWidth = errors.New(f("opcode width invalid"))
	ErrSchemaFieldWidth  = errors.New(f("field width invalid"))
	ErrSchemaMnemonic    = errors.New(f("mnemonic missing"))
)

// ErrInvalidRegister is returned when an index has no named register.
type ErrInvalidRegister uint32

func (err ErrInvalidRegister) Error() string {
	return f("invalid register %d", uint32(err))
}

func (err ErrInvalidRegister) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidRegister)
	return
}

// ErrImmediateOutOfRange is returned when a value does not fit an immediate field.
type ErrImmediateOutOfRange struct {
	Value int64
	Range Range
}

func (err ErrImmediateOutOfRange) Error() string {
	return f("immediate %d out of range [%d, %d] for %v", err.Value, err.Range.Min(), err.Range.Max(), err.Range)
}

func (err ErrImmediateOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(ErrImmediateOutOfRange)
	return
}

// ErrUnknownOpcode is returned when a word's opcode bits match no table entry.
type ErrUnknownOpcode uint32

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode 0x%02x", uint32(err))
}

func (err ErrUnknownOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownOpcode)
	return
}

// ErrSchemaOverflow is returned when an entry does not fit in a word.
type ErrSchemaOverflow struct {
	Mnemonic string
	Width    uint
}

func (err ErrSchemaOverflow) Error() string {
	return f("%v needs %d bits, word has %d", err.Mnemonic, err.Width, WORD_WIDTH)
}

// ErrSchemaDuplicate is returned when a mnemonic or an opcode is declared twice.
type ErrSchemaDuplicate struct {
	Mnemonic string
	Opcode   uint32
}

func (err ErrSchemaDuplicate) Error() string {
	return f("%v opcode 0x%02x duplicated", err.Mnemonic, err.Opcode)
}
