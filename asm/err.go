package asm

import (
	"errors"

	"github.com/ezrec/wordisa/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrWordSyntax      = errors.New(f(".word syntax"))
	ErrOrgSyntax       = errors.New(f(".org syntax"))
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrMnemonicInvalid string

func (err ErrMnemonicInvalid) Error() string {
	return f("'%v' is not a mnemonic", string(err))
}

func (err ErrMnemonicInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrMnemonicInvalid)
	return
}

type ErrDirectiveInvalid string

func (err ErrDirectiveInvalid) Error() string {
	return f("'%v' is not a directive", string(err))
}

func (err ErrDirectiveInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrDirectiveInvalid)
	return
}

// ErrTokenInvalid is returned by the Lexer for text it cannot classify.
type ErrTokenInvalid struct {
	Column int
	Text   string
}

func (err ErrTokenInvalid) Error() string {
	return f("column %d: unexpected '%v'", err.Column, err.Text)
}

func (err ErrTokenInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrTokenInvalid)
	return
}

type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbol %v missing", string(err))
}

func (err ErrSymbolMissing) Is(target error) (ok bool) {
	_, ok = target.(ErrSymbolMissing)
	return
}

// ErrOrgInvalid is returned when .org would move backwards or off a word
// boundary.
type ErrOrgInvalid int64

func (err ErrOrgInvalid) Error() string {
	return f(".org %#x invalid", int64(err))
}

func (err ErrOrgInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrOrgInvalid)
	return
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) (ok bool) {
	_, ok = target.(ErrParseNumber)
	return
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrParseExpression)
	return
}
