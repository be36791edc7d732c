package schema

import (
	"fmt"
)

// WORD_WIDTH is the number of bits in an encoded instruction word.
const WORD_WIDTH = 32

// Kind is the kind of value an operand field carries.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_REGISTER  = Kind(0) // register
	KIND_IMMEDIATE = Kind(1) // immediate
)

// Range is the representable range of a fixed width immediate.
type Range struct {
	Width  uint // Field width in bits, 1..32.
	Signed bool // Two's complement if set.
}

// String returns the range as s<width> or u<width>.
func (r Range) String() string {
	if r.Signed {
		return fmt.Sprintf("s%d", r.Width)
	}
	return fmt.Sprintf("u%d", r.Width)
}

// Mask returns the low Width bits set.
func (r Range) Mask() uint32 {
	return mask(r.Width)
}

// Min returns the smallest representable value.
func (r Range) Min() int64 {
	if !r.Signed || r.Width == 0 {
		return 0
	}
	return -(int64(1) << (r.Width - 1))
}

// Max returns the largest representable value.
func (r Range) Max() int64 {
	if r.Width == 0 {
		return 0
	}
	if r.Signed {
		return (int64(1) << (r.Width - 1)) - 1
	}
	return (int64(1) << r.Width) - 1
}

// Check returns ErrImmediateOutOfRange if value does not fit the range.
func (r Range) Check(value int64) (err error) {
	if value < r.Min() || value > r.Max() {
		err = ErrImmediateOutOfRange{Value: value, Range: r}
	}
	return
}

// Bits returns the two's complement pattern of value truncated to Width bits.
func (r Range) Bits(value int64) uint32 {
	return uint32(uint64(value)) & r.Mask()
}

// Value reconstructs a value from the low Width bits of pattern, sign
// extending bit Width-1 for signed ranges. Every pattern decodes.
func (r Range) Value(pattern uint32) (value int64) {
	pattern &= r.Mask()
	value = int64(pattern)
	if r.Signed && r.Width > 0 && pattern&(1<<(r.Width-1)) != 0 {
		value -= int64(1) << r.Width
	}
	return
}

// Field is one operand field of an instruction word.
type Field struct {
	Name   string // Operand name, for diagnostics.
	Width  uint   // Width in bits.
	Kind   Kind   // Register index or immediate.
	Signed bool   // Immediates only: two's complement.
}

// Register declares a register index field.
func Register(name string, width uint) Field {
	return Field{Name: name, Width: width, Kind: KIND_REGISTER}
}

// Signed declares a two's complement immediate field.
func Signed(name string, width uint) Field {
	return Field{Name: name, Width: width, Kind: KIND_IMMEDIATE, Signed: true}
}

// Unsigned declares an unsigned immediate field.
func Unsigned(name string, width uint) Field {
	return Field{Name: name, Width: width, Kind: KIND_IMMEDIATE}
}

// Range returns the immediate range of the field.
func (fd Field) Range() Range {
	return Range{Width: fd.Width, Signed: fd.Signed}
}

// Mask returns the low Width bits set.
func (fd Field) Mask() uint32 {
	return mask(fd.Width)
}

// String returns name:width for registers and name:range for immediates.
func (fd Field) String() string {
	if fd.Kind == KIND_IMMEDIATE {
		return fmt.Sprintf("%v:%v", fd.Name, fd.Range())
	}
	return fmt.Sprintf("%v:%d", fd.Name, fd.Width)
}

func mask(width uint) uint32 {
	if width >= WORD_WIDTH {
		return 0xffffffff
	}
	return (uint32(1) << width) - 1
}
