package asm

import (
	"iter"
	"slices"

	"github.com/ezrec/wordisa/internal"
	"github.com/ezrec/wordisa/isa"
)

// Line is one assembled source line.
type Line struct {
	LineNo      int             // Source line number, starting at 1.
	Address     int             // Byte address of the first word.
	Text        string          // Source text.
	Instruction isa.Instruction // Nil for .word data.
	Words       []uint32        // Encoded words.
}

// Program is the result of an assembly.
type Program struct {
	Lines []Line
}

// At returns the line that produced the word at a byte address.
func (prog *Program) At(address int) (line *Line, ok bool) {
	for n := range prog.Lines {
		ln := &prog.Lines[n]
		if address >= ln.Address && address < ln.Address+len(ln.Words)*internal.WORD_SIZE {
			line = ln
			ok = true
			break
		}
	}

	return
}

// Words iterates every encoded word with its byte address, in line order.
func (prog *Program) Words() iter.Seq2[int, uint32] {
	return func(yield func(address int, word uint32) bool) {
		for _, line := range prog.Lines {
			for n, word := range line.Words {
				if !yield(line.Address+n*internal.WORD_SIZE, word) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image starting at address 0. Gaps left by .org
// are zero.
func (prog *Program) Binary() (bins []uint32) {
	size := 0
	for address := range prog.Words() {
		size = max(size, address/internal.WORD_SIZE+1)
	}

	bins = make([]uint32, size)
	for address, word := range prog.Words() {
		bins[address/internal.WORD_SIZE] = word
	}

	return
}

// Bytes returns the memory image as little-endian bytes.
func (prog *Program) Bytes() []byte {
	return internal.AppendWords(nil, slices.Values(prog.Binary()))
}
