package internal

import (
	"encoding/binary"
	"iter"
)

// WORD_SIZE is the size in bytes of an encoded instruction word.
const WORD_SIZE = 4

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Words iterates the little-endian 32-bit words of data, yielding the byte
// offset of each word. A trailing partial word is zero padded.
func Words(data []byte) iter.Seq2[uint32, uint32] {
	return func(yield func(offset uint32, word uint32) bool) {
		for n := 0; n < len(data); n += WORD_SIZE {
			var buf [WORD_SIZE]byte
			copy(buf[:], data[n:])
			if !yield(uint32(n), binary.LittleEndian.Uint32(buf[:])) {
				return
			}
		}
	}
}

// AppendWords appends the little-endian encoding of each word to buf.
func AppendWords(buf []byte, words iter.Seq[uint32]) []byte {
	for word := range words {
		buf = binary.LittleEndian.AppendUint32(buf, word)
	}
	return buf
}
