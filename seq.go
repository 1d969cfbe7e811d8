package bitseq

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// wordBits is the width of one backing word.
const wordBits = 64

// Seq is a packed sequence of alphabet symbols.  Each symbol occupies a
// C.Bits()-wide slot; slot i starts at bit offset i*Bits, counted from the
// most significant bit of the first backing word, and is stored most
// significant bit first.  Bits past the last slot in the final word are
// padding and are always zero, so two sequences are symbol-wise equal
// exactly when their lengths and backing words are equal.
//
// A Seq is exclusively owned by its creator.  Concurrent readers are fine;
// concurrent mutation must be serialized by the caller.
type Seq[S comparable, C Codec[S]] struct {
	words  []uint64
	length int
}

// New constructs a Seq holding the given symbols.
func New[S comparable, C Codec[S]](symbols ...S) Seq[S, C] {
	var c C
	q := Seq[S, C]{
		words:  make([]uint64, numWords(len(symbols), uint(c.Bits()))),
		length: len(symbols),
	}
	for index, s := range symbols {
		q.Set(index, s)
	}
	return q
}

// Parse builds a Seq from the text form of a sequence, one character per
// symbol.  Both canonical and alternate characters are accepted.
func Parse[S comparable, C Codec[S]](text string) (Seq[S, C], error) {
	var c C
	q := Seq[S, C]{
		words:  make([]uint64, numWords(len(text), uint(c.Bits()))),
		length: len(text),
	}
	for index := 0; index < len(text); index++ {
		s, ok := c.TryFromASCII(text[index])
		if !ok {
			return Seq[S, C]{}, fmt.Errorf("invalid symbol character %q at index %d", text[index], index)
		}
		q.Set(index, s)
	}
	return q, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse[S comparable, C Codec[S]](text string) Seq[S, C] {
	q, err := Parse[S, C](text)
	if err != nil {
		panic(err)
	}
	return q
}

// FromRaw constructs a Seq directly from a backing word sequence and a
// symbol count.  It fails if words is too short to hold length symbols.
// Surplus words are ignored and padding bits are zeroed, but the packed
// slots themselves are trusted to hold declared discriminants; callers
// importing bits of unknown provenance must check them with TryFromBits
// first.
func FromRaw[S comparable, C Codec[S]](length int, words []uint64) (Seq[S, C], bool) {
	var c C
	bits := uint(c.Bits())
	if length < 0 {
		return Seq[S, C]{}, false
	}
	// Equivalent to len(words) >= ceil(length*bits/64), but cannot
	// overflow on absurd lengths from untrusted input.
	if bits > 0 && uint64(length) > uint64(len(words))*wordBits/uint64(bits) {
		return Seq[S, C]{}, false
	}
	q := Seq[S, C]{
		words:  append([]uint64(nil), words[:numWords(length, bits)]...),
		length: length,
	}
	q.zeroPadding()
	return q, true
}

// IntoRaw returns the symbol count and a copy of the backing words, for
// transport.  The receiver is not mutated.
func (q Seq[S, C]) IntoRaw() (int, []uint64) {
	return q.length, append([]uint64(nil), q.words...)
}

// Len is the number of symbols in the sequence (not bits).
func (q Seq[S, C]) Len() int {
	return q.length
}

// Get reads the symbol at the given index.
func (q Seq[S, C]) Get(index int) S {
	var c C
	assert.Assertf(index >= 0 && index < q.length, "index %d out of range [0, %d)", index, q.length)
	return c.UnsafeFromBits(q.slot(index, uint(c.Bits())))
}

// Set overwrites the symbol at the given index.  No reallocation happens.
func (q *Seq[S, C]) Set(index int, s S) {
	var c C
	assert.Assertf(index >= 0 && index < q.length, "index %d out of range [0, %d)", index, q.length)
	q.setSlot(index, uint(c.Bits()), c.ToBits(s))
}

// Append adds one symbol at the end of the sequence, growing the backing
// storage by at most one word.
func (q *Seq[S, C]) Append(s S) {
	var c C
	if numWords(q.length+1, uint(c.Bits())) > len(q.words) {
		q.words = append(q.words, 0)
	}
	q.length++
	q.Set(q.length-1, s)
}

// Equal reports whether both sequences hold the same symbols in the same
// order.
func (q Seq[S, C]) Equal(other Seq[S, C]) bool {
	if q.length != other.length {
		return false
	}
	for index := range q.words {
		if q.words[index] != other.words[index] {
			return false
		}
	}
	return true
}

// String renders the sequence in its text form, one canonical character
// per symbol.
func (q Seq[S, C]) String() string {
	var c C
	var buf strings.Builder
	buf.Grow(q.length)
	for index := 0; index < q.length; index++ {
		buf.WriteByte(c.ToChar(q.Get(index)))
	}
	return buf.String()
}

// numWords is the number of backing words needed for length symbols of the
// given width.
func numWords(length int, bits uint) int {
	return int((uint(length)*bits + wordBits - 1) / wordBits)
}

// slot reads the raw bits of slot index.  A slot straddles at most two
// words because bits never exceeds 8.
func (q Seq[S, C]) slot(index int, bits uint) uint8 {
	mask := uint64(1)<<bits - 1
	off := uint(index) * bits
	w, b := off/wordBits, off%wordBits
	if b+bits <= wordBits {
		return uint8(q.words[w] >> (wordBits - b - bits) & mask)
	}
	hi := b + bits - wordBits
	v := q.words[w]<<hi | q.words[w+1]>>(wordBits-hi)
	return uint8(v & mask)
}

// setSlot writes the raw bits of slot index.
func (q *Seq[S, C]) setSlot(index int, bits uint, value uint8) {
	mask := uint64(1)<<bits - 1
	v := uint64(value) & mask
	off := uint(index) * bits
	w, b := off/wordBits, off%wordBits
	if b+bits <= wordBits {
		shift := wordBits - b - bits
		q.words[w] = q.words[w]&^(mask<<shift) | v<<shift
		return
	}
	hi := b + bits - wordBits
	lo := bits - hi
	loMask := uint64(1)<<lo - 1
	q.words[w] = q.words[w]&^loMask | v>>hi
	q.words[w+1] = q.words[w+1]&^(^uint64(0)<<(wordBits-hi)) | (v&(uint64(1)<<hi-1))<<(wordBits-hi)
}

// zeroPadding clears the bits past the last slot in the final word.
func (q *Seq[S, C]) zeroPadding() {
	var c C
	used := uint(q.length) * uint(c.Bits())
	if rem := used % wordBits; rem != 0 {
		q.words[len(q.words)-1] &^= uint64(1)<<(wordBits-rem) - 1
	}
}
