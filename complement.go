package bitseq

// CompSeq replaces every symbol of q with its complement, in place.
//
// The per-symbol complement is an XOR of the discriminant against the
// codec's mask.  XOR commutes with slot packing, so whenever slots are
// word-aligned the whole sequence is complemented with a single XOR per
// backing word; otherwise the slots are complemented one at a time.
// Either way the result equals setting q[i] to the complement of q[i] for
// every index.
func CompSeq[S comparable, C CompCodec[S]](q *Seq[S, C]) {
	var c C
	bits := uint(c.Bits())
	mask := c.CompMask()
	if wordBits%bits != 0 {
		for index := 0; index < q.length; index++ {
			q.setSlot(index, bits, q.slot(index, bits)^mask)
		}
		return
	}
	var pattern uint64
	for shift := uint(0); shift < wordBits; shift += bits {
		pattern |= uint64(mask) << shift
	}
	for index := range q.words {
		q.words[index] ^= pattern
	}
	q.zeroPadding()
}

// RevSeq reverses the order of the symbols of q, in place.
func RevSeq[S comparable, C Codec[S]](q *Seq[S, C]) {
	var c C
	bits := uint(c.Bits())
	for i, j := 0, q.length-1; i < j; i, j = i+1, j-1 {
		a, b := q.slot(i, bits), q.slot(j, bits)
		q.setSlot(i, bits, b)
		q.setSlot(j, bits, a)
	}
}

// RevCompSeq computes the reverse complement of q, in place.
func RevCompSeq[S comparable, C CompCodec[S]](q *Seq[S, C]) {
	RevSeq(q)
	CompSeq(q)
}
