package bitseq

// Codec is the capability that binds an alphabet to a fixed bit width and
// to bits/ASCII conversions.  Implementations are generated by alphagen,
// one zero-sized tag type per alphabet, and are dispatched statically
// through the type parameter so that the packed container can rely on Bits
// being a constant of the instantiation.
//
// The Unsafe conversions are trusted fast paths: they skip the membership
// check and their result is unspecified for inputs outside the alphabet.
// Callers must only reach for them with values that already round-tripped
// through ToBits or ToChar.
type Codec[S comparable] interface {
	// Bits is the width of one packed symbol, typically 1 to 8.
	Bits() byte

	// UnsafeFromBits reinterprets the low Bits() bits of b as a symbol
	// without checking that the result is a declared discriminant.
	UnsafeFromBits(b uint8) S

	// TryFromBits converts b to a symbol if b is a declared
	// discriminant.  This is the only way untrusted bits become a
	// trusted symbol value.
	TryFromBits(b uint8) (S, bool)

	// UnsafeFromASCII converts an alphabet character to its symbol
	// without a miss branch.
	UnsafeFromASCII(c byte) S

	// TryFromASCII maps c through the union of the alphabet's canonical
	// and alternate characters.
	TryFromASCII(c byte) (S, bool)

	// ToBits returns the declared discriminant of s, widened to Bits()
	// bits.
	ToBits(s S) uint8

	// ToChar returns the canonical character for s, never an alternate.
	ToChar(s S) byte

	// Items lists every symbol in declaration order.
	Items() []S
}

// CompCodec marks alphabets whose symbols pair up as complements, with the
// paired discriminants being bitwise complements of each other under a
// fixed XOR mask.
type CompCodec[S comparable] interface {
	Codec[S]

	// CompMask is the XOR mask that maps a discriminant to the
	// discriminant of its complement symbol.
	CompMask() uint8
}
