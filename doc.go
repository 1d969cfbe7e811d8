// Package bitseq stores sequences of symbols drawn from small fixed
// alphabets as densely packed bit vectors.  An alphabet is declared once,
// and the alphagen tool derives its conversion tables ahead of compilation,
// so every codec is a fixed set of pure functions on a zero-sized type.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Nucleic_acid_notation>
//
//     <https://en.wikipedia.org/wiki/Complementarity_(molecular_biology)>
//
package bitseq

//go:generate go run ./cmd/alphagen -decl alphagen/testdata/dna.json -out dna.go
//go:generate go run ./cmd/alphagen -decl alphagen/testdata/iupac.json -out iupac.go
