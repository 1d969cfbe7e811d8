// Package alphagen derives packed-alphabet codecs from declarative
// alphabet definitions.  It validates a declaration, infers the minimum
// bit width for the declared discriminants, and generates the Go source
// for a bitseq.Codec implementation.  It runs once per alphabet, before
// compilation, via cmd/alphagen.
package alphagen

// Declaration is an alphabet definition as handed over by the front end:
// an ordered list of symbols with explicit discriminants plus optional
// annotations.  The field layout doubles as the JSON schema of the
// declaration files read by cmd/alphagen.
type Declaration struct {
	// Name is the alphabet name, used as the generated type name.
	Name string `json:"name"`

	// Doc continues the doc comment of the generated symbol type after
	// its name, e.g. "is the 2-bit DNA nucleotide alphabet."
	Doc string `json:"doc,omitempty"`

	// Package is the package the generated file belongs to.  Empty
	// means bitseq itself.
	Package string `json:"package,omitempty"`

	// Bits requests a wider encoding than the discriminants need, e.g.
	// to reserve room for future symbols.  Zero means the minimum.
	Bits int `json:"bits,omitempty"`

	// Symbols lists the alphabet's symbols in declaration order.
	Symbols []SymbolDecl `json:"symbols"`
}

// SymbolDecl declares one symbol of an alphabet.
type SymbolDecl struct {
	// Name is the symbol name.  Its first byte is the symbol's
	// canonical character unless Display overrides it.
	Name string `json:"name"`

	// Code is the symbol's discriminant: an integer in 0..255 or a
	// single-character string (a byte literal).  It is mandatory;
	// any other value is rejected.
	Code interface{} `json:"code,omitempty"`

	// Display overrides the canonical character with an explicit
	// single character.
	Display string `json:"display,omitempty"`

	// Alt lists additional input-only characters accepted as this
	// symbol.  They never affect output rendering.
	Alt []string `json:"alt,omitempty"`

	// Comp names the symbol's complement partner, if the alphabet
	// pairs its symbols.
	Comp string `json:"comp,omitempty"`
}
