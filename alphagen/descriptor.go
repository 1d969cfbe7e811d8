package alphagen

import (
	"fmt"
	"math"
)

// Symbol is one normalized alphabet symbol.
type Symbol struct {
	// Name is the symbol name from the declaration.
	Name string

	// Code is the explicit discriminant, which is also the symbol's
	// packed bit value.
	Code uint8

	// Char is the canonical character the symbol renders as.
	Char byte

	// Alts are additional input-only characters accepted as this
	// symbol.
	Alts []byte

	// Comp is the name of the complement partner, or "".
	Comp string
}

// Descriptor is a validated, normalized alphabet definition, ready for
// code generation.
type Descriptor struct {
	Name    string
	Doc     string
	Package string

	// Symbols is in declaration order.
	Symbols []Symbol

	// Bits is the resolved packed width.
	Bits int

	// MaxCode is the largest declared discriminant.
	MaxCode uint8

	// HasComp is true when the alphabet pairs every symbol with a
	// complement; CompMask is then the XOR mask between the
	// discriminants of each pair.
	HasComp  bool
	CompMask uint8
}

// Build validates and normalizes an alphabet declaration.  It rejects
// symbols without discriminants, discriminants outside 0..255, duplicate
// names, duplicate discriminants, colliding character mappings, malformed
// annotations, too-small width overrides, and broken complement pairings.
// On failure it returns a DeclError anchored to the offending symbol; no
// partial descriptor is ever produced.
func Build(decl Declaration) (*Descriptor, error) {
	if decl.Name == "" {
		return nil, fmt.Errorf("alphabet declaration has no name")
	}
	if len(decl.Symbols) == 0 {
		return nil, fmt.Errorf("alphabet %q declares no symbols", decl.Name)
	}

	d := &Descriptor{
		Name:    decl.Name,
		Doc:     decl.Doc,
		Package: decl.Package,
		Symbols: make([]Symbol, 0, len(decl.Symbols)),
	}

	byName := make(map[string]int, len(decl.Symbols))
	byCode := make(map[uint8]string, len(decl.Symbols))
	byChar := make(map[byte]string, len(decl.Symbols))

	for _, sd := range decl.Symbols {
		if sd.Name == "" {
			return nil, declErrorf(BadAttribute, "", "alphabet %q declares a symbol without a name", decl.Name)
		}
		if _, found := byName[sd.Name]; found {
			return nil, declErrorf(DuplicateSymbol, sd.Name, "declared more than once")
		}

		code, err := parseCode(sd)
		if err != nil {
			return nil, err
		}
		if owner, found := byCode[code]; found {
			return nil, declErrorf(DuplicateDiscriminant, sd.Name, "discriminant %d is already used by %q", code, owner)
		}

		char := sd.Name[0]
		if sd.Display != "" {
			if len(sd.Display) != 1 {
				return nil, declErrorf(BadAttribute, sd.Name, "display must be a single character, got %q", sd.Display)
			}
			char = sd.Display[0]
		}
		if owner, found := byChar[char]; found {
			return nil, declErrorf(DuplicateChar, sd.Name, "character %q already maps to %q", char, owner)
		}
		byChar[char] = sd.Name

		sym := Symbol{Name: sd.Name, Code: code, Char: char, Comp: sd.Comp}
		for _, alt := range sd.Alt {
			if len(alt) != 1 {
				return nil, declErrorf(BadAttribute, sd.Name, "alt must be a single character, got %q", alt)
			}
			if owner, found := byChar[alt[0]]; found {
				return nil, declErrorf(DuplicateChar, sd.Name, "character %q already maps to %q", alt[0], owner)
			}
			byChar[alt[0]] = sd.Name
			sym.Alts = append(sym.Alts, alt[0])
		}

		byName[sd.Name] = len(d.Symbols)
		byCode[code] = sd.Name
		if code > d.MaxCode {
			d.MaxCode = code
		}
		d.Symbols = append(d.Symbols, sym)
	}

	bits, werr := resolveWidth(d.MaxCode, decl.Bits)
	if werr != nil {
		return nil, werr
	}
	d.Bits = bits

	if err := buildComplement(d, byName); err != nil {
		return nil, err
	}
	return d, nil
}

// parseCode extracts the discriminant of one symbol declaration.  The
// JSON front end hands integers over as float64; direct Go callers may
// pass int.  A single-character string is a byte literal.
func parseCode(sd SymbolDecl) (uint8, *DeclError) {
	switch code := sd.Code.(type) {
	case nil:
		return 0, declErrorf(MissingDiscriminant, sd.Name, "no discriminant declared")
	case int:
		if code < 0 || code > math.MaxUint8 {
			return 0, declErrorf(InvalidDiscriminantType, sd.Name, "discriminant %d does not fit in 0..255", code)
		}
		return uint8(code), nil
	case float64:
		if code != math.Trunc(code) || code < 0 || code > math.MaxUint8 {
			return 0, declErrorf(InvalidDiscriminantType, sd.Name, "discriminant %v does not fit in 0..255", code)
		}
		return uint8(code), nil
	case string:
		if len(code) != 1 {
			return 0, declErrorf(InvalidDiscriminantType, sd.Name, "byte literal discriminant must be a single character, got %q", code)
		}
		return code[0], nil
	}
	return 0, declErrorf(InvalidDiscriminantType, sd.Name, "discriminant must be an integer or a byte literal, got %T", sd.Code)
}

// buildComplement checks the declared complement pairing.  Either no
// symbol declares a partner, or every symbol does; the pairing must be a
// symmetric involution with no fixed points, and the discriminants of
// every pair must differ by one and the same XOR mask.
func buildComplement(d *Descriptor, byName map[string]int) *DeclError {
	declared := 0
	for _, sym := range d.Symbols {
		if sym.Comp != "" {
			declared++
		}
	}
	if declared == 0 {
		return nil
	}
	if declared != len(d.Symbols) {
		return declErrorf(BadComplement, "", "either every symbol of %q declares a complement or none does", d.Name)
	}

	var mask uint8
	for i, sym := range d.Symbols {
		j, found := byName[sym.Comp]
		if !found {
			return declErrorf(BadComplement, sym.Name, "complement partner %q is not declared", sym.Comp)
		}
		partner := d.Symbols[j]
		if j == i {
			return declErrorf(BadComplement, sym.Name, "symbol cannot be its own complement")
		}
		if partner.Comp != sym.Name {
			return declErrorf(BadComplement, sym.Name, "complement pairing with %q is not symmetric", sym.Comp)
		}
		pairMask := sym.Code ^ partner.Code
		if i == 0 {
			mask = pairMask
		} else if pairMask != mask {
			return declErrorf(BadComplement, sym.Name,
				"pair masks are inconsistent: 0b%b vs 0b%b", pairMask, mask)
		}
	}

	d.HasComp = true
	d.CompMask = mask
	return nil
}
