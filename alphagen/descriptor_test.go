package alphagen

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
)

func dnaDecl() Declaration {
	return Declaration{
		Name: "Dna",
		Doc:  "is the 2-bit DNA nucleotide alphabet: A, C, G, T.",
		Symbols: []SymbolDecl{
			{Name: "A", Code: 0, Comp: "T"},
			{Name: "C", Code: 1, Comp: "G"},
			{Name: "G", Code: 2, Comp: "C"},
			{Name: "T", Code: 3, Comp: "A"},
		},
	}
}

func expectDeclError(t *testing.T, err error, kind ErrKind, symbol string) {
	t.Helper()
	var declErr *DeclError
	if !errors.As(err, &declErr) {
		t.Fatalf("expected a DeclError, got %v", err)
	}
	if declErr.Kind != kind {
		t.Errorf("wrong kind:\n\texpect: %v\n\tactual: %v", kind, declErr.Kind)
	}
	if declErr.Symbol != symbol {
		t.Errorf("wrong symbol anchor:\n\texpect: %q\n\tactual: %q", symbol, declErr.Symbol)
	}
}

func TestBuild_Dna(t *testing.T) {
	d, err := Build(dnaDecl())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Bits != 2 {
		t.Errorf("wrong width:\n\texpect: 2\n\tactual: %d", d.Bits)
	}
	if d.MaxCode != 3 {
		t.Errorf("wrong max code:\n\texpect: 3\n\tactual: %d", d.MaxCode)
	}
	if !d.HasComp || d.CompMask != 0b11 {
		t.Errorf("wrong complement mask:\n\texpect: 0b11\n\tactual: 0b%b (declared: %v)", d.CompMask, d.HasComp)
	}
	names := make([]string, 0, len(d.Symbols))
	for _, sym := range d.Symbols {
		names = append(names, sym.Name)
		if sym.Char != sym.Name[0] {
			t.Errorf("wrong canonical char for %q: %q", sym.Name, sym.Char)
		}
	}
	if got := strings.Join(names, ""); got != "ACGT" {
		t.Errorf("wrong symbol order:\n\texpect: ACGT\n\tactual: %s", got)
	}
}

func TestBuild_MissingDiscriminant(t *testing.T) {
	_, err := Build(Declaration{
		Name: "Bad",
		Symbols: []SymbolDecl{
			{Name: "A", Code: 0},
			{Name: "B"},
		},
	})
	expectDeclError(t, err, MissingDiscriminant, "B")
}

func TestBuild_InvalidDiscriminant(t *testing.T) {
	testData := [...]struct {
		name string
		code interface{}
	}{
		{"negative", -1},
		{"too big", 256},
		{"fractional", 1.5},
		{"long string", "AB"},
		{"bool", true},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Build(Declaration{
				Name:    "Bad",
				Symbols: []SymbolDecl{{Name: "A", Code: row.code}},
			})
			expectDeclError(t, err, InvalidDiscriminantType, "A")
		})
	}
}

func TestBuild_SingleSymbol(t *testing.T) {
	// A lone symbol needs no bits to tell apart, but it still has to
	// occupy a slot in the packed container.
	d, err := Build(Declaration{
		Name:    "Mono",
		Symbols: []SymbolDecl{{Name: "A", Code: 0}},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Bits != 1 {
		t.Errorf("wrong width:\n\texpect: 1\n\tactual: %d", d.Bits)
	}
}

func TestBuild_ByteLiteralDiscriminant(t *testing.T) {
	d, err := Build(Declaration{
		Name:    "Punct",
		Symbols: []SymbolDecl{{Name: "Star", Code: "*"}},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Symbols[0].Code != '*' {
		t.Errorf("wrong code:\n\texpect: %d\n\tactual: %d", '*', d.Symbols[0].Code)
	}
	if d.Symbols[0].Char != 'S' {
		t.Errorf("wrong canonical char:\n\texpect: 'S'\n\tactual: %q", d.Symbols[0].Char)
	}
}

func TestBuild_DisplayAndAlt(t *testing.T) {
	d, err := Build(Declaration{
		Name: "Gappy",
		Symbols: []SymbolDecl{
			{Name: "A", Code: 0, Alt: []string{"a"}},
			{Name: "Gap", Code: 1, Display: "-", Alt: []string{".", "~"}},
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	gap := d.Symbols[1]
	if gap.Char != '-' {
		t.Errorf("display override not applied: got %q", gap.Char)
	}
	if len(gap.Alts) != 2 || gap.Alts[0] != '.' || gap.Alts[1] != '~' {
		t.Errorf("wrong alts:\n\texpect: ['.', '~']\n\tactual: %q", gap.Alts)
	}
}

func TestBuild_BadAttributes(t *testing.T) {
	_, err := Build(Declaration{
		Name:    "Bad",
		Symbols: []SymbolDecl{{Name: "A", Code: 0, Display: "--"}},
	})
	expectDeclError(t, err, BadAttribute, "A")

	_, err = Build(Declaration{
		Name:    "Bad",
		Symbols: []SymbolDecl{{Name: "A", Code: 0, Alt: []string{"aa"}}},
	})
	expectDeclError(t, err, BadAttribute, "A")
}

func TestBuild_Duplicates(t *testing.T) {
	_, err := Build(Declaration{
		Name: "Bad",
		Symbols: []SymbolDecl{
			{Name: "A", Code: 0},
			{Name: "A", Code: 1},
		},
	})
	expectDeclError(t, err, DuplicateSymbol, "A")

	_, err = Build(Declaration{
		Name: "Bad",
		Symbols: []SymbolDecl{
			{Name: "A", Code: 0},
			{Name: "B", Code: 0},
		},
	})
	expectDeclError(t, err, DuplicateDiscriminant, "B")

	_, err = Build(Declaration{
		Name: "Bad",
		Symbols: []SymbolDecl{
			{Name: "A", Code: 0},
			{Name: "B", Code: 1, Alt: []string{"A"}},
		},
	})
	expectDeclError(t, err, DuplicateChar, "B")
}

func TestBuild_WidthOverride(t *testing.T) {
	decl := dnaDecl()
	decl.Bits = 8
	d, err := Build(decl)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Bits != 8 {
		t.Errorf("wrong width:\n\texpect: 8\n\tactual: %d", d.Bits)
	}

	decl.Bits = 1
	_, err = Build(decl)
	expectDeclError(t, err, WidthTooSmall, "")
	if err == nil || !strings.Contains(err.Error(), "min: 2") {
		t.Errorf("error does not report the minimum width: %v", err)
	}
}

func TestBuild_BadComplement(t *testing.T) {
	partial := dnaDecl()
	partial.Symbols[3].Comp = ""
	_, err := Build(partial)
	expectDeclError(t, err, BadComplement, "")

	unknown := dnaDecl()
	unknown.Symbols[0].Comp = "U"
	_, err = Build(unknown)
	expectDeclError(t, err, BadComplement, "A")

	asym := dnaDecl()
	asym.Symbols[0].Comp = "G"
	_, err = Build(asym)
	expectDeclError(t, err, BadComplement, "A")

	uneven := Declaration{
		Name: "Bad",
		Symbols: []SymbolDecl{
			{Name: "A", Code: 0, Comp: "T"},
			{Name: "T", Code: 3, Comp: "A"},
			{Name: "C", Code: 1, Comp: "G"},
			{Name: "G", Code: 6, Comp: "C"},
		},
	}
	_, err = Build(uneven)
	expectDeclError(t, err, BadComplement, "C")
}

func TestBuild_FromJSON(t *testing.T) {
	data, err := os.ReadFile("testdata/dna.json")
	if err != nil {
		t.Fatalf("read testdata: %v", err)
	}
	var decl Declaration
	if err := json.Unmarshal(data, &decl); err != nil {
		t.Fatalf("parse testdata: %v", err)
	}
	d, err := Build(decl)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Bits != 2 || d.MaxCode != 3 || !d.HasComp {
		t.Errorf("wrong descriptor from JSON: bits=%d max=%d comp=%v", d.Bits, d.MaxCode, d.HasComp)
	}
}
