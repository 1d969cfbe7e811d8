package alphagen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

// Generate emits the Go source of the codec implementation for a built
// descriptor: the symbol type with one constant per symbol, the zero-sized
// codec tag type, and every conversion of the bitseq.Codec contract.  The
// walk over the descriptor is purely mechanical; all semantic validation
// already happened in Build.
//
// Generation is all-or-nothing: any template or formatting failure returns
// an error and no partial source.
func Generate(d *Descriptor) ([]byte, error) {
	view := makeView(d)

	var buf bytes.Buffer
	if err := codecTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("generating %s codec: %w", d.Name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s codec: %w", d.Name, err)
	}

	Logger().Debug("generated codec",
		zap.String("alphabet", d.Name),
		zap.Int("bits", d.Bits),
		zap.Int("symbols", len(d.Symbols)),
		zap.Bool("dense_ascii", view.Dense),
		zap.Bool("complement", d.HasComp),
	)
	return src, nil
}

type genSymbol struct {
	Const string
	Code  uint8
	Char  string
	Cases string
}

type genView struct {
	Name     string
	Doc      string
	Package  string
	Qual     string
	External bool
	Bits     int
	Narrow   bool
	Mask     string
	HasComp  bool
	CompMask string
	Dense    bool
	Items    string
	Symbols  []genSymbol
}

func makeView(d *Descriptor) genView {
	pkg := d.Package
	if pkg == "" {
		pkg = "bitseq"
	}
	view := genView{
		Name:     d.Name,
		Doc:      d.Doc,
		Package:  pkg,
		External: pkg != "bitseq",
		Bits:     d.Bits,
		Narrow:   d.Bits < 8,
		Mask:     fmt.Sprintf("0b%b", uint(1)<<uint(d.Bits)-1),
		HasComp:  d.HasComp,
		CompMask: fmt.Sprintf("0b%b", d.CompMask),
		Dense:    denseASCII(d),
	}
	if view.External {
		view.Qual = "bitseq."
	}
	if view.Doc == "" {
		view.Doc = fmt.Sprintf("is a generated %d-bit packed alphabet.", d.Bits)
	}

	var items strings.Builder
	items.WriteByte('{')
	for i, sym := range d.Symbols {
		if i > 0 {
			items.WriteString(", ")
		}
		items.WriteString(d.Name + sym.Name)
	}
	items.WriteByte('}')
	view.Items = items.String()

	for _, sym := range d.Symbols {
		cases := make([]string, 0, 1+len(sym.Alts))
		cases = append(cases, strconv.QuoteRune(rune(sym.Char)))
		for _, alt := range sym.Alts {
			cases = append(cases, strconv.QuoteRune(rune(alt)))
		}
		view.Symbols = append(view.Symbols, genSymbol{
			Const: d.Name + sym.Name,
			Code:  sym.Code,
			Char:  strconv.QuoteRune(rune(sym.Char)),
			Cases: strings.Join(cases, ", "),
		})
	}
	return view
}

// denseASCII reports whether every character mapping of the alphabet,
// canonical and alternate alike, satisfies (c*3 >> 3) & mask == code in
// wrapping byte arithmetic.  When it holds, UnsafeFromASCII needs no
// table at all.
func denseASCII(d *Descriptor) bool {
	mask := uint8(uint(1)<<uint(d.Bits) - 1)
	for _, sym := range d.Symbols {
		if (sym.Char*3>>3)&mask != sym.Code {
			return false
		}
		for _, alt := range sym.Alts {
			if (alt*3>>3)&mask != sym.Code {
				return false
			}
		}
	}
	return true
}

var codecTemplate = template.Must(template.New("codec").Parse(`// Code generated by alphagen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/chronos-tachyon/assert"
{{if .External}}
	bitseq "github.com/chronos-tachyon/bitseq"
{{end}})

// {{.Name}} {{.Doc}}
type {{.Name}} uint8

// Symbols of the {{.Name}} alphabet, in declaration order.
const (
{{range .Symbols}}	{{.Const}} {{$.Name}} = {{.Code}}
{{end}})

// String renders s as its canonical character.
func (s {{.Name}}) String() string {
	return string(rune({{.Name}}Codec{}.ToChar(s)))
}
{{if .HasComp}}
// Comp returns the paired complement of s.
func (s {{.Name}}) Comp() {{.Name}} {
	return {{.Name}}(uint8(s) ^ {{.CompMask}})
}
{{end}}
// {{.Name}}Codec binds {{.Name}} to its packed bit representation.
type {{.Name}}Codec struct{}

// {{.Name}}Seq is a packed sequence of {{.Name}} symbols.
type {{.Name}}Seq = {{.Qual}}Seq[{{.Name}}, {{.Name}}Codec]

// Parse{{.Name}} builds a packed sequence from its text form.
func Parse{{.Name}}(text string) ({{.Name}}Seq, error) {
	return {{.Qual}}Parse[{{.Name}}, {{.Name}}Codec](text)
}

// Bits is the width of one packed {{.Name}} symbol.
func ({{.Name}}Codec) Bits() byte { return {{.Bits}} }

// UnsafeFromBits reinterprets the low {{.Bits}} bits of b as a {{.Name}}
// symbol without checking that the result is a declared discriminant.
func ({{.Name}}Codec) UnsafeFromBits(b uint8) {{.Name}} {
{{if .Narrow}}	assert.Assertf(b < 1<<{{.Bits}}, "bits %#x out of range for {{.Name}}", b)
{{end}}	return {{.Name}}(b & {{.Mask}})
}

// TryFromBits converts b to a {{.Name}} symbol if b is a declared
// discriminant.
func ({{.Name}}Codec) TryFromBits(b uint8) ({{.Name}}, bool) {
	switch b {
{{range .Symbols}}	case {{.Code}}:
		return {{.Const}}, true
{{end}}	}
	return 0, false
}

// TryFromASCII maps c through the alphabet's canonical and alternate
// characters.
func ({{.Name}}Codec) TryFromASCII(c byte) ({{.Name}}, bool) {
	switch c {
{{range .Symbols}}	case {{.Cases}}:
		return {{.Const}}, true
{{end}}	}
	return 0, false
}
{{if .Dense}}
// UnsafeFromASCII converts an alphabet character to its symbol without
// validation.  The declared discriminants are a dense arithmetic
// transform of their characters: multiply the character by 3 and shift
// right by 3, so no table is needed.
func ({{.Name}}Codec) UnsafeFromASCII(c byte) {{.Name}} {
	return {{.Name}}Codec{}.UnsafeFromBits(c * 3 >> 3 & {{.Mask}})
}
{{else}}
// UnsafeFromASCII converts an alphabet character to its symbol without a
// miss branch.  The caller must guarantee that c belongs to the alphabet.
func ({{.Name}}Codec) UnsafeFromASCII(c byte) {{.Name}} {
	switch c {
{{range .Symbols}}	case {{.Cases}}:
		return {{.Const}}
{{end}}	}
	assert.Assertf(false, "byte %q is not a {{.Name}} character", c)
	return 0
}
{{end}}
// ToBits returns the declared discriminant of s.
func ({{.Name}}Codec) ToBits(s {{.Name}}) uint8 { return uint8(s) }

// ToChar returns the canonical character for s, never an alternate.
func ({{.Name}}Codec) ToChar(s {{.Name}}) byte {
	switch s {
{{range .Symbols}}	case {{.Const}}:
		return {{.Char}}
{{end}}	}
	assert.Assertf(false, "%#x is not a {{.Name}} symbol", uint8(s))
	return 0
}

// Items lists every {{.Name}} symbol in declaration order.
func ({{.Name}}Codec) Items() []{{.Name}} {
	return []{{.Name}}{{.Items}}
}
{{if .HasComp}}
// CompMask is the XOR mask pairing complementary discriminants.
func ({{.Name}}Codec) CompMask() uint8 { return {{.CompMask}} }
{{end}}
var _ {{.Qual}}Codec[{{.Name}}] = {{.Name}}Codec{}
{{if .HasComp}}var _ {{.Qual}}CompCodec[{{.Name}}] = {{.Name}}Codec{}
{{end}}`))
