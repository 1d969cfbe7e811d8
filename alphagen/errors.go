package alphagen

import (
	"fmt"
)

// ErrKind classifies the ways an alphabet declaration can be rejected.
type ErrKind int

const (
	// MissingDiscriminant means a symbol declared no explicit code.
	MissingDiscriminant ErrKind = iota

	// InvalidDiscriminantType means a symbol's code is neither an
	// integer nor a single-character byte literal, or does not fit in
	// 0..255.
	InvalidDiscriminantType

	// WidthTooSmall means the requested bit width cannot encode every
	// declared discriminant.
	WidthTooSmall

	// DuplicateSymbol means two symbols share a name.
	DuplicateSymbol

	// DuplicateDiscriminant means two symbols share a code, which would
	// make bits-to-symbol conversion ambiguous.
	DuplicateDiscriminant

	// DuplicateChar means one character maps to two different symbols,
	// through any mix of canonical and alternate characters.
	DuplicateChar

	// BadAttribute means a display or alt annotation is malformed.
	BadAttribute

	// BadComplement means the declared complement pairing is not an
	// involution of XOR-paired discriminants.
	BadComplement
)

// String returns the name of the error kind.
func (kind ErrKind) String() string {
	switch kind {
	case MissingDiscriminant:
		return "MissingDiscriminant"
	case InvalidDiscriminantType:
		return "InvalidDiscriminantType"
	case WidthTooSmall:
		return "WidthTooSmall"
	case DuplicateSymbol:
		return "DuplicateSymbol"
	case DuplicateDiscriminant:
		return "DuplicateDiscriminant"
	case DuplicateChar:
		return "DuplicateChar"
	case BadAttribute:
		return "BadAttribute"
	case BadComplement:
		return "BadComplement"
	}
	return fmt.Sprintf("ErrKind(%d)", int(kind))
}

var _ fmt.Stringer = ErrKind(0)

// DeclError describes why an alphabet declaration was rejected.  Symbol
// anchors the error to the offending symbol; it is empty for alphabet-wide
// errors such as WidthTooSmall.
type DeclError struct {
	Kind   ErrKind
	Symbol string
	msg    string
}

func declErrorf(kind ErrKind, symbol string, format string, args ...interface{}) *DeclError {
	return &DeclError{Kind: kind, Symbol: symbol, msg: fmt.Sprintf(format, args...)}
}

// Error returns the diagnostic message, prefixed with the anchor symbol
// when there is one.
func (e *DeclError) Error() string {
	if e.Symbol == "" {
		return e.msg
	}
	return fmt.Sprintf("symbol %q: %s", e.Symbol, e.msg)
}

var _ error = (*DeclError)(nil)
