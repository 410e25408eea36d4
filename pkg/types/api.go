package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnknown      ErrKind = iota // not a *Error
	ErrKindUnknownGroup                // region group identifier not in the catalog
	ErrKindNoReader                    // label query on a locator without a reader
	ErrKindFormat                      // malformed pairs table, catalog file or priority list
	ErrKindNotFound                    // missing required column or document field
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindUnknownGroup:
		return "unknown-group"
	case ErrKindNoReader:
		return "no-reader"
	case ErrKindFormat:
		return "format"
	case ErrKindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (usually wrapped with context) by implementations.
var (
	// ErrUnknownGroup indicates a catalog lookup for an identifier that is not defined.
	ErrUnknownGroup = &Error{Kind: ErrKindUnknownGroup, Msg: "unknown region group"}
	// ErrNoReader indicates a label-requiring operation on a catalog-only locator.
	ErrNoReader = &Error{Kind: ErrKindNoReader, Msg: "locator has no reader"}
	// ErrFormat indicates malformed input text.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed input"}
	// ErrNotFound indicates a required column or field is missing.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

// KindOf returns the kind of the first *Error in err's chain, or ErrKindUnknown.
func KindOf(err error) ErrKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ErrKindUnknown
}
