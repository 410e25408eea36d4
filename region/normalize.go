package region

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Laterality is the hemisphere qualifier carried by a label.
type Laterality int

const (
	LateralityNone Laterality = iota
	LateralityLeft
	LateralityRight
)

func (l Laterality) String() string {
	switch l {
	case LateralityLeft:
		return "left"
	case LateralityRight:
		return "right"
	default:
		return "none"
	}
}

// Label is a contact-pair label split into laterality and region token.
type Label struct {
	Side  Laterality
	Token string
}

const (
	leftPrefix  = "left"
	rightPrefix = "right"
)

// NormalizeToken folds case, applies NFC, trims and collapses runs of
// whitespace to a single space. It does not look for a laterality prefix.
func NormalizeToken(s string) string {
	if s == "" {
		return ""
	}
	// Casers keep internal state; one per call keeps this goroutine-safe.
	folded := cases.Fold().String(norm.NFC.String(s))
	return strings.Join(strings.Fields(folded), " ")
}

// Normalize splits raw into its laterality and normalized region token.
// A leading "left" or "right" counts only when followed by whitespace, '-'
// or '_' and a non-empty remainder. Empty input yields the zero Label.
func Normalize(raw string) Label {
	s := NormalizeToken(raw)
	if side, rest, ok := cutSide(s); ok {
		return Label{Side: side, Token: rest}
	}
	return Label{Side: LateralityNone, Token: s}
}

func cutSide(s string) (Laterality, string, bool) {
	var side Laterality
	var rest string
	switch {
	case strings.HasPrefix(s, leftPrefix):
		side, rest = LateralityLeft, s[len(leftPrefix):]
	case strings.HasPrefix(s, rightPrefix):
		side, rest = LateralityRight, s[len(rightPrefix):]
	default:
		return LateralityNone, "", false
	}
	if rest == "" || !isSeparator(rest[0]) {
		return LateralityNone, "", false
	}
	rest = strings.TrimLeft(rest, " -_")
	if rest == "" {
		return LateralityNone, "", false
	}
	return side, rest, true
}

func isSeparator(b byte) bool {
	return b == ' ' || b == '-' || b == '_'
}
