package region

// SideFilter restricts a query to one hemisphere.
type SideFilter int

const (
	AnySide SideFilter = iota
	LeftSide
	RightSide
)

func (f SideFilter) String() string {
	switch f {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	default:
		return "any"
	}
}

// Accepts reports whether a label with laterality l passes the filter.
// Labels without a side pass every filter.
func (f SideFilter) Accepts(l Laterality) bool {
	switch f {
	case LeftSide:
		return l != LateralityRight
	case RightSide:
		return l != LateralityLeft
	default:
		return true
	}
}

// tokenSet normalizes names into a lookup set.
func tokenSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if tok := NormalizeToken(n); tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}

// Match marks each label whose normalized token equals one of targets and
// whose laterality passes side. A nil targets slice selects every label; an
// empty non-nil slice selects none.
func Match(labels []string, targets []string, side SideFilter) Mask {
	mask := make(Mask, len(labels))
	if targets == nil {
		for i := range mask {
			mask[i] = true
		}
		return mask
	}
	set := tokenSet(targets)
	for i, raw := range labels {
		lbl := Normalize(raw)
		if !side.Accepts(lbl.Side) {
			continue
		}
		_, mask[i] = set[lbl.Token]
	}
	return mask
}

// MatchGroup is Match over the names of g.
func MatchGroup(labels []string, g Group, side SideFilter) Mask {
	names := g.Names
	if names == nil {
		names = []string{}
	}
	return Match(labels, names, side)
}

// MatchLiteral marks each label equal to one of literals after both are
// normalized. Laterality must agree: "left CA1" matches "LEFT ca1" but
// neither "right CA1" nor "CA1".
func MatchLiteral(labels []string, literals []string) Mask {
	want := make(map[Label]struct{}, len(literals))
	for _, lit := range literals {
		want[Normalize(lit)] = struct{}{}
	}
	mask := make(Mask, len(labels))
	for i, raw := range labels {
		lbl := Normalize(raw)
		if lbl.Token == "" {
			continue
		}
		_, mask[i] = want[lbl]
	}
	return mask
}
