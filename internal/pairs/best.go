package pairs

import "strings"

// validRegion trims s and reports whether it is a real localization rather
// than a placeholder such as "nan" or "unknown".
func validRegion(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if _, bad := invalidRegions[strings.ToLower(s)]; bad {
		return "", false
	}
	return s, true
}

// BestLabel picks the best available region text for p: stein.region,
// das.region, the whole-brain atlas when both contacts agree, mni.region,
// then ind.region. It returns "" when no source has a usable value.
func (p Pair) BestLabel(loc Localization) string {
	for _, src := range []string{SourceStein, SourceDas} {
		if v, ok := validRegion(p.Regions[src]); ok {
			return v
		}
	}
	if loc != nil {
		if reg, ok := loc.PairRegion(p.Label); ok {
			if v, ok := validRegion(reg); ok {
				return v
			}
		}
	}
	for _, src := range []string{SourceMNI, SourceInd} {
		if v, ok := validRegion(p.Regions[src]); ok {
			return v
		}
	}
	return ""
}

// BestLabels returns BestLabel for every pair, in table order.
func (t *Table) BestLabels(loc Localization) []string {
	out := make([]string, len(t.Pairs))
	for i, p := range t.Pairs {
		out[i] = p.BestLabel(loc)
	}
	return out
}
