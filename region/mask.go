package region

// Mask holds one membership flag per input label, in input order.
type Mask []bool

// Count returns the number of true entries.
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Indices returns the positions of true entries.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Count())
	for i, v := range m {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// Select returns the items whose position is set in m. Items beyond the
// mask length are dropped.
func (m Mask) Select(items []string) []string {
	out := make([]string, 0, m.Count())
	for i, v := range m {
		if v && i < len(items) {
			out = append(out, items[i])
		}
	}
	return out
}
