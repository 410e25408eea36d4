package region

import (
	"fmt"

	"github.com/joshuapare/locatorkit/pkg/types"
)

// Resolve assigns each label the first group in priority whose names contain
// the label's token. Labels matched by no listed group fall back to Other when
// the catalog defines it and contains the token, and to NoMatch otherwise.
// Laterality is ignored. An id in priority that the catalog does not define
// fails with types.ErrUnknownGroup.
func Resolve(labels []string, c *Catalog, priority []GroupID) ([]GroupID, error) {
	order := make([]GroupID, 0, len(priority))
	for _, id := range priority {
		resolved, _, ok := c.resolve(string(id))
		if !ok {
			return nil, fmt.Errorf("priority entry %q: %w", id, types.ErrUnknownGroup)
		}
		order = append(order, resolved)
	}

	out := make([]GroupID, len(labels))
	for i, raw := range labels {
		out[i] = resolveToken(Normalize(raw).Token, c, order)
	}
	return out, nil
}

func resolveToken(tok string, c *Catalog, order []GroupID) GroupID {
	if tok == "" {
		return NoMatch
	}
	for _, id := range order {
		if c.Contains(id, tok) {
			return id
		}
	}
	if c.Contains(Other, tok) {
		return Other
	}
	return NoMatch
}

// ParsePriority converts a list of names (ids or "_regions" aliases) into a
// priority list checked against c.
func ParsePriority(c *Catalog, names []string) ([]GroupID, error) {
	out := make([]GroupID, 0, len(names))
	seen := make(map[GroupID]struct{}, len(names))
	for _, name := range names {
		id, _, ok := c.resolve(name)
		if !ok {
			return nil, fmt.Errorf("priority entry %q: %w", name, types.ErrUnknownGroup)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("priority entry %q listed twice: %w", name, types.ErrFormat)
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
