package region

import (
	"fmt"
	"strings"

	"github.com/joshuapare/locatorkit/pkg/types"
)

// GroupID identifies a region group in a Catalog.
type GroupID string

// Identifiers of the built-in groups.
const (
	Hippocampus GroupID = "hippocampus"
	MTL         GroupID = "mtl"
	LTC         GroupID = "ltc"
	Temporal    GroupID = "temporal"
	PFC         GroupID = "pfc"
	Cingulate   GroupID = "cingulate"
	Parietal    GroupID = "parietal"
	Other       GroupID = "other"

	// NoMatch is the resolved group for labels no group contains.
	NoMatch GroupID = ""
)

// aliasSuffix lets lookups accept the property-style names
// ("hippocampus_regions") as well as bare identifiers.
const aliasSuffix = "_regions"

// String returns the identifier, or "no match" for NoMatch.
func (id GroupID) String() string {
	if id == NoMatch {
		return "no match"
	}
	return string(id)
}

// GroupDef describes one group when building a Catalog.
type GroupDef struct {
	ID GroupID
	// Extends lists previously defined groups whose names are included,
	// in order, ahead of Names.
	Extends []GroupID
	Names   []string
}

// Group is a named, ordered list of canonical region names.
type Group struct {
	ID    GroupID
	Names []string
}

type group struct {
	names  []string
	tokens map[string]struct{}
}

// Catalog holds the region groups. It has no mutation methods; every
// accessor returns copies, so a *Catalog can be shared freely.
type Catalog struct {
	order  []GroupID
	groups map[GroupID]*group
}

// NewCatalog builds a catalog from defs, resolving Extends in definition
// order. Names are deduplicated per group on their normalized token; the
// first spelling wins.
func NewCatalog(defs ...GroupDef) (*Catalog, error) {
	c := &Catalog{
		order:  make([]GroupID, 0, len(defs)),
		groups: make(map[GroupID]*group, len(defs)),
	}
	for i, def := range defs {
		id := GroupID(strings.TrimSpace(string(def.ID)))
		if id == NoMatch {
			return nil, fmt.Errorf("group definition %d: empty id: %w", i, types.ErrFormat)
		}
		if _, dup := c.groups[id]; dup {
			return nil, fmt.Errorf("group %q defined twice: %w", id, types.ErrFormat)
		}

		g := &group{tokens: make(map[string]struct{})}
		for _, parent := range def.Extends {
			pg, ok := c.groups[parent]
			if !ok {
				return nil, fmt.Errorf("group %q extends %q: %w", id, parent, types.ErrUnknownGroup)
			}
			for _, name := range pg.names {
				g.add(name)
			}
		}
		for _, name := range def.Names {
			g.add(name)
		}

		c.groups[id] = g
		c.order = append(c.order, id)
	}
	return c, nil
}

func (g *group) add(name string) {
	tok := NormalizeToken(name)
	if tok == "" {
		return
	}
	if _, seen := g.tokens[tok]; seen {
		return
	}
	g.tokens[tok] = struct{}{}
	g.names = append(g.names, strings.TrimSpace(name))
}

// resolve maps a lookup name (bare id or "_regions" alias, any case) to a group.
func (c *Catalog) resolve(name string) (GroupID, *group, bool) {
	id := GroupID(name)
	if g, ok := c.groups[id]; ok {
		return id, g, true
	}
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, aliasSuffix)
	for _, cand := range c.order {
		if strings.ToLower(string(cand)) == key {
			return cand, c.groups[cand], true
		}
	}
	return NoMatch, nil, false
}

// Get returns the group named by name. Both "mtl" and "mtl_regions" are
// accepted. Unknown names fail with types.ErrUnknownGroup.
func (c *Catalog) Get(name string) (Group, error) {
	id, g, ok := c.resolve(name)
	if !ok {
		return Group{}, fmt.Errorf("region group %q: %w", name, types.ErrUnknownGroup)
	}
	names := make([]string, len(g.names))
	copy(names, g.names)
	return Group{ID: id, Names: names}, nil
}

// Has reports whether name identifies a group.
func (c *Catalog) Has(name string) bool {
	_, _, ok := c.resolve(name)
	return ok
}

// IDs returns the group identifiers in definition order.
func (c *Catalog) IDs() []GroupID {
	out := make([]GroupID, len(c.order))
	copy(out, c.order)
	return out
}

// Contains reports whether the normalized token belongs to group id.
// Unknown ids contain nothing.
func (c *Catalog) Contains(id GroupID, token string) bool {
	g, ok := c.groups[id]
	if !ok {
		return false
	}
	_, ok = g.tokens[token]
	return ok
}
