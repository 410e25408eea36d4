package locator

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/joshuapare/locatorkit/pkg/types"
	"github.com/joshuapare/locatorkit/region"
)

// Reader supplies the ordered contact-pair labels of one session.
// The locator only ever calls Labels and never modifies the result.
type Reader interface {
	Labels() ([]string, error)
}

// Labels is a Reader over an in-memory label list.
type Labels []string

// Labels returns the list itself.
func (ls Labels) Labels() ([]string, error) { return ls, nil }

// Locator answers region queries over a session's contact-pair labels.
// It holds no per-query state and is safe for concurrent use when its
// Reader is.
type Locator struct {
	reader   Reader
	catalog  *region.Catalog
	priority []region.GroupID
	log      *slog.Logger
}

// New returns a Locator over r. A nil r (including a typed nil pointer)
// yields a catalog-only locator.
func New(r Reader, opts ...Option) *Locator {
	l := &Locator{
		reader:   r,
		catalog:  region.Default(),
		priority: region.DefaultPriority,
		log:      discardLogger(),
	}
	if isNil(r) {
		l.reader = nil
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func isNil(r Reader) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Catalog returns the catalog queries are answered from.
func (l *Locator) Catalog() *region.Catalog { return l.catalog }

// HasReader reports whether label queries are available.
func (l *Locator) HasReader() bool { return l.reader != nil }

// labels pulls the current label list from the reader.
func (l *Locator) labels() ([]string, error) {
	if l.reader == nil {
		return nil, types.ErrNoReader
	}
	labels, err := l.reader.Labels()
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	l.log.Debug("labels pulled", "count", len(labels))
	return labels, nil
}

// RegionList returns the canonical names of the named group ("mtl" or
// "mtl_regions"). It needs no reader.
func (l *Locator) RegionList(name string) ([]string, error) {
	g, err := l.catalog.Get(name)
	if err != nil {
		return nil, err
	}
	return g.Names, nil
}

// mustList is RegionList for the built-in identifiers. A custom catalog
// lacking one of them yields nil.
func (l *Locator) mustList(id region.GroupID) []string {
	names, err := l.RegionList(string(id))
	if err != nil {
		return nil
	}
	return names
}

// Group masks the session labels against the catalog group name with the
// given side filter.
func (l *Locator) Group(name string, side region.SideFilter) (region.Mask, error) {
	g, err := l.catalog.Get(name)
	if err != nil {
		return nil, err
	}
	labels, err := l.labels()
	if err != nil {
		return nil, err
	}
	mask := region.MatchGroup(labels, g, side)
	l.log.Debug("group matched", "group", g.ID, "side", side, "matched", mask.Count())
	return mask, nil
}

func (l *Locator) regions(names []string, side region.SideFilter) (region.Mask, error) {
	labels, err := l.labels()
	if err != nil {
		return nil, err
	}
	return region.Match(labels, names, side), nil
}

// Regions masks labels whose token is one of names, on either side or none.
// A nil names slice selects every pair.
func (l *Locator) Regions(names []string) (region.Mask, error) {
	return l.regions(names, region.AnySide)
}

// LeftRegions masks labels in names that are left or unspecified.
func (l *Locator) LeftRegions(names []string) (region.Mask, error) {
	if names == nil {
		names = []string{}
	}
	return l.regions(names, region.LeftSide)
}

// RightRegions masks labels in names that are right or unspecified.
func (l *Locator) RightRegions(names []string) (region.Mask, error) {
	if names == nil {
		names = []string{}
	}
	return l.regions(names, region.RightSide)
}

// Matching masks labels equal to one of literals after case folding and
// whitespace normalization. The catalog is not consulted and laterality must
// agree exactly.
func (l *Locator) Matching(literals []string) (region.Mask, error) {
	labels, err := l.labels()
	if err != nil {
		return nil, err
	}
	return region.MatchLiteral(labels, literals), nil
}

// All resolves each pair to the most specific group containing its label,
// following the locator's priority. Pairs no group contains are
// region.NoMatch.
func (l *Locator) All() ([]region.GroupID, error) {
	labels, err := l.labels()
	if err != nil {
		return nil, err
	}
	out, err := region.Resolve(labels, l.catalog, l.priority)
	if err != nil {
		return nil, err
	}
	unresolved := 0
	for _, id := range out {
		if id == region.NoMatch {
			unresolved++
		}
	}
	l.log.Debug("labels resolved", "count", len(out), "unresolved", unresolved)
	return out, nil
}
