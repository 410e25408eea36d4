package pairs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joshuapare/locatorkit/pkg/types"
)

// Localization maps contact names to their whole-brain atlas region.
type Localization map[string]string

// localizationDoc is the subset of the localization document we read:
//
//	{"contacts": {"atlases.whole_brain": {"LA1": "Left CA1", ...}}}
type localizationDoc struct {
	Contacts map[string]json.RawMessage `json:"contacts"`
}

// ParseLocalization decodes a localization document. Non-string region
// values (null, numbers) are skipped.
func ParseLocalization(r io.Reader) (Localization, error) {
	var doc localizationDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "localization: decode json", Err: err}
	}
	raw, ok := doc.Contacts[SourceWholeBrain]
	if !ok {
		return nil, fmt.Errorf("localization: contacts.%s: %w", SourceWholeBrain, types.ErrNotFound)
	}
	var atlas map[string]any
	if err := json.Unmarshal(raw, &atlas); err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "localization: " + SourceWholeBrain, Err: err}
	}
	loc := make(Localization, len(atlas))
	for contact, v := range atlas {
		if s, ok := v.(string); ok {
			loc[strings.TrimSpace(contact)] = s
		}
	}
	return loc, nil
}

// OpenLocalization reads and decodes the document at path.
func OpenLocalization(path string) (Localization, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	loc, err := ParseLocalization(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return loc, nil
}

// PairRegion returns the atlas region shared by both contacts of a pair
// label such as "LA1-LA2". It reports false when the label is not a pair,
// either contact is unknown, or the contacts disagree.
func (l Localization) PairRegion(label string) (string, bool) {
	a, b, ok := strings.Cut(label, PairSeparator)
	if !ok {
		return "", false
	}
	ra, okA := l[strings.TrimSpace(a)]
	rb, okB := l[strings.TrimSpace(b)]
	if !okA || !okB || ra != rb {
		return "", false
	}
	return ra, true
}
