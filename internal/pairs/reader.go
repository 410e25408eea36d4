package pairs

import (
	"fmt"

	"github.com/joshuapare/locatorkit/pkg/types"
)

// Reader serves a table's best available labels to a locator.
type Reader struct {
	Table        *Table
	Localization Localization // optional
}

// NewReader opens the table at path and, when locPath is non-empty, the
// localization document.
func NewReader(path, locPath string, opts Options) (*Reader, error) {
	t, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	r := &Reader{Table: t}
	if locPath != "" {
		loc, err := OpenLocalization(locPath)
		if err != nil {
			return nil, err
		}
		r.Localization = loc
	}
	return r, nil
}

// Labels implements locator.Reader.
func (r *Reader) Labels() ([]string, error) {
	if r.Table == nil {
		return nil, fmt.Errorf("pairs: no table loaded: %w", types.ErrNotFound)
	}
	return r.Table.BestLabels(r.Localization), nil
}
