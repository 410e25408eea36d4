package region

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/locatorkit/pkg/types"
)

// catalogFile is the YAML layout accepted by LoadCatalog.
//
//	groups:
//	  - id: hippocampus
//	    regions: [CA1, CA3]
//	  - id: mtl
//	    extends: [hippocampus]
//	    regions: [amygdala]
//	priority: [hippocampus, mtl]
type catalogFile struct {
	Groups []struct {
		ID      string   `yaml:"id"`
		Extends []string `yaml:"extends"`
		Regions []string `yaml:"regions"`
	} `yaml:"groups"`
	Priority []string `yaml:"priority"`
}

// LoadCatalog decodes a YAML catalog. The returned priority is nil when the
// document does not specify one.
func LoadCatalog(r io.Reader) (*Catalog, []GroupID, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("catalog: empty document: %w", types.ErrFormat)
		}
		return nil, nil, &types.Error{Kind: types.ErrKindFormat, Msg: "catalog: decode yaml", Err: err}
	}
	if len(doc.Groups) == 0 {
		return nil, nil, fmt.Errorf("catalog: no groups defined: %w", types.ErrFormat)
	}

	defs := make([]GroupDef, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		def := GroupDef{ID: GroupID(g.ID), Names: g.Regions}
		for _, parent := range g.Extends {
			def.Extends = append(def.Extends, GroupID(parent))
		}
		defs = append(defs, def)
	}

	cat, err := NewCatalog(defs...)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: %w", err)
	}

	var priority []GroupID
	if len(doc.Priority) > 0 {
		priority, err = ParsePriority(cat, doc.Priority)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog: %w", err)
		}
	}
	return cat, priority, nil
}

// LoadCatalogFile opens path and decodes it with LoadCatalog.
func LoadCatalogFile(path string) (*Catalog, []GroupID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}
