package region

import "sync"

// DefaultPriority orders the built-in groups from most to least specific.
// Nested groups come before their supersets (hippocampus, mtl, temporal);
// among groups that are not nested, pfc is tried before cingulate, and
// cingulate before parietal. other is always last.
var DefaultPriority = []GroupID{
	Hippocampus,
	MTL,
	LTC,
	Temporal,
	PFC,
	Cingulate,
	Parietal,
	Other,
}

// DefaultGroups returns the definitions of the built-in catalog.
func DefaultGroups() []GroupDef {
	return []GroupDef{
		{
			ID: Hippocampus,
			Names: []string{
				"CA1", "CA2", "CA3", "CA4", "Hippocampal", "Hippocampus", "Sub",
				"DG", "ba35", `"dg"`, `"ca1"`, `"sub"`, `"ba35"`,
			},
		},
		{
			ID:      MTL,
			Extends: []GroupID{Hippocampus},
			Names: []string{
				"prc", "ec", "phc", "mtl wm", "amy", "parahippocampal",
				"entorhinal", "temporalpole", "amygdala", "ent entorhinal area",
				"hippocampus", "phg parahippocampal gyrus", "tmp temporal pole",
				`"erc"`, `"phc"`, "erc",
			},
		},
		{
			ID: LTC,
			Names: []string{
				"middle temporal gyrus", "stg", "mtg", "itg",
				"inferior temporal gyrus", "superior temporal gyrus", "tc",
				"bankssts", "middletemporal", "inferiortemporal",
				"superiortemporal", "itg inferior temporal gyrus",
				"mtg middle temporal gyrus", "stg superior temporal gyrus",
			},
		},
		{
			ID:      Temporal,
			Extends: []GroupID{MTL, LTC},
			Names:   []string{"fusiform gyrus wm", "fusiform", "transversetemporal"},
		},
		{
			ID: PFC,
			Names: []string{
				"caudal middle frontal cortex", "dlpfc", "precentral gyrus",
				"superior frontal gyrus", "mfg middle frontal gyrus",
				"trifg triangular part of the inferior frontal gyrus",
				"caudalmiddlefrontal", "frontalpole", "lateralorbitofrontal",
				"medialorbitofrontal", "parsopercularis", "parsorbitalis",
				"parstriangularis", "rostralmiddlefrontal", "superiorfrontal",
			},
		},
		{
			ID: Cingulate,
			Names: []string{
				"mcg", "acg", "pcg", "caudalanteriorcingulate",
				"isthmuscingulate", "posteriorcingulate",
				"rostralanteriorcingulate",
			},
		},
		{
			ID: Parietal,
			Names: []string{
				"supramarginal gyrus", "inferiorparietal", "postcentral",
				"precuneus", "superiorparietal", "supramarginal",
			},
		},
		{
			ID: Other,
			Names: []string{
				"precentral gyrus", "none", "insula", "nan", "misc",
				"precentral", "paracentral", "inf lat vent",
				"cerebral white matter", "lateral ventricle",
			},
		},
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It is constructed on first use and
// shared afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(DefaultGroups()...)
		if err != nil {
			panic("region: invalid built-in catalog: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
