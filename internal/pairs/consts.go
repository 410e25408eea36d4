package pairs

const (
	// ============================================================================
	// Pairs Table Columns
	// ============================================================================

	// ColumnLabel holds the bipolar pair label, two contact names joined by
	// PairSeparator (e.g. "LA1-LA2").
	ColumnLabel = "label"

	// SourceStein is the expert (Stein) localization column.
	SourceStein = "stein.region"

	// SourceDas is the Das-lab localization column.
	SourceDas = "das.region"

	// SourceMNI is the MNI-atlas localization column.
	SourceMNI = "mni.region"

	// SourceInd is the individual-atlas localization column.
	SourceInd = "ind.region"

	// SourceWholeBrain names the localization document's whole-brain atlas,
	// consulted between das.region and mni.region.
	SourceWholeBrain = "atlases.whole_brain"

	// ============================================================================
	// Delimiters
	// ============================================================================

	// PairSeparator joins the two contact names of a pair label.
	PairSeparator = "-"

	// CommentPrefix marks a comment line in a pairs table.
	CommentPrefix = '#'

	// ============================================================================
	// Scanner Limits
	// ============================================================================

	// MaxHeaderLineSize sizes the buffer used while detecting the header delimiter.
	MaxHeaderLineSize = 64 * 1024
)

// RegionSources lists the table columns consulted by BestLabels, in priority
// order. The whole-brain atlas slots in after SourceDas.
var RegionSources = []string{SourceStein, SourceDas, SourceMNI, SourceInd}

// invalidRegions are placeholder values that never count as a localization.
var invalidRegions = map[string]struct{}{
	"":        {},
	"unknown": {},
	"misc":    {},
	"none":    {},
	"nan":     {},
}
