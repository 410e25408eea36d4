/*
Package region implements the label-matching engine behind the locator:
a catalog of named, possibly overlapping region groups, a normalizer for
free-text contact-pair labels, a matcher producing boolean masks, and a
priority-ordered resolver that picks the most specific group per label.

# Labels

A contact-pair label is free text such as "left CA1", "Right-Amygdala" or
"middle temporal gyrus". Normalize folds case, trims, collapses whitespace and
splits off a leading "left"/"right" qualifier:

	region.Normalize("  Left   CA1 ")  // {Side: LateralityLeft, Token: "ca1"}
	region.Normalize("CA1")            // {Side: LateralityNone, Token: "ca1"}

Laterality is only recognized as a prefix.

# Matching

	mask := region.MatchGroup(labels, hippocampus, region.LeftSide)

A side filter of LeftSide accepts labels marked left and labels with no side;
RightSide is symmetric; AnySide accepts everything.

# Resolution

Resolve walks a priority list (most specific first) and assigns each label the
first group whose names contain its token, falling back to "other" and then
NoMatch.

Everything in this package is pure: no I/O, no logging, no shared mutable
state. A *Catalog is immutable after construction and safe for concurrent use.
*/
package region
