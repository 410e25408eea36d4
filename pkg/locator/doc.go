/*
Package locator is the public façade for classifying intracranial contact
pairs by brain region.

# Quick Start

Catalog lists need no session data:

	regions := locator.New(nil).HippocampusRegions()

Masks and resolved groups pull labels from a Reader:

	loc := locator.New(reader)
	mask, err := loc.Hippocampus()      // left, right or unspecified side
	mask, err = loc.LeftHippocampus()   // left or unspecified side
	mask, err = loc.Regions(regions)    // generic, driven by configuration
	mask, err = loc.Matching([]string{"left CA1", "right CA3"})
	groups, err := loc.All()            // most specific group per pair

Need three regions? Try MTL, LTC and PFC. Five? Add Cingulate and Parietal.

# Errors

Operations that need labels fail with types.ErrNoReader on a locator built
without a reader. Unknown group names fail with types.ErrUnknownGroup.
Unmatched or malformed labels never fail; they are simply false in masks and
region.NoMatch in All.
*/
package locator
