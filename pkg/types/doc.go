// Package types defines the error model shared by the locatorkit packages.
//
// Errors carry a stable ErrKind so callers can branch on intent rather than
// message text:
//
//	mask, err := loc.Hippocampus()
//	if errors.Is(err, types.ErrNoReader) {
//		// locator was built without a session reader
//	}
//
// This package has no dependencies beyond the standard library.
package types
