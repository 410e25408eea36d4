// Package mmfile opens session input files read-only as byte slices,
// memory-mapped where the platform allows it.
package mmfile
