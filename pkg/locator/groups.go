package locator

import "github.com/joshuapare/locatorkit/region"

// Catalog lists. These need no reader. Some groups are supersets of others:
// MTL includes Hippocampus, Temporal includes MTL and LTC.

// HippocampusRegions returns the canonical hippocampus names.
func (l *Locator) HippocampusRegions() []string { return l.mustList(region.Hippocampus) }

// MTLRegions returns the canonical medial temporal lobe names.
func (l *Locator) MTLRegions() []string { return l.mustList(region.MTL) }

// LTCRegions returns the canonical lateral temporal cortex names.
func (l *Locator) LTCRegions() []string { return l.mustList(region.LTC) }

// TemporalRegions returns the canonical temporal lobe names.
func (l *Locator) TemporalRegions() []string { return l.mustList(region.Temporal) }

// PFCRegions returns the canonical prefrontal cortex names.
func (l *Locator) PFCRegions() []string { return l.mustList(region.PFC) }

// CingulateRegions returns the canonical cingulate cortex names.
func (l *Locator) CingulateRegions() []string { return l.mustList(region.Cingulate) }

// ParietalRegions returns the canonical parietal lobe names.
func (l *Locator) ParietalRegions() []string { return l.mustList(region.Parietal) }

// OtherRegions returns the names of the catch-all group.
func (l *Locator) OtherRegions() []string { return l.mustList(region.Other) }

// Hippocampus masks pairs in the hippocampus, any side.
func (l *Locator) Hippocampus() (region.Mask, error) { return l.Group(string(region.Hippocampus), region.AnySide) }

// LeftHippocampus masks pairs in the left hippocampus, or with no side.
func (l *Locator) LeftHippocampus() (region.Mask, error) { return l.Group(string(region.Hippocampus), region.LeftSide) }

// RightHippocampus masks pairs in the right hippocampus, or with no side.
func (l *Locator) RightHippocampus() (region.Mask, error) { return l.Group(string(region.Hippocampus), region.RightSide) }

// MTL masks pairs in the Medial Temporal Lobe, any side.
func (l *Locator) MTL() (region.Mask, error) { return l.Group(string(region.MTL), region.AnySide) }

// LeftMTL masks pairs in the left Medial Temporal Lobe, or with no side.
func (l *Locator) LeftMTL() (region.Mask, error) { return l.Group(string(region.MTL), region.LeftSide) }

// RightMTL masks pairs in the right Medial Temporal Lobe, or with no side.
func (l *Locator) RightMTL() (region.Mask, error) { return l.Group(string(region.MTL), region.RightSide) }

// LTC masks pairs in the Lateral Temporal Cortex, any side.
func (l *Locator) LTC() (region.Mask, error) { return l.Group(string(region.LTC), region.AnySide) }

// LeftLTC masks pairs in the left Lateral Temporal Cortex, or with no side.
func (l *Locator) LeftLTC() (region.Mask, error) { return l.Group(string(region.LTC), region.LeftSide) }

// RightLTC masks pairs in the right Lateral Temporal Cortex, or with no side.
func (l *Locator) RightLTC() (region.Mask, error) { return l.Group(string(region.LTC), region.RightSide) }

// Temporal masks pairs in the Temporal Lobe, any side.
func (l *Locator) Temporal() (region.Mask, error) { return l.Group(string(region.Temporal), region.AnySide) }

// LeftTemporal masks pairs in the left Temporal Lobe, or with no side.
func (l *Locator) LeftTemporal() (region.Mask, error) { return l.Group(string(region.Temporal), region.LeftSide) }

// RightTemporal masks pairs in the right Temporal Lobe, or with no side.
func (l *Locator) RightTemporal() (region.Mask, error) { return l.Group(string(region.Temporal), region.RightSide) }

// PFC masks pairs in the Prefrontal Cortex, any side.
func (l *Locator) PFC() (region.Mask, error) { return l.Group(string(region.PFC), region.AnySide) }

// LeftPFC masks pairs in the left Prefrontal Cortex, or with no side.
func (l *Locator) LeftPFC() (region.Mask, error) { return l.Group(string(region.PFC), region.LeftSide) }

// RightPFC masks pairs in the right Prefrontal Cortex, or with no side.
func (l *Locator) RightPFC() (region.Mask, error) { return l.Group(string(region.PFC), region.RightSide) }

// Cingulate masks pairs in the Cingulate Cortex, any side.
func (l *Locator) Cingulate() (region.Mask, error) { return l.Group(string(region.Cingulate), region.AnySide) }

// LeftCingulate masks pairs in the left Cingulate Cortex, or with no side.
func (l *Locator) LeftCingulate() (region.Mask, error) { return l.Group(string(region.Cingulate), region.LeftSide) }

// RightCingulate masks pairs in the right Cingulate Cortex, or with no side.
func (l *Locator) RightCingulate() (region.Mask, error) { return l.Group(string(region.Cingulate), region.RightSide) }

// Parietal masks pairs in the Parietal Lobe, any side.
func (l *Locator) Parietal() (region.Mask, error) { return l.Group(string(region.Parietal), region.AnySide) }

// LeftParietal masks pairs in the left Parietal Lobe, or with no side.
func (l *Locator) LeftParietal() (region.Mask, error) { return l.Group(string(region.Parietal), region.LeftSide) }

// RightParietal masks pairs in the right Parietal Lobe, or with no side.
func (l *Locator) RightParietal() (region.Mask, error) { return l.Group(string(region.Parietal), region.RightSide) }
