/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chart

import "github.com/humaidq/labdash/report"

// Status is the three-way classification of a biomarker value against its
// reference bounds. Unknown is neutral, not an error.
type Status int

const (
	StatusNormal Status = iota
	StatusOutOfRange
	StatusUnknown
)

// Visual tokens handed to the renderer. Exact colors are presentation, not
// contract; the three statuses must stay distinguishable.
const (
	colorNormal     = "#91cc75"
	colorOutOfRange = "#ee6666"
	colorUnknown    = "#cccccc"
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusOutOfRange:
		return "Out of range"
	default:
		return "Unknown"
	}
}

// Color returns the visual token for the status.
func (s Status) Color() string {
	switch s {
	case StatusNormal:
		return colorNormal
	case StatusOutOfRange:
		return colorOutOfRange
	default:
		return colorUnknown
	}
}

// Classify a biomarker against its bounds. Both bounds must be present for
// a verdict; boundary values are Normal (the comparison is strict).
func Classify(b report.Biomarker) Status {
	if b.Value == nil || b.Low == nil || b.High == nil {
		return StatusUnknown
	}
	if *b.Value < *b.Low || *b.Value > *b.High {
		return StatusOutOfRange
	}
	return StatusNormal
}
