/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chart

import (
	"fmt"
	"strconv"

	"github.com/humaidq/labdash/report"
)

// Point is one renderable bar, derived from exactly one biomarker entry.
type Point struct {
	Label   string
	Value   float64
	Status  Status
	Tooltip string
}

// Points derives one point per biomarker, preserving document order. An
// empty report yields an empty slice; a biomarker without a value is
// malformed data, not a skippable entry.
func Points(rep *report.Report) ([]Point, error) {
	if rep == nil {
		return nil, nil
	}

	points := make([]Point, 0, rep.Biomarkers.Len())
	for name, b := range rep.Biomarkers.All() {
		if b.Value == nil {
			return nil, fmt.Errorf("%w: biomarker %q has no value", report.ErrMalformedData, name)
		}

		points = append(points, Point{
			Label:   name,
			Value:   *b.Value,
			Status:  Classify(b),
			Tooltip: Tooltip(name, b),
		})
	}

	return points, nil
}

// Tooltip formats the hover text for one biomarker.
func Tooltip(name string, b report.Biomarker) string {
	var value string
	if b.Value != nil {
		value = formatValue(*b.Value)
	}
	return name + ": " + value + " " + b.Unit + " (Normal: " + b.ReferenceRange + ")"
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
