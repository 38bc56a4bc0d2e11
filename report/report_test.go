// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePreservesBiomarkerOrder(t *testing.T) {
	t.Parallel()

	doc := `{
		"patient": {"name": "Jane Doe", "age": 42, "date": "2024-06-01"},
		"biomarkers": {
			"Zinc": {"value": 90, "unit": "ug/dL", "reference_range": "60-120", "low": 60, "high": 120},
			"Albumin": {"value": 4.4, "unit": "g/dL", "reference_range": "3.5-5.0", "low": 3.5, "high": 5},
			"Magnesium": {"value": 2.0, "unit": "mg/dL", "reference_range": "1.7-2.2", "low": 1.7, "high": 2.2}
		}
	}`

	rep, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"Zinc", "Albumin", "Magnesium"}
	if got := rep.Biomarkers.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected document key order %v, got %v", want, got)
	}
}

func TestParsePatientFields(t *testing.T) {
	t.Parallel()

	rep, err := Parse([]byte(`{
		"patient": {"name": "Jane Doe", "age": 42, "date": "2024-06-01"},
		"biomarkers": {}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if rep.Patient.Name != "Jane Doe" || rep.Patient.Age != 42 || rep.Patient.Date != "2024-06-01" {
		t.Fatalf("unexpected patient record: %#v", rep.Patient)
	}
	if rep.Biomarkers.Len() != 0 {
		t.Fatalf("expected empty biomarker set, got %d entries", rep.Biomarkers.Len())
	}
}

func TestParseOptionalBounds(t *testing.T) {
	t.Parallel()

	rep, err := Parse([]byte(`{
		"patient": {"name": "Jane", "age": 42, "date": "2024-06-01"},
		"biomarkers": {
			"HbA1c": {"value": 5.5, "unit": "%", "reference_range": "4.0-5.6"}
		}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	b, ok := rep.Biomarkers.Get("HbA1c")
	if !ok {
		t.Fatal("expected HbA1c entry")
	}
	if b.Value == nil || *b.Value != 5.5 {
		t.Fatalf("unexpected value: %v", b.Value)
	}
	if b.Low != nil || b.High != nil {
		t.Fatalf("expected absent bounds to stay nil, got low=%v high=%v", b.Low, b.High)
	}
}

func TestParseRejectsMissingTopLevelFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing patient", doc: `{"biomarkers": {}}`},
		{name: "missing biomarkers", doc: `{"patient": {"name": "Jane", "age": 42, "date": "2024-06-01"}}`},
		{name: "invalid json", doc: `{"patient":`},
		{name: "biomarkers not an object", doc: `{"patient": {"name": "Jane", "age": 42, "date": "2024-06-01"}, "biomarkers": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, ErrMalformedData) {
				t.Fatalf("expected ErrMalformedData, got %v", err)
			}
		})
	}
}
