/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/elliotchance/orderedmap/v3"
)

// Patient holds the report header fields. The date is an opaque display
// string; no format is enforced.
type Patient struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Date string `json:"date"`
}

// Biomarker is a single named measurement. Value, Low and High are pointers
// so that absence in the source document is distinguishable from zero.
type Biomarker struct {
	Value          *float64 `json:"value"`
	Unit           string   `json:"unit"`
	ReferenceRange string   `json:"reference_range"`
	Low            *float64 `json:"low,omitempty"`
	High           *float64 `json:"high,omitempty"`
}

// BiomarkerSet is a name-to-biomarker mapping that preserves the key order
// of the source JSON object. That order determines bar order in the chart.
type BiomarkerSet struct {
	m *orderedmap.OrderedMap[string, Biomarker]
}

// NewBiomarkerSet returns an empty set.
func NewBiomarkerSet() *BiomarkerSet {
	return &BiomarkerSet{m: orderedmap.NewOrderedMap[string, Biomarker]()}
}

// Set adds or replaces a biomarker. A replaced name keeps its position.
func (s *BiomarkerSet) Set(name string, b Biomarker) {
	s.m.Set(name, b)
}

// Get returns the biomarker for a name.
func (s *BiomarkerSet) Get(name string) (Biomarker, bool) {
	return s.m.Get(name)
}

// Len returns the number of biomarkers.
func (s *BiomarkerSet) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// All iterates biomarkers in document order.
func (s *BiomarkerSet) All() iter.Seq2[string, Biomarker] {
	if s == nil || s.m == nil {
		return func(func(string, Biomarker) bool) {}
	}
	return s.m.AllFromFront()
}

// Names returns the biomarker names in document order.
func (s *BiomarkerSet) Names() []string {
	names := make([]string, 0, s.Len())
	for name := range s.All() {
		names = append(names, name)
	}
	return names
}

// UnmarshalJSON walks the object token by token so insertion order survives
// the round trip, which encoding/json's map decoding would destroy.
func (s *BiomarkerSet) UnmarshalJSON(data []byte) error {
	s.m = orderedmap.NewOrderedMap[string, Biomarker]()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: biomarkers is not an object", ErrMalformedData)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: biomarker key is not a string", ErrMalformedData)
		}

		var b Biomarker
		if err := dec.Decode(&b); err != nil {
			return fmt.Errorf("%w: biomarker %q: %v", ErrMalformedData, name, err)
		}
		s.m.Set(name, b)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	return nil
}

// Report is one patient's measurements for a single date. It is immutable
// after parsing; a new selection replaces it wholesale.
type Report struct {
	Patient    Patient       `json:"patient"`
	Biomarkers *BiomarkerSet `json:"biomarkers"`
}

// Parse decodes a report document, failing fast when the patient or
// biomarkers top-level fields are absent.
func Parse(data []byte) (*Report, error) {
	var raw struct {
		Patient    json.RawMessage `json:"patient"`
		Biomarkers json.RawMessage `json:"biomarkers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if len(raw.Patient) == 0 {
		return nil, fmt.Errorf("%w: missing patient", ErrMalformedData)
	}
	if len(raw.Biomarkers) == 0 {
		return nil, fmt.Errorf("%w: missing biomarkers", ErrMalformedData)
	}

	var rep Report
	if err := json.Unmarshal(raw.Patient, &rep.Patient); err != nil {
		return nil, fmt.Errorf("%w: patient: %v", ErrMalformedData, err)
	}

	rep.Biomarkers = NewBiomarkerSet()
	if err := rep.Biomarkers.UnmarshalJSON(raw.Biomarkers); err != nil {
		return nil, err
	}

	return &rep, nil
}
