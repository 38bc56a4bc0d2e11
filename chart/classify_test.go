// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"testing"

	"github.com/humaidq/labdash/report"
)

func fp(v float64) *float64 {
	return &v
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    report.Biomarker
		want Status
	}{
		{
			name: "below range",
			b:    report.Biomarker{Value: fp(25), Low: fp(30), High: fp(100)},
			want: StatusOutOfRange,
		},
		{
			name: "above range",
			b:    report.Biomarker{Value: fp(120), Low: fp(30), High: fp(100)},
			want: StatusOutOfRange,
		},
		{
			name: "inside range",
			b:    report.Biomarker{Value: fp(55), Low: fp(30), High: fp(100)},
			want: StatusNormal,
		},
		{
			name: "equal to low bound",
			b:    report.Biomarker{Value: fp(30), Low: fp(30), High: fp(100)},
			want: StatusNormal,
		},
		{
			name: "equal to high bound",
			b:    report.Biomarker{Value: fp(100), Low: fp(30), High: fp(100)},
			want: StatusNormal,
		},
		{
			name: "missing low bound",
			b:    report.Biomarker{Value: fp(5.5), High: fp(5.6)},
			want: StatusUnknown,
		},
		{
			name: "missing high bound",
			b:    report.Biomarker{Value: fp(5.5), Low: fp(4)},
			want: StatusUnknown,
		},
		{
			name: "missing both bounds",
			b:    report.Biomarker{Value: fp(5.5)},
			want: StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.b); got != tt.want {
				t.Fatalf("Classify: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStatusColorsAreDistinct(t *testing.T) {
	t.Parallel()

	colors := map[string]bool{
		StatusNormal.Color():     true,
		StatusOutOfRange.Color(): true,
		StatusUnknown.Color():    true,
	}
	if len(colors) != 3 {
		t.Fatalf("expected three distinct status colors, got %d", len(colors))
	}
}
