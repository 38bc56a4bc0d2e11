// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

func testApp() *cli.Command {
	return &cli.Command{
		Name: "labdash",
		Commands: []*cli.Command{
			CmdStart,
			CmdCheck,
		},
	}
}

func TestStartRejectsMissingReportsDirectory(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope")

	err := testApp().Run(context.Background(), []string{"labdash", "start", "--reports-dir", missing})
	if !errors.Is(err, errReportsDirMissing) {
		t.Fatalf("expected errReportsDirMissing, got %v", err)
	}
}

func TestCheckValidatesReports(t *testing.T) {
	dir := t.TempDir()
	valid := `{
		"patient": {"name": "Jane Doe", "age": 42, "date": "2024-06-01"},
		"biomarkers": {
			"VitaminD": {"value": 25, "unit": "ng/mL", "reference_range": "30-100", "low": 30, "high": 100}
		}
	}`
	if err := os.WriteFile(filepath.Join(dir, "jane.json"), []byte(valid), 0o644); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}

	if err := testApp().Run(context.Background(), []string{"labdash", "check", "--reports-dir", dir}); err != nil {
		t.Fatalf("check failed on valid reports: %v", err)
	}
}

func TestCheckFailsOnMalformedReport(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"patient"`), 0o644); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}

	if err := testApp().Run(context.Background(), []string{"labdash", "check", "--reports-dir", dir}); err == nil {
		t.Fatal("expected check to fail on malformed report")
	}
}
