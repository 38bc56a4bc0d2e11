/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/labdash/chart"
	"github.com/humaidq/labdash/report"
)

var CmdCheck = &cli.Command{
	Name:  "check",
	Usage: "Validate every report in the reports directory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "reports-dir",
			Value:   "reports",
			Sources: cli.EnvVars("REPORTS_DIR"),
			Usage:   "directory containing report JSON files",
		},
	},
	Action: check,
}

// check loads every report and derives its chart data, so malformed
// documents surface before the dashboard serves them.
func check(ctx context.Context, cmd *cli.Command) error {
	reportsDir := cmd.String("reports-dir")
	if reportsDir == "" {
		return errReportsDirRequired
	}

	catalog, err := report.NewCatalog(reportsDir)
	if err != nil {
		return fmt.Errorf("failed to scan reports: %w", err)
	}

	loader := report.NewFileLoader(os.DirFS(reportsDir))

	ids := catalog.Identifiers()
	if len(ids) == 0 {
		appLogger.Warn("No reports found", "dir", reportsDir)
		return nil
	}

	failed := 0
	for _, id := range ids {
		rep, err := loader.Load(ctx, id)
		if err != nil {
			loaderLogger.Error("Report failed to load", "report", id, "error", err)
			failed++
			continue
		}

		points, err := chart.Points(rep)
		if err != nil {
			loaderLogger.Error("Report failed to classify", "report", id, "error", err)
			failed++
			continue
		}

		appLogger.Info("Report OK", "report", id, "patient", rep.Patient.Name, "biomarkers", len(points))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed validation", failed, len(ids))
	}
	return nil
}
