/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/labdash/report"
	"github.com/humaidq/labdash/routes"
	"github.com/humaidq/labdash/static"
	"github.com/humaidq/labdash/templates"
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the dashboard web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		&cli.StringFlag{
			Name:    "reports-dir",
			Value:   "reports",
			Sources: cli.EnvVars("REPORTS_DIR"),
			Usage:   "directory containing report JSON files",
		},
		&cli.StringFlag{
			Name:    "source-url",
			Sources: cli.EnvVars("REPORTS_SOURCE_URL"),
			Usage:   "fetch reports from this base URL instead of reports-dir",
		},
		&cli.DurationFlag{
			Name:  "fetch-timeout",
			Value: report.DefaultTimeout,
			Usage: "timeout for a single remote fetch attempt",
		},
		&cli.UintFlag{
			Name:  "fetch-retries",
			Value: 2,
			Usage: "extra attempts after a retryable remote fetch failure",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	},
	Action: start,
}

func start(ctx context.Context, cmd *cli.Command) error {
	reportsDir := cmd.String("reports-dir")
	if reportsDir == "" {
		return errReportsDirRequired
	}
	if info, err := os.Stat(reportsDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", errReportsDirMissing, reportsDir)
	}

	catalog, err := report.NewCatalog(reportsDir)
	if err != nil {
		return fmt.Errorf("failed to scan reports: %w", err)
	}
	if err := catalog.Watch(ctx); err != nil {
		// Dropdown falls back to the startup scan.
		loaderLogger.Warn("Failed to watch reports directory", "error", err)
	}

	var loader report.Loader
	if sourceURL := cmd.String("source-url"); sourceURL != "" {
		appLogger.Info("Loading reports from remote source", "url", sourceURL)
		loader = report.NewHTTPLoader(sourceURL, report.HTTPLoaderOptions{
			Timeout: cmd.Duration("fetch-timeout"),
			Retries: uint64(cmd.Uint("fetch-retries")),
		})
	} else {
		loader = report.NewFileLoader(os.DirFS(reportsDir))
	}

	f := flamego.Classic()

	// Setup flamego
	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		panic(err)
	}
	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer())
	if cmd.Bool("dev") {
		f.Use(template.Templater(template.Options{
			Directory: "templates",
		}))
	} else {
		f.Use(template.Templater(template.Options{
			FileSystem: fs,
		}))
	}
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(routes.RequestLogger)
	f.Use(routes.NoCacheHeaders())
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())

	dash := routes.NewDashboard(catalog, loader)
	f.Get("/", dash.Home)
	f.Post("/select", csrf.Validate, dash.Select)

	port := cmd.String("port")

	appLogger.Info("Starting web server", "port", port)
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return srv.ListenAndServe()
}
