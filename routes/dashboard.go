/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	htmltemplate "html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/labdash/chart"
	"github.com/humaidq/labdash/logging"
	"github.com/humaidq/labdash/report"
)

var logger = logging.Logger(logging.SourceWeb)

const reportUnavailableMessage = "Report unavailable"

// Dashboard serves the biomarker dashboard. It owns the rendering session:
// each report selection replaces the previous chart wholesale.
type Dashboard struct {
	catalog *report.Catalog
	loader  report.Loader
	session *chart.Session
}

// NewDashboard wires the dashboard to a report catalog and loader.
func NewDashboard(catalog *report.Catalog, loader report.Loader) *Dashboard {
	return &Dashboard{
		catalog: catalog,
		loader:  loader,
		session: chart.NewSession(),
	}
}

// Home renders the dashboard page. With a "report" query parameter it loads
// that report and renders its chart; without one it shows the selector only.
func (d *Dashboard) Home(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	setSiteTitle(data)
	data["Reports"] = d.catalog.Identifiers()

	id := strings.TrimSpace(c.Query("report"))
	data["Selected"] = id
	if id == "" {
		t.HTML(http.StatusOK, "dashboard")
		return
	}

	token := d.session.Begin()

	rep, err := d.loader.Load(c.Request().Context(), id)
	if err != nil {
		logger.Error("Failed to load report", "report", id, "error", err)
		SetErrorFlash(s, reportUnavailableMessage)
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	points, err := chart.Points(rep)
	if err != nil {
		logger.Error("Failed to derive chart data", "report", id, "error", err)
		SetErrorFlash(s, reportUnavailableMessage)
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	if !d.session.Apply(token, points) {
		// A newer selection superseded this load.
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	html, err := renderChart(points)
	if err != nil {
		logger.Error("Failed to render chart", "report", id, "error", err)
		SetErrorFlash(s, reportUnavailableMessage)
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	data["Patient"] = rep.Patient
	data["Chart"] = htmltemplate.HTML(html)
	data["Interpretations"] = interpretations(rep)

	t.HTML(http.StatusOK, "dashboard")
}

// Select handles the report selection form and redirects to the report view.
func (d *Dashboard) Select(c flamego.Context) {
	id := strings.TrimSpace(c.Request().FormValue("report"))
	if id == "" {
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	c.Redirect("/?report="+url.QueryEscape(id), http.StatusSeeOther)
}

// renderChart renders the bar chart to an HTML fragment for embedding.
func renderChart(points []chart.Point) (string, error) {
	bar := chart.Bar("Biomarker Levels", points)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// interpretations builds the per-biomarker summary lines shown under the
// chart, one per biomarker in chart order.
func interpretations(rep *report.Report) []string {
	lines := make([]string, 0, rep.Biomarkers.Len())
	for name, b := range rep.Biomarkers.All() {
		var value string
		if b.Value != nil {
			value = strconv.FormatFloat(*b.Value, 'f', -1, 64)
		}
		lines = append(lines, name+": "+value+" "+b.Unit+" ("+chart.Classify(b).String()+", Reference Range: "+b.ReferenceRange+")")
	}
	return lines
}
