/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Bar builds a bar chart with one colored bar per point. Each bar carries
// its tooltip text as the data item name, shown on hover.
func Bar(title string, points []Point) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Show:   opts.Bool(true),
				Rotate: 30,
			},
		}),
	)

	labels := make([]string, 0, len(points))
	data := make([]opts.BarData, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
		data = append(data, opts.BarData{
			Name:  p.Tooltip,
			Value: p.Value,
			ItemStyle: &opts.ItemStyle{
				Color: p.Status.Color(),
			},
		})
	}

	bar.SetXAxis(labels).AddSeries("Biomarkers", data)

	return bar
}
