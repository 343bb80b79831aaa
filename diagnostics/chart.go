//
//  (C) Copyright 2025  Pavel Tisnovsky
//
//  All rights reserved. This program and the accompanying materials
//  are made available under the terms of the Eclipse Public License v1.0
//  which accompanies this distribution, and is available at
//  http://www.eclipse.org/legal/epl-v10.html
//
//  Contributors:
//      Pavel Tisnovsky
//

// Package diagnostics renders an HTML chart of the glitched-pixel count
// across a render's repair passes, a supplemental observability surface
// beyond the rendered image itself.
package diagnostics

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// GlitchPass is one recorded pass's outcome: its index and how many pixels
// remained glitched after it.
type GlitchPass struct {
	Pass      int
	Remaining int
}

// RepairLog accumulates GlitchPass entries across one render's glitch-repair
// loop.
type RepairLog struct {
	JobID  string
	Passes []GlitchPass
}

// Record appends one repair pass's residual glitched-pixel count.
func (l *RepairLog) Record(remaining int) {
	l.Passes = append(l.Passes, GlitchPass{Pass: len(l.Passes), Remaining: remaining})
}

// WriteHTML renders the repair log as a line chart and writes it to
// filename: components.NewPage + charts.NewLine + opts.
func (l *RepairLog) WriteHTML(filename string) error {
	if len(l.Passes) == 0 {
		return fmt.Errorf("diagnostics: no repair passes recorded for job %s", l.JobID)
	}

	xAxis := make([]string, len(l.Passes))
	data := make([]opts.LineData, len(l.Passes))
	for i, p := range l.Passes {
		xAxis[i] = fmt.Sprintf("%d", p.Pass)
		data[i] = opts.LineData{Value: p.Remaining}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Glitched pixels per repair pass",
			Subtitle: l.JobID,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "repair pass"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "glitched pixels remaining"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(xAxis).AddSeries("remaining", data)

	page := components.NewPage().SetPageTitle("Deep-zoom glitch repair")
	page.AddCharts(line)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}
