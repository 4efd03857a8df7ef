package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/adcmon/pkg/report"
)

// reportView shows the latest report. It must only be touched on the Fyne
// main thread.
type reportView struct {
	voltage *widget.Label
	high    *widget.Label
	low     *widget.Label
	average *widget.Label
	bar     *widget.ProgressBar
	count   *widget.Label
	reports int

	content fyne.CanvasObject
}

func newReportView(reference float32) *reportView {
	v := &reportView{
		voltage: widget.NewLabel("-"),
		high:    widget.NewLabel("-"),
		low:     widget.NewLabel("-"),
		average: widget.NewLabel("-"),
		bar:     widget.NewProgressBar(),
		count:   widget.NewLabel("0 reports"),
	}
	v.bar.Min = 0
	v.bar.Max = float64(reference)
	v.bar.TextFormatter = func() string {
		return fmt.Sprintf("%.3f V", v.bar.Value)
	}

	v.content = container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Voltage"), v.voltage,
			widget.NewLabel("High"), v.high,
			widget.NewLabel("Low"), v.low,
			widget.NewLabel("Average (16)"), v.average,
		),
		v.bar,
		v.count,
	)
	return v
}

func (v *reportView) update(r report.Report) {
	v.reports++
	v.voltage.SetText(fmt.Sprintf("%.6f V", r.Voltage))
	v.high.SetText(fmt.Sprintf("0x%03x (%d)", r.High, r.High))
	v.low.SetText(fmt.Sprintf("0x%03x (%d)", r.Low, r.Low))
	v.average.SetText(fmt.Sprintf("0x%03x (%d)", r.Average, r.Average))
	v.bar.SetValue(float64(r.Voltage))
	v.count.SetText(fmt.Sprintf("%d reports", v.reports))
}
