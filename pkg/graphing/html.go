package graphing

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewChart builds an interactive stacked bar chart from the layout.
func NewChart(l *Layout) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: l.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "Frame"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Time (µs)"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "800px", PageTitle: l.Title}),
	)

	bar.SetXAxis(l.FrameNumbers)
	for i, seg := range l.Segments {
		data := make([]opts.BarData, len(seg.Values))
		for f, v := range seg.Values {
			data[f] = opts.BarData{Value: v}
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithBarChartOpts(opts.BarChart{Stack: "latency"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(StageColor(seg.ColorIndex))}),
		}
		if i == len(l.Segments)-1 {
			seriesOpts = append(seriesOpts, markLineOpts(l)...)
		}
		bar.AddSeries(seg.Label, data, seriesOpts...)
	}

	return bar
}

// markLineOpts attaches the interval reference lines and the stage mean
// lines to the topmost series.
func markLineOpts(l *Layout) []charts.SeriesOpts {
	items := make([]opts.MarkLineNameYAxisItem, 0, len(l.RefLines)+len(l.Annotations))
	for i, y := range l.RefLines {
		items = append(items, opts.MarkLineNameYAxisItem{
			Name:  fmt.Sprintf("interval %d", i+1),
			YAxis: y,
		})
	}
	for _, a := range l.Annotations {
		items = append(items, opts.MarkLineNameYAxisItem{
			Name:  a.Text(),
			YAxis: float64(a.CumMean),
		})
	}
	if len(items) == 0 {
		return nil
	}
	return []charts.SeriesOpts{
		charts.WithMarkLineNameYAxisItemOpts(items...),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{Symbol: []string{"none", "none"}}),
	}
}

// SaveHTML renders the layout as a standalone HTML chart at path.
func SaveHTML(l *Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := NewChart(l).Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
