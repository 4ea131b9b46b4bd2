package graphing

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	canvasSize = 12 * vg.Inch
	// Approximate drawable width once axis and legend margins are taken
	// off the canvas. Only used to size bars relative to the frame count.
	plotWidth = 11 * vg.Inch
)

// SavePNG renders the layout as a stacked bar chart and writes it to
// path.
func SavePNG(l *Layout, path string) error {
	p, err := buildPlot(l)
	if err != nil {
		return err
	}
	return p.Save(canvasSize, canvasSize, path)
}

func buildPlot(l *Layout) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = l.Title
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.Y.Label.Text = "Time (µs)"
	p.X.Label.Text = "Frame"

	frames := l.FrameCount()
	if frames == 0 {
		return nil, fmt.Errorf("no frames to graph")
	}

	width := plotWidth / vg.Length(frames)
	if !l.Dense {
		width *= 0.8
	}

	var prev *plotter.BarChart
	bars := make([]*plotter.BarChart, 0, len(l.Segments))
	for _, seg := range l.Segments {
		b, err := plotter.NewBarChart(plotter.Values(seg.Values), width)
		if err != nil {
			return nil, fmt.Errorf("failed to build bars for %q: %w", seg.Label, err)
		}
		b.Color = StageColor(seg.ColorIndex)
		b.LineStyle.Width = 0
		if prev != nil {
			b.StackOn(prev)
		}
		p.Add(b)
		bars = append(bars, b)
		prev = b
	}

	// Legend in reverse stage order so the bottom stage reads last.
	for i := len(bars) - 1; i >= 0; i-- {
		p.Legend.Add(l.Segments[i].Label, bars[i])
	}
	p.Legend.Top = true

	if l.Dense {
		// Too many bars for a per-frame axis; hide it entirely.
		hidden := make([]string, frames)
		p.NominalX(hidden...)
		p.X.Tick.Length = 0
		p.X.Label.Text = ""
	} else {
		p.NominalX(l.FrameNumbers...)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	for _, a := range l.Annotations {
		c := darken(StageColor(l.Segments[a.Stage].ColorIndex))
		y := float64(a.CumMean)

		line, err := horizontalLine(frames, y)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = c
		p.Add(line)

		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: 0, Y: y}},
			Labels: []string{a.Text()},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build annotation for %q: %w", a.Label, err)
		}
		labels.TextStyle[0].Color = c
		labels.TextStyle[0].YAlign = draw.YCenter
		p.Add(labels)
	}

	for _, y := range l.RefLines {
		line, err := horizontalLine(frames, y)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(4)
		line.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(5)}
		p.Add(line)
	}

	return p, nil
}

func horizontalLine(frames int, y float64) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: y},
		{X: float64(frames) - 0.5, Y: y},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build reference line at %v: %w", y, err)
	}
	return line, nil
}
