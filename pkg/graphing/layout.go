// Package graphing renders stacked latency graphs from capture windows.
package graphing

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"latencygraph/pkg/config"
	"latencygraph/pkg/latency"
)

// Options selects how a capture window is laid out.
type Options struct {
	Title    string
	Interval float64 // refresh interval in µs, 0 disables reference lines
	Estimate bool
	Dense    bool // edge-to-edge bars, no per-frame x labels
}

// Segment is one stage of the stacked bars.
type Segment struct {
	Label      string
	Values     []float64 // per-frame durations in µs
	Bottoms    []float64 // cumulative height below this stage
	ColorIndex int
}

// Annotation marks a stage whose window mean crosses the annotation
// threshold. Y is the cumulative mean height the line is drawn at.
type Annotation struct {
	Stage   int
	Label   string
	Mean    int64
	CumMean int64
}

// Text returns the annotation text placed on the mean line.
func (a Annotation) Text() string {
	return fmt.Sprintf("%s: %dµs (%dµs total)", a.Label, a.Mean, a.CumMean)
}

// Layout is the fully computed graph: everything the PNG and HTML
// renderers draw, with no rendering side effects of its own.
type Layout struct {
	Title        string
	FrameNumbers []string
	Segments     []Segment
	Annotations  []Annotation
	RefLines     []float64 // y values of the interval reference lines
	MaxHeight    float64   // tallest cumulative bar
	Interval     float64
	Dense        bool
}

// Build computes the graph layout for a capture window.
func Build(c *latency.Capture, opts Options) *Layout {
	frames := c.FrameCount()
	l := &Layout{
		Title:        opts.Title,
		FrameNumbers: c.FrameNumbers,
		Interval:     opts.Interval,
		Dense:        opts.Dense,
	}

	cum := make([]float64, frames)
	for s := 0; s < c.StageCount(); s++ {
		values := c.StageValues(s)
		bottoms := make([]float64, frames)
		copy(bottoms, cum)

		seg := Segment{
			Label:      c.Labels[s],
			Values:     values,
			Bottoms:    bottoms,
			ColorIndex: stageColorIndex(s, opts.Estimate),
		}
		l.Segments = append(l.Segments, seg)

		for f := 0; f < frames; f++ {
			cum[f] += values[f]
		}

		if mean := int64(c.StageMean(s)); mean > config.MeanAnnotateThreshold {
			l.Annotations = append(l.Annotations, Annotation{
				Stage:   s,
				Label:   c.Labels[s],
				Mean:    mean,
				CumMean: int64(stat.Mean(cum, nil)),
			})
		}
	}

	for _, h := range cum {
		if h > l.MaxHeight {
			l.MaxHeight = h
		}
	}

	if opts.Interval > 0 {
		n := int(l.MaxHeight / opts.Interval)
		if opts.Estimate {
			// The modeled vsync and wire rows push the stack past the
			// measured total by up to one extra interval.
			n++
		}
		for i := 0; i < n; i++ {
			l.RefLines = append(l.RefLines, float64(i+1)*opts.Interval)
		}
	}

	return l
}

// stageColorIndex maps a stage position to its palette index. Estimate
// mode permutes the palette alongside the labels so each stage keeps the
// color it has in the raw graph.
func stageColorIndex(s int, estimate bool) int {
	if estimate && s < len(config.EstimatePermutation) {
		return config.EstimatePermutation[s]
	}
	return s % len(palette)
}

// FrameCount returns the number of frames in the layout.
func (l *Layout) FrameCount() int {
	return len(l.FrameNumbers)
}
