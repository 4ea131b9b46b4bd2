package graphing

import (
	"math"
	"testing"

	"latencygraph/pkg/config"
	"latencygraph/pkg/latency"
)

// capture builds a window directly in column-major form. times[s][f] is
// stage s, frame f.
func capture(labels []string, times [][]int64) *latency.Capture {
	frames := len(times[0])
	numbers := make([]string, frames)
	for f := range numbers {
		numbers[f] = string(rune('1' + f))
	}
	return &latency.Capture{
		Labels:       labels,
		FrameNumbers: numbers,
		Times:        times,
	}
}

func TestBuild_Bottoms(t *testing.T) {
	c := capture([]string{"read", "process", "write"}, [][]int64{
		{100, 200},
		{300, 400},
		{500, 600},
	})

	l := Build(c, Options{})

	wantBottoms := [][]float64{
		{0, 0},
		{100, 200},
		{400, 600},
	}
	for s, seg := range l.Segments {
		for f, bottom := range seg.Bottoms {
			if bottom != wantBottoms[s][f] {
				t.Errorf("Segments[%d].Bottoms[%d] = %v; want %v", s, f, bottom, wantBottoms[s][f])
			}
		}
	}

	if l.MaxHeight != 1200 {
		t.Errorf("MaxHeight = %v; want 1200", l.MaxHeight)
	}
}

func TestBuild_AnnotationThreshold(t *testing.T) {
	tests := []struct {
		name string
		vals []int64
		want int
	}{
		{"mean below threshold", []int64{100, 100}, 0},
		{"mean at threshold", []int64{200, 200}, 0},
		{"mean just above threshold", []int64{201, 201}, 1},
		{"mean rounds down to threshold", []int64{200, 201}, 0},
		{"mean far above threshold", []int64{5000, 7000}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := capture([]string{"stage"}, [][]int64{tt.vals})

			l := Build(c, Options{})
			if len(l.Annotations) != tt.want {
				t.Errorf("len(Annotations) = %v; want %v", len(l.Annotations), tt.want)
			}
		})
	}
}

func TestBuild_AnnotationContent(t *testing.T) {
	c := capture([]string{"cheap", "costly"}, [][]int64{
		{10, 20},
		{1000, 2000},
	})

	l := Build(c, Options{})

	if len(l.Annotations) != 1 {
		t.Fatalf("len(Annotations) = %v; want 1", len(l.Annotations))
	}
	a := l.Annotations[0]
	if a.Stage != 1 {
		t.Errorf("Stage = %v; want 1", a.Stage)
	}
	if a.Label != "costly" {
		t.Errorf("Label = %q; want %q", a.Label, "costly")
	}
	if a.Mean != 1500 {
		t.Errorf("Mean = %v; want 1500", a.Mean)
	}
	// Cumulative mean includes the cheap stage below it.
	if a.CumMean != 1515 {
		t.Errorf("CumMean = %v; want 1515", a.CumMean)
	}
	if a.Text() != "costly: 1500µs (1515µs total)" {
		t.Errorf("Text() = %q", a.Text())
	}
}

func TestBuild_ReferenceLines(t *testing.T) {
	interval := config.MicrosPerSecond / 60.0

	tests := []struct {
		name     string
		height   int64
		estimate bool
		want     int
	}{
		{"below one interval", 10000, false, 0},
		{"two intervals", 35000, false, 2},
		{"two intervals estimate", 35000, true, 3},
		{"exact multiple", 2 * 16666, false, 1}, // 33332 < 2*interval
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := capture([]string{"stage"}, [][]int64{{tt.height}})

			l := Build(c, Options{Interval: interval, Estimate: tt.estimate})
			if len(l.RefLines) != tt.want {
				t.Fatalf("len(RefLines) = %v; want %v", len(l.RefLines), tt.want)
			}
			for i, y := range l.RefLines {
				want := float64(i+1) * interval
				if math.Abs(y-want) > 1e-9 {
					t.Errorf("RefLines[%d] = %v; want %v", i, y, want)
				}
			}
		})
	}
}

func TestBuild_ReferenceLinesDisabled(t *testing.T) {
	c := capture([]string{"stage"}, [][]int64{{100000}})

	l := Build(c, Options{Interval: 0})
	if len(l.RefLines) != 0 {
		t.Errorf("len(RefLines) = %v; want 0", len(l.RefLines))
	}
}

func TestBuild_ColorIndexes(t *testing.T) {
	labels := make([]string, config.EstimateStageCount)
	times := make([][]int64, config.EstimateStageCount)
	for s := range times {
		labels[s] = "stage"
		times[s] = []int64{10}
	}
	c := capture(labels, times)

	raw := Build(c, Options{})
	for s, seg := range raw.Segments {
		if seg.ColorIndex != s {
			t.Errorf("raw Segments[%d].ColorIndex = %v; want %v", s, seg.ColorIndex, s)
		}
	}

	est := Build(c, Options{Estimate: true})
	for s, seg := range est.Segments {
		want := config.EstimatePermutation[s]
		if seg.ColorIndex != want {
			t.Errorf("estimate Segments[%d].ColorIndex = %v; want %v", s, seg.ColorIndex, want)
		}
	}
}

func TestBuild_ColorRecycling(t *testing.T) {
	stages := PaletteSize() + 2
	labels := make([]string, stages)
	times := make([][]int64, stages)
	for s := range times {
		labels[s] = "stage"
		times[s] = []int64{10}
	}
	c := capture(labels, times)

	l := Build(c, Options{})
	if got := l.Segments[PaletteSize()].ColorIndex; got != 0 {
		t.Errorf("ColorIndex = %v; want 0", got)
	}
	if got := l.Segments[PaletteSize()+1].ColorIndex; got != 1 {
		t.Errorf("ColorIndex = %v; want 1", got)
	}
}
