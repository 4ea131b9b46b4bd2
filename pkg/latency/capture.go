// Package latency models per-frame latency captures and their transforms.
package latency

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// MetaColumns is the number of leading metadata columns in a capture row.
// Column 0 carries the frame number; the rest is harness bookkeeping.
const MetaColumns = 4

// Capture holds a windowed slice of a latency capture in column-major
// form: Times[s][f] is the duration of stage s on frame f, in
// microseconds.
type Capture struct {
	Labels       []string
	FrameNumbers []string
	Times        [][]int64
}

// ParseRows builds a Capture from raw capture rows. Row 0 is the header;
// stage labels come from its columns MetaColumns onward. The window
// selects rows [first, first+frames) of the file, clamped to the
// available data rows so the header is never read as a frame.
func ParseRows(rows [][]string, first, frames int) (*Capture, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("capture is empty")
	}

	header := rows[0]
	if len(header) <= MetaColumns {
		return nil, fmt.Errorf("header has %d columns, want more than %d", len(header), MetaColumns)
	}
	labels := header[MetaColumns:]
	stages := len(labels)

	lo := first
	if lo < 1 {
		lo = 1
	}
	hi := first + frames
	if hi > len(rows) {
		hi = len(rows)
	}
	if lo >= hi {
		return nil, fmt.Errorf("no frames in window [%d, %d): capture has %d data rows", first, first+frames, len(rows)-1)
	}
	window := rows[lo:hi]

	c := &Capture{
		Labels:       labels,
		FrameNumbers: make([]string, len(window)),
		Times:        make([][]int64, stages),
	}
	for s := range c.Times {
		c.Times[s] = make([]int64, len(window))
	}

	for f, row := range window {
		if len(row) < MetaColumns+stages {
			return nil, fmt.Errorf("row %d has %d columns, want %d", lo+f, len(row), MetaColumns+stages)
		}
		c.FrameNumbers[f] = row[0]
		for s := 0; s < stages; s++ {
			v, err := strconv.ParseInt(row[MetaColumns+s], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, stage %q: %w", lo+f, labels[s], err)
			}
			c.Times[s][f] = v
		}
	}

	return c, nil
}

// StageCount returns the number of latency stages.
func (c *Capture) StageCount() int {
	return len(c.Labels)
}

// FrameCount returns the number of frames in the window.
func (c *Capture) FrameCount() int {
	return len(c.FrameNumbers)
}

// StageValues returns stage s as float64 values.
func (c *Capture) StageValues(s int) []float64 {
	vals := make([]float64, len(c.Times[s]))
	for i, v := range c.Times[s] {
		vals[i] = float64(v)
	}
	return vals
}

// StageMean returns the mean duration of stage s across the window.
func (c *Capture) StageMean(s int) float64 {
	return stat.Mean(c.StageValues(s), nil)
}
