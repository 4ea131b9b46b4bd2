package latency

import (
	"fmt"
	"math"

	"latencygraph/pkg/config"
)

// Estimate rearranges a capture into an estimated read + process + write
// latency model. The recorded stages are permuted so the read stages lead,
// the first ProcessStageCount permuted stages are kept as measured, and
// two modeled rows are appended in place of the measured tail:
//
//   - vsync wait: ceiling alignment of the summed process time to the
//     next refresh interval boundary
//   - wire time: one full refresh interval of transport latency
//
// interval is the refresh interval in microseconds and must be positive.
func Estimate(c *Capture, interval float64) (*Capture, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("estimate requires a positive refresh interval, got %v", interval)
	}
	if c.StageCount() != config.EstimateStageCount {
		return nil, fmt.Errorf("estimate requires %d stage columns, got %d", config.EstimateStageCount, c.StageCount())
	}

	frames := c.FrameCount()
	out := &Capture{
		Labels:       make([]string, config.EstimateStageCount),
		FrameNumbers: c.FrameNumbers,
		Times:        make([][]int64, config.EstimateStageCount),
	}
	for i, src := range config.EstimatePermutation {
		out.Labels[i] = c.Labels[src]
	}
	for i := 0; i < config.ProcessStageCount; i++ {
		out.Times[i] = c.Times[config.EstimatePermutation[i]]
	}

	vsync := make([]int64, frames)
	wire := make([]int64, frames)
	for f := 0; f < frames; f++ {
		var process int64
		for s := 0; s < config.ProcessStageCount; s++ {
			process += out.Times[s][f]
		}
		intervals := math.Ceil(float64(process) / interval)
		vsync[f] = int64(intervals*interval - float64(process))
		wire[f] = int64(interval)
	}
	out.Times[config.ProcessStageCount] = vsync
	out.Times[config.ProcessStageCount+1] = wire

	return out, nil
}
