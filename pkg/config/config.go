// Package config provides configuration management for the grapher.
package config

import (
	"fmt"

	"github.com/google/uuid"
)

// Default configuration values.
const (
	DefaultFrames = 600
	DefaultFirst  = 1
	DefaultFPS    = 60.0
	DefaultAddr   = ":8088"
)

// Chart tuning constants. These were positional literals in the original
// benchmark tooling; they are named here so the assumptions are explicit.
const (
	// MeanAnnotateThreshold is the window-mean duration, in microseconds,
	// above which a stage gets an annotated mean line.
	MeanAnnotateThreshold = 200

	// DenseFrameThreshold is the frame count above which bars are drawn
	// edge to edge and per-frame x labels are dropped.
	DenseFrameThreshold = 60

	// EstimateStageCount is the number of stage columns the estimate
	// transform requires. The permutation below assumes exactly this many.
	EstimateStageCount = 8

	// ProcessStageCount is how many permuted stages sum into the modeled
	// read + process + write time.
	ProcessStageCount = 6

	// MicrosPerSecond converts the configured framerate into a refresh
	// interval in microseconds.
	MicrosPerSecond = 1_000_000
)

// EstimatePermutation reorders the recorded stage columns into
// read + process + write order for the estimate transform. The mapping is
// fixed by the capture format: columns 6 and 7 are the read stages and
// move to the front, followed by the original columns 0-5.
var EstimatePermutation = [EstimateStageCount]int{6, 7, 0, 1, 2, 3, 4, 5}

// Config holds all grapher configuration options.
type Config struct {
	// Input settings
	File   string
	Frames int
	First  int

	// Transform settings
	FPS      float64
	Estimate bool

	// Output settings
	PNG   string
	HTML  string
	Title string
	Addr  string

	// Run identification
	RunID string
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Frames: DefaultFrames,
		First:  DefaultFirst,
		FPS:    DefaultFPS,
		Addr:   DefaultAddr,
		RunID:  uuid.NewString(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("input file is required")
	}
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	}
	if c.First < 0 {
		return fmt.Errorf("first frame cannot be negative, got %d", c.First)
	}
	if c.Estimate && c.FPS <= 0 {
		return fmt.Errorf("fps must be given if an estimate graph is requested")
	}
	return nil
}

// Interval returns the display refresh interval in microseconds, or 0
// when reference lines are disabled.
func (c *Config) Interval() float64 {
	if c.FPS <= 0 {
		return 0
	}
	return MicrosPerSecond / c.FPS
}

// Dense reports whether the configured frame window uses the dense bar
// style.
func (c *Config) Dense() bool {
	return c.Frames > DenseFrameThreshold
}

// Interactive reports whether the graph is served over HTTP instead of
// written to a file. Requesting any output file disables serving.
func (c *Config) Interactive() bool {
	return c.PNG == "" && c.HTML == ""
}
