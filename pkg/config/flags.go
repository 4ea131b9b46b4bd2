package config

import (
	"github.com/spf13/cobra"
)

// AddInputFlags adds capture selection flags to a command.
func (c *Config) AddInputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&c.File, "file", c.File, "Path to the capture file to graph (csv, tsv, parquet)")
	flags.IntVar(&c.Frames, "frames", c.Frames, "Number of frames to graph")
	flags.IntVar(&c.First, "first", c.First, "First frame to use for the graph")
}

// AddTransformFlags adds data transform flags to a command.
func (c *Config) AddTransformFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64Var(&c.FPS, "fps", c.FPS, "Framerate to use for reference intervals (disable: 0)")
	flags.BoolVar(&c.Estimate, "estimate", c.Estimate, "Rearrange the data into an estimated read + process + write latency model")
}

// AddOutputFlags adds output selection flags to a command.
func (c *Config) AddOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&c.PNG, "png", c.PNG, "Path for the output PNG. If not provided, serves an interactive graph")
	flags.StringVar(&c.HTML, "html", c.HTML, "Path for an output HTML chart instead of serving one")
	flags.StringVar(&c.Title, "title", c.Title, "Text to use for the graph title")
	flags.StringVar(&c.Addr, "addr", c.Addr, "Listen address for the interactive graph")
}

// AddAllFlags adds all flags to a command.
func (c *Config) AddAllFlags(cmd *cobra.Command) {
	c.AddInputFlags(cmd)
	c.AddTransformFlags(cmd)
	c.AddOutputFlags(cmd)
}
