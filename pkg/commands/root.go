// Package commands provides CLI command implementations.
package commands

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"latencygraph/pkg/config"
)

// Cfg is the shared configuration instance.
var Cfg = config.New()

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "latencygraph --file <path>",
		Short: "Graph loopback-latency benchmark results",
		Long: `latencygraph renders a stacked bar graph of per-frame latency
measurements recorded by a loopback-latency benchmark.

Each bar is one frame; the stacked segments are the named latency stages
from the capture file. With --estimate the stages are rearranged into an
estimated read + process + write latency model aligned to the display
refresh interval.

Output is a PNG (--png), a standalone HTML chart (--html), or an
interactive chart served over HTTP when neither is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGraph,
	}

	Cfg.AddAllFlags(root)
	root.MarkFlagRequired("file")

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
