package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"latencygraph/pkg/graphing"
	"latencygraph/pkg/latency"
	"latencygraph/pkg/loading"
)

func runGraph(cmd *cobra.Command, args []string) error {
	if err := Cfg.Validate(); err != nil {
		return err
	}

	rows, err := loading.LoadRows(Cfg.File)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", Cfg.File, err)
	}

	capture, err := latency.ParseRows(rows, Cfg.First, Cfg.Frames)
	if err != nil {
		return fmt.Errorf("failed to parse capture: %w", err)
	}

	if Cfg.Estimate {
		capture, err = latency.Estimate(capture, Cfg.Interval())
		if err != nil {
			return err
		}
	}

	layout := graphing.Build(capture, graphing.Options{
		Title:    Cfg.Title,
		Interval: Cfg.Interval(),
		Estimate: Cfg.Estimate,
		Dense:    Cfg.Dense(),
	})

	if Cfg.Interactive() {
		return graphing.Serve(layout, Cfg.Addr, Cfg.RunID)
	}

	if Cfg.PNG != "" {
		if err := graphing.SavePNG(layout, Cfg.PNG); err != nil {
			return fmt.Errorf("failed to write PNG: %w", err)
		}
		log.Infof("Wrote %s", Cfg.PNG)
	}
	if Cfg.HTML != "" {
		if err := graphing.SaveHTML(layout, Cfg.HTML); err != nil {
			return fmt.Errorf("failed to write HTML: %w", err)
		}
		log.Infof("Wrote %s", Cfg.HTML)
	}
	return nil
}
