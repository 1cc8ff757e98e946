package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/signgate/internal/gate"
	"git.home.luguber.info/inful/signgate/internal/logfields"
	"git.home.luguber.info/inful/signgate/internal/metrics"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Tasks       []string `arg:"" optional:"" help:"Requested build task names (space or comma separated)"`
	MetricsFile string   `name:"metrics-file" help:"Write the gate outcome as a Prometheus textfile" type:"path"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	p, err := loadProject(g, root)
	if err != nil {
		return err
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if c.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		rec = prom
	}

	decision, evalErr := p.evaluate(context.Background(), g, c.Tasks, rec)

	// Written on failure too, so CI can alert on missing credentials.
	if prom != nil {
		if err := prom.WriteTextfile(c.MetricsFile); err != nil {
			g.logger().Warn("Failed to write metrics textfile", logfields.Path(c.MetricsFile), logfields.Error(err))
		}
	}

	if evalErr != nil {
		return evalErr
	}

	switch decision.Outcome {
	case gate.Skipped:
		fmt.Fprintf(g.out(), "signing: skipped (%s)\n", decision.Notice)
	case gate.Configured:
		fmt.Fprintf(g.out(), "signing: configured (keyAlias=%s, storeFile=%s)\n",
			decision.Credentials.KeyAlias, decision.Credentials.StoreFile)
	}
	return nil
}
