package commands

import (
	"context"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/signgate/internal/buildtype"
	"git.home.luguber.info/inful/signgate/internal/config"
	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
	"git.home.luguber.info/inful/signgate/internal/gate"
	"git.home.luguber.info/inful/signgate/internal/metrics"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Tasks       []string `arg:"" optional:"" help:"Requested build task names (space or comma separated)"`
	Format      string   `short:"f" default:"json" enum:"json,yaml" help:"Output format (json or yaml)"`
	ShowSecrets bool     `name:"show-secrets" help:"Print key and store passwords instead of masking them"`
}

// Document is the rendered view of the release configuration.
type Document struct {
	Android config.AndroidConfig `json:"android" yaml:"android"`
	Gate    GateSummary          `json:"gate" yaml:"gate"`
	Release *buildtype.BuildType `json:"release" yaml:"release"`
}

// GateSummary reports how the gate decided.
type GateSummary struct {
	Outcome         gate.Outcome `json:"outcome" yaml:"outcome"`
	CredentialsFile string       `json:"credentialsFile" yaml:"credentialsFile"`
	ReleaseTasks    []string     `json:"releaseTasks,omitempty" yaml:"releaseTasks,omitempty"`
	Notice          string       `json:"notice,omitempty" yaml:"notice,omitempty"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	p, err := loadProject(g, root)
	if err != nil {
		return err
	}

	decision, err := p.evaluate(context.Background(), g, r.Tasks, metrics.NoopRecorder{})
	if err != nil {
		return err
	}

	bt, err := buildtype.Release(p.cfg.Release, p.cfg.AppPath(p.root), decision)
	if err != nil {
		return err
	}
	if !r.ShowSecrets {
		bt = bt.Redacted()
	}

	doc := Document{
		Android: p.cfg.Android,
		Gate: GateSummary{
			Outcome:         decision.Outcome,
			CredentialsFile: decision.CredentialsFile,
			ReleaseTasks:    decision.ReleaseTasks,
			Notice:          decision.Notice,
		},
		Release: bt,
	}
	return r.write(g, doc)
}

func (r *RenderCmd) write(g *Global, doc Document) error {
	switch r.Format {
	case "yaml":
		enc := yaml.NewEncoder(g.out())
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode yaml").Fatal().Build()
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode json").Fatal().Build()
		}
		return nil
	}
}
