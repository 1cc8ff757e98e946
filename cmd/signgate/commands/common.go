package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/signgate/internal/config"
	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
	"git.home.luguber.info/inful/signgate/internal/gate"
	"git.home.luguber.info/inful/signgate/internal/logfields"
	"git.home.luguber.info/inful/signgate/internal/metrics"
	"git.home.luguber.info/inful/signgate/internal/tasks"
)

// Global is bound into every command's Run method.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (relative paths resolve against --root)" default:"signgate.yaml"`
	Root    string           `short:"r" help:"Project root the credentials file resolves against" default:"." type:"existingdir"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check  CheckCmd  `cmd:"" help:"Evaluate the release-signing gate for the requested tasks"`
	Render RenderCmd `cmd:"" help:"Print the resolved release build type"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ConfigPath resolves the configuration file against the project root.
func (c *CLI) ConfigPath() string {
	if filepath.IsAbs(c.Config) {
		return c.Config
	}
	return filepath.Join(c.Root, c.Config)
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// project bundles what every gate-running command needs.
type project struct {
	root string
	cfg  *config.Config
}

func loadProject(g *Global, root *CLI) (*project, error) {
	abs, err := filepath.Abs(root.Root)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot resolve project root").
			Fatal().
			WithContext("path", root.Root).
			Build()
	}

	cfgPath := root.ConfigPath()
	cfg, found, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if !found {
		g.logger().Debug("No configuration file; using defaults", logfields.Path(cfgPath))
	}
	return &project{root: abs, cfg: cfg}, nil
}

func (p *project) evaluate(ctx context.Context, g *Global, args []string, rec metrics.Recorder) (*gate.Decision, error) {
	names := tasks.Normalize(args)
	gt := gate.New(
		gate.WithCredentialsFile(p.cfg.Signing.CredentialsFile),
		gate.WithLogger(g.logger()),
		gate.WithRecorder(rec),
	)
	return gt.Evaluate(ctx, gate.Request{Tasks: names, ProjectRoot: p.root})
}
