package gate

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
	"git.home.luguber.info/inful/signgate/internal/logfields"
	"git.home.luguber.info/inful/signgate/internal/metrics"
	"git.home.luguber.info/inful/signgate/internal/signing"
	"git.home.luguber.info/inful/signgate/internal/tasks"
)

// DefaultCredentialsFile is resolved against the project root.
const DefaultCredentialsFile = "key.properties"

// ErrMissingCredentialsFile is the cause of the error returned when a release
// task is requested and the credentials file does not exist.
var ErrMissingCredentialsFile = stderrors.New("missing credentials file")

// Outcome is the non-error result of an evaluation.
type Outcome string

const (
	Skipped    Outcome = "skipped"
	Configured Outcome = "configured"
)

// Request describes one build invocation.
type Request struct {
	// Tasks are the task names requested on the build command line.
	Tasks []string
	// ProjectRoot is the directory the credentials file is resolved against.
	ProjectRoot string
}

// Decision is the result of a successful evaluation.
type Decision struct {
	Outcome          Outcome
	ReleaseRequested bool
	ReleaseTasks     []string
	CredentialsFile  string
	// Credentials is nil when Outcome is Skipped.
	Credentials *signing.Credentials
	// Notice is set when Outcome is Skipped.
	Notice string
}

// Gate evaluates signing availability against a credentials file.
type Gate struct {
	credentialsFile string
	logger          *slog.Logger
	recorder        metrics.Recorder
}

// Option configures a Gate.
type Option func(*Gate)

// WithCredentialsFile overrides the credentials path. Relative paths are
// resolved against Request.ProjectRoot.
func WithCredentialsFile(path string) Option {
	return func(g *Gate) {
		if path != "" {
			g.credentialsFile = path
		}
	}
}

// WithLogger sets the logger used for the skip notice and debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Gate) {
		if r != nil {
			g.recorder = r
		}
	}
}

// New creates a Gate using key.properties, the default logger and no metrics.
func New(opts ...Option) *Gate {
	g := &Gate{
		credentialsFile: DefaultCredentialsFile,
		logger:          slog.Default(),
		recorder:        metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CredentialsPath returns the credentials file location for the given project root.
func (g *Gate) CredentialsPath(root string) string {
	if filepath.IsAbs(g.credentialsFile) {
		return g.credentialsFile
	}
	return filepath.Join(root, g.credentialsFile)
}

// Evaluate runs the gate for req. It returns an error only for the fatal cases
// (missing file on a release invocation, incomplete or unreadable file) or when
// ctx is already done.
func (g *Gate) Evaluate(ctx context.Context, req Request) (*Decision, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	decision, err := g.evaluate(req)
	g.recorder.ObserveEvaluationDuration(time.Since(start))
	g.record(req, decision, err)

	return decision, err
}

func (g *Gate) evaluate(req Request) (*Decision, error) {
	path := g.CredentialsPath(req.ProjectRoot)
	releaseTasks := tasks.ReleaseTasks(req.Tasks)
	release := len(releaseTasks) > 0

	g.logger.Debug("Evaluating release signing gate",
		logfields.Tasks(req.Tasks),
		logfields.ReleaseTasks(releaseTasks),
		logfields.CredentialsFile(path))

	exists, err := fileExists(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot stat credentials file").
			Fatal().
			WithContext("path", path).
			Build()
	}

	if !exists {
		if release {
			return nil, missingFileError(path, releaseTasks)
		}
		notice := fmt.Sprintf("%s not found; skipping release signing configuration for debug/non-release tasks.",
			filepath.Base(path))
		g.logger.Info(notice, logfields.CredentialsFile(path))
		return &Decision{
			Outcome:         Skipped,
			CredentialsFile: path,
			Notice:          notice,
		}, nil
	}

	creds, err := signing.Load(path)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Release signing configured", logfields.CredentialsFile(path), slog.Any("credentials", creds))
	return &Decision{
		Outcome:          Configured,
		ReleaseRequested: release,
		ReleaseTasks:     releaseTasks,
		CredentialsFile:  path,
		Credentials:      creds,
	}, nil
}

func (g *Gate) record(req Request, decision *Decision, err error) {
	release := tasks.IsReleaseRequested(req.Tasks)
	switch {
	case err == nil && decision.Outcome == Skipped:
		g.recorder.IncOutcome(metrics.OutcomeSkipped, release)
	case err == nil:
		g.recorder.IncOutcome(metrics.OutcomeConfigured, release)
	case stderrors.Is(err, ErrMissingCredentialsFile):
		g.recorder.IncOutcome(metrics.OutcomeMissingFile, release)
	case stderrors.Is(err, signing.ErrMissingCredentialField):
		g.recorder.IncOutcome(metrics.OutcomeMissingField, release)
		if field, ok := signing.MissingField(err); ok {
			g.recorder.IncMissingField(field)
		}
	default:
		g.recorder.IncOutcome(metrics.OutcomeFailed, release)
	}
}

func missingFileError(path string, releaseTasks []string) error {
	msg := fmt.Sprintf("Missing %s required for release signing. Create %s with: %s; or configure signing another way.",
		filepath.Base(path), path, strings.Join(signing.RequiredKeys, ", "))
	return errors.SigningError(msg).
		WithCause(ErrMissingCredentialsFile).
		WithContext("path", path).
		WithContext("release_tasks", releaseTasks).
		Build()
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
