package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyInvocationID    = "invocation_id"
	KeyTasks           = "tasks"
	KeyReleaseTasks    = "release_tasks"
	KeyCredentialsFile = "credentials_file"
	KeyField           = "field"
	KeyOutcome         = "outcome"
	KeyBuildType       = "build_type"
	KeyPath            = "path"
	KeyDurationMS      = "duration_ms"
	KeyError           = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func InvocationID(id string) slog.Attr      { return slog.String(KeyInvocationID, id) }
func Tasks(names []string) slog.Attr        { return slog.Any(KeyTasks, names) }
func ReleaseTasks(names []string) slog.Attr { return slog.Any(KeyReleaseTasks, names) }
func CredentialsFile(p string) slog.Attr    { return slog.String(KeyCredentialsFile, p) }
func Field(name string) slog.Attr           { return slog.String(KeyField, name) }
func Outcome(o string) slog.Attr            { return slog.String(KeyOutcome, o) }
func BuildType(name string) slog.Attr       { return slog.String(KeyBuildType, name) }
func Path(p string) slog.Attr               { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr       { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
