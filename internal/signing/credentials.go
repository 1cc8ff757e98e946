// Package signing loads and validates release signing credentials from a
// Java-style key.properties file.
package signing

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"

	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
)

// Property keys expected in key.properties.
const (
	KeyAlias      = "keyAlias"
	KeyPassword   = "keyPassword"
	StoreFile     = "storeFile"
	StorePassword = "storePassword"
)

// RequiredKeys lists every key a credentials file must carry, in validation order.
var RequiredKeys = []string{KeyAlias, KeyPassword, StoreFile, StorePassword}

// ErrMissingCredentialField is the cause of every error returned when a
// credentials file lacks one of RequiredKeys.
var ErrMissingCredentialField = stderrors.New("missing credential field")

// ContextField is the error context key carrying the name of the missing key.
const ContextField = "field"

const redacted = "********"

// Credentials holds the secret material needed to sign a release package.
// Values are taken verbatim from the source file.
type Credentials struct {
	KeyAlias      string
	KeyPassword   string
	StoreFile     string
	StorePassword string
}

// String never prints passwords.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{KeyAlias:%s StoreFile:%s}", c.KeyAlias, c.StoreFile)
}

// LogValue keeps passwords out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(KeyAlias, c.KeyAlias),
		slog.String(StoreFile, c.StoreFile),
		slog.String(KeyPassword, redacted),
		slog.String(StorePassword, redacted),
	)
}

// Redacted returns a copy with both passwords masked.
func (c Credentials) Redacted() Credentials {
	c.KeyPassword = redacted
	c.StorePassword = redacted
	return c
}

// Load reads and validates the credentials file at path.
func Load(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read credentials file").
			WithContext("path", path).
			Build()
	}
	return Parse(data, filepath.Base(path))
}

// Parse decodes properties data and checks that every required key is present
// and non-empty. source names the file in error messages.
func Parse(data []byte, source string) (*Credentials, error) {
	loader := properties.Loader{
		// java.util.Properties.load(InputStream) reads Latin-1.
		Encoding: properties.ISO_8859_1,
		// Secrets may legitimately contain "${".
		DisableExpansion: true,
	}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, fmt.Sprintf("malformed %s", source)).
			Fatal().
			WithContext("path", source).
			Build()
	}

	values := make(map[string]string, len(RequiredKeys))
	for _, key := range RequiredKeys {
		value, ok := props.Get(key)
		if !ok || value == "" {
			return nil, missingField(key, source)
		}
		values[key] = value
	}

	return &Credentials{
		KeyAlias:      values[KeyAlias],
		KeyPassword:   values[KeyPassword],
		StoreFile:     values[StoreFile],
		StorePassword: values[StorePassword],
	}, nil
}

func missingField(key, source string) error {
	return errors.SigningError(fmt.Sprintf("Missing '%s' in %s", key, source)).
		WithCause(ErrMissingCredentialField).
		WithContext(ContextField, key).
		WithContext("path", source).
		Build()
}

// MissingField returns the key named by a missing-field error.
func MissingField(err error) (string, bool) {
	if !stderrors.Is(err, ErrMissingCredentialField) {
		return "", false
	}
	classified, ok := errors.AsClassified(err)
	if !ok {
		return "", false
	}
	return classified.Context().GetString(ContextField)
}
