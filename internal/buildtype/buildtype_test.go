package buildtype

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/signgate/internal/config"
	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
	"git.home.luguber.info/inful/signgate/internal/gate"
	"git.home.luguber.info/inful/signgate/internal/signing"
)

func configured(storeFile string) *gate.Decision {
	return &gate.Decision{
		Outcome: gate.Configured,
		Credentials: &signing.Credentials{
			KeyAlias: "upload", KeyPassword: "kp", StoreFile: storeFile, StorePassword: "sp",
		},
	}
}

func TestRelease_Skipped(t *testing.T) {
	rel := config.Default().Release

	bt, err := Release(rel, "/proj/app", &gate.Decision{Outcome: gate.Skipped})
	require.NoError(t, err)

	assert.Equal(t, ReleaseName, bt.Name)
	assert.False(t, bt.Debuggable)
	assert.True(t, bt.MinifyEnabled)
	assert.True(t, bt.ShrinkResources)
	assert.Equal(t, config.DefaultProguardFiles, bt.ProguardFiles)
	assert.Nil(t, bt.SigningConfig)
}

func TestRelease_ConfiguredResolvesStoreFile(t *testing.T) {
	rel := config.Default().Release
	appDir := filepath.Join("/proj", "android", "app")

	bt, err := Release(rel, appDir, configured("../upload-keystore.jks"))
	require.NoError(t, err)
	require.NotNil(t, bt.SigningConfig)

	assert.Equal(t, SigningConfig{
		Name:          ReleaseName,
		KeyAlias:      "upload",
		KeyPassword:   "kp",
		StoreFile:     filepath.Join("/proj", "android", "upload-keystore.jks"),
		StorePassword: "sp",
	}, *bt.SigningConfig)

	abs, err := Release(rel, appDir, configured("/keys/upload.jks"))
	require.NoError(t, err)
	assert.Equal(t, "/keys/upload.jks", abs.SigningConfig.StoreFile)
}

func TestRelease_InvalidDecisions(t *testing.T) {
	rel := config.Default().Release

	for name, d := range map[string]*gate.Decision{
		"nil":              nil,
		"configured empty": {Outcome: gate.Configured},
		"unknown outcome":  {Outcome: "maybe"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Release(rel, "/app", d)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryInternal))
		})
	}
}

func TestRedacted(t *testing.T) {
	bt, err := Release(config.Default().Release, "/app", configured("ks.jks"))
	require.NoError(t, err)

	r := bt.Redacted()
	assert.Equal(t, "********", r.SigningConfig.KeyPassword)
	assert.Equal(t, "********", r.SigningConfig.StorePassword)
	assert.Equal(t, "kp", bt.SigningConfig.KeyPassword, "original must be untouched")
	assert.Equal(t, bt.SigningConfig.StoreFile, r.SigningConfig.StoreFile)

	skipped, err := Release(config.Default().Release, "/app", &gate.Decision{Outcome: gate.Skipped})
	require.NoError(t, err)
	assert.Nil(t, skipped.Redacted().SigningConfig)
}
