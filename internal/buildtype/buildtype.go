// Package buildtype resolves the release build type that the signing gate's
// decision feeds into.
package buildtype

import (
	"path/filepath"

	"git.home.luguber.info/inful/signgate/internal/config"
	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
	"git.home.luguber.info/inful/signgate/internal/gate"
)

// ReleaseName is the name of both the release build type and its signing config.
const ReleaseName = "release"

// SigningConfig is the signingConfigs.release block.
type SigningConfig struct {
	Name          string `json:"name" yaml:"name"`
	KeyAlias      string `json:"keyAlias" yaml:"keyAlias"`
	KeyPassword   string `json:"keyPassword" yaml:"keyPassword"`
	StoreFile     string `json:"storeFile" yaml:"storeFile"`
	StorePassword string `json:"storePassword" yaml:"storePassword"`
}

// BuildType is a resolved buildTypes entry.
type BuildType struct {
	Name            string         `json:"name" yaml:"name"`
	Debuggable      bool           `json:"debuggable" yaml:"debuggable"`
	MinifyEnabled   bool           `json:"minifyEnabled" yaml:"minifyEnabled"`
	ShrinkResources bool           `json:"shrinkResources" yaml:"shrinkResources"`
	ProguardFiles   []string       `json:"proguardFiles" yaml:"proguardFiles"`
	SigningConfig   *SigningConfig `json:"signingConfig,omitempty" yaml:"signingConfig,omitempty"`
}

// Release builds the release build type. A configured decision attaches a
// signing config whose storeFile is resolved against appDir, the way Gradle's
// file() resolves relative to the module. A skipped decision leaves signing unset.
func Release(rel config.ReleaseConfig, appDir string, decision *gate.Decision) (*BuildType, error) {
	if decision == nil {
		return nil, errors.InternalError("release build type requires a gate decision").Build()
	}

	bt := &BuildType{
		Name:            ReleaseName,
		Debuggable:      false,
		MinifyEnabled:   rel.MinifyEnabled,
		ShrinkResources: rel.ShrinkResources,
		ProguardFiles:   append([]string(nil), rel.ProguardFiles...),
	}

	switch decision.Outcome {
	case gate.Skipped:
		return bt, nil
	case gate.Configured:
		if decision.Credentials == nil {
			return nil, errors.InternalError("configured decision without credentials").Build()
		}
		creds := decision.Credentials
		storeFile := creds.StoreFile
		if !filepath.IsAbs(storeFile) {
			storeFile = filepath.Join(appDir, storeFile)
		}
		bt.SigningConfig = &SigningConfig{
			Name:          ReleaseName,
			KeyAlias:      creds.KeyAlias,
			KeyPassword:   creds.KeyPassword,
			StoreFile:     filepath.Clean(storeFile),
			StorePassword: creds.StorePassword,
		}
		return bt, nil
	default:
		return nil, errors.InternalError("unknown gate outcome").
			WithContext("outcome", string(decision.Outcome)).
			Build()
	}
}

// Redacted returns a copy with signing passwords masked.
func (b *BuildType) Redacted() *BuildType {
	out := *b
	out.ProguardFiles = append([]string(nil), b.ProguardFiles...)
	if b.SigningConfig != nil {
		sc := *b.SigningConfig
		sc.KeyPassword = "********"
		sc.StorePassword = "********"
		out.SigningConfig = &sc
	}
	return &out
}
