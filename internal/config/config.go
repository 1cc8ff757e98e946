// Package config loads the signgate project configuration (signgate.yaml).
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
)

// DefaultFileName is the configuration file looked up in the project root.
const DefaultFileName = "signgate.yaml"

// Config represents the project configuration.
type Config struct {
	Android AndroidConfig `yaml:"android"`
	Signing SigningConfig `yaml:"signing"`
	Release ReleaseConfig `yaml:"release"`
}

// AndroidConfig mirrors the identity and SDK bounds of the android {} block.
type AndroidConfig struct {
	Namespace             string `json:"namespace" yaml:"namespace" validate:"required,javapackage"`
	ApplicationID         string `json:"application_id" yaml:"application_id" validate:"required,javapackage"`
	CompileSDK            int    `json:"compile_sdk" yaml:"compile_sdk" validate:"min=1"`
	MinSDK                int    `json:"min_sdk" yaml:"min_sdk" validate:"min=1,ltefield=TargetSDK"`
	TargetSDK             int    `json:"target_sdk" yaml:"target_sdk" validate:"min=1,ltefield=CompileSDK"`
	JavaVersion           int    `json:"java_version" yaml:"java_version" validate:"oneof=8 11 17 21"`
	CoreLibraryDesugaring bool   `json:"core_library_desugaring" yaml:"core_library_desugaring"`
}

// SigningConfig locates the credentials file and the app module.
type SigningConfig struct {
	// CredentialsFile is resolved against the project root unless absolute.
	CredentialsFile string `yaml:"credentials_file" validate:"required"`
	// AppDir is the app module directory; storeFile paths resolve against it.
	AppDir string `yaml:"app_dir" validate:"required"`
}

// ReleaseConfig holds the release build-type settings.
type ReleaseConfig struct {
	MinifyEnabled   bool     `yaml:"minify_enabled"`
	ShrinkResources bool     `yaml:"shrink_resources"`
	ProguardFiles   []string `yaml:"proguard_files" validate:"dive,required"`
}

// Load reads configuration from path. A missing file is not an error: the
// returned Config holds defaults and found is false. .env files next to the
// configuration are loaded first so ${VAR} references can be expanded.
func Load(path string) (cfg *Config, found bool, err error) {
	loadEnvFiles(filepath.Dir(path))

	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, false, nil
		}
		return nil, false, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			Fatal().
			WithContext("path", path).
			Build()
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, true, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			WithContext("path", path).
			Build()
	}

	if err := Validate(cfg); err != nil {
		return nil, true, err
	}

	return cfg, true, nil
}

// Init writes an example configuration file populated with defaults.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).
			WithContext("path", path).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Fatal().Build()
	}

	header := []byte("# signgate project configuration\n# Credentials are never stored here; see signing.credentials_file.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}

// CredentialsPath resolves the credentials file against root.
func (c *Config) CredentialsPath(root string) string {
	return resolve(root, c.Signing.CredentialsFile)
}

// AppPath resolves the app module directory against root.
func (c *Config) AppPath(root string) string {
	return resolve(root, c.Signing.AppDir)
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
