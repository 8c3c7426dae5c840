// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/redundantdelegate/internal/rule"
)

const (
	// FileName is the name of the configuration file searched in the working directory.
	FileName = ".redundantdelegate.yaml"

	configName = ".redundantdelegate"
	configType = "yaml"
	envPrefix  = "REDUNDANTDELEGATE"
)

// Configuration keys.
const (
	KeySeverity         = "severity"
	KeyEnabled          = "enabled"
	KeyIncludeGenerated = "include-generated"
	KeyHonorNoLint      = "honor-nolint"
	KeyJobs             = "jobs"
	KeyFormat           = "format"
	KeyExcludeDirs      = "exclude-dirs"
	KeyLogLevel         = "log-level"
)

// Defaults.
const (
	DefaultFormat   = "text"
	DefaultLogLevel = "warn"
)

// DefaultExcludeDirs are the build output directories skipped during discovery.
func DefaultExcludeDirs() []string { return []string{"bin", "obj"} }

// Validation errors.
var (
	ErrInvalidJobs     = errors.New("jobs must not be negative")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrEmptyFormat     = errors.New("format must not be empty")
)

// Settings is the effective configuration of the command line tool.
type Settings struct {
	// Severity overrides the default severity of the rule, "none" disables it.
	// Empty keeps the default.
	Severity string `mapstructure:"severity" yaml:"severity"`

	// Enabled turns the rule on or off.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	IncludeGenerated bool `mapstructure:"include-generated" yaml:"include-generated"`
	HonorNoLint      bool `mapstructure:"honor-nolint"      yaml:"honor-nolint"`

	// Jobs limits the number of files processed concurrently, 0 means GOMAXPROCS.
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	Format      string   `mapstructure:"format"       yaml:"format"`
	ExcludeDirs []string `mapstructure:"exclude-dirs" yaml:"exclude-dirs"`
	LogLevel    string   `mapstructure:"log-level"    yaml:"log-level"`
}

// Load reads the configuration from defaults, the configuration file and the environment.
//
// If path is non-empty, it names the configuration file, which must exist.
// Otherwise [FileName] is searched in the working directory, and a missing file is not an error.
func Load(path string) (*Settings, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &s, nil
}

// Default returns the settings used without configuration file or environment.
func Default() *Settings {
	return &Settings{
		Enabled:     true,
		HonorNoLint: true,
		Format:      DefaultFormat,
		ExcludeDirs: DefaultExcludeDirs(),
		LogLevel:    DefaultLogLevel,
	}
}

func applyDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault(KeySeverity, d.Severity)
	v.SetDefault(KeyEnabled, d.Enabled)
	v.SetDefault(KeyIncludeGenerated, d.IncludeGenerated)
	v.SetDefault(KeyHonorNoLint, d.HonorNoLint)
	v.SetDefault(KeyJobs, d.Jobs)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyExcludeDirs, d.ExcludeDirs)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	if s.Severity != "" {
		if _, _, err := rule.ParseSeverity(s.Severity); err != nil {
			return err
		}
	}

	if s.Jobs < 0 {
		return ErrInvalidJobs
	}

	if s.Format == "" {
		return ErrEmptyFormat
	}

	if _, err := s.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns the configured log level.
func (s *Settings) Level() (slog.Level, error) {
	var level slog.Level
	if s.LogLevel == "" {
		return slog.LevelWarn, nil
	}

	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w %q", ErrInvalidLogLevel, s.LogLevel)
	}

	return level, nil
}

// Behavior returns the behavior flags of the settings.
func (s *Settings) Behavior() Behavior {
	var b Behavior
	b.Set(IncludeGenerated, s.IncludeGenerated)
	b.Set(HonorNoLint, s.HonorNoLint)

	return b
}

// RuleSeverity returns the effective severity for d and whether the rule is enabled.
func (s *Settings) RuleSeverity(d *rule.Descriptor) (rule.Severity, bool) {
	if !s.Enabled {
		return d.DefaultSeverity, false
	}

	if s.Severity == "" {
		return d.DefaultSeverity, d.EnabledByDefault
	}

	severity, enabled, err := rule.ParseSeverity(s.Severity)
	if err != nil {
		return d.DefaultSeverity, d.EnabledByDefault
	}

	return severity, enabled
}

// LogValue implements [slog.LogValuer].
func (s *Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(KeySeverity, s.Severity),
		slog.Bool(KeyEnabled, s.Enabled),
		slog.Bool(KeyIncludeGenerated, s.IncludeGenerated),
		slog.Bool(KeyHonorNoLint, s.HonorNoLint),
		slog.Int(KeyJobs, s.Jobs),
		slog.String(KeyFormat, s.Format),
		slog.Any(KeyExcludeDirs, s.ExcludeDirs),
		slog.String(KeyLogLevel, s.LogLevel),
	)
}

// YAML renders the settings as a configuration file.
func (s *Settings) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return out, nil
}
