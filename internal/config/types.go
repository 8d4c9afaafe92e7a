// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config types define the configuration structures used throughout
// gh-pr-sync. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

import "time"

// Config represents the complete configuration for gh-pr-sync.
type Config struct {
	GH           GHConfig              `yaml:"gh"`
	Output       OutputConfig          `yaml:"output"`
	Defaults     DefaultsConfig        `yaml:"defaults"`
	Repositories map[string]RepoConfig `yaml:"repositories"`
	Log          LogConfig             `yaml:"log"`
}

// GHConfig controls how the GitHub CLI is invoked. Authentication stays
// with gh itself.
type GHConfig struct {
	// Binary is the gh executable, looked up in PATH when not absolute.
	Binary string `yaml:"binary"`

	// Timeout bounds a single gh call. Zero means no limit.
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig describes where descriptor files are written.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
}

// DefaultsConfig contains default settings that apply to every pull
// unless overridden by repository-specific settings or command-line flags.
type DefaultsConfig struct {
	Limit         int  `yaml:"limit"`
	IncludeClosed bool `yaml:"include_closed"`
}

// RepoConfig contains repository-specific overrides, keyed by OWNER/REPO.
type RepoConfig struct {
	Limit int `yaml:"limit"`
}

// LogConfig selects diagnostic verbosity and format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		GH: GHConfig{
			Binary: "gh",
		},
		Output: OutputConfig{
			Dir:       ".prs",
			Extension: "yaml",
		},
		Defaults: DefaultsConfig{
			Limit: 100,
		},
		Repositories: make(map[string]RepoConfig),
		Log: LogConfig{
			Level:  "progress",
			Format: "console",
		},
	}
}
