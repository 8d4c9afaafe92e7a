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

// Package config provides configuration management for gh-pr-sync with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Repository-specific configuration
//  4. Global configuration file
//  5. Built-in defaults
//
// Flags are applied by the command layer; this package handles the rest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .pr-sync.yaml (current directory)
//   - .pr-sync.yml (current directory)
//   - ~/.config/pr-sync/config.yaml
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".pr-sync.yaml",
			".pr-sync.yml",
			filepath.Join(os.Getenv("HOME"), ".config", "pr-sync", "config.yaml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	cfg.Output.Dir = expandPath(cfg.Output.Dir)

	return cfg, nil
}

// LoadConfigForRepo loads configuration and applies repository-specific
// overrides. The repo parameter is in "owner/repo" form.
func LoadConfigForRepo(configPath, repo string) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	// PRSYNC_LIMIT outranks the repository override.
	if repoConfig, ok := cfg.Repositories[repo]; ok && os.Getenv("PRSYNC_LIMIT") == "" {
		if repoConfig.Limit > 0 {
			cfg.Defaults.Limit = repoConfig.Limit
		}
	}

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if binary := os.Getenv("PRSYNC_GH_BINARY"); binary != "" {
		cfg.GH.Binary = binary
	}
	if dir := os.Getenv("PRSYNC_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if limit := os.Getenv("PRSYNC_LIMIT"); limit != "" {
		if n, err := parsePositiveInt(limit); err == nil {
			cfg.Defaults.Limit = n
		}
	}
	if includeClosed := os.Getenv("PRSYNC_INCLUDE_CLOSED"); includeClosed != "" {
		cfg.Defaults.IncludeClosed = parseBool(includeClosed)
	}
	if level := os.Getenv("PRSYNC_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// Validate checks if the configuration contains valid values. Call it after
// loading so that bad settings fail before gh is invoked.
func (c *Config) Validate() error {
	if c.Defaults.Limit <= 0 {
		return fmt.Errorf("default limit must be positive, got: %d", c.Defaults.Limit)
	}
	for repo, rc := range c.Repositories {
		if rc.Limit < 0 {
			return fmt.Errorf("limit for %s must not be negative, got: %d", repo, rc.Limit)
		}
	}
	if strings.TrimSpace(c.GH.Binary) == "" {
		return fmt.Errorf("gh binary cannot be empty")
	}
	if c.GH.Timeout < 0 {
		return fmt.Errorf("gh timeout must not be negative, got: %s", c.GH.Timeout)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	switch c.Output.Extension {
	case "yaml", "yml":
	default:
		return fmt.Errorf("output extension must be yaml or yml, got: %q", c.Output.Extension)
	}
	return nil
}
