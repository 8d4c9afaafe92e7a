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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// isolateEnv clears every variable LoadConfig reads and points HOME at an
// empty directory so a developer's own config never leaks into tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PRSYNC_GH_BINARY", "PRSYNC_OUTPUT_DIR", "PRSYNC_LIMIT", "PRSYNC_INCLUDE_CLOSED", "PRSYNC_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GH.Binary != "gh" {
		t.Errorf("Binary = %s, want gh", cfg.GH.Binary)
	}
	if cfg.GH.Timeout != 0 {
		t.Errorf("Timeout = %s, want 0", cfg.GH.Timeout)
	}
	if cfg.Output.Dir != ".prs" {
		t.Errorf("Dir = %s, want .prs", cfg.Output.Dir)
	}
	if cfg.Output.Extension != "yaml" {
		t.Errorf("Extension = %s, want yaml", cfg.Output.Extension)
	}
	if cfg.Defaults.Limit != 100 {
		t.Errorf("Limit = %d, want 100", cfg.Defaults.Limit)
	}
	if cfg.Defaults.IncludeClosed {
		t.Error("IncludeClosed = true, want false")
	}
	if cfg.Log.Level != "progress" {
		t.Errorf("Log.Level = %s, want progress", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolateEnv(t)
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
gh:
  binary: /usr/local/bin/gh
  timeout: 90s

output:
  dir: pulls
  extension: yml

defaults:
  limit: 25
  include_closed: true

repositories:
  "org/repo":
    limit: 10

log:
  level: debug
  format: json
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GH.Binary != "/usr/local/bin/gh" {
		t.Errorf("Binary = %s, want /usr/local/bin/gh", cfg.GH.Binary)
	}
	if cfg.GH.Timeout != 90*time.Second {
		t.Errorf("Timeout = %s, want 1m30s", cfg.GH.Timeout)
	}
	if cfg.Output.Dir != "pulls" || cfg.Output.Extension != "yml" {
		t.Errorf("Output = %+v, want pulls/yml", cfg.Output)
	}
	if cfg.Defaults.Limit != 25 {
		t.Errorf("Limit = %d, want 25", cfg.Defaults.Limit)
	}
	if !cfg.Defaults.IncludeClosed {
		t.Error("IncludeClosed = false, want true")
	}
	if repoConfig, ok := cfg.Repositories["org/repo"]; !ok {
		t.Error("Repository org/repo not found")
	} else if repoConfig.Limit != 10 {
		t.Errorf("Repository Limit = %d, want 10", repoConfig.Limit)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want debug/json", cfg.Log)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	isolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("defaults:\n  limit: 5\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Defaults.Limit != 5 {
		t.Errorf("Limit = %d, want 5", cfg.Defaults.Limit)
	}
	if cfg.Output.Dir != ".prs" || cfg.GH.Binary != "gh" {
		t.Errorf("defaults lost: %+v %+v", cfg.Output, cfg.GH)
	}
}

func TestLoadConfig_DiscoversCurrentDirectory(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(".pr-sync.yml", []byte("output:\n  dir: synced\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Output.Dir != "synced" {
		t.Errorf("Dir = %s, want synced", cfg.Output.Dir)
	}
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	isolateEnv(t)
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Defaults.Limit != 100 {
		t.Errorf("Limit = %d, want 100", cfg.Defaults.Limit)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	isolateEnv(t)
	tmpDir := t.TempDir()

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(tmpDir, "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing config file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.yaml")
		if err := os.WriteFile(path, []byte("defaults: [unterminated"), 0o644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		_, err := LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
			t.Fatalf("error = %v, want parse failure", err)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := filepath.Join(tmpDir, "duration.yaml")
		if err := os.WriteFile(path, []byte("gh:\n  timeout: soon\n"), 0o644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatal("expected error for invalid duration")
		}
	})
}

func TestEnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PRSYNC_GH_BINARY", "/opt/gh")
	t.Setenv("PRSYNC_OUTPUT_DIR", "$HOME/prs")
	t.Setenv("PRSYNC_LIMIT", "7")
	t.Setenv("PRSYNC_INCLUDE_CLOSED", "yes")
	t.Setenv("PRSYNC_LOG_LEVEL", "warn")
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GH.Binary != "/opt/gh" {
		t.Errorf("Binary = %s, want /opt/gh", cfg.GH.Binary)
	}
	if want := filepath.Join(os.Getenv("HOME"), "prs"); cfg.Output.Dir != want {
		t.Errorf("Dir = %s, want %s", cfg.Output.Dir, want)
	}
	if cfg.Defaults.Limit != 7 {
		t.Errorf("Limit = %d, want 7", cfg.Defaults.Limit)
	}
	if !cfg.Defaults.IncludeClosed {
		t.Error("IncludeClosed = false, want true")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %s, want warn", cfg.Log.Level)
	}
}

func TestEnvOverrides_InvalidLimitIgnored(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PRSYNC_LIMIT", "-3")
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Defaults.Limit != 100 {
		t.Errorf("Limit = %d, want 100", cfg.Defaults.Limit)
	}
}

func TestLoadConfigForRepo(t *testing.T) {
	isolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
defaults:
  limit: 50
repositories:
  "big/monorepo":
    limit: 10
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	tests := []struct {
		name      string
		repo      string
		envLimit  string
		wantLimit int
	}{
		{"repository override", "big/monorepo", "", 10},
		{"other repository", "small/lib", "", 50},
		{"ambient repository", "", "", 50},
		{"environment outranks repository", "big/monorepo", "3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PRSYNC_LIMIT", tt.envLimit)

			cfg, err := LoadConfigForRepo(configPath, tt.repo)
			if err != nil {
				t.Fatalf("LoadConfigForRepo failed: %v", err)
			}
			if cfg.Defaults.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", cfg.Defaults.Limit, tt.wantLimit)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"yml extension", func(c *Config) { c.Output.Extension = "yml" }, ""},
		{"zero limit", func(c *Config) { c.Defaults.Limit = 0 }, "default limit must be positive"},
		{"negative repo limit", func(c *Config) { c.Repositories["a/b"] = RepoConfig{Limit: -1} }, "limit for a/b"},
		{"empty binary", func(c *Config) { c.GH.Binary = " " }, "gh binary cannot be empty"},
		{"negative timeout", func(c *Config) { c.GH.Timeout = -time.Second }, "gh timeout must not be negative"},
		{"empty dir", func(c *Config) { c.Output.Dir = "" }, "output directory cannot be empty"},
		{"json extension", func(c *Config) { c.Output.Extension = "json" }, "output extension must be yaml or yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "YES", " 1 ", "on"} {
		if !parseBool(s) {
			t.Errorf("parseBool(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"false", "no", "0", "maybe"} {
		if parseBool(s) {
			t.Errorf("parseBool(%q) = true, want false", s)
		}
	}
}
