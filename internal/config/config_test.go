package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Conventions.ComponentsDir != "components" {
		t.Errorf("Expected components dir 'components', got %s", cfg.Conventions.ComponentsDir)
	}
	if cfg.Conventions.HookPrefix != "use" {
		t.Errorf("Expected hook prefix 'use', got %s", cfg.Conventions.HookPrefix)
	}
	if cfg.Rules.MaxHooks != DefaultMaxHooks || cfg.Rules.MaxFunctions != DefaultMaxFunctions {
		t.Errorf("Unexpected thresholds: %d/%d", cfg.Rules.MaxHooks, cfg.Rules.MaxFunctions)
	}
	if !cfg.Rules.MissingDirectory || !cfg.Rules.MissingBarrel || !cfg.Rules.MissingTest ||
		!cfg.Rules.LogicInComponent || !cfg.Rules.DependencyViolation {
		t.Error("All rules should be enabled by default")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected default format 'text', got %s", cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty components dir", func(c *Config) { c.Conventions.ComponentsDir = "" }, "components_dir"},
		{"empty hook prefix", func(c *Config) { c.Conventions.HookPrefix = "" }, "hook_prefix"},
		{"no extensions", func(c *Config) { c.Conventions.ComponentExtensions = nil }, "component_extensions"},
		{"negative max hooks", func(c *Config) { c.Rules.MaxHooks = -1 }, "max_hooks"},
		{"negative max functions", func(c *Config) { c.Rules.MaxFunctions = -1 }, "max_functions"},
		{"negative max workers", func(c *Config) { c.Analysis.MaxWorkers = -1 }, "max_workers"},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"empty format allowed", func(c *Config) { c.Output.Format = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	// Run from an empty directory so no project config is discovered
	restore := chdir(t, t.TempDir())
	defer restore()

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Conventions.ComponentsDir != "components" {
		t.Error("Empty path should load defaults")
	}
}

func TestLoadConfig_FromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atomscan.yaml")
	content := `conventions:
  components_dir: ui
  hook_prefix: use
rules:
  missing_test: false
  max_hooks: 4
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Conventions.ComponentsDir != "ui" {
		t.Errorf("Expected components dir 'ui', got %s", cfg.Conventions.ComponentsDir)
	}
	if cfg.Rules.MissingTest {
		t.Error("missing_test should be disabled")
	}
	if cfg.Rules.MaxHooks != 4 {
		t.Errorf("Expected max_hooks 4, got %d", cfg.Rules.MaxHooks)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected format json, got %s", cfg.Output.Format)
	}

	// Unset fields keep their defaults
	if cfg.Rules.MaxFunctions != DefaultMaxFunctions {
		t.Errorf("Expected default max_functions, got %d", cfg.Rules.MaxFunctions)
	}
	if !cfg.Rules.MissingBarrel {
		t.Error("Unset rules should keep their default enablement")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atomscan.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected validation error for bad format")
	}
}

func TestLoadConfigWithTarget_UpwardDiscovery(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "apps", "web", "src")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}
	configPath := filepath.Join(root, ".atomscan.yaml")
	if err := os.WriteFile(configPath, []byte("conventions:\n  components_dir: widgets\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfigWithTarget("", nested)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Conventions.ComponentsDir != "widgets" {
		t.Errorf("Discovered config not applied, got components dir %s", cfg.Conventions.ComponentsDir)
	}
}

func TestFindDefaultConfig_PrefersNearest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}
	outer := filepath.Join(root, "atomscan.yaml")
	inner := filepath.Join(nested, "atomscan.yaml")
	for _, p := range []string{outer, inner} {
		if err := os.WriteFile(p, []byte("{}\n"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", p, err)
		}
	}

	if found := findDefaultConfig(nested); found != inner {
		t.Errorf("Expected nearest config %s, got %s", inner, found)
	}
}

func TestGetStrictnessPresets(t *testing.T) {
	presets := GetStrictnessPresets()
	relaxed := presets[StrictnessRelaxed]
	standard := presets[StrictnessStandard]
	strict := presets[StrictnessStrict]

	if relaxed.MissingTest {
		t.Error("Relaxed preset should not require tests")
	}
	if !standard.MissingTest {
		t.Error("Standard preset should require tests")
	}
	if standard.MaxHooks != DefaultMaxHooks {
		t.Errorf("Standard preset should use the default hook threshold, got %d", standard.MaxHooks)
	}
	if strict.MaxHooks >= standard.MaxHooks {
		t.Error("Strict preset should lower the hook threshold")
	}
}

func TestGetMinimalConfigTemplate(t *testing.T) {
	tmpl := GetMinimalConfigTemplate()
	if !strings.Contains(tmpl, "components_dir") {
		t.Error("Template should mention components_dir")
	}
}

func TestGetFullConfigTemplate(t *testing.T) {
	tmpl := GetFullConfigTemplate(ProjectTypeNext, StrictnessStrict)
	for _, key := range []string{"conventions", "rules", "output", "analysis"} {
		if !strings.Contains(tmpl, key) {
			t.Errorf("Full template should contain %q section", key)
		}
	}
	if !strings.Contains(tmpl, ".next") {
		t.Error("Next projects should exclude .next")
	}
	if !strings.Contains(tmpl, "max_hooks: 1") {
		t.Error("Strict preset thresholds should appear in the template")
	}
}

// chdir switches the working directory for a test and returns the restore
// function
func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	return func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	}
}
