package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default thresholds for the logic-in-component heuristic. A component with
// more than MaxHooks hook calls and more than MaxFunctions helper functions
// is a candidate for extracting a custom hook. Heuristic threshold, not a
// hard rule.
const (
	DefaultMaxHooks     = 2
	DefaultMaxFunctions = 2
)

// Config represents the main configuration structure
type Config struct {
	// Conventions holds the naming and layout conventions to recognize
	Conventions ConventionsConfig `json:"conventions" mapstructure:"conventions" yaml:"conventions"`

	// Rules holds per-rule enablement and thresholds
	Rules RulesConfig `json:"rules" mapstructure:"rules" yaml:"rules"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds general scan configuration
	Analysis AnalysisConfig `json:"analysis,omitempty" mapstructure:"analysis" yaml:"analysis"`
}

// ConventionsConfig holds the project conventions the scanner matches
// against. Expressed as explicit configuration rather than globals so a
// project can substitute its own conventions.
type ConventionsConfig struct {
	// ComponentsDir is the directory under the scan root holding components
	ComponentsDir string `json:"components_dir" mapstructure:"components_dir" yaml:"components_dir"`

	// AtomsDir, MoleculesDir, OrganismsDir name the category directories
	AtomsDir     string `json:"atoms_dir" mapstructure:"atoms_dir" yaml:"atoms_dir"`
	MoleculesDir string `json:"molecules_dir" mapstructure:"molecules_dir" yaml:"molecules_dir"`
	OrganismsDir string `json:"organisms_dir" mapstructure:"organisms_dir" yaml:"organisms_dir"`

	// CommonDir is the shared-organisms directory under OrganismsDir
	CommonDir string `json:"common_dir" mapstructure:"common_dir" yaml:"common_dir"`

	// ComponentExtensions are the file extensions recognized as component
	// source files
	ComponentExtensions []string `json:"component_extensions" mapstructure:"component_extensions" yaml:"component_extensions"`

	// BarrelFiles are the filenames recognized as barrel export files
	BarrelFiles []string `json:"barrel_files" mapstructure:"barrel_files" yaml:"barrel_files"`

	// TestSuffixes are the filename suffixes recognized as test files
	TestSuffixes []string `json:"test_suffixes" mapstructure:"test_suffixes" yaml:"test_suffixes"`

	// HookPrefix is the hook naming convention prefix
	HookPrefix string `json:"hook_prefix" mapstructure:"hook_prefix" yaml:"hook_prefix"`

	// AliasPrefixes are import path alias prefixes that resolve to the
	// components directory (e.g. "@/components/")
	AliasPrefixes []string `json:"alias_prefixes" mapstructure:"alias_prefixes" yaml:"alias_prefixes"`
}

// RulesConfig holds per-rule enablement and thresholds
type RulesConfig struct {
	MissingDirectory    bool `json:"missing_directory" mapstructure:"missing_directory" yaml:"missing_directory"`
	MissingBarrel       bool `json:"missing_barrel" mapstructure:"missing_barrel" yaml:"missing_barrel"`
	MissingTest         bool `json:"missing_test" mapstructure:"missing_test" yaml:"missing_test"`
	LogicInComponent    bool `json:"logic_in_component" mapstructure:"logic_in_component" yaml:"logic_in_component"`
	DependencyViolation bool `json:"dependency_violation" mapstructure:"dependency_violation" yaml:"dependency_violation"`

	// MaxHooks and MaxFunctions are the logic-in-component thresholds;
	// both must be exceeded (strictly) to trigger the finding
	MaxHooks     int `json:"max_hooks" mapstructure:"max_hooks" yaml:"max_hooks"`
	MaxFunctions int `json:"max_functions" mapstructure:"max_functions" yaml:"max_functions"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether unit facts are listed in text output
	ShowDetails bool `json:"show_details" mapstructure:"show_details" yaml:"show_details"`
}

// AnalysisConfig holds general scan configuration
type AnalysisConfig struct {
	// ExcludePatterns specifies directory/file patterns to skip
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// RespectGitignore skips paths matched by the root .gitignore
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`

	// MaxWorkers bounds concurrent fact extraction. 1 keeps the scan
	// fully sequential; output is byte-identical at any value.
	MaxWorkers int `json:"max_workers" mapstructure:"max_workers" yaml:"max_workers"`
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Conventions.ComponentsDir == "" {
		return fmt.Errorf("conventions.components_dir must not be empty")
	}
	if c.Conventions.HookPrefix == "" {
		return fmt.Errorf("conventions.hook_prefix must not be empty")
	}
	if len(c.Conventions.ComponentExtensions) == 0 {
		return fmt.Errorf("conventions.component_extensions must not be empty")
	}
	if c.Rules.MaxHooks < 0 {
		return fmt.Errorf("rules.max_hooks must not be negative")
	}
	if c.Rules.MaxFunctions < 0 {
		return fmt.Errorf("rules.max_functions must not be negative")
	}
	if c.Analysis.MaxWorkers < 0 {
		return fmt.Errorf("analysis.max_workers must not be negative")
	}
	switch c.Output.Format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml")
	}
	return nil
}

// LoadConfig loads configuration from an explicit path, or the defaults
// when the path is empty
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// discoverConfigFile finds the appropriate config file path
func discoverConfigFile(targetPath string) string {
	return findDefaultConfig(targetPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Create a new viper instance to avoid race conditions
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigWithTarget loads configuration with target path context.
// If no config path is specified, one is discovered by searching upward
// from the target path.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = discoverConfigFile(targetPath)
	}

	return loadConfigFromFile(configPath)
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common
// locations. targetPath is the path being scanned.
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"atomscan.yaml",
		"atomscan.yml",
		".atomscan.yaml",
		".atomscan.yml",
		"atomscan.json",
		".atomscan.json",
	}

	// If targetPath is provided, search from there upward
	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			dir := absPath
			if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
				dir = filepath.Dir(absPath)
			}
			for {
				if found := searchConfigInDirectory(dir, candidates); found != "" {
					return found
				}
				parent := filepath.Dir(dir)
				if parent == dir {
					break
				}
				dir = parent
			}
		}
	}

	// Fall back to the current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return searchConfigInDirectory(cwd, candidates)
}
