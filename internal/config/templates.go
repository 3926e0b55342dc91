package config

import (
	"fmt"
	"strings"
)

// ProjectType represents the kind of React project being scanned
type ProjectType string

const (
	ProjectTypeReact  ProjectType = "react"
	ProjectTypeNext   ProjectType = "next"
	ProjectTypePlain  ProjectType = "plain-js"
	ProjectTypeCustom ProjectType = "custom"
)

// Strictness represents the analysis strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// StrictnessPreset holds threshold values for a strictness level
type StrictnessPreset struct {
	MaxHooks     int
	MaxFunctions int
	MissingTest  bool
}

// GetStrictnessPresets returns the threshold presets per strictness level
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			MaxHooks:     4,
			MaxFunctions: 4,
			MissingTest:  false,
		},
		StrictnessStandard: {
			MaxHooks:     DefaultMaxHooks,
			MaxFunctions: DefaultMaxFunctions,
			MissingTest:  true,
		},
		StrictnessStrict: {
			MaxHooks:     1,
			MaxFunctions: 1,
			MissingTest:  true,
		},
	}
}

// GetProjectExtensions returns the component extensions per project type
func GetProjectExtensions() map[ProjectType][]string {
	return map[ProjectType][]string{
		ProjectTypeReact:  {".tsx", ".jsx"},
		ProjectTypeNext:   {".tsx", ".jsx"},
		ProjectTypePlain:  {".jsx", ".js"},
		ProjectTypeCustom: {".tsx", ".jsx"},
	}
}

// GetMinimalConfigTemplate returns a short config with essential options only
func GetMinimalConfigTemplate() string {
	return `# atomscan configuration
conventions:
  components_dir: components
  hook_prefix: use
rules:
  max_hooks: 2
  max_functions: 2
output:
  format: text
`
}

// GetFullConfigTemplate returns a documented configuration for the given
// project type and strictness level
func GetFullConfigTemplate(projectType ProjectType, strictness Strictness) string {
	preset, ok := GetStrictnessPresets()[strictness]
	if !ok {
		preset = GetStrictnessPresets()[StrictnessStandard]
	}
	extensions, ok := GetProjectExtensions()[projectType]
	if !ok {
		extensions = GetProjectExtensions()[ProjectTypeReact]
	}

	extList := make([]string, len(extensions))
	for i, ext := range extensions {
		extList[i] = fmt.Sprintf("%q", ext)
	}

	excludes := []string{"node_modules", "dist", "build", "coverage"}
	if projectType == ProjectTypeNext {
		excludes = append(excludes, ".next")
	}
	excludeList := make([]string, len(excludes))
	for i, e := range excludes {
		excludeList[i] = fmt.Sprintf("%q", e)
	}

	return fmt.Sprintf(`# atomscan configuration
# Generated for a %s project with %s strictness.

# Naming and layout conventions the scanner recognizes.
conventions:
  # Directory under the scan root that holds components.
  components_dir: components
  atoms_dir: atoms
  molecules_dir: molecules
  organisms_dir: organisms
  # Shared organisms live under organisms/<common_dir>/; every other
  # immediate subdirectory of organisms/ is a page-specific domain.
  common_dir: common
  # File extensions recognized as component source files.
  component_extensions: [%s]
  # Filenames recognized as barrel export files.
  barrel_files: ["index.ts", "index.tsx", "index.js", "index.jsx"]
  # Filename suffixes recognized as test files.
  test_suffixes: [".test.tsx", ".test.jsx", ".spec.tsx", ".spec.jsx"]
  # Hook naming convention prefix. Calls to <prefix>Xxx(...) count as
  # hook usages.
  hook_prefix: use
  # Import aliases that resolve to the components directory.
  alias_prefixes: ["@/components/", "~/components/"]

# Per-rule enablement and thresholds.
rules:
  missing_directory: true
  missing_barrel: true
  missing_test: %t
  logic_in_component: true
  dependency_violation: true
  # logic-in-component fires when BOTH counts are strictly above these.
  max_hooks: %d
  max_functions: %d

output:
  # text, json, or yaml.
  format: text
  show_details: false

analysis:
  exclude_patterns: [%s]
  respect_gitignore: true
  # Workers for fact extraction; report output is identical at any value.
  max_workers: 1
`,
		projectType, strictness,
		strings.Join(extList, ", "),
		preset.MissingTest,
		preset.MaxHooks,
		preset.MaxFunctions,
		strings.Join(excludeList, ", "),
	)
}
