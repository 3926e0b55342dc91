package config

// DefaultConfig returns the built-in configuration: React conventions with
// the standard Atomic Design directory names.
func DefaultConfig() *Config {
	return &Config{
		Conventions: ConventionsConfig{
			ComponentsDir:       "components",
			AtomsDir:            "atoms",
			MoleculesDir:        "molecules",
			OrganismsDir:        "organisms",
			CommonDir:           "common",
			ComponentExtensions: []string{".tsx", ".jsx"},
			BarrelFiles:         []string{"index.ts", "index.tsx", "index.js", "index.jsx"},
			TestSuffixes:        []string{".test.tsx", ".test.jsx", ".spec.tsx", ".spec.jsx"},
			HookPrefix:          "use",
			AliasPrefixes:       []string{"@/components/", "~/components/"},
		},
		Rules: RulesConfig{
			MissingDirectory:    true,
			MissingBarrel:       true,
			MissingTest:         true,
			LogicInComponent:    true,
			DependencyViolation: true,
			MaxHooks:            DefaultMaxHooks,
			MaxFunctions:        DefaultMaxFunctions,
		},
		Output: OutputConfig{
			Format:      "text",
			ShowDetails: false,
		},
		Analysis: AnalysisConfig{
			ExcludePatterns: []string{
				"node_modules",
				"dist",
				"build",
				".next",
				"coverage",
				".storybook",
			},
			RespectGitignore: true,
			MaxWorkers:       1,
		},
	}
}
