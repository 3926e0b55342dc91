package service

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
	"github.com/ludo-technologies/atomscan/internal/rules"
)

// DOTFormatterConfig configures the DOT formatter behavior
type DOTFormatterConfig struct {
	// RankDir is the layout direction: TB, LR, BT, RL
	RankDir string

	// IncludeExternal includes imports that do not point into the
	// components tree (npm packages, relative styles, etc.)
	IncludeExternal bool
}

// DefaultDOTFormatterConfig returns a DOTFormatterConfig with sensible defaults
func DefaultDOTFormatterConfig() *DOTFormatterConfig {
	return &DOTFormatterConfig{
		RankDir:         "LR",
		IncludeExternal: false,
	}
}

// validRankDirs contains the valid Graphviz rank directions
var validRankDirs = map[string]bool{
	"TB": true,
	"LR": true,
	"BT": true,
	"RL": true,
}

// categoryColors defines the fill color per Atomic Design category.
// Effectively a constant map, not modified at runtime.
var categoryColors = map[domain.Category]string{
	domain.CategoryAtom:     "#90EE90",
	domain.CategoryMolecule: "#FFD700",
	domain.CategoryOrganism: "#87CEEB",
}

// DOTFormatter renders unit import edges as DOT for Graphviz. Upward
// edges (the ones dependency-violation reports) are drawn red.
type DOTFormatter struct {
	config *DOTFormatterConfig
	conv   config.ConventionsConfig
}

// NewDOTFormatter creates a new DOT formatter with the given configuration
func NewDOTFormatter(cfg *DOTFormatterConfig, conv config.ConventionsConfig) *DOTFormatter {
	if cfg == nil {
		cfg = DefaultDOTFormatterConfig()
	}
	return &DOTFormatter{config: cfg, conv: conv}
}

// FormatDependencies formats the unit import graph as DOT and returns the string
func (f *DOTFormatter) FormatDependencies(facts *domain.StructureFacts) (string, error) {
	var sb strings.Builder
	if err := f.WriteDependencies(facts, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteDependencies writes the unit import graph as DOT
func (f *DOTFormatter) WriteDependencies(facts *domain.StructureFacts, writer io.Writer) error {
	rankDir := f.config.RankDir
	if !validRankDirs[rankDir] {
		rankDir = "LR"
	}

	fmt.Fprintln(writer, "digraph components {")
	fmt.Fprintf(writer, "  rankdir=%s;\n", rankDir)
	fmt.Fprintln(writer, `  node [shape=box, style=filled, fontname="Helvetica"];`)
	fmt.Fprintln(writer)

	for _, unit := range facts.Units {
		color := categoryColors[unit.Category]
		fmt.Fprintf(writer, "  %s [label=%q, fillcolor=%q];\n",
			nodeID(unit.Path), unit.Path, color)
	}
	fmt.Fprintln(writer)

	for _, unit := range facts.Units {
		for _, module := range unit.ImportedModules {
			internal := f.pointsIntoComponents(module)
			if !internal && !f.config.IncludeExternal {
				continue
			}
			attrs := ""
			if f.isUpward(unit.Category, module) {
				attrs = ` [color="#DC143C", penwidth=2]`
			} else if !internal {
				attrs = ` [style=dashed, color="#888888"]`
			}
			fmt.Fprintf(writer, "  %s -> %s%s;\n",
				nodeID(unit.Path), nodeID(module), attrs)
		}
	}

	fmt.Fprintln(writer, "}")
	return nil
}

// pointsIntoComponents reports whether a module specifier targets one of
// the category directories
func (f *DOTFormatter) pointsIntoComponents(module string) bool {
	for _, level := range []string{f.conv.AtomsDir, f.conv.MoleculesDir, f.conv.OrganismsDir} {
		if rules.UpwardImport(module, level) {
			return true
		}
	}
	return false
}

// isUpward reports whether the edge violates the dependency direction
func (f *DOTFormatter) isUpward(cat domain.Category, module string) bool {
	for _, level := range rules.ForbiddenLevels(f.conv, cat) {
		if rules.UpwardImport(module, level) {
			return true
		}
	}
	return false
}

// nodeID produces a stable DOT identifier for a path or module specifier
func nodeID(path string) string {
	var sb strings.Builder
	sb.WriteString("n_")
	for _, r := range path {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// SortedExternalImports returns the external (non-component) imports of
// all units, deduplicated and sorted
func SortedExternalImports(facts *domain.StructureFacts, conv config.ConventionsConfig) []string {
	f := &DOTFormatter{conv: conv}
	seen := make(map[string]bool)
	for _, unit := range facts.Units {
		for _, module := range unit.ImportedModules {
			if !f.pointsIntoComponents(module) {
				seen[module] = true
			}
		}
	}
	external := make([]string, 0, len(seen))
	for module := range seen {
		external = append(external, module)
	}
	sort.Strings(external)
	return external
}
