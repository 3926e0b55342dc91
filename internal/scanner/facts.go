package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
)

// FactExtractor fills source-level facts for a unit by lexically scanning
// its primary source file. The counts are heuristic: no AST is built, so
// false positives and negatives are possible and accepted.
type FactExtractor struct {
	hookPattern  *regexp.Regexp
	arrowPattern *regexp.Regexp
	funcPattern  *regexp.Regexp
	importFrom   *regexp.Regexp
	importBare   *regexp.Regexp
	importCall   *regexp.Regexp
	requireCall  *regexp.Regexp
}

// NewFactExtractor builds the extraction patterns from the project
// conventions
func NewFactExtractor(conv config.ConventionsConfig) *FactExtractor {
	prefix := regexp.QuoteMeta(conv.HookPrefix)

	return &FactExtractor{
		// Calls to <prefix>Xxx(...): useState(, useCheckout( etc.
		hookPattern: regexp.MustCompile(`\b` + prefix + `[A-Z][A-Za-z0-9_]*\s*\(`),

		// const handleClick = (...) =>, with optional async and TS
		// return annotation
		arrowPattern: regexp.MustCompile(`\b(?:const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(?:async\s+)?\([^)]*\)\s*(?::[^={\n]+)?=>`),

		// function helper(...) { ... }, async or not
		funcPattern: regexp.MustCompile(`\b(?:async\s+)?function\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(`),

		// import ... from 'x'  /  export ... from 'x'. Anchoring on the
		// from keyword keeps multiline import lists matching.
		importFrom: regexp.MustCompile(`\bfrom\s+['"]([^'"]+)['"]`),

		// import 'x' (side effect)
		importBare: regexp.MustCompile(`(?m)^\s*import\s*['"]([^'"]+)['"]`),

		// import('x') (dynamic)
		importCall: regexp.MustCompile(`\bimport\s*\(\s*['"]([^'"]+)['"]\s*\)`),

		// require('x')
		requireCall: regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"]+)['"]\s*\)`),
	}
}

// Extract reads the unit's primary source from unitDir and fills
// HookCount, FunctionCount and ImportedModules in place. Units without a
// primary source, or with an unreadable one, keep their zero defaults;
// extraction never fails the scan.
func (e *FactExtractor) Extract(unit *domain.ComponentUnit, unitDir string) {
	if unit.PrimarySource == "" {
		return
	}

	content, err := os.ReadFile(filepath.Join(unitDir, unit.PrimarySource))
	if err != nil {
		return
	}
	source := string(content)

	unit.HookCount = len(e.hookPattern.FindAllStringIndex(source, -1))
	unit.FunctionCount = e.countFunctions(source, unit.Name)
	unit.ImportedModules = e.extractImports(source)
}

// countFunctions counts locally defined functions, excluding the
// component's own render function (the definition matching the unit name)
func (e *FactExtractor) countFunctions(source, unitName string) int {
	count := 0
	for _, m := range e.arrowPattern.FindAllStringSubmatch(source, -1) {
		if m[1] != unitName {
			count++
		}
	}
	for _, m := range e.funcPattern.FindAllStringSubmatch(source, -1) {
		if m[1] != unitName {
			count++
		}
	}
	return count
}

// extractImports collects module specifiers from import/require/export-from
// statements, deduplicated and sorted for deterministic output
func (e *FactExtractor) extractImports(source string) []string {
	seen := make(map[string]bool)
	for _, re := range []*regexp.Regexp{e.importFrom, e.importBare, e.importCall, e.requireCall} {
		for _, m := range re.FindAllStringSubmatch(source, -1) {
			seen[m[1]] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	modules := make([]string, 0, len(seen))
	for module := range seen {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	return modules
}
