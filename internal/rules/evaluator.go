// Package rules applies the Atomic Design heuristics to the facts
// collected by the scanner. Each rule is a pure function over the unit
// list; rules are independent and accumulate findings without
// short-circuiting each other.
package rules

import (
	"fmt"
	"strings"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
)

// Evaluator applies the configured rule set to structure facts. Output is
// grouped by rule, then ordered by unit path, so repeated runs on the same
// tree render identically.
type Evaluator struct {
	rules    config.RulesConfig
	conv     config.ConventionsConfig
	selected map[domain.RuleID]bool
}

// NewEvaluator creates an evaluator. selected restricts evaluation to the
// named rules; nil or empty runs every enabled rule.
func NewEvaluator(cfg *config.Config, selected []domain.RuleID) *Evaluator {
	e := &Evaluator{
		rules: cfg.Rules,
		conv:  cfg.Conventions,
	}
	if len(selected) > 0 {
		e.selected = make(map[domain.RuleID]bool, len(selected))
		for _, id := range selected {
			e.selected[id] = true
		}
	}
	return e
}

// enabled combines the config toggle with the CLI selection
func (e *Evaluator) enabled(id domain.RuleID) bool {
	if e.selected != nil && !e.selected[id] {
		return false
	}
	switch id {
	case domain.RuleMissingDirectory:
		return e.rules.MissingDirectory
	case domain.RuleMissingBarrel:
		return e.rules.MissingBarrel
	case domain.RuleMissingTest:
		return e.rules.MissingTest
	case domain.RuleLogicInComponent:
		return e.rules.LogicInComponent
	case domain.RuleDependencyViolation:
		return e.rules.DependencyViolation
	default:
		return false
	}
}

// Evaluate implements domain.RuleEvaluator
func (e *Evaluator) Evaluate(facts *domain.StructureFacts) []domain.Finding {
	var findings []domain.Finding

	if e.enabled(domain.RuleMissingDirectory) {
		findings = append(findings, e.checkDirectories(facts)...)
	}
	if e.enabled(domain.RuleMissingBarrel) {
		findings = append(findings, e.checkBarrels(facts.Units)...)
	}
	if e.enabled(domain.RuleMissingTest) {
		findings = append(findings, e.checkTests(facts.Units)...)
	}
	if e.enabled(domain.RuleLogicInComponent) {
		findings = append(findings, e.checkLogic(facts.Units)...)
	}
	if e.enabled(domain.RuleDependencyViolation) {
		findings = append(findings, e.checkDependencies(facts.Units)...)
	}

	return findings
}

// checkDirectories reports the components directory itself, or any of the
// three category directories, being absent
func (e *Evaluator) checkDirectories(facts *domain.StructureFacts) []domain.Finding {
	if !facts.HasComponentsDir {
		return []domain.Finding{{
			Severity:   domain.SeverityError,
			RuleID:     domain.RuleMissingDirectory,
			TargetPath: e.conv.ComponentsDir,
			Message:    fmt.Sprintf("%s/ directory not found", e.conv.ComponentsDir),
		}}
	}

	var findings []domain.Finding
	for _, cat := range domain.Categories() {
		if facts.CategoryDirs[cat] {
			continue
		}
		dirName := e.categoryDir(cat)
		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityError,
			RuleID:     domain.RuleMissingDirectory,
			TargetPath: dirName,
			Message:    fmt.Sprintf("Missing %s/ directory", dirName),
		})
	}
	return findings
}

func (e *Evaluator) checkBarrels(units []domain.ComponentUnit) []domain.Finding {
	var findings []domain.Finding
	for _, u := range units {
		if u.HasBarrel {
			continue
		}
		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityWarning,
			RuleID:     domain.RuleMissingBarrel,
			TargetPath: u.Path,
			Message:    fmt.Sprintf("Missing barrel file (%s)", e.barrelHint()),
		})
	}
	return findings
}

func (e *Evaluator) checkTests(units []domain.ComponentUnit) []domain.Finding {
	var findings []domain.Finding
	for _, u := range units {
		if u.HasTest {
			continue
		}
		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityWarning,
			RuleID:     domain.RuleMissingTest,
			TargetPath: u.Path,
			Message:    "Missing test file",
		})
	}
	return findings
}

// checkLogic flags units whose hook and helper-function counts are both
// strictly above the configured thresholds. Heuristic, not exact science:
// the counts come from lexical scanning.
func (e *Evaluator) checkLogic(units []domain.ComponentUnit) []domain.Finding {
	var findings []domain.Finding
	for _, u := range units {
		if u.HookCount <= e.rules.MaxHooks || u.FunctionCount <= e.rules.MaxFunctions {
			continue
		}
		findings = append(findings, domain.Finding{
			Severity:   domain.SeverityWarning,
			RuleID:     domain.RuleLogicInComponent,
			TargetPath: u.Path,
			Message: fmt.Sprintf(
				"Component has %d hooks and %d functions. Consider extracting logic to a custom hook.",
				u.HookCount, u.FunctionCount),
		})
	}
	return findings
}

// checkDependencies enforces the dependency direction invariant: atoms
// import nothing higher, molecules import atoms only, organisms may import
// both. The check is path-prefix based, not semantic.
func (e *Evaluator) checkDependencies(units []domain.ComponentUnit) []domain.Finding {
	var findings []domain.Finding
	for _, u := range units {
		for _, forbidden := range e.forbiddenLevels(u.Category) {
			if !importsLevel(u.ImportedModules, forbidden) {
				continue
			}
			findings = append(findings, domain.Finding{
				Severity:   domain.SeverityError,
				RuleID:     domain.RuleDependencyViolation,
				TargetPath: u.Path,
				Message:    fmt.Sprintf("%s should not import from %s", categoryTitle(u.Category), forbidden),
			})
		}
	}
	return findings
}

// categoryDir maps a category to its configured directory name
func (e *Evaluator) categoryDir(cat domain.Category) string {
	switch cat {
	case domain.CategoryAtom:
		return e.conv.AtomsDir
	case domain.CategoryMolecule:
		return e.conv.MoleculesDir
	default:
		return e.conv.OrganismsDir
	}
}

// forbiddenLevels returns the category directory names a unit of the given
// category must not import from
func (e *Evaluator) forbiddenLevels(cat domain.Category) []string {
	switch cat {
	case domain.CategoryAtom:
		return []string{e.conv.MoleculesDir, e.conv.OrganismsDir}
	case domain.CategoryMolecule:
		return []string{e.conv.OrganismsDir}
	default:
		return nil
	}
}

// UpwardImport reports whether module points into the given forbidden
// level directory. Exported for the deps command, which marks upward
// edges without running the full evaluator.
func UpwardImport(module, level string) bool {
	return strings.Contains(module, "/"+level+"/") || strings.HasPrefix(module, level+"/")
}

// ForbiddenLevels returns the directory names units of cat must not import
// from, using the given conventions
func ForbiddenLevels(conv config.ConventionsConfig, cat domain.Category) []string {
	e := &Evaluator{conv: conv}
	return e.forbiddenLevels(cat)
}

func importsLevel(modules []string, level string) bool {
	for _, m := range modules {
		if UpwardImport(m, level) {
			return true
		}
	}
	return false
}

func (e *Evaluator) barrelHint() string {
	if len(e.conv.BarrelFiles) > 0 {
		return e.conv.BarrelFiles[0]
	}
	return "index.ts"
}

func categoryTitle(cat domain.Category) string {
	s := string(cat)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
