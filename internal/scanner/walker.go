// Package scanner discovers component units in an Atomic Design tree and
// extracts lightweight facts about each one. Extraction is lexical by
// contract: counts are best-effort and tagged heuristic, never the output
// of a real parser.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
)

// Walker discovers component unit directories under a source root
type Walker struct {
	conv     config.ConventionsConfig
	analysis config.AnalysisConfig
}

// NewWalker creates a walker for the given configuration
func NewWalker(cfg *config.Config) *Walker {
	return &Walker{
		conv:     cfg.Conventions,
		analysis: cfg.Analysis,
	}
}

// Discover walks the source root and returns the structure facts. Units
// carry their directory-level facts (barrel, test, primary source);
// source-level counts are filled in later by a FactExtractor.
//
// Only root-path resolution failures are fatal. A tree with missing or
// oddly shaped directories is still recorded, with absent fields
// defaulted, so the evaluator can report on it.
func (w *Walker) Discover(root string) (*domain.StructureFacts, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, domain.NewFileNotFoundError(root, err)
	}
	if !info.IsDir() {
		return nil, domain.NewInvalidInputError("scan root is not a directory: "+root, nil)
	}

	componentsDir := filepath.Join(root, w.conv.ComponentsDir)
	facts := &domain.StructureFacts{
		Root:          root,
		ComponentsDir: componentsDir,
		CategoryDirs:  make(map[domain.Category]bool),
	}

	if info, err := os.Stat(componentsDir); err != nil || !info.IsDir() {
		return facts, nil
	}
	facts.HasComponentsDir = true

	ignore := w.loadGitignore(root)

	for _, cat := range domain.Categories() {
		dirName := w.categoryDir(cat)
		catDir := filepath.Join(componentsDir, dirName)
		info, err := os.Stat(catDir)
		if err != nil || !info.IsDir() {
			facts.CategoryDirs[cat] = false
			continue
		}
		facts.CategoryDirs[cat] = true

		units, err := w.discoverUnits(cat, componentsDir, catDir, root, ignore)
		if err != nil {
			return nil, domain.NewScanError("failed to walk "+catDir, err)
		}
		facts.Units = append(facts.Units, units...)
	}

	sort.Slice(facts.Units, func(i, j int) bool {
		return facts.Units[i].Path < facts.Units[j].Path
	})

	return facts, nil
}

// categoryDir maps a category to its configured directory name
func (w *Walker) categoryDir(cat domain.Category) string {
	switch cat {
	case domain.CategoryAtom:
		return w.conv.AtomsDir
	case domain.CategoryMolecule:
		return w.conv.MoleculesDir
	default:
		return w.conv.OrganismsDir
	}
}

// discoverUnits finds every directory under catDir that directly contains
// at least one component source file
func (w *Walker) discoverUnits(cat domain.Category, componentsDir, catDir, root string, ignore *gitignore.GitIgnore) ([]domain.ComponentUnit, error) {
	var units []domain.ComponentUnit

	err := filepath.WalkDir(catDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: record nothing for it, keep scanning
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.isExcludedDir(d.Name()) {
			return filepath.SkipDir
		}
		if ignore != nil {
			if rel, err := filepath.Rel(root, path); err == nil && ignore.MatchesPath(rel) {
				return filepath.SkipDir
			}
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil
		}
		if !w.hasComponentFile(entries) {
			return nil
		}

		units = append(units, w.buildUnit(cat, componentsDir, path, entries))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return units, nil
}

// buildUnit classifies a unit directory and records its file-level facts
func (w *Walker) buildUnit(cat domain.Category, componentsDir, unitDir string, entries []os.DirEntry) domain.ComponentUnit {
	rel, err := filepath.Rel(componentsDir, unitDir)
	if err != nil {
		rel = unitDir
	}
	rel = filepath.ToSlash(rel)

	unit := domain.ComponentUnit{
		Name:           filepath.Base(unitDir),
		Category:       cat,
		Path:           rel,
		FactConfidence: domain.ConfidenceHeuristic,
	}

	unit.Scope, unit.Domain = w.classifyScope(cat, rel)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	unit.HasBarrel = w.hasBarrel(names)
	unit.HasTest = w.hasTest(names)
	unit.PrimarySource = w.primarySource(unit.Name, names)

	return unit
}

// classifyScope derives the scope from the path segment under the category
// directory. Atoms and molecules are always shared; organisms split into
// common and page-specific domains by their first path segment.
func (w *Walker) classifyScope(cat domain.Category, rel string) (domain.Scope, string) {
	if cat != domain.CategoryOrganism {
		return domain.ScopeShared, ""
	}

	segments := strings.Split(rel, "/")
	// segments[0] is the organisms directory itself
	if len(segments) < 2 {
		return domain.ScopeShared, ""
	}
	if segments[1] == w.conv.CommonDir {
		return domain.ScopeCommon, ""
	}
	return domain.ScopePage, segments[1]
}

// hasComponentFile reports whether a directory listing contains at least
// one non-test component source file
func (w *Walker) hasComponentFile(entries []os.DirEntry) bool {
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if w.isComponentFile(name) && !w.isTestFile(name) {
			return true
		}
	}
	return false
}

func (w *Walker) isComponentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range w.conv.ComponentExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func (w *Walker) isTestFile(name string) bool {
	for _, suffix := range w.conv.TestSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func (w *Walker) hasBarrel(names []string) bool {
	for _, name := range names {
		for _, barrel := range w.conv.BarrelFiles {
			if name == barrel {
				return true
			}
		}
	}
	return false
}

func (w *Walker) hasTest(names []string) bool {
	for _, name := range names {
		if w.isTestFile(name) {
			return true
		}
	}
	return false
}

// primarySource locates the file facts are extracted from: the file named
// after the unit if present, otherwise the first component file in sorted
// order. Empty when the unit has no usable source at all.
func (w *Walker) primarySource(unitName string, names []string) string {
	for _, ext := range w.conv.ComponentExtensions {
		candidate := unitName + ext
		for _, name := range names {
			if name == candidate && !w.isTestFile(name) {
				return name
			}
		}
	}
	for _, name := range names {
		if w.isComponentFile(name) && !w.isTestFile(name) {
			return name
		}
	}
	return ""
}

// isExcludedDir checks a directory name against the exclude patterns,
// matching either exactly or as a glob
func (w *Walker) isExcludedDir(name string) bool {
	for _, pattern := range w.analysis.ExcludePatterns {
		if pattern == name {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// loadGitignore compiles the root .gitignore when configured. A missing or
// malformed file disables ignore handling rather than failing the scan.
func (w *Walker) loadGitignore(root string) *gitignore.GitIgnore {
	if !w.analysis.RespectGitignore {
		return nil
	}
	ignore, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return ignore
}
