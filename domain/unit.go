package domain

// Category represents the Atomic Design level a component belongs to
type Category string

const (
	// CategoryAtom is the smallest indivisible UI unit, no business logic
	CategoryAtom Category = "atom"

	// CategoryMolecule is a small composition of atoms with one purpose
	CategoryMolecule Category = "molecule"

	// CategoryOrganism is a larger composition forming a complete UI section
	CategoryOrganism Category = "organism"
)

// Categories lists all categories in hierarchy order (lowest first)
func Categories() []Category {
	return []Category{CategoryAtom, CategoryMolecule, CategoryOrganism}
}

// Scope represents where a component unit may be reused
type Scope string

const (
	// ScopeShared applies to atoms and molecules, reusable everywhere
	ScopeShared Scope = "shared"

	// ScopeCommon applies to organisms under organisms/common/
	ScopeCommon Scope = "common"

	// ScopePage applies to organisms under organisms/<page>/
	ScopePage Scope = "page"
)

// ConfidenceHeuristic marks facts produced by lexical scanning rather than
// parsing. Counts may include false positives/negatives.
const ConfidenceHeuristic = "heuristic"

// ComponentUnit is one discovered component directory together with the
// lightweight facts extracted from it.
type ComponentUnit struct {
	// Name is the component directory name
	Name string `json:"name" yaml:"name"`

	// Category is fixed at discovery time from directory placement
	Category Category `json:"category" yaml:"category"`

	// Scope is derived from the path segment under the category directory
	Scope Scope `json:"scope" yaml:"scope"`

	// Domain is the page domain for page-scoped units (empty otherwise)
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`

	// Path is the unit directory relative to the components root,
	// e.g. "organisms/checkout/CheckoutForm"
	Path string `json:"path" yaml:"path"`

	// PrimarySource is the file facts were extracted from, relative to
	// the unit directory. Empty when no primary source was found.
	PrimarySource string `json:"primary_source,omitempty" yaml:"primary_source,omitempty"`

	// HasBarrel reports whether an index export file exists in the unit
	HasBarrel bool `json:"has_barrel" yaml:"has_barrel"`

	// HasTest reports whether a test file exists alongside the unit
	HasTest bool `json:"has_test" yaml:"has_test"`

	// HookCount is the number of hook call sites in the primary source
	HookCount int `json:"hook_count" yaml:"hook_count"`

	// FunctionCount is the number of locally defined helper functions in
	// the primary source, excluding the component's own render function
	FunctionCount int `json:"function_count" yaml:"function_count"`

	// ImportedModules are the module specifiers referenced by the primary
	// source, sorted and deduplicated
	ImportedModules []string `json:"imported_modules,omitempty" yaml:"imported_modules,omitempty"`

	// FactConfidence is always ConfidenceHeuristic for extracted counts
	FactConfidence string `json:"fact_confidence" yaml:"fact_confidence"`
}

// StructureFacts is the scanner's view of one project tree: which category
// directories exist and every unit discovered, ordered lexicographically
// by path.
type StructureFacts struct {
	// Root is the scanned source root
	Root string `json:"root" yaml:"root"`

	// ComponentsDir is the resolved components directory under Root
	ComponentsDir string `json:"components_dir" yaml:"components_dir"`

	// HasComponentsDir reports whether ComponentsDir exists at all
	HasComponentsDir bool `json:"has_components_dir" yaml:"has_components_dir"`

	// CategoryDirs records which of the category directories exist
	CategoryDirs map[Category]bool `json:"category_dirs" yaml:"category_dirs"`

	// Units are the discovered component units in path order
	Units []ComponentUnit `json:"units" yaml:"units"`
}

// UnitsInCategory returns the units of a single category, preserving order
func (f *StructureFacts) UnitsInCategory(c Category) []ComponentUnit {
	var units []ComponentUnit
	for _, u := range f.Units {
		if u.Category == c {
			units = append(units, u)
		}
	}
	return units
}
