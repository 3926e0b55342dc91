package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
	"github.com/ludo-technologies/atomscan/internal/rules"
	"github.com/ludo-technologies/atomscan/service"
)

var (
	depsFormat     string
	depsConfigPath string
	depsExternal   bool
)

func depsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps [path]",
		Short: "Show component import edges",
		Long: `List every component unit's imported modules and mark the upward edges
that violate the dependency direction (atoms → nothing higher,
molecules → atoms only, organisms → molecules/atoms).

Examples:
  atomscan deps src/
  atomscan deps --format dot src/ | dot -Tsvg -o components.svg
  atomscan deps --external src/`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runDeps,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&depsFormat, "format", "f", "text",
		"Output format: text, json, dot")
	cmd.Flags().StringVarP(&depsConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().BoolVar(&depsExternal, "external", false,
		"Include imports that do not point into the components tree")

	return cmd
}

// depsReportJSON is the machine-readable shape of the deps listing
type depsReportJSON struct {
	Units    []depsUnitJSON `json:"units"`
	External []string       `json:"external,omitempty"`
}

type depsUnitJSON struct {
	Path     string   `json:"path"`
	Category string   `json:"category"`
	Imports  []string `json:"imports,omitempty"`
	Upward   []string `json:"upward,omitempty"`
}

func runDeps(cmd *cobra.Command, args []string) error {
	path := defaultScanPath
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.LoadConfigWithTarget(depsConfigPath, path)
	if err != nil {
		return &ScanExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	pm := service.NewProgressManager(depsFormat == "text")
	defer pm.Close()

	scanner := service.NewStructureScanner(cfg, pm)
	facts, err := scanner.Scan(context.Background(), path)
	if err != nil {
		return &ScanExitError{Code: 2, Message: err.Error()}
	}

	switch depsFormat {
	case "text":
		return writeDepsText(facts, cfg)
	case "json":
		return writeDepsJSON(facts, cfg)
	case "dot":
		return writeDepsDOT(facts, cfg)
	default:
		return &ScanExitError{Code: 2, Message: fmt.Sprintf("unsupported output format: %s", depsFormat)}
	}
}

// upwardImports returns the imports of a unit that point into a forbidden
// level, in the unit's import order
func upwardImports(conv config.ConventionsConfig, unit domain.ComponentUnit) []string {
	var upward []string
	for _, module := range unit.ImportedModules {
		for _, level := range rules.ForbiddenLevels(conv, unit.Category) {
			if rules.UpwardImport(module, level) {
				upward = append(upward, module)
				break
			}
		}
	}
	return upward
}

func writeDepsText(facts *domain.StructureFacts, cfg *config.Config) error {
	violations := 0
	for _, unit := range facts.Units {
		fmt.Printf("%s [%s]\n", unit.Path, unit.Category)
		upward := make(map[string]bool)
		for _, module := range upwardImports(cfg.Conventions, unit) {
			upward[module] = true
		}
		for _, module := range unit.ImportedModules {
			marker := " "
			if upward[module] {
				marker = "!"
				violations++
			}
			fmt.Printf("  %s %s\n", marker, module)
		}
	}

	if depsExternal {
		fmt.Println()
		fmt.Println("External imports:")
		for _, module := range service.SortedExternalImports(facts, cfg.Conventions) {
			fmt.Printf("  %s\n", module)
		}
	}

	fmt.Println()
	fmt.Printf("%d unit(s), %d upward import(s)\n", len(facts.Units), violations)

	if violations > 0 {
		return &ScanExitError{Code: 1, Message: ""}
	}
	return nil
}

func writeDepsJSON(facts *domain.StructureFacts, cfg *config.Config) error {
	report := depsReportJSON{}
	for _, unit := range facts.Units {
		report.Units = append(report.Units, depsUnitJSON{
			Path:     unit.Path,
			Category: string(unit.Category),
			Imports:  unit.ImportedModules,
			Upward:   upwardImports(cfg.Conventions, unit),
		})
	}
	if depsExternal {
		report.External = service.SortedExternalImports(facts, cfg.Conventions)
	}
	return service.WriteJSON(os.Stdout, report)
}

func writeDepsDOT(facts *domain.StructureFacts, cfg *config.Config) error {
	formatter := service.NewDOTFormatter(&service.DOTFormatterConfig{
		RankDir:         "LR",
		IncludeExternal: depsExternal,
	}, cfg.Conventions)
	return formatter.WriteDependencies(facts, os.Stdout)
}
