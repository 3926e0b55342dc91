package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/atomscan/app"
	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
	"github.com/ludo-technologies/atomscan/internal/rules"
	"github.com/ludo-technologies/atomscan/service"
)

// defaultScanPath is used when no positional argument is given
const defaultScanPath = "./src"

var (
	scanFormat      string
	scanJSON        bool
	scanConfigPath  string
	scanSelectRules []string
	scanShowDetails bool
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a source tree for Atomic Design violations",
		Long: `Scan a source tree expecting <path>/components/ laid out by the
atoms/molecules/organisms convention, and report violations.

Exit codes:
  0 - No error-severity findings (warnings allowed)
  1 - Error-severity findings present
  2 - Scan failure (path not found, bad configuration, etc.)

Examples:
  # Scan ./src (the default)
  atomscan scan

  # Scan an explicit source root
  atomscan scan path/to/project/src

  # JSON output for machine parsing
  atomscan scan --json src/

  # Run a subset of rules
  atomscan scan --select missing-test,dependency-violation src/`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runScan,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().StringVarP(&scanFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&scanJSON, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&scanConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringSliceVarP(&scanSelectRules, "select", "s", nil,
		"Rules to run (comma-separated): missing-directory,missing-barrel,missing-test,logic-in-component,dependency-violation")
	cmd.Flags().BoolVarP(&scanShowDetails, "details", "d", false,
		"List per-component facts in text output")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	path := defaultScanPath
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.LoadConfigWithTarget(scanConfigPath, path)
	if err != nil {
		return &ScanExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	format, err := resolveFormat(cfg)
	if err != nil {
		return &ScanExitError{Code: 2, Message: err.Error()}
	}

	selected, err := parseSelectedRules(scanSelectRules)
	if err != nil {
		return &ScanExitError{Code: 2, Message: err.Error()}
	}

	showDetails := scanShowDetails || cfg.Output.ShowDetails

	// Progress bars only for text output so machine formats stay clean
	pm := service.NewProgressManager(format == domain.OutputFormatText)
	defer pm.Close()

	useCase := app.NewScanUseCase(
		service.NewStructureScanner(cfg, pm),
		rules.NewEvaluator(cfg, selected),
		service.NewReportWriter(showDetails),
	)

	response, err := useCase.Execute(context.Background(), domain.ScanRequest{
		Path:         path,
		OutputFormat: format,
		OutputWriter: os.Stdout,
		SelectRules:  selected,
		ConfigPath:   scanConfigPath,
	})
	if err != nil {
		return &ScanExitError{Code: 2, Message: err.Error()}
	}

	if response.HasErrors() {
		return &ScanExitError{Code: 1, Message: ""}
	}
	return nil
}

// resolveFormat combines the --format/--json flags with the config default
func resolveFormat(cfg *config.Config) (domain.OutputFormat, error) {
	name := scanFormat
	if scanJSON {
		name = "json"
	}
	if name == "" {
		name = cfg.Output.Format
	}
	switch name {
	case "", "text":
		return domain.OutputFormatText, nil
	case "json":
		return domain.OutputFormatJSON, nil
	case "yaml":
		return domain.OutputFormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", name)
	}
}

// parseSelectedRules validates the --select flag values
func parseSelectedRules(names []string) ([]domain.RuleID, error) {
	if len(names) == 0 {
		return nil, nil
	}

	known := make(map[domain.RuleID]bool)
	for _, id := range domain.RuleOrder() {
		known[id] = true
	}

	var selected []domain.RuleID
	for _, name := range names {
		id := domain.RuleID(strings.TrimSpace(name))
		if !known[id] {
			return nil, fmt.Errorf("unknown rule: %s", name)
		}
		selected = append(selected, id)
	}
	return selected, nil
}
