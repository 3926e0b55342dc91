package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/atomscan/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomscan",
		Short: "atomscan - Atomic Design structure analyzer",
		Long: `atomscan is a heuristic linter for React projects organized by Atomic
Design conventions. It scans a components tree, checks barrel files, tests,
logic placement and dependency direction, and prints a violation report.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(depsCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Handle custom exit codes from the scan/deps commands
		if exitErr, ok := err.(*ScanExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			// Silently exit with the specified code (output already printed)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ScanExitError is a custom error type carrying a process exit code
type ScanExitError struct {
	Code    int
	Message string
}

func (e *ScanExitError) Error() string {
	return e.Message
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("atomscan version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
