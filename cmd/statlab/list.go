package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuroedu/tui-statlab/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tests",
	Long:  `Shows a list of all hypothesis tests registered in the lab.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	tests := registry.List()

	if len(tests) == 0 {
		fmt.Println("No tests available.")
		return
	}

	fmt.Println("Available tests:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range tests {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print tests
	for _, t := range tests {
		fmt.Printf("  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'statlab run <id>' to open a test.")
}
