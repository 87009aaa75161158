package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neuroedu/tui-statlab/internal/registry"
	"github.com/neuroedu/tui-statlab/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [test]",
	Short: "Show recorded results",
	Long: `Display recorded results. With a test ID, shows the most recent
results for that test; without one, shows a per-test summary plus the
most recent results across all tests.

Examples:
  statlab history
  statlab history gof
  statlab history twosample --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of results to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showTestHistory(store, args[0])
		return
	}
	showOverview(store)
}

// showTestHistory prints recent results for one test.
func showTestHistory(store *storage.Store, testID string) {
	if !registry.Exists(testID) {
		fmt.Fprintf(os.Stderr, "Error: unknown test %q\n", testID)
		fmt.Fprintln(os.Stderr, "Run 'statlab list' to see available tests.")
		os.Exit(1)
	}

	viz, err := registry.Create(testID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results, err := store.RecentResults(testID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Result History - %s\n", viz.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Open 'statlab run %s' and press Enter to calculate one!\n", testID)
		return
	}

	printResultTable(results, false)
}

// showOverview prints a per-test summary plus recent results from all tests.
func showOverview(store *storage.Store) {
	summaries, err := store.Summaries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving summaries: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Result History")
	fmt.Println()

	if len(summaries) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Open 'statlab menu' and calculate a result to get started!")
		return
	}

	fmt.Printf("  %-14s  %-6s  %s\n", "Test", "Runs", "Min p-value")
	fmt.Printf("  %-14s  %-6s  %s\n", "----", "----", "-----------")
	for _, s := range summaries {
		fmt.Printf("  %-14s  %-6d  %s\n", s.TestID, s.Runs, formatP(s.MinPValue))
	}
	fmt.Println()

	results, err := store.AllRecent(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Most recent:")
	printResultTable(results, true)
}

// printResultTable prints result rows, optionally with a test column.
func printResultTable(results []storage.ResultEntry, withTest bool) {
	if withTest {
		fmt.Printf("  %-14s  %-10s  %-10s  %-4s  %s\n", "Test", "Statistic", "p-value", "df", "Date")
		fmt.Printf("  %-14s  %-10s  %-10s  %-4s  %s\n", "----", "---------", "-------", "--", "----")
	} else {
		fmt.Printf("  %-10s  %-10s  %-4s  %s\n", "Statistic", "p-value", "df", "Date")
		fmt.Printf("  %-10s  %-10s  %-4s  %s\n", "---------", "-------", "--", "----")
	}

	for _, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		if withTest {
			fmt.Printf("  %-14s  %-10.3f  %-10s  %-4d  %s\n", r.TestID, r.Statistic, formatP(r.PValue), r.DF, dateStr)
		} else {
			fmt.Printf("  %-10.3f  %-10s  %-4d  %s\n", r.Statistic, formatP(r.PValue), r.DF, dateStr)
		}
	}
}

// formatP formats a p-value for plain-text output.
func formatP(p float64) string {
	if p < 0.0001 {
		return "< 0.0001"
	}
	return fmt.Sprintf("%.4f", p)
}
