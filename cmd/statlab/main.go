// statlab is an interactive statistics lab for exploring hypothesis
// tests in the terminal.
//
// Usage:
//
//	statlab list              - List available tests
//	statlab run <test>        - Open a test screen
//	statlab menu              - Start the interactive picker menu
//	statlab serve             - Start SSH server for remote sessions
//	statlab history [test]    - Show recorded results
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible samples
//	--db <path>     - Set database path (default: ~/.statlab/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import test screens to register them
	_ "github.com/neuroedu/tui-statlab/internal/visual/gof"
	_ "github.com/neuroedu/tui-statlab/internal/visual/independence"
	_ "github.com/neuroedu/tui-statlab/internal/visual/onesample"
	_ "github.com/neuroedu/tui-statlab/internal/visual/paired"
	_ "github.com/neuroedu/tui-statlab/internal/visual/twosample"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "statlab",
	Short: "Stat Lab - Interactive hypothesis tests in your terminal",
	Long: `Stat Lab is a terminal-based teaching tool for exploring common
hypothesis tests with live data you can poke at.

Available commands:
  list     - Show all available tests
  run      - Open a specific test screen directly
  menu     - Interactive test picker menu
  serve    - Start SSH server for remote sessions
  history  - View recorded results

Examples:
  statlab list
  statlab run twosample
  statlab menu
  statlab serve --ssh :2222
  statlab history gof`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.statlab/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
