package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neuroedu/tui-statlab/internal/core"
	"github.com/neuroedu/tui-statlab/internal/platform/tui"
	"github.com/neuroedu/tui-statlab/internal/registry"
	"github.com/neuroedu/tui-statlab/internal/storage"
	"github.com/neuroedu/tui-statlab/internal/visual/gof"
	"github.com/neuroedu/tui-statlab/internal/visual/independence"
	"github.com/neuroedu/tui-statlab/internal/visual/onesample"
	"github.com/neuroedu/tui-statlab/internal/visual/paired"
	"github.com/neuroedu/tui-statlab/internal/visual/twosample"
)

var flagConfig string

var runCmd = &cobra.Command{
	Use:   "run <test>",
	Short: "Open a test screen",
	Long: `Open the specified hypothesis test screen.

Controls:
  Tab/Shift+Tab  - Move focus between controls
  Left/Right     - Adjust the focused control
  Mouse          - Drag sliders, click cells and buttons
  Enter/C        - Calculate (records the result)
  R              - Reset to defaults
  Esc/B          - Back
  Q/Ctrl+C       - Quit

Examples:
  statlab run gof
  statlab run twosample --seed 42
  statlab run paired --config ./my-paired.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom test config YAML")
}

// setConfigPath routes the --config flag to the selected test's package.
func setConfigPath(testID, path string) {
	switch testID {
	case "gof":
		gof.SetConfigPath(path)
	case "independence":
		independence.SetConfigPath(path)
	case "onesample":
		onesample.SetConfigPath(path)
	case "paired":
		paired.SetConfigPath(path)
	case "twosample":
		twosample.SetConfigPath(path)
	}
}

func runRun(cmd *cobra.Command, args []string) {
	testID := args[0]

	// Check if test exists
	if !registry.Exists(testID) {
		fmt.Fprintf(os.Stderr, "Error: unknown test %q\n", testID)
		fmt.Fprintln(os.Stderr, "Run 'statlab list' to see available tests.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Set config path before creation
	setConfigPath(testID, flagConfig)

	// Create screen instance
	viz, err := registry.Create(testID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating test screen: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the screen still works
		store = nil
	}

	// Run the screen
	runErr := tui.Run(viz, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running test screen: %v\n", runErr)
		os.Exit(1)
	}
}
