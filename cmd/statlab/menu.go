package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neuroedu/tui-statlab/internal/core"
	"github.com/neuroedu/tui-statlab/internal/platform/tui"
	"github.com/neuroedu/tui-statlab/internal/registry"
	"github.com/neuroedu/tui-statlab/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the lab with an interactive picker menu",
	Long: `Start the lab in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an entry.
When you leave a test screen you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select entry
  Q            - Quit

Examples:
  statlab menu
  statlab menu --seed 42
  statlab menu --db ./results.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--seed, --db)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Tutorial and history screens return to the menu on back
		if menuResult.ID == tui.MenuTutorialID {
			goBack, tutErr := tui.RunTutorial(cfg.ScreenW, cfg.ScreenH)
			if tutErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", tutErr)
			}
			if goBack {
				continue
			}
			break
		}
		if menuResult.ID == tui.MenuHistoryID {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue
			}
			break
		}

		testID := menuResult.ID
		if testID == "" {
			break
		}

		// Set config path before creation
		setConfigPath(testID, flagConfig)

		// Create screen instance
		viz, err := registry.Create(testID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating test screen: %v\n", err)
			continue
		}

		// Fresh seed for each screen unless one was requested
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		// Run the screen
		if err := tui.Run(viz, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running test screen: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
