// Package registry provides a global registry for test-screen factories.
// Visualizers register themselves in init() functions, allowing the
// platform to discover and instantiate screens without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/neuroedu/tui-statlab/internal/core"
)

// Visualizer is the interface every test screen implements. Screens
// contain pure interaction and rendering logic with no Bubble Tea
// dependency; the platform handles the event loop and terminal I/O.
type Visualizer interface {
	// ID returns a unique identifier (e.g., "gof", "paired").
	// Used for CLI commands and the result history store.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the screen's interaction state to its
	// configured defaults and recomputes the layout for the given size.
	// Called when the screen is entered.
	Reset(cfg core.RuntimeConfig)

	// Resize recomputes the layout tree and all control rectangles for
	// the new window size. Any in-progress slider drag is cleared.
	Resize(width, height int)

	// HandleAction applies a semantic action (calculate, reset, focus
	// moves, slider nudges).
	HandleAction(a core.Action)

	// HandleDigit applies a digit or backspace ('\b') to the active
	// editable cell, if the screen has one.
	HandleDigit(r rune)

	// HandlePointer applies a pointer press/move/release.
	HandlePointer(ev core.PointerEvent)

	// Render draws the current state into the screen buffer.
	// The buffer is pre-cleared before this call.
	Render(dst *core.Screen)

	// TakeSnapshot returns the most recent freshly computed result
	// exactly once, for the history store. ok is false if nothing new
	// was computed since the last call.
	TakeSnapshot() (snap core.ResultSnapshot, ok bool)
}

// Info contains metadata about a registered visualizer.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a visualizer.
type Factory func() Visualizer

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a visualizer factory to the registry.
// Typically called from a screen package's init() function.
// Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: visualizer %q already registered", id))
	}

	factories[id] = f

	v := f()
	titles[id] = v.Title()
}

// List returns information about all registered visualizers, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new visualizer by its ID.
func Create(id string) (Visualizer, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown test %q", id)
	}

	return f(), nil
}

// Exists checks if a visualizer with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
