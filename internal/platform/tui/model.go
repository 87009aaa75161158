package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuroedu/tui-statlab/internal/core"
	"github.com/neuroedu/tui-statlab/internal/registry"
	"github.com/neuroedu/tui-statlab/internal/storage"
)

// VizModel is the Bubble Tea model for running one test screen.
// There is no tick loop: screens are pure event-to-render functions, so
// the model redraws only when input or a resize arrives.
type VizModel struct {
	viz        registry.Visualizer
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
}

// NewVizModel creates a Bubble Tea model for the given test screen.
func NewVizModel(viz registry.Visualizer, store *storage.Store, cfg core.RuntimeConfig) VizModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	viz.Reset(cfg)

	return VizModel{
		viz:       viz,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m VizModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m VizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.viz.HandlePointer(ev)
			m.saveSnapshot()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.viz.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m VizModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.keyMapper.MapDigit(msg); ok {
		m.viz.HandleDigit(r)
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.backToMenu = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.viz.HandleAction(action)
		m.saveSnapshot()
	}

	return m, nil
}

// saveSnapshot persists a freshly computed result, if there is one.
// Best-effort: the screen keeps working if the store is unavailable.
func (m VizModel) saveSnapshot() {
	if m.store == nil {
		return
	}
	if snap, ok := m.viz.TakeSnapshot(); ok {
		//nolint:errcheck // Best-effort save, screen continues regardless
		m.store.SaveResult(snap)
	}
}

// View renders the current state to a string for display.
func (m VizModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.viz.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m VizModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m VizModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one test screen.
func Run(viz registry.Visualizer, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewVizModel(viz, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Sliders and cells are mouse-driven
	)

	_, err := p.Run()
	return err
}
