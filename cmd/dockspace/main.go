package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dockspace/internal/dock"
	"dockspace/internal/store"
	"dockspace/internal/telemetry"
	"dockspace/internal/term"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	tracer, err := telemetry.Init(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry disabled: %v\n", err)
	}
	defer tracer.Shutdown(ctx)

	shell := term.NewRunner()
	registerPanels(cfg, shell)

	layoutStore, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	area := dock.NewDockArea(layoutVersion)
	if states, ok := layoutStore.(dock.StateStore); ok {
		area.SetStateStore(states)
	}
	area.SetRoot(defaultLayout(cfg, shell))

	// Restore the saved layout. A snapshot from another layout version
	// is held back; the app prompts before deciding.
	var pending *dock.AreaState
	if data, err := layoutStore.LoadLayout(); err == nil && len(data) > 0 {
		state, derr := dock.DecodeAreaState(data)
		switch {
		case derr != nil:
			fmt.Fprintf(os.Stderr, "ignoring saved layout: %v\n", derr)
		case state.Version != nil && *state.Version == layoutVersion:
			if lerr := area.Load(state); lerr != nil {
				fmt.Fprintf(os.Stderr, "ignoring saved layout: %v\n", lerr)
			}
		default:
			pending = state
		}
	}

	saver := dock.NewSaver(area, layoutStore,
		time.Duration(cfg.Autosave.DebounceMS)*time.Millisecond).
		WithTracer(tracer)
	area.SetOnLayoutChanged(saver.Notify)
	if pending == nil {
		// Persist the startup layout so a fresh or corrupt store has a
		// valid snapshot before the first edit. A held-back snapshot
		// must survive until the user decides what to do with it.
		if err := saver.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "saving layout: %v\n", err)
		}
	}

	app := newAppModel(cfg, area, saver, shell, pending)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen())
	saver.WithErrorHook(func(err error) {
		p.Send(saveFailedMsg{err: err})
	})
	_, runErr := p.Run()

	// Persist whatever is still inside the debounce window.
	if err := saver.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "saving layout: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// openStore builds the configured persistence backend.
func openStore(cfg Config) (dock.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		s, err := store.OpenSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case "memory":
		return store.NewMemoryStore(), func() {}, nil
	default:
		s, err := store.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}

// defaultLayout is the out-of-the-box arrangement: an outline sidebar,
// a tabbed terminal/log center, and a sessions strip at the bottom.
func defaultLayout(cfg Config, shell term.Runner) dock.Item {
	root := dock.NewStackPanel(dock.Horizontal)
	root.AddPanel(newOutlinePanel(), 32)

	center := dock.NewStackPanel(dock.Vertical)
	tabs := dock.NewTabPanel()
	tabs.AddPanel(newTerminalPanelWith(shell, cfg.Shell.WorkDir))
	tabs.AddPanel(newLogPanel())
	tabs.SetActive(0)
	center.AddChild(tabs, nil)
	center.AddPanel(newSessionsPanel(), 8)

	root.AddChild(center, nil)
	return root
}
