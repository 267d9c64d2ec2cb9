package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dockspace/internal/dock"
	"dockspace/internal/term"
	"dockspace/internal/ui"
)

// layoutVersion is bumped whenever the default layout changes shape in
// a way old snapshots should not silently override.
const layoutVersion = 1

// Messages for the restore decision flow.
type (
	resetLayoutMsg struct{}
	loadLayoutMsg  struct{ state *dock.AreaState }
	saveFailedMsg  struct{ err error }
)

// AppModel is the Bubble Tea model hosting one dock area.
type AppModel struct {
	cfg     Config
	area    *dock.DockArea
	saver   *dock.Saver
	shell   term.Runner
	focus   *dock.FocusRing
	keys    *ui.KeybindRegistry
	handler *ui.KeyHandler
	modals  ui.ModalHost

	width  int
	height int

	// Saved snapshot with a mismatched version, waiting on the user's
	// reset-or-load decision.
	pending *dock.AreaState
}

func newAppModel(cfg Config, area *dock.DockArea, saver *dock.Saver, shell term.Runner, pending *dock.AreaState) *AppModel {
	m := &AppModel{
		cfg:     cfg,
		area:    area,
		saver:   saver,
		shell:   shell,
		focus:   dock.NewFocusRing(area),
		pending: pending,
	}
	m.keys = ui.NewKeybindRegistry()
	m.handler = ui.NewKeyHandler(m.keys)
	m.bindKeys()
	return m
}

func (m *AppModel) bindKeys() {
	m.keys.BindWithDesc("SPC q", tea.Quit, "Quit")
	m.keys.BindWithDesc("SPC z", m.cmd(m.toggleZoom), "Zoom panel")
	m.keys.BindWithDesc("SPC s l", m.splitCmd(dock.SplitLeft), "Split left")
	m.keys.BindWithDesc("SPC s r", m.splitCmd(dock.SplitRight), "Split right")
	m.keys.BindWithDesc("SPC s a", m.splitCmd(dock.SplitAbove), "Split above")
	m.keys.BindWithDesc("SPC s b", m.splitCmd(dock.SplitBelow), "Split below")
	m.keys.BindWithDesc("SPC p c", m.cmd(m.closeFocused), "Close panel")
	m.keys.BindWithDesc("SPC p t", m.cmd(m.cycleTab), "Next tab")
	m.keys.BindWithDesc("SPC l l", m.cmd(m.toggleLock), "Lock layout")
	m.keys.BindWithDesc("SPC l r", func() tea.Msg { return resetLayoutMsg{} }, "Reset layout")
}

// cmd wraps a mutation as a no-message command.
func (m *AppModel) cmd(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

// AsTeaModel adapts AppModel to the tea.Model interface.
func (m *AppModel) AsTeaModel() tea.Model { return teaAdapter{m} }

type teaAdapter struct{ app *AppModel }

func (a teaAdapter) Init() tea.Cmd { return a.app.Init() }
func (a teaAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.app.Update(msg)
	return a, cmd
}
func (a teaAdapter) View() string { return a.app.View() }

// Init starts panel views and, when a mismatched snapshot is pending,
// raises the reset-or-load prompt.
func (m *AppModel) Init() tea.Cmd {
	cmds := m.panelInitCmds()
	if m.pending != nil {
		saved := 0
		if m.pending.Version != nil {
			saved = *m.pending.Version
		}
		modal := ui.NewConfirmModal(
			"Layout version changed",
			fmt.Sprintf("Saved layout is version %d, this build expects %d.\nReset to the default layout?", saved, layoutVersion),
			func() tea.Msg { return resetLayoutMsg{} },
		).WithCancel(func() tea.Msg { return loadLayoutMsg{state: m.pending} })
		m.modals.Present(modal)
		cmds = append(cmds, modal.Init())
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) panelInitCmds() []tea.Cmd {
	var cmds []tea.Cmd
	m.area.WalkPanels(func(p dock.Panel) bool {
		if c := p.View().Init(); c != nil {
			cmds = append(cmds, c)
		}
		return true
	})
	return cmds
}

// Update routes messages: modals first, then global keybinds, then
// the focused panel.
func (m *AppModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeTerminals()
		return nil

	case resetLayoutMsg:
		m.pending = nil
		m.modals.Dismiss()
		m.resetLayout()
		if err := m.saver.Flush(); err != nil {
			return func() tea.Msg { return saveFailedMsg{err: err} }
		}
		return tea.Batch(m.panelInitCmds()...)

	case loadLayoutMsg:
		m.pending = nil
		m.modals.Dismiss()
		m.closeTerminals()
		if err := m.area.Load(msg.state); err == nil {
			m.focus.Focus(nil)
			m.resizeTerminals()
		}
		return tea.Batch(m.panelInitCmds()...)

	case saveFailedMsg:
		if p, ok := dock.PanelAs[*LogPanel](m.area); ok {
			p.Append("save failed: " + msg.err.Error())
		}
		return nil

	case ui.DismissModalMsg:
		m.modals.Dismiss()
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else fans out to all panel views (PTY output, session
	// listings, ticks).
	return m.broadcast(msg)
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.modals.Blocking() {
		return m.modals.Route(msg)
	}
	if msg.String() == "tab" {
		m.focus.Next()
		return nil
	}
	if consumed, cmd := m.handler.Handle(msg); consumed {
		return cmd
	}
	// Unconsumed keys go to the focused panel only.
	if p := m.focus.Current(); p != nil {
		_, cmd := p.View().Update(msg)
		return cmd
	}
	return nil
}

func (m *AppModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	m.area.WalkPanels(func(p dock.Panel) bool {
		if _, c := p.View().Update(msg); c != nil {
			cmds = append(cmds, c)
		}
		return true
	})
	return tea.Batch(cmds...)
}

// View renders the dock area with a hint line, overlaying any modal.
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	body := m.area.Render(m.width, m.height-1, m.focus.CurrentID())
	status := m.statusLine()
	screen := body + "\n" + status

	if top, ok := m.modals.Active(); ok {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, top.View())
	}
	return screen
}

func (m *AppModel) statusLine() string {
	hint := "SPC: commands  tab: focus  ctrl+c: quit"
	if m.area.IsLocked() {
		hint = "layout locked  SPC l l: unlock  ctrl+c: quit"
	}
	if z := m.area.ZoomedPanel(); z != nil {
		hint = "zoomed: " + z.Title() + "  SPC z: restore"
	}
	return ui.Styles.Hint.Render(hint)
}

// Layout operations bound to keys.

func (m *AppModel) toggleZoom() {
	if p := m.focus.Current(); p != nil {
		m.area.ToggleZoom(p)
	}
}

func (m *AppModel) splitCmd(dir dock.Split) tea.Cmd {
	return m.cmd(func() {
		if m.area.IsLocked() {
			return
		}
		target := m.focus.Current()
		if target == nil {
			return
		}
		fresh := newLogPanel()
		if err := m.area.SplitPanel(target, dir, fresh, 0.5); err != nil {
			return
		}
		m.focus.Focus(fresh)
		m.resizeTerminals()
	})
}

func (m *AppModel) closeFocused() {
	if m.area.IsLocked() {
		return
	}
	p := m.focus.Current()
	if p == nil || !p.Closeable() {
		return
	}
	if tp, ok := p.(*TerminalPanel); ok {
		tp.Close()
	}
	m.area.RemovePanel(p)
	m.focus.Focus(nil)
	m.resizeTerminals()
}

func (m *AppModel) cycleTab() {
	p := m.focus.Current()
	if p == nil {
		return
	}
	// Walk to the tab group holding the focused panel and advance it.
	var group *dock.TabPanel
	switch root := m.area.Root().(type) {
	case *dock.TabPanel:
		if root.IndexOf(p) >= 0 {
			group = root
		}
	case *dock.StackPanel:
		group = findTabGroup(root, p)
	}
	if group == nil || group.Len() < 2 {
		return
	}
	group.SetActive((group.ActiveIndex() + 1) % group.Len())
	m.focus.Focus(group.ActivePanel())
	m.area.LayoutChanged()
}

func findTabGroup(s *dock.StackPanel, p dock.Panel) *dock.TabPanel {
	for i := 0; i < s.Len(); i++ {
		switch child := s.ChildAt(i).(type) {
		case *dock.TabPanel:
			if child.IndexOf(p) >= 0 {
				return child
			}
		case *dock.StackPanel:
			if tp := findTabGroup(child, p); tp != nil {
				return tp
			}
		}
	}
	return nil
}

func (m *AppModel) toggleLock() {
	m.area.SetLocked(!m.area.IsLocked())
}

// resetLayout swaps in the default layout. Live terminals are closed
// first so their PTYs and read loops do not outlive their panels; the
// caller re-runs Init on the fresh panel views.
func (m *AppModel) resetLayout() {
	m.closeTerminals()
	m.area.SetRoot(defaultLayout(m.cfg, m.shell))
	m.focus.Focus(nil)
	m.resizeTerminals()
}

// closeTerminals releases every terminal PTY in the current layout.
func (m *AppModel) closeTerminals() {
	m.area.WalkPanels(func(p dock.Panel) bool {
		if tp, ok := p.(*TerminalPanel); ok {
			tp.Close()
		}
		return true
	})
}

// resizeTerminals gives PTY panels an approximation of their region
// size. Region borders and the status line account for the margins.
func (m *AppModel) resizeTerminals() {
	if m.width == 0 {
		return
	}
	m.area.WalkPanels(func(p dock.Panel) bool {
		if tp, ok := p.(*TerminalPanel); ok {
			tp.Resize(m.width/2-4, m.height/2-4)
		}
		return true
	})
}
