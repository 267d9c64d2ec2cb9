package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gotmux "github.com/GianlucaP106/gotmux/gotmux"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dockspace/internal/dock"
	"dockspace/internal/jsonutil"
	"dockspace/internal/term"
	"dockspace/internal/ui"
)

// Stable panel type names; the join key between saved layouts and live
// panels. Do not change across releases.
const (
	outlinePanelName  = "Outline"
	logPanelName      = "Log"
	terminalPanelName = "Terminal"
	sessionsPanelName = "Sessions"
)

// registerPanels installs the factories for every panel type the demo
// ships. Must run before any layout is restored.
func registerPanels(cfg Config, shell term.Runner) {
	dock.RegisterPanel(outlinePanelName, func(area *dock.DockArea, state *dock.ItemState) dock.Panel {
		return newOutlinePanel()
	})
	dock.RegisterPanel(logPanelName, func(area *dock.DockArea, state *dock.ItemState) dock.Panel {
		p := newLogPanel()
		p.applyState(state.PanelState)
		return p
	})
	dock.RegisterPanel(terminalPanelName, func(area *dock.DockArea, state *dock.ItemState) dock.Panel {
		return newTerminalPanelWith(shell, cfg.Shell.WorkDir)
	})
	dock.RegisterPanel(sessionsPanelName, func(area *dock.DockArea, state *dock.ItemState) dock.Panel {
		return newSessionsPanel()
	})
}

// outlineItem adapts a name to the bubbles list item interface.
type outlineItem string

func (i outlineItem) Title() string       { return string(i) }
func (i outlineItem) Description() string { return "" }
func (i outlineItem) FilterValue() string { return string(i) }

// OutlinePanel is a static navigation list, standing in for a project
// tree.
type OutlinePanel struct {
	dock.BasePanel
	list list.Model
}

func newOutlinePanel() *OutlinePanel {
	items := []list.Item{
		outlineItem("cmd/"),
		outlineItem("internal/"),
		outlineItem("go.mod"),
		outlineItem("README.md"),
	}
	l := list.New(items, ui.NewCompactListDelegate(), 28, 16)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Title = "Files"
	return &OutlinePanel{BasePanel: dock.NewBasePanel(), list: l}
}

func (p *OutlinePanel) PanelName() string { return outlinePanelName }
func (p *OutlinePanel) Title() string     { return "Outline" }
func (p *OutlinePanel) Collapsible() bool { return true }

func (p *OutlinePanel) Dump() *dock.ItemState {
	return dock.PanelItem(outlinePanelName, nil)
}

func (p *OutlinePanel) View() ui.View { return (*outlineView)(p) }

// outlineView exposes the panel as a ui.View without a second struct.
type outlineView OutlinePanel

func (v *outlineView) Init() tea.Cmd { return nil }

func (v *outlineView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *outlineView) View() string { return v.list.View() }

// logState is the LogPanel's persisted blob.
type logState struct {
	Filter string `json:"filter,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// logLineLimit is the default cap on retained log lines.
const logLineLimit = 500

// LogPanel shows application log lines with an optional substring
// filter and a retention cap, both of which survive layout save/load.
type LogPanel struct {
	dock.BasePanel
	viewport viewport.Model
	lines    []string
	filter   string
	limit    int
}

func newLogPanel() *LogPanel {
	return &LogPanel{
		BasePanel: dock.NewBasePanel(),
		viewport:  viewport.New(60, 12),
		limit:     logLineLimit,
	}
}

func (p *LogPanel) PanelName() string { return logPanelName }

func (p *LogPanel) Title() string {
	if p.filter != "" {
		return fmt.Sprintf("Log (%s)", p.filter)
	}
	return "Log"
}

// applyState reads the saved blob field by field, so a snapshot with a
// missing or wrong-typed field degrades to the default instead of
// discarding the rest.
func (p *LogPanel) applyState(data json.RawMessage) {
	if len(data) == 0 {
		return
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return
	}
	p.filter = jsonutil.GetString(m, "filter")
	if n := jsonutil.GetInt(m, "limit"); n > 0 {
		p.limit = n
	}
}

func (p *LogPanel) Dump() *dock.ItemState {
	st := logState{Filter: p.filter}
	if p.limit != logLineLimit {
		st.Limit = p.limit
	}
	var blob json.RawMessage
	if st != (logState{}) {
		blob, _ = json.Marshal(st)
	}
	return dock.PanelItem(logPanelName, blob)
}

// Append adds a line, dropping the oldest past the retention cap, and
// re-renders the visible set.
func (p *LogPanel) Append(line string) {
	p.lines = append(p.lines, line)
	if p.limit > 0 && len(p.lines) > p.limit {
		p.lines = p.lines[len(p.lines)-p.limit:]
	}
	p.refresh()
}

// SetFilter narrows the visible lines to those containing needle.
func (p *LogPanel) SetFilter(needle string) {
	p.filter = needle
	p.refresh()
}

func (p *LogPanel) refresh() {
	var visible []string
	for _, l := range p.lines {
		if p.filter == "" || strings.Contains(l, p.filter) {
			visible = append(visible, l)
		}
	}
	p.viewport.SetContent(strings.Join(visible, "\n"))
	p.viewport.GotoBottom()
}

func (p *LogPanel) View() ui.View { return (*logView)(p) }

type logView LogPanel

func (v *logView) Init() tea.Cmd { return nil }

func (v *logView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *logView) View() string {
	if len(v.lines) == 0 {
		return ui.Styles.Empty.Render("No log output yet")
	}
	return v.viewport.View()
}

// TerminalPanel embeds a PTY shell.
type TerminalPanel struct {
	dock.BasePanel
	term *term.TermView
}

func newTerminalPanelWith(runner term.Runner, workDir string) *TerminalPanel {
	return &TerminalPanel{
		BasePanel: dock.NewBasePanel(),
		term:      term.NewTermView(runner, workDir),
	}
}

func (p *TerminalPanel) PanelName() string { return terminalPanelName }
func (p *TerminalPanel) Title() string     { return "Terminal" }

// Closeable is false so a stray close keybind cannot kill the shell.
func (p *TerminalPanel) Closeable() bool { return false }

func (p *TerminalPanel) Dump() *dock.ItemState {
	return dock.PanelItem(terminalPanelName, nil)
}

func (p *TerminalPanel) View() ui.View { return p.term }

// Resize propagates region dimensions to the PTY.
func (p *TerminalPanel) Resize(cols, rows int) {
	p.term.SetSize(cols, rows)
}

// Close releases the PTY.
func (p *TerminalPanel) Close() error { return p.term.Close() }

// sessionEntry is one row of the tmux session listing.
type sessionEntry struct {
	Name     string
	Windows  int
	Attached bool
}

// sessionsMsg carries a refreshed session listing.
type sessionsMsg struct {
	entries []sessionEntry
	err     error
}

// SessionsPanel lists live tmux sessions, refreshed periodically.
type SessionsPanel struct {
	dock.BasePanel
	entries []sessionEntry
	err     error
}

func newSessionsPanel() *SessionsPanel {
	return &SessionsPanel{BasePanel: dock.NewBasePanel()}
}

func (p *SessionsPanel) PanelName() string { return sessionsPanelName }
func (p *SessionsPanel) Title() string     { return "Sessions" }

func (p *SessionsPanel) Dump() *dock.ItemState {
	return dock.PanelItem(sessionsPanelName, nil)
}

func (p *SessionsPanel) PopupMenu(menu *dock.PopupMenu) *dock.PopupMenu {
	return menu.Item("Refresh", fetchSessions)
}

const sessionsRefreshInterval = 5 * time.Second

// fetchSessions lists sessions off the UI goroutine.
func fetchSessions() tea.Msg {
	client, err := gotmux.DefaultTmux()
	if err != nil {
		return sessionsMsg{err: err}
	}
	sessions, err := client.ListSessions()
	if err != nil {
		return sessionsMsg{err: err}
	}
	entries := make([]sessionEntry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, sessionEntry{
			Name:     s.Name,
			Windows:  s.Windows,
			Attached: s.Attached > 0,
		})
	}
	return sessionsMsg{entries: entries}
}

func scheduleSessionsRefresh() tea.Cmd {
	return tea.Tick(sessionsRefreshInterval, func(time.Time) tea.Msg {
		return fetchSessions()
	})
}

func (p *SessionsPanel) View() ui.View { return (*sessionsView)(p) }

type sessionsView SessionsPanel

func (v *sessionsView) Init() tea.Cmd { return fetchSessions }

func (v *sessionsView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if m, ok := msg.(sessionsMsg); ok {
		v.entries = m.entries
		v.err = m.err
		return v, scheduleSessionsRefresh()
	}
	return v, nil
}

func (v *sessionsView) View() string {
	if v.err != nil {
		return ui.Styles.Muted.Render("tmux unavailable: " + v.err.Error())
	}
	if len(v.entries) == 0 {
		return ui.Styles.Empty.Render("No tmux sessions")
	}
	var b strings.Builder
	for _, e := range v.entries {
		marker := "  "
		if e.Attached {
			marker = ui.Styles.Status.Render("* ")
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, e.Name,
			ui.Styles.Muted.Render(fmt.Sprintf("%d windows", e.Windows)))
	}
	return strings.TrimRight(b.String(), "\n")
}
