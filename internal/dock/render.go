package dock

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dockspace/internal/ui"
)

// Render draws the area into a width x height cell box. focused marks
// the panel whose region gets the highlighted border. A zoomed panel
// takes the whole box by itself.
func (a *DockArea) Render(width, height int, focused PanelID) string {
	if width < 4 || height < 4 {
		return ""
	}
	if a.zoomed != nil {
		return renderRegion(a.zoomed, nil, width, height, true)
	}
	return a.renderItem(a.root, width, height, focused)
}

func (a *DockArea) renderItem(it Item, w, h int, focused PanelID) string {
	switch v := it.(type) {
	case *TabPanel:
		hasFocus := false
		if p := v.ActivePanel(); p != nil {
			hasFocus = p.PanelID() == focused
		}
		return renderRegion(v.ActivePanel(), v, w, h, hasFocus)
	case *StackPanel:
		return a.renderStack(v, w, h, focused)
	}
	return ""
}

func (a *DockArea) renderStack(s *StackPanel, w, h int, focused PanelID) string {
	if s.Len() == 0 {
		return renderRegion(nil, nil, w, h, false)
	}
	parts := make([]string, 0, s.Len())
	if s.Axis() == Horizontal {
		sizes := s.Group().Layout(w)
		for i := 0; i < s.Len(); i++ {
			parts = append(parts, a.renderItem(s.ChildAt(i), sizes[i], h, focused))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	sizes := s.Group().Layout(h)
	for i := 0; i < s.Len(); i++ {
		parts = append(parts, a.renderItem(s.ChildAt(i), w, sizes[i], focused))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderRegion draws one bordered region: a tab bar when tabs has more
// than one panel, then the active panel's view clipped to fit.
func renderRegion(active Panel, tabs *TabPanel, w, h int, hasFocus bool) string {
	border := ui.Styles.BoxBlur
	if hasFocus {
		border = ui.Styles.BoxFocus
	}
	innerW, innerH := w-2, h-2

	var header string
	switch {
	case tabs != nil && tabs.Len() > 1:
		header = tabBar(tabs, innerW)
	case active != nil:
		header = lipgloss.NewStyle().MaxWidth(innerW).Render(
			ui.Styles.Title.Render(" " + active.Title() + " "))
	}
	if header != "" {
		innerH--
	}

	var content string
	if active != nil {
		content = active.View().View()
	} else {
		content = ui.Styles.Empty.Render("No panels")
	}
	body := lipgloss.NewStyle().
		Width(innerW).Height(innerH).
		MaxWidth(innerW).MaxHeight(innerH).
		Render(content)

	inner := body
	if header != "" {
		inner = header + "\n" + body
	}
	return border.Width(innerW).Height(h - 2).Render(inner)
}

func tabBar(tabs *TabPanel, width int) string {
	var b strings.Builder
	for i, p := range tabs.Panels() {
		label := p.Title()
		if i == tabs.ActiveIndex() {
			b.WriteString(ui.Styles.TabActive.Render(label))
		} else {
			b.WriteString(ui.Styles.TabInactive.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}
