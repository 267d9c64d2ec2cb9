package ui

import tea "github.com/charmbracelet/bubbletea"

// ModalHost layers modal views over the dock area. While any modal is
// up the newest one owns the keyboard; the layout underneath keeps
// rendering but receives no input until the stack drains.
type ModalHost struct {
	views []View
}

// Present pushes v on top of any modals already showing.
func (h *ModalHost) Present(v View) {
	h.views = append(h.views, v)
}

// Dismiss removes the topmost modal. No-op when nothing is showing.
func (h *ModalHost) Dismiss() {
	if n := len(h.views); n > 0 {
		h.views = h.views[:n-1]
	}
}

// Blocking reports whether a modal currently owns input.
func (h *ModalHost) Blocking() bool {
	return len(h.views) > 0
}

// Active returns the modal that owns input, if any.
func (h *ModalHost) Active() (View, bool) {
	if len(h.views) == 0 {
		return nil, false
	}
	return h.views[len(h.views)-1], true
}

// Route delivers msg to the active modal, keeping its updated view.
// Returns the modal's command, or nil when nothing is showing.
func (h *ModalHost) Route(msg tea.Msg) tea.Cmd {
	if len(h.views) == 0 {
		return nil
	}
	top := len(h.views) - 1
	v, cmd := h.views[top].Update(msg)
	h.views[top] = v
	return cmd
}
