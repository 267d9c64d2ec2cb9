package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC z", tea.Quit)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC z") == nil {
		t.Error("expected SPC z to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_TwoLevelSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC s l", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg(" "))
	if !consumed || !h.LeaderWaiting {
		t.Fatal("space should enter leader mode")
	}

	// s opens the split submenu; the sequence is not complete yet.
	consumed, cmd := h.Handle(keyMsg("s"))
	if !consumed || cmd != nil {
		t.Errorf("s: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("partial sequence should stay in leader mode")
	}

	_, cmd = h.Handle(keyMsg("l"))
	if cmd == nil {
		t.Fatal("SPC s l should resolve to a command")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
	if h.LeaderWaiting {
		t.Error("completed sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC z", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_UnboundKeyPassesThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC z", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound key outside leader mode should pass through to views")
	}
}

func TestModalHostRoutesToNewestModal(t *testing.T) {
	type fromFirst struct{}
	type fromSecond struct{}
	var h ModalHost
	if h.Route(keyMsg("y")) != nil || h.Blocking() {
		t.Fatal("an empty host should neither block nor route")
	}

	h.Present(NewConfirmModal("First", "?", func() tea.Msg { return fromFirst{} }))
	h.Present(NewConfirmModal("Second", "?", func() tea.Msg { return fromSecond{} }))
	if !h.Blocking() {
		t.Fatal("host with modals should block")
	}

	cmd := h.Route(keyMsg("y"))
	if cmd == nil {
		t.Fatal("y should reach the newest modal")
	}
	if _, ok := cmd().(fromSecond); !ok {
		t.Error("input should go to the newest modal, not an earlier one")
	}

	h.Dismiss()
	cmd = h.Route(keyMsg("y"))
	if _, ok := cmd().(fromFirst); !ok {
		t.Error("after dismiss, input should fall to the remaining modal")
	}

	h.Dismiss()
	h.Dismiss() // extra dismiss on an empty host is a no-op
	if h.Blocking() {
		t.Error("drained host should not block")
	}
}

func TestConfirmModalMessages(t *testing.T) {
	type accepted struct{}
	type declined struct{}
	m := NewConfirmModal("Title", "Proceed?", func() tea.Msg { return accepted{} }).
		WithCancel(func() tea.Msg { return declined{} })

	_, cmd := m.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("y should produce the confirm command")
	}
	if _, ok := cmd().(accepted); !ok {
		t.Error("confirm should emit the accept message")
	}

	_, cmd = m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should produce the cancel command")
	}
	if _, ok := cmd().(declined); !ok {
		t.Error("cancel should emit the decline message")
	}
}

func TestConfirmModalDefaultCancelDismisses(t *testing.T) {
	m := NewConfirmModal("Title", "Proceed?", nil)
	_, cmd := m.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("n should produce a command")
	}
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Error("default cancel should dismiss the modal")
	}
}
