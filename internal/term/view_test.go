package term

import (
	"io"
	"os/exec"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeSession blocks reads until closed, then reports EOF like a real
// PTY whose process exited.
type fakeSession struct {
	once   sync.Once
	done   chan struct{}
	mu     sync.Mutex
	wrote  []byte
	cols   int
	rows   int
	closed bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{done: make(chan struct{})}
}

func (s *fakeSession) Read(p []byte) (int, error) {
	<-s.done
	return 0, io.EOF
}

func (s *fakeSession) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wrote = append(s.wrote, p...)
	return len(p), nil
}

func (s *fakeSession) Resize(cols, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols, s.rows = cols, rows
	return nil
}

func (s *fakeSession) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.done)
	})
	return nil
}

type fakeRunner struct {
	sess *fakeSession
}

func (r *fakeRunner) Spawn(cmd *exec.Cmd, cols, rows int) (Session, error) {
	return r.sess, nil
}

func TestKeyToPTYBytes(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "\r"},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, "\x7f"},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "\t"},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, " "},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, "\x1b[A"},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, "\x03"},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, "\x1b"},
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls")}, "ls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(keyToPTYBytes(tt.msg)); got != tt.want {
				t.Errorf("keyToPTYBytes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetSizeClampsMinimums(t *testing.T) {
	v := NewTermView(NewRunner(), "")
	v.SetSize(1, 1)
	if v.viewport.Width != 20 || v.viewport.Height != 4 {
		t.Errorf("viewport = %dx%d, want 20x4", v.viewport.Width, v.viewport.Height)
	}
	v.SetSize(120, 30)
	if v.viewport.Width != 120 || v.viewport.Height != 30 {
		t.Errorf("viewport = %dx%d, want 120x30", v.viewport.Width, v.viewport.Height)
	}
}

func TestSetSizePropagatesToSession(t *testing.T) {
	sess := newFakeSession()
	v := NewTermView(&fakeRunner{sess: sess}, "")
	if cmd := v.Init(); cmd == nil {
		t.Fatal("Init should return the output wait command")
	}
	defer v.Close()

	v.SetSize(100, 40)
	sess.mu.Lock()
	cols, rows := sess.cols, sess.rows
	sess.mu.Unlock()
	if cols != 100 || rows != 40 {
		t.Errorf("session size = %dx%d, want 100x40", cols, rows)
	}
}

func TestKeystrokesReachSession(t *testing.T) {
	sess := newFakeSession()
	v := NewTermView(&fakeRunner{sess: sess}, "")
	v.Init()
	defer v.Close()

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls")})
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	sess.mu.Lock()
	got := string(sess.wrote)
	sess.mu.Unlock()
	if got != "ls\r" {
		t.Errorf("session received %q, want %q", got, "ls\r")
	}
}

func TestCloseEndsReadLoop(t *testing.T) {
	sess := newFakeSession()
	v := NewTermView(&fakeRunner{sess: sess}, "")
	v.Init()

	if err := v.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	sess.mu.Lock()
	closed := sess.closed
	sess.mu.Unlock()
	if !closed {
		t.Error("Close should close the session")
	}
	// The reader hits EOF and closes the output channel; the pending
	// wait command drains to nil instead of blocking forever.
	if msg := v.waitForOutput()(); msg != nil {
		t.Errorf("wait after close = %v, want nil", msg)
	}
}
