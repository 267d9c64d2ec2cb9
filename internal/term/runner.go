// Package term embeds a PTY-backed shell as a panel content view.
package term

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Runner spawns the shell process behind a terminal panel.
// Implementations can be swapped (creack/pty in the app, a fake in
// tests).
type Runner interface {
	Spawn(cmd *exec.Cmd, cols, rows int) (Session, error)
}

// Session is a live PTY sized to one panel region. Reads yield shell
// output, writes feed keystrokes, and Close ends the process.
type Session interface {
	io.ReadWriteCloser
	Resize(cols, rows int) error
}

// NewRunner returns the creack/pty backed Runner.
func NewRunner() Runner {
	return ptyRunner{}
}

type ptyRunner struct{}

func (ptyRunner) Spawn(cmd *exec.Cmd, cols, rows int) (Session, error) {
	f, err := pty.StartWithSize(cmd, winsize(cols, rows))
	if err != nil {
		return nil, err
	}
	return ptySession{f}, nil
}

type ptySession struct {
	*os.File
}

func (s ptySession) Resize(cols, rows int) error {
	return pty.Setsize(s.File, winsize(cols, rows))
}

func winsize(cols, rows int) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}
}
