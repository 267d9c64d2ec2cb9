package term

import (
	"bytes"
	"os/exec"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dockspace/internal/ui"
)

// OutputMsg carries bytes read from the PTY for display.
type OutputMsg struct {
	Data []byte
}

// TermView is a PTY-backed view that spawns a shell and passes through
// keystrokes. Unlike an overlay, it lives inside a panel region: every
// key including Esc goes to the shell, and the host resizes it through
// SetSize.
type TermView struct {
	runner   Runner
	sess     Session
	content  *bytes.Buffer
	viewport viewport.Model
	workDir  string
	outputCh chan []byte
}

var _ ui.View = (*TermView)(nil)

const defaultCols = 80
const defaultRows = 20

// NewTermView creates a view that will spawn a shell PTY in workDir.
func NewTermView(runner Runner, workDir string) *TermView {
	return &TermView{
		runner:   runner,
		content:  &bytes.Buffer{},
		viewport: viewport.New(defaultCols, defaultRows),
		workDir:  workDir,
		outputCh: make(chan []byte, 64),
	}
}

// Init implements ui.View. Spawns the shell and starts the read loop.
func (v *TermView) Init() tea.Cmd {
	shell := "sh"
	if path, err := exec.LookPath("bash"); err == nil {
		shell = path
	}
	cmd := exec.Command(shell)
	cmd.Dir = v.workDir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}

	sess, err := v.runner.Spawn(cmd, v.viewport.Width, v.viewport.Height)
	if err != nil {
		v.content.WriteString("Failed to spawn shell: " + err.Error() + "\r\n")
		v.refreshViewport()
		return nil
	}
	v.sess = sess

	go func() {
		buf := make([]byte, 256)
		for {
			n, err := sess.Read(buf)
			if n > 0 {
				cp := make([]byte, n)
				copy(cp, buf[:n])
				select {
				case v.outputCh <- cp:
				default:
					// Channel full, drop (avoid blocking)
				}
			}
			if err != nil {
				close(v.outputCh)
				return
			}
		}
	}()

	return v.waitForOutput()
}

func (v *TermView) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		data, ok := <-v.outputCh
		if !ok {
			return nil
		}
		return OutputMsg{Data: data}
	}
}

// Update implements ui.View.
func (v *TermView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case OutputMsg:
		if v.sess != nil {
			v.content.Write(msg.Data)
			v.refreshViewport()
			v.viewport.GotoBottom()
		}
		return v, v.waitForOutput()
	case tea.KeyMsg:
		if v.sess != nil {
			b := keyToPTYBytes(msg)
			if len(b) > 0 {
				v.sess.Write(b)
			}
		}
		return v, v.waitForOutput()
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, tea.Batch(cmd, v.waitForOutput())
}

// SetSize resizes the viewport and the underlying PTY.
func (v *TermView) SetSize(cols, rows int) {
	if cols < 20 {
		cols = 20
	}
	if rows < 4 {
		rows = 4
	}
	v.viewport.Width = cols
	v.viewport.Height = rows
	if v.sess != nil {
		v.sess.Resize(cols, rows)
	}
	v.refreshViewport()
}

// View implements ui.View.
func (v *TermView) View() string {
	return v.viewport.View()
}

func (v *TermView) refreshViewport() {
	v.viewport.SetContent(v.content.String())
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}

// Close releases PTY resources, which also stops the read loop.
func (v *TermView) Close() error {
	if v.sess != nil {
		return v.sess.Close()
	}
	return nil
}
