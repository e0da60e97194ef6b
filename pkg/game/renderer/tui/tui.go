package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"mazearena/pkg/engine/terminal"
	"mazearena/pkg/game/messages"
	"mazearena/pkg/game/renderer"
	"mazearena/pkg/game/state"
)

// hudMargin is the number of lines printed around the HUD
const hudMargin = 4

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	file *os.File

	colored bool
	clear   bool
	viewer  int
}

// New creates a renderer writing to f. Colours and screen clearing are
// used only when f is a terminal.
func New(f *os.File) *TUIRenderer {
	return &TUIRenderer{out: f, file: f}
}

// NewWriter creates a plain renderer writing to w
func NewWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// SetViewer restricts the board to what player id can see. Zero shows
// everything.
func (t *TUIRenderer) SetViewer(id int) {
	t.viewer = id
}

// Init detects the terminal
func (t *TUIRenderer) Init() error {
	if t.file != nil && terminal.IsTerminal(t.file) {
		t.colored = true
		t.clear = true
	}
	return nil
}

// Close leaves the cursor on a fresh line
func (t *TUIRenderer) Close() error {
	_, err := fmt.Fprintln(t.out)
	return err
}

func (t *TUIRenderer) size() (width, height int, ok bool) {
	if t.file == nil || !t.clear {
		return 0, 0, false
	}
	width, height = terminal.SizeOf(t.file)
	return width, height, true
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(s state.Snapshot) error {
	var sb strings.Builder
	if t.clear {
		sb.WriteString(terminal.ClearScreen)
	}

	cells := s.Cells
	if t.viewer != 0 {
		cells = state.Redact(cells, t.viewer)
	}

	hud := renderer.HUD(s)
	width, height, sized := t.size()
	if !sized || terminal.Fits(width, height, s.Rows, s.Cols, renderer.CellWidth, len(hud)+hudMargin) {
		sb.WriteString(renderer.FormatGrid(cells, t.colored))
	} else {
		sb.WriteString(t.subtle(messages.Get("SCREEN_TOO_SMALL", s.Rows, s.Cols)))
		sb.WriteByte('\n')
	}

	if !sized {
		width = s.Cols * renderer.CellWidth
	}
	t.printHUD(&sb, hud, width)

	_, err := io.WriteString(t.out, sb.String())
	return err
}

func (t *TUIRenderer) printHUD(sb *strings.Builder, hud []string, width int) {
	sb.WriteString(t.subtle(strings.Repeat("─", max(width, 1))))
	sb.WriteByte('\n')
	for _, line := range hud {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

func (t *TUIRenderer) subtle(s string) string {
	if !t.colored {
		return s
	}
	return renderer.ColorSubtle.Sprint(s)
}
