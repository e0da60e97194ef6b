package tui

import (
	"bytes"
	"strings"
	"testing"

	"mazearena/pkg/game/state"
)

func testSnapshot() state.Snapshot {
	wall := state.CellView{Wall: true}
	return state.Snapshot{
		Turn: 3,
		Rows: 3,
		Cols: 4,
		Cells: [][]state.CellView{
			{wall, wall, wall, wall},
			{wall, {Kind: state.ViewPlayer, Player: "S1"}, {Kind: state.ViewBomb, Timer: 2, OwnerID: 9}, wall},
			{wall, wall, wall, wall},
		},
		Messages: []string{"hello"},
	}
}

func TestRenderFrame_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriter(&buf)
	if err := r.Init(); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := r.RenderFrame(testSnapshot()); err != nil {
		t.Fatalf("RenderFrame error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"########\n", "##S1b2##\n", "Turn 3", "hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("plain writer produced escape codes")
	}
}

func TestRenderFrame_ViewerHidesForeignBombs(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriter(&buf)
	r.SetViewer(1)
	if err := r.RenderFrame(testSnapshot()); err != nil {
		t.Fatalf("RenderFrame error = %v", err)
	}
	if !strings.Contains(buf.String(), "##S1  ##\n") {
		t.Errorf("bomb owned by another player is visible:\n%s", buf.String())
	}
}
