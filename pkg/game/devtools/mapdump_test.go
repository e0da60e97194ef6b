package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/state"
)

func testSnapshot() state.Snapshot {
	wall := state.CellView{Wall: true}
	return state.Snapshot{
		Rows:   3,
		Cols:   5,
		Status: "running",
		Cells: [][]state.CellView{
			{wall, wall, wall, wall, wall},
			{wall, {Kind: state.ViewPlayer, Player: "S1"}, {Kind: state.ViewMine, OwnerID: 1}, {Kind: state.ViewHealth, Amount: 20}, wall},
			{wall, wall, wall, wall, wall},
		},
		Players: []entities.PlayerState{{ID: 1, Name: "S1", Energy: 100, Alive: true, Strategy: "aggressive"}},
	}
}

func TestDumpMap_Sections(t *testing.T) {
	var buf bytes.Buffer
	if err := DumpMap(&buf, testSnapshot(), 42); err != nil {
		t.Fatalf("DumpMap error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"seed: 42",
		"grid_rows: 3",
		"##S1mih+##\n",
		"row: 1 col: 1 player: \"S1\"",
		"row: 1 col: 2 mine owner: 1",
		"row: 1 col: 3 health amount: 20",
		"id: 1 S1  energy 100",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpMapToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	abs, err := DumpMapToFile(path, testSnapshot(), 1)
	if err != nil {
		t.Fatalf("DumpMapToFile error = %v", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.Contains(string(data), "--- Map (fully revealed) ---") {
		t.Errorf("dump file incomplete:\n%s", data)
	}
}
