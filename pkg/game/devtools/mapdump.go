// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazearena/pkg/game/renderer"
	"mazearena/pkg/game/state"
)

// DumpMap writes a debug dump of s to w: metadata, legend, the full arena and
// every occupant with its coordinates.
func DumpMap(w io.Writer, s state.Snapshot, seed int64) error {
	ew := &errWriter{w: w}

	// --- Metadata ---
	ew.println("=== MAP DUMP DEBUG (arena layout, occupants) ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("seed: %d\n", seed)
	ew.printf("turn: %d\n", s.Turn)
	ew.printf("status: %s\n", s.Status)
	ew.printf("grid_rows: %d\n", s.Rows)
	ew.printf("grid_cols: %d\n", s.Cols)
	ew.printf("coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	ew.printf("players: %d\n", len(s.Players))
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend (cell glyphs) ---")
	ew.printf("%s = wall  %s = health  %s = ammo  %s<n> = bomb with timer n  %s = mine  two letters = player initials\n",
		renderer.IconWall, renderer.IconHealth, renderer.IconAmmo, renderer.IconBomb, renderer.IconMine)
	ew.println("")

	// --- Map ---
	ew.println("--- Map (fully revealed) ---")
	ew.printf("%s", renderer.FormatGrid(s.Cells, false))
	ew.println("")

	// --- Occupants ---
	ew.println("--- Occupants (row,col and state) ---")
	sections := []struct {
		title string
		kinds []string
	}{
		{"Players:", []string{state.ViewPlayer}},
		{"Bombs:", []string{state.ViewBomb, state.ViewMine}},
		{"Pickups:", []string{state.ViewHealth, state.ViewAmmo}},
	}
	for _, sec := range sections {
		ew.println(sec.title)
		for r, row := range s.Cells {
			for c, v := range row {
				if !contains(sec.kinds, v.Kind) {
					continue
				}
				ew.printf("  row: %d col: %d %s\n", r, c, describe(v))
			}
		}
		ew.println("")
	}

	// --- Roster ---
	ew.println("--- Roster ---")
	for _, p := range s.Players {
		ew.printf("  id: %d %s\n", p.ID, renderer.PlayerLine(p))
	}
	return ew.err
}

// DumpMapToFile writes the dump to path and returns its absolute path
func DumpMapToFile(path string, s state.Snapshot, seed int64) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, s, seed); err != nil {
		return "", err
	}
	return absPath, nil
}

func describe(v state.CellView) string {
	switch v.Kind {
	case state.ViewPlayer:
		return fmt.Sprintf("player: %q shield: %v", v.Player, v.Shield)
	case state.ViewBomb:
		return fmt.Sprintf("bomb owner: %d timer: %d", v.OwnerID, v.Timer)
	case state.ViewMine:
		return fmt.Sprintf("mine owner: %d", v.OwnerID)
	default:
		return fmt.Sprintf("%s amount: %d", v.Kind, v.Amount)
	}
}

func contains(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// errWriter keeps the first write error so the dump can be written without
// checking every line
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	e.printf("%s\n", s)
}
