// Package renderer turns match snapshots into text: two-character cell
// glyphs, a coloured board and the roster HUD.
package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"

	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/messages"
	"mazearena/pkg/game/state"
)

// CellWidth is the number of characters each glyph occupies
const CellWidth = 2

// Glyphs for cell contents. Bombs show their timer, players their initials.
const (
	IconWall    = "##"
	IconEmpty   = "  "
	IconVisited = " ."
	IconHealth  = "h+"
	IconAmmo    = "a+"
	IconMine    = "mi"
	IconBomb    = "b"
)

var (
	ColorWall    = color.Style{color.FgGray}
	ColorVisited = color.Style{color.FgGray, color.OpBold}
	ColorPickup  = color.Style{color.FgGreen, color.OpBold}
	ColorHazard  = color.Style{color.FgRed, color.OpBold}
	ColorPlayer  = color.Style{color.FgCyan, color.OpBold}
	ColorShield  = color.Style{color.FgBlue, color.BgWhite, color.OpBold}
	ColorSubtle  = color.Style{color.FgGray, color.OpBold}
	ColorDenied  = color.Style{color.FgRed}
)

// Initials returns the first two characters of a name, padded to CellWidth
func Initials(name string) string {
	out := make([]rune, 0, CellWidth)
	for _, r := range name {
		if len(out) == CellWidth {
			break
		}
		out = append(out, r)
	}
	for len(out) < CellWidth {
		out = append(out, ' ')
	}
	return string(out)
}

// Glyph returns the two-character representation of a cell
func Glyph(v state.CellView) string {
	if v.Wall {
		return IconWall
	}
	switch v.Kind {
	case state.ViewPlayer:
		return Initials(v.Player)
	case state.ViewBomb:
		if v.Timer > 9 || v.Timer < 0 {
			return IconBomb + "*"
		}
		return fmt.Sprintf("%s%d", IconBomb, v.Timer)
	case state.ViewMine:
		return IconMine
	case state.ViewHealth:
		return IconHealth
	case state.ViewAmmo:
		return IconAmmo
	}
	if v.Visited {
		return IconVisited
	}
	return IconEmpty
}

// Style returns the colour a cell is drawn in
func Style(v state.CellView) color.Style {
	if v.Wall {
		return ColorWall
	}
	switch v.Kind {
	case state.ViewPlayer:
		if v.Shield {
			return ColorShield
		}
		return ColorPlayer
	case state.ViewBomb, state.ViewMine:
		return ColorHazard
	case state.ViewHealth, state.ViewAmmo:
		return ColorPickup
	}
	return ColorVisited
}

// RenderCell returns the glyph for v, coloured when colored is set
func RenderCell(v state.CellView, colored bool) string {
	g := Glyph(v)
	if !colored {
		return g
	}
	return Style(v).Sprint(g)
}

// FormatGrid renders a grid of cell views, one line per row
func FormatGrid(cells [][]state.CellView, colored bool) string {
	var sb strings.Builder
	for _, row := range cells {
		for _, v := range row {
			sb.WriteString(RenderCell(v, colored))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WeaponSummary lists a player's weapons as "1:pistol(5) 2:Grenade(4)"
func WeaponSummary(ws []entities.WeaponState) string {
	if len(ws) == 0 {
		return "unarmed"
	}
	parts := make([]string, 0, len(ws))
	for _, w := range ws {
		parts = append(parts, fmt.Sprintf("%d:%s(%d)", w.Index+1, w.Name, w.Munitions))
	}
	return strings.Join(parts, " ")
}

// PlayerLine renders one roster entry
func PlayerLine(p entities.PlayerState) string {
	if !p.Alive {
		return messages.Get("HUD_DEAD", p.Name)
	}
	shield := ""
	if p.Shield {
		shield = messages.Get("HUD_SHIELD")
	}
	return messages.Get("HUD_PLAYER", p.Name, p.Energy, shield, p.Strategy) + "  " + WeaponSummary(p.Weapons)
}

// HUD renders the turn header, the roster and the recent messages
func HUD(s state.Snapshot) []string {
	lines := []string{messages.Get("HUD_TURN", s.Turn)}
	if s.Current != "" {
		lines = append(lines, messages.Get("HUD_CURRENT", s.Current, s.Action))
	}
	for _, p := range s.Players {
		lines = append(lines, PlayerLine(p))
	}
	lines = append(lines, "")
	lines = append(lines, s.Messages...)
	return lines
}

// Width returns the visible width of a line, ignoring colour codes
func Width(s string) int {
	return utf8.RuneCountInString(color.ClearCode(s))
}
