package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazearena/pkg/game/messages"
	"mazearena/pkg/game/renderer"
	"mazearena/pkg/game/state"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// tileColor returns the fill for a cell
func tileColor(v state.CellView) color.Color {
	if v.Wall {
		return colorWall
	}
	switch v.Kind {
	case state.ViewPlayer:
		if v.Shield {
			return colorShield
		}
		return colorPlayer
	case state.ViewBomb:
		return colorBomb
	case state.ViewMine:
		return colorMine
	case state.ViewHealth:
		return colorHealth
	case state.ViewAmmo:
		return colorAmmo
	}
	if v.Visited {
		return colorFloorVisited
	}
	return colorFloor
}

// Draw renders the board and the HUD (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := e.current()
	if !snap.valid || e.monoFontSource == nil {
		return
	}
	s := snap.snap

	tile := float32(e.tileSize)
	boardW := float32(s.Cols) * tile
	boardH := float32(s.Rows) * tile
	vector.DrawFilledRect(screen, frameBorder, frameBorder, boardW, boardH, colorMapBackground, false)

	face := e.getTileFace()
	for r, row := range s.Cells {
		for c, v := range row {
			x := float32(frameBorder) + float32(c)*tile
			y := float32(frameBorder) + float32(r)*tile
			vector.DrawFilledRect(screen, x+1, y+1, tile-2, tile-2, tileColor(v), false)
			if v.Kind == "" {
				continue
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(x)+float64(tile)*0.1, float64(y)+float64(tile)*0.2)
			op.ColorScale.ScaleWithColor(colorTileText)
			text.Draw(screen, renderer.Glyph(v), face, op)
		}
	}

	e.drawHUD(screen, s, float64(frameBorder*2)+float64(boardH))
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, s state.Snapshot, top float64) {
	face := e.getHUDFace()
	y := top
	line := func(str string, clr color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(frameBorder, y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, str, face, op)
		y += hudLineHeight
	}

	header := messages.Get("VIEWER_HELP")
	if e.paused {
		line(messages.Get("PAUSED")+"  "+header, colorDenied)
	} else {
		line(header, colorSubtle)
	}
	for i, l := range renderer.HUD(s) {
		clr := colorText
		if i > len(s.Players)+1 {
			clr = colorSubtle
		}
		line(l, clr)
	}
}
