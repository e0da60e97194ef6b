package ebiten

import (
	"image/color"
	"time"
)

// Color palette for the arena
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorWall          = color.RGBA{60, 60, 80, 255}    // Wall tiles
	colorFloor         = color.RGBA{35, 35, 55, 255}    // Open floor
	colorFloorVisited  = color.RGBA{45, 45, 68, 255}    // Floor a player has crossed
	colorPlayer        = color.RGBA{0, 200, 0, 255}     // Player tile
	colorShield        = color.RGBA{100, 150, 255, 255} // Shielded player tile
	colorBomb          = color.RGBA{255, 80, 80, 255}   // Timed bomb
	colorMine          = color.RGBA{200, 60, 120, 255}  // Contact mine
	colorHealth        = color.RGBA{100, 255, 150, 255} // Health pickup
	colorAmmo          = color.RGBA{255, 200, 100, 255} // Ammo pickup
	colorTileText      = color.RGBA{15, 15, 26, 255}    // Glyphs drawn on tiles
	colorText          = color.RGBA{200, 210, 245, 255} // HUD text
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Messages and help
	colorDenied        = color.RGBA{255, 100, 100, 255} // Paused banner
)

// Layout
const (
	defaultTileSize = 20
	minTileSize     = 8
	maxTileSize     = 48
	tileSizeStep    = 4
	frameBorder     = 10
	hudLineHeight   = 18
	hudFontSize     = 13
)

// Turn pacing
const (
	defaultDelay = 250 * time.Millisecond
	minDelay     = 15 * time.Millisecond
	maxDelay     = 4 * time.Second
)
