package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

func loadMonoFont() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
}

// getTileFontSize returns the font size for glyphs, scaled to the tile size
func (e *EbitenRenderer) getTileFontSize() float64 {
	return float64(e.tileSize) * 0.55
}

// getTileFace returns a cached monospace face for tile glyphs
func (e *EbitenRenderer) getTileFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedTileFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedTileFace = &text.GoTextFace{Source: e.monoFontSource, Size: size}
	}
	return e.cachedTileFace
}

// getHUDFace returns the face for roster and message lines
func (e *EbitenRenderer) getHUDFace() *text.GoTextFace {
	if e.cachedHUDFace == nil {
		e.cachedHUDFace = &text.GoTextFace{Source: e.monoFontSource, Size: hudFontSize}
	}
	return e.cachedHUDFace
}
