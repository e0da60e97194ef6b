// Package messages holds the player-facing text catalogue.
package messages

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en.po
var english []byte

var (
	catalogue *gotext.Po
	loadOnce  sync.Once
)

func load() {
	catalogue = gotext.NewPo()
	catalogue.Parse(english)
}

// Get returns the translation for key formatted with args. Unknown keys
// come back unchanged, and text fetched without args is not formatted.
func Get(key string, args ...any) string {
	loadOnce.Do(load)
	text := catalogue.Get(key)
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}
