package input

import (
	"sort"
)

// Intent is what a viewer key press asks the simulation runner to do
type Intent int

const (
	IntentNone Intent = iota
	IntentPause
	IntentStep
	IntentFaster
	IntentSlower
	IntentQuit
)

// bindings maps key codes to intents. Multiple codes may share an intent.
var bindings = map[string]Intent{
	"space":           IntentPause,
	"p":               IntentPause,
	"n":               IntentStep,
	"enter":           IntentStep,
	"arrow_right":     IntentStep,
	"=":               IntentFaster,
	"+":               IntentFaster,
	"numpad_add":      IntentFaster,
	"-":               IntentSlower,
	"numpad_subtract": IntentSlower,
	"q":               IntentQuit,
	"escape":          IntentQuit,
}

// MapToIntent returns the intent bound to a key code
func MapToIntent(code string) Intent {
	if intent, ok := bindings[code]; ok {
		return intent
	}
	return IntentNone
}

// Codes returns every bound key code in a stable order
func Codes() []string {
	codes := make([]string, 0, len(bindings))
	for code := range bindings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IntentName returns a human-friendly name for an intent.
func IntentName(i Intent) string {
	switch i {
	case IntentPause:
		return "Pause"
	case IntentStep:
		return "Step"
	case IntentFaster:
		return "Faster"
	case IntentSlower:
		return "Slower"
	case IntentQuit:
		return "Quit"
	default:
		return "None"
	}
}
