package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/steering"
)

// KeyEntry describes what a key produces
type KeyEntry struct {
	Type     event.InputType
	Behavior steering.Behavior // InputSelect only
}

// KeyTable maps keys to input events
type KeyTable struct {
	// Special keys (Ctrl+*, Escape)
	SpecialKeys map[tcell.Key]KeyEntry
	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: 1..7 select behaviors in declaration order
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Type: event.InputQuit},
			tcell.KeyCtrlQ:  {Type: event.InputQuit},
			tcell.KeyEscape: {Type: event.InputQuit},
		},
		Runes: map[rune]KeyEntry{
			'q': {Type: event.InputQuit},
			'd': {Type: event.InputToggleDebug},
			'p': {Type: event.InputPause},
			' ': {Type: event.InputPause},
		},
	}
	for i, b := range steering.All() {
		kt.Runes[rune('1'+i)] = KeyEntry{Type: event.InputSelect, Behavior: b}
	}
	return kt
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := kt.Runes[ev.Rune()]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
