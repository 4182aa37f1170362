package input

import "github.com/gdamore/tcell/v2"

// KeyEntry gives a key's intent during play and on the celebration screen
type KeyEntry struct {
	Playing     IntentType
	Celebrating IntentType
}

// For returns the intent for the current screen
func (e KeyEntry) For(won bool) IntentType {
	if won {
		return e.Celebrating
	}
	return e.Playing
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:  actionRegistry["confirm"],
			tcell.KeyEscape: actionRegistry["quit"],
			tcell.KeyCtrlC:  actionRegistry["quit"],
		},
		Runes: map[rune]KeyEntry{
			' ': actionRegistry["fire"],
			'r': actionRegistry["restart"],
			'R': actionRegistry["restart"],
			'q': actionRegistry["quit"],
			'Q': actionRegistry["quit"],
		},
	}
}

// Lookup finds the entry for a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}

// merge applies sparse overrides onto kt
func (kt *KeyTable) merge(over *KeyTable) {
	for k, e := range over.SpecialKeys {
		kt.SpecialKeys[k] = e
	}
	for r, e := range over.Runes {
		kt.Runes[r] = e
	}
}
