package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

var specialKeyNames = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl_c":    tcell.KeyCtrlC,
	"ctrl_q":    tcell.KeyCtrlQ,
	"ctrl_r":    tcell.KeyCtrlR,
}

// LoadKeyTable applies key → action overrides onto the default bindings.
// Returns error on unknown action or key names.
func LoadKeyTable(bindings map[string]string) (*KeyTable, error) {
	kt := DefaultKeyTable()
	if len(bindings) == 0 {
		return kt, nil
	}

	over := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}
	for keyName, action := range bindings {
		entry, ok := actionRegistry[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("keys.%s: unknown action %q (want one of %s)",
				keyName, action, strings.Join(ActionNames(), ", "))
		}

		lower := strings.ToLower(keyName)
		if k, ok := specialKeyNames[lower]; ok {
			over.SpecialKeys[k] = entry
			continue
		}
		if r, ok := runeAliases[lower]; ok {
			over.Runes[r] = entry
			continue
		}
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			over.Runes[r] = entry
			continue
		}
		return nil, fmt.Errorf("keys.%s: unknown key name", keyName)
	}

	kt.merge(over)
	return kt, nil
}
