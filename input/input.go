package input

import (
	"github.com/gdamore/tcell/v2"
)

// ButtonTester reports whether a cell is on the Play Again button
type ButtonTester interface {
	ButtonHit(x, y int) bool
}

// InputHandler translates terminal events into game intents.
// Mouse presses are edge-detected: a held button fires once.
type InputHandler struct {
	keys    *KeyTable
	buttons ButtonTester
	pressed bool
}

// NewInputHandler creates a new input handler; a nil table uses the defaults, buttons may be nil
func NewInputHandler(keys *KeyTable, buttons ButtonTester) *InputHandler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &InputHandler{keys: keys, buttons: buttons}
}

// HandleEvent decodes ev; won selects the celebration bindings
func (h *InputHandler) HandleEvent(ev tcell.Event, won bool) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if entry, ok := h.keys.Lookup(ev); ok {
			return Intent{Type: entry.For(won)}
		}
	case *tcell.EventMouse:
		return Intent{Type: h.handleMouseEvent(ev, won)}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return Intent{Type: IntentResize, Cols: cols, Rows: rows}
	}
	return Intent{}
}

func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse, won bool) IntentType {
	down := ev.Buttons()&tcell.Button1 != 0
	edge := down && !h.pressed
	h.pressed = down
	if !edge {
		return IntentNone
	}

	if won {
		x, y := ev.Position()
		if h.buttons != nil && h.buttons.ButtonHit(x, y) {
			return IntentRestart
		}
		return IntentNone
	}
	return IntentFire
}
