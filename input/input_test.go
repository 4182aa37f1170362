package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type fakeButton struct {
	x, y int
}

func (b fakeButton) ButtonHit(x, y int) bool {
	return x == b.x && y == b.y
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		won  bool
		want IntentType
	}{
		{"space fires", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), false, IntentFire},
		{"space ignored after win", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), true, IntentNone},
		{"enter fires", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false, IntentFire},
		{"enter restarts after win", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), true, IntentRestart},
		{"r restarts", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), false, IntentRestart},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false, IntentQuit},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, IntentQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false, IntentQuit},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false, IntentNone},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false, IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewInputHandler(nil, nil)
			if got := h.HandleEvent(tt.ev, tt.won).Type; got != tt.want {
				t.Errorf("intent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMousePressFiresOnce(t *testing.T) {
	h := NewInputHandler(nil, nil)

	press := tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone)
	if got := h.HandleEvent(press, false).Type; got != IntentFire {
		t.Fatalf("first press = %v, want fire", got)
	}

	// Drag with the button held reports repeated Button1 events
	held := tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone)
	if got := h.HandleEvent(held, false).Type; got != IntentNone {
		t.Errorf("held button = %v, want none", got)
	}

	release := tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone)
	if got := h.HandleEvent(release, false).Type; got != IntentNone {
		t.Errorf("release = %v, want none", got)
	}

	if got := h.HandleEvent(press, false).Type; got != IntentFire {
		t.Errorf("second press = %v, want fire", got)
	}
}

func TestMouseOnCelebration(t *testing.T) {
	h := NewInputHandler(nil, fakeButton{x: 40, y: 15})
	release := tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)

	miss := tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)
	if got := h.HandleEvent(miss, true).Type; got != IntentNone {
		t.Errorf("click off button = %v, want none", got)
	}
	h.HandleEvent(release, true)

	hit := tcell.NewEventMouse(40, 15, tcell.Button1, tcell.ModNone)
	if got := h.HandleEvent(hit, true).Type; got != IntentRestart {
		t.Errorf("click on button = %v, want restart", got)
	}
}

func TestResize(t *testing.T) {
	h := NewInputHandler(nil, nil)
	got := h.HandleEvent(tcell.NewEventResize(120, 40), false)
	if got.Type != IntentResize || got.Cols != 120 || got.Rows != 40 {
		t.Errorf("resize action = %+v", got)
	}
}

func TestIntentString(t *testing.T) {
	if IntentFire.String() != "fire" || IntentType(99).String() != "none" {
		t.Error("unexpected intent names")
	}
}
