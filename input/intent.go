package input

// IntentType discriminates what the player asked for
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentFire
	IntentRestart
	IntentQuit
	IntentResize // Terminal resize event
)

func (i IntentType) String() string {
	switch i {
	case IntentFire:
		return "fire"
	case IntentRestart:
		return "restart"
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}

// Intent is a decoded event; Cols and Rows are set for IntentResize
type Intent struct {
	Type       IntentType
	Cols, Rows int
}
