package input

// actionRegistry maps canonical action names to key entries.
// Used by the keymap loader to resolve config action strings to bindings.
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"fire":    {Playing: IntentFire},
	"confirm": {Playing: IntentFire, Celebrating: IntentRestart},
	"restart": {Playing: IntentRestart, Celebrating: IntentRestart},
	"quit":    {Playing: IntentQuit, Celebrating: IntentQuit},
}

// ActionNames lists the bindable actions
func ActionNames() []string {
	return []string{"none", "fire", "confirm", "restart", "quit"}
}
