package types

import "fmt"

// Intent represents the classified intent of a free-text command
type Intent string

const (
	IntentAdd     Intent = "ADD"
	IntentRemove  Intent = "REMOVE"
	IntentClear   Intent = "CLEAR"
	IntentUnknown Intent = "UNKNOWN"
)

// AllIntents returns all valid intents
func AllIntents() []Intent {
	return []Intent{
		IntentAdd,
		IntentRemove,
		IntentClear,
		IntentUnknown,
	}
}

// IsValid checks if the intent is valid
func (i Intent) IsValid() bool {
	switch i {
	case IntentAdd,
		IntentRemove,
		IntentClear,
		IntentUnknown:
		return true
	default:
		return false
	}
}

// Normalize returns the intent, treating empty or unrecognized values as IntentUnknown.
func (i Intent) Normalize() Intent {
	if !i.IsValid() {
		return IntentUnknown
	}
	return i
}

// String returns the string representation of the intent
func (i Intent) String() string {
	return string(i)
}

// ParseIntent parses a string into an Intent
func ParseIntent(s string) (Intent, error) {
	intent := Intent(s)
	if !intent.IsValid() {
		return "", fmt.Errorf("invalid intent: %s", s)
	}
	return intent, nil
}
