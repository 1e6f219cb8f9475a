package types

// Signal represents a user-facing outcome of routing a command that did not
// (or did not yet) mutate the checklist.
type Signal string

const (
	// SignalNone means the command was applied without anything to surface
	SignalNone Signal = ""

	// SignalUnrecognized means the classifier could not understand the command
	SignalUnrecognized Signal = "UNRECOGNIZED"

	// SignalNoItems means the intent was recognized but no item phrases were extracted
	SignalNoItems Signal = "NO_ITEMS"

	// SignalConfirmRemove means a removal is pending user confirmation
	SignalConfirmRemove Signal = "CONFIRM_REMOVE"

	// SignalConfirmClear means clearing the whole checklist is pending user confirmation
	SignalConfirmClear Signal = "CONFIRM_CLEAR"
)

// IsValid checks if the signal is valid
func (s Signal) IsValid() bool {
	switch s {
	case SignalNone,
		SignalUnrecognized,
		SignalNoItems,
		SignalConfirmRemove,
		SignalConfirmClear:
		return true
	default:
		return false
	}
}

// String returns the string representation of the signal
func (s Signal) String() string {
	return string(s)
}
