package model

import (
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// Command is the structured result of classifying one line of free text:
// an intent plus the item phrases extracted from it. It is produced by the
// intent classifier and consumed exactly once by the router.
type Command struct {
	Intent types.Intent `json:"intent"`
	Items  []string     `json:"items"`
}

// UnknownCommand is the sentinel returned by the classifier on any internal
// failure; the core never receives a raised error from classification.
func UnknownCommand() Command {
	return Command{Intent: types.IntentUnknown}
}

// HasItems reports whether any non-blank item phrase was extracted
func (c Command) HasItems() bool {
	for _, item := range c.Items {
		if NormalizeKey(item) != "" {
			return true
		}
	}
	return false
}
