package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ItemID represents a unique identifier for a checklist item.
// It is immutable for the lifetime of the item and is the sole key used by
// toggle, edit, delete and move operations.
type ItemID string

// NewItemID generates a new random ItemID
func NewItemID() ItemID {
	return ItemID(uuid.New().String())
}

// Validate checks if the ItemID is valid
func (i ItemID) Validate() error {
	if i == "" {
		return goerr.New("item ID cannot be empty")
	}
	return nil
}

// String returns the string representation of ItemID
func (i ItemID) String() string {
	return string(i)
}

// SessionID represents a unique identifier for a checklist session.
// Each session owns exactly one checklist.
type SessionID string

// NewSessionID generates a new random SessionID
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// Validate checks if the SessionID is valid
func (s SessionID) Validate() error {
	if s == "" {
		return goerr.New("session ID cannot be empty")
	}
	return nil
}

// String returns the string representation of SessionID
func (s SessionID) String() string {
	return string(s)
}
