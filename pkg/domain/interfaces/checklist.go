package interfaces

import (
	"context"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// ChecklistRepository defines the interface for checklist persistence.
// The checklist is read and written atomically as a whole.
type ChecklistRepository interface {
	// Get retrieves the checklist for a session. When nothing is stored, or
	// when the stored document cannot be decoded, it returns an empty
	// checklist and no error: malformed data degrades, it never crashes the
	// core.
	Get(ctx context.Context, sessionID types.SessionID) (model.Checklist, error)

	// Put stores the checklist for a session, replacing the previous value.
	// A failed Put must leave the previously stored value intact so the
	// caller can roll back its optimistic in-memory update.
	Put(ctx context.Context, sessionID types.SessionID, cl model.Checklist) error

	// Delete removes the stored checklist for a session
	Delete(ctx context.Context, sessionID types.SessionID) error
}
