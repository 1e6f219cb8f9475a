package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// ChangeLogRepository defines the interface for mutation audit records
type ChangeLogRepository interface {
	// Append stores a new change record
	Append(ctx context.Context, rec *model.ChangeRecord) error

	// List retrieves up to limit records for a session, newest first
	List(ctx context.Context, sessionID types.SessionID, limit int) ([]*model.ChangeRecord, error)

	// Prune deletes all records created before the given time across all
	// sessions and returns the number of deleted records
	Prune(ctx context.Context, before time.Time) (int, error)
}
