package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// ChangeRecordID is a UUID-based identifier for ChangeRecord
type ChangeRecordID string

// NewChangeRecordID generates a new UUID v4 ChangeRecordID
func NewChangeRecordID() ChangeRecordID {
	return ChangeRecordID(uuid.New().String())
}

// ChangeOp identifies which mutation produced a change record
type ChangeOp string

const (
	ChangeOpAdd            ChangeOp = "add"
	ChangeOpRemove         ChangeOp = "remove"
	ChangeOpToggle         ChangeOp = "toggle"
	ChangeOpMove           ChangeOp = "move"
	ChangeOpEdit           ChangeOp = "edit"
	ChangeOpDeleteItem     ChangeOp = "delete_item"
	ChangeOpDeleteCategory ChangeOp = "delete_category"
	ChangeOpMerge          ChangeOp = "merge"
	ChangeOpClear          ChangeOp = "clear"
)

// ChangeRecord is an audit entry written after each successful mutation.
// Records are appended in the background and pruned by the retention worker;
// they are informational and never read back into the checklist itself.
type ChangeRecord struct {
	ID        ChangeRecordID  `json:"id" firestore:"id"`
	SessionID types.SessionID `json:"-" firestore:"sessionID"`
	Op        ChangeOp        `json:"op" firestore:"op"`
	Detail    string          `json:"detail" firestore:"detail"`
	CreatedAt time.Time       `json:"createdAt" firestore:"createdAt"`
}
