package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/ticklist/pkg/domain/interfaces"
	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
	"github.com/secmon-lab/ticklist/pkg/utils/async"
	"github.com/secmon-lab/ticklist/pkg/utils/logging"
)

// ChecklistUseCase applies structural mutations to a session's checklist with
// optimistic persistence: every mutation computes the next value from the last
// persisted snapshot, attempts to save it, and on failure reports the snapshot
// back as the still-current value (compensating action, see commit).
type ChecklistUseCase struct {
	repo       interfaces.Repository
	generator  interfaces.Generator
	classifier interfaces.Classifier

	// mutations for one session apply in dispatch order
	mu    sync.Mutex
	locks map[types.SessionID]*sync.Mutex
}

// NewChecklistUseCase creates a new ChecklistUseCase. generator and classifier
// may be nil; the corresponding operations then fail with a configuration error.
func NewChecklistUseCase(repo interfaces.Repository, generator interfaces.Generator, classifier interfaces.Classifier) *ChecklistUseCase {
	return &ChecklistUseCase{
		repo:       repo,
		generator:  generator,
		classifier: classifier,
		locks:      make(map[types.SessionID]*sync.Mutex),
	}
}

func (uc *ChecklistUseCase) sessionLock(sessionID types.SessionID) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lock, ok := uc.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		uc.locks[sessionID] = lock
	}
	return lock
}

// Get returns the current checklist for the session
func (uc *ChecklistUseCase) Get(ctx context.Context, sessionID types.SessionID) (model.Checklist, error) {
	cl, err := uc.repo.Checklist().Get(ctx, sessionID)
	if err != nil {
		return model.Checklist{}, goerr.Wrap(err, "failed to load checklist",
			goerr.V("sessionID", sessionID))
	}
	return cl, nil
}

// commit is the two-phase application of one mutation: load the last
// persisted snapshot, compute the next value, attempt to persist it. When
// persisting fails the snapshot is returned as the still-current value along
// with ErrNotSaved, so callers surface "changes not saved" and keep showing
// the previous state. There is no partial application.
func (uc *ChecklistUseCase) commit(ctx context.Context, sessionID types.SessionID, op model.ChangeOp, detail string, mutate func(model.Checklist) model.Checklist) (model.Checklist, error) {
	lock := uc.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	snapshot, err := uc.repo.Checklist().Get(ctx, sessionID)
	if err != nil {
		return model.Checklist{}, goerr.Wrap(err, "failed to load checklist",
			goerr.V("sessionID", sessionID))
	}

	next := mutate(snapshot)

	if err := uc.repo.Checklist().Put(ctx, sessionID, next); err != nil {
		logging.From(ctx).Error("failed to persist checklist, reverting to snapshot",
			"sessionID", sessionID.String(),
			"op", string(op),
			"error", err.Error())
		return snapshot, goerr.Wrap(ErrNotSaved, "failed to persist checklist",
			goerr.V("sessionID", sessionID),
			goerr.V("op", op),
			goerr.V("cause", err.Error()))
	}

	uc.recordChange(ctx, sessionID, op, detail)
	return next, nil
}

// recordChange appends an audit record in the background; a failed append
// never affects the mutation outcome.
func (uc *ChecklistUseCase) recordChange(ctx context.Context, sessionID types.SessionID, op model.ChangeOp, detail string) {
	rec := &model.ChangeRecord{
		ID:        model.NewChangeRecordID(),
		SessionID: sessionID,
		Op:        op,
		Detail:    detail,
	}
	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.repo.ChangeLog().Append(ctx, rec)
	})
}

// AddItems adds the given texts to the fallback bucket
func (uc *ChecklistUseCase) AddItems(ctx context.Context, sessionID types.SessionID, texts []string) (model.Checklist, error) {
	return uc.commit(ctx, sessionID, model.ChangeOpAdd,
		fmt.Sprintf("%d item(s)", len(texts)),
		func(cl model.Checklist) model.Checklist {
			return model.AddItems(cl, texts)
		})
}

// RemoveItems removes every item whose text matches one of the phrases
func (uc *ChecklistUseCase) RemoveItems(ctx context.Context, sessionID types.SessionID, phrases []string) (model.Checklist, error) {
	return uc.commit(ctx, sessionID, model.ChangeOpRemove,
		fmt.Sprintf("%d phrase(s)", len(phrases)),
		func(cl model.Checklist) model.Checklist {
			return model.RemoveItems(cl, phrases)
		})
}

// ToggleItem flips an item's completion state
func (uc *ChecklistUseCase) ToggleItem(ctx context.Context, sessionID types.SessionID, categoryName string, itemID types.ItemID) (model.Checklist, error) {
	return uc.commit(ctx, sessionID, model.ChangeOpToggle, itemID.String(),
		func(cl model.Checklist) model.Checklist {
			return model.ToggleItem(cl, categoryName, itemID)
		})
}

// MoveItem relocates an item between categories
func (uc *ChecklistUseCase) MoveItem(ctx context.Context, sessionID types.SessionID, itemID types.ItemID, sourceName, destName string) (model.Checklist, error) {
	return uc.commit(ctx, sessionID, model.ChangeOpMove,
		fmt.Sprintf("%s -> %s", sourceName, destName),
		func(cl model.Checklist) model.Checklist {
			return model.MoveItem(cl, itemID, sourceName, destName)
		})
}

// EditItem replaces an item's text
func (uc *ChecklistUseCase) EditItem(ctx context.Context, sessionID types.SessionID, categoryName string, itemID types.ItemID, newText string) (model.Checklist, error) {
	return uc.commit(ctx, sessionID, model.ChangeOpEdit, itemID.String(),
		func(cl model.Checklist) model.Checklist {
			return model.EditItem(cl, categoryName, itemID, newText)
		})
}

// DeleteItem removes a single item
func (uc *ChecklistUseCase) DeleteItem(ctx context.Context, sessionID types.SessionID, categoryName string, itemID types.ItemID) (model.Checklist, error) {
	return uc.commit(ctx, sessionID, model.ChangeOpDeleteItem, itemID.String(),
		func(cl model.Checklist) model.Checklist {
			return model.DeleteItem(cl, categoryName, itemID)
		})
}

// DeleteCategory removes a whole category and its items
func (uc *ChecklistUseCase) DeleteCategory(ctx context.Context, sessionID types.SessionID, categoryName string) (model.Checklist, error) {
	return uc.commit(ctx, sessionID, model.ChangeOpDeleteCategory, categoryName,
		func(cl model.Checklist) model.Checklist {
			return model.DeleteCategory(cl, categoryName)
		})
}

// Clear replaces the checklist with an empty one
func (uc *ChecklistUseCase) Clear(ctx context.Context, sessionID types.SessionID) (model.Checklist, error) {
	return uc.commit(ctx, sessionID, model.ChangeOpClear, "",
		func(cl model.Checklist) model.Checklist {
			return model.Checklist{}
		})
}

// ChangeLog lists recent change records for the session, newest first
func (uc *ChecklistUseCase) ChangeLog(ctx context.Context, sessionID types.SessionID, limit int) ([]*model.ChangeRecord, error) {
	records, err := uc.repo.ChangeLog().List(ctx, sessionID, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list change records",
			goerr.V("sessionID", sessionID))
	}
	return records, nil
}
