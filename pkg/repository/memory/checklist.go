package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

type checklistRepository struct {
	mu         sync.RWMutex
	checklists map[types.SessionID]model.Checklist
}

func newChecklistRepository() *checklistRepository {
	return &checklistRepository{
		checklists: make(map[types.SessionID]model.Checklist),
	}
}

func (r *checklistRepository) Get(ctx context.Context, sessionID types.SessionID) (model.Checklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cl, exists := r.checklists[sessionID]
	if !exists {
		return model.Checklist{}, nil
	}
	return cl.Clone(), nil
}

func (r *checklistRepository) Put(ctx context.Context, sessionID types.SessionID, cl model.Checklist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.checklists[sessionID] = cl.Clone()
	return nil
}

func (r *checklistRepository) Delete(ctx context.Context, sessionID types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.checklists, sessionID)
	return nil
}
