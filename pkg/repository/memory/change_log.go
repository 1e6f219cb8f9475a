package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

type changeLogRepository struct {
	mu      sync.RWMutex
	records map[types.SessionID][]*model.ChangeRecord
}

func newChangeLogRepository() *changeLogRepository {
	return &changeLogRepository{
		records: make(map[types.SessionID][]*model.ChangeRecord),
	}
}

func copyRecord(rec *model.ChangeRecord) *model.ChangeRecord {
	copied := *rec
	return &copied
}

func (r *changeLogRepository) Append(ctx context.Context, rec *model.ChangeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyRecord(rec)
	if stored.ID == "" {
		stored.ID = model.NewChangeRecordID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.records[stored.SessionID] = append(r.records[stored.SessionID], stored)
	return nil
}

func (r *changeLogRepository) List(ctx context.Context, sessionID types.SessionID, limit int) ([]*model.ChangeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket := r.records[sessionID]
	result := make([]*model.ChangeRecord, 0, len(bucket))
	for _, rec := range bucket {
		result = append(result, copyRecord(rec))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *changeLogRepository) Prune(ctx context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for sessionID, bucket := range r.records {
		kept := bucket[:0]
		for _, rec := range bucket {
			if rec.CreatedAt.Before(before) {
				deleted++
				continue
			}
			kept = append(kept, rec)
		}
		if len(kept) == 0 {
			delete(r.records, sessionID)
			continue
		}
		r.records[sessionID] = kept
	}
	return deleted, nil
}
