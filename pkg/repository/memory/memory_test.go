package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
	"github.com/secmon-lab/ticklist/pkg/repository/memory"
)

func sample() model.Checklist {
	return model.Checklist{Categories: []model.Category{
		{Name: "Produce", Items: []model.Item{
			{ID: types.NewItemID(), Text: "apple", Completed: true},
			{ID: types.NewItemID(), Text: "kale"},
		}},
		{Name: "Dairy", Items: []model.Item{
			{ID: types.NewItemID(), Text: "milk"},
		}},
	}}
}

func TestChecklistRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	defer repo.Close()
	sessionID := types.NewSessionID()

	cl := sample()
	gt.NoError(t, repo.Checklist().Put(ctx, sessionID, cl)).Required()

	got, err := repo.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal(cl)
}

func TestChecklistGetMissing(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	got, err := repo.Checklist().Get(ctx, types.NewSessionID())
	gt.NoError(t, err).Required()
	gt.Value(t, got.IsEmpty()).Equal(true)
}

func TestChecklistDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	sessionID := types.NewSessionID()

	gt.NoError(t, repo.Checklist().Put(ctx, sessionID, sample())).Required()
	gt.NoError(t, repo.Checklist().Delete(ctx, sessionID)).Required()

	got, err := repo.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.IsEmpty()).Equal(true)

	// deleting again is fine
	gt.NoError(t, repo.Checklist().Delete(ctx, sessionID))
}

// stored values must not share memory with what the caller holds
func TestChecklistIsolation(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	sessionID := types.NewSessionID()

	cl := sample()
	gt.NoError(t, repo.Checklist().Put(ctx, sessionID, cl)).Required()
	cl.Categories[0].Items[0].Text = "mutated after put"

	got, err := repo.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Categories[0].Items[0].Text).Equal("apple")

	got.Categories[0].Name = "mutated after get"
	again, err := repo.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Value(t, again.Categories[0].Name).Equal("Produce")
}

func TestChangeLogListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	sessionID := types.NewSessionID()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, op := range []model.ChangeOp{model.ChangeOpAdd, model.ChangeOpToggle, model.ChangeOpRemove} {
		rec := &model.ChangeRecord{
			SessionID: sessionID,
			Op:        op,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		gt.NoError(t, repo.ChangeLog().Append(ctx, rec)).Required()
	}

	records, err := repo.ChangeLog().List(ctx, sessionID, 0)
	gt.NoError(t, err).Required()
	gt.Number(t, len(records)).Equal(3)
	gt.Value(t, records[0].Op).Equal(model.ChangeOpRemove)
	gt.Value(t, records[2].Op).Equal(model.ChangeOpAdd)

	limited, err := repo.ChangeLog().List(ctx, sessionID, 2)
	gt.NoError(t, err).Required()
	gt.Number(t, len(limited)).Equal(2)
	gt.Value(t, limited[0].Op).Equal(model.ChangeOpRemove)
}

func TestChangeLogAppendFillsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	sessionID := types.NewSessionID()

	gt.NoError(t, repo.ChangeLog().Append(ctx, &model.ChangeRecord{
		SessionID: sessionID,
		Op:        model.ChangeOpAdd,
	})).Required()

	records, err := repo.ChangeLog().List(ctx, sessionID, 0)
	gt.NoError(t, err).Required()
	gt.Number(t, len(records)).Equal(1)
	gt.Value(t, records[0].ID != "").Equal(true)
	gt.Value(t, records[0].CreatedAt.IsZero()).Equal(false)
}

func TestChangeLogPrune(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	s1 := types.NewSessionID()
	s2 := types.NewSessionID()

	cutoff := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	old := cutoff.Add(-time.Hour)
	fresh := cutoff.Add(time.Hour)

	for _, rec := range []*model.ChangeRecord{
		{SessionID: s1, Op: model.ChangeOpAdd, CreatedAt: old},
		{SessionID: s1, Op: model.ChangeOpToggle, CreatedAt: fresh},
		{SessionID: s2, Op: model.ChangeOpClear, CreatedAt: old},
	} {
		gt.NoError(t, repo.ChangeLog().Append(ctx, rec)).Required()
	}

	deleted, err := repo.ChangeLog().Prune(ctx, cutoff)
	gt.NoError(t, err).Required()
	gt.Number(t, deleted).Equal(2)

	remaining, err := repo.ChangeLog().List(ctx, s1, 0)
	gt.NoError(t, err).Required()
	gt.Number(t, len(remaining)).Equal(1)
	gt.Value(t, remaining[0].Op).Equal(model.ChangeOpToggle)

	emptied, err := repo.ChangeLog().List(ctx, s2, 0)
	gt.NoError(t, err).Required()
	gt.Number(t, len(emptied)).Equal(0)
}
