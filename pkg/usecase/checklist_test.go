package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/ticklist/pkg/domain/interfaces"
	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
	"github.com/secmon-lab/ticklist/pkg/repository/memory"
	"github.com/secmon-lab/ticklist/pkg/usecase"
)

func TestChecklistMutations(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)
	sessionID := types.NewSessionID()

	cl, err := uc.Checklist.AddItems(ctx, sessionID, []string{"milk", "bread"})
	gt.NoError(t, err).Required()
	gt.Number(t, cl.TotalItems()).Equal(2)
	gt.Value(t, cl.Categories[0].Name).Equal(model.FallbackCategoryName)

	// persisted value matches what the mutation returned
	stored, err := repo.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Number(t, stored.TotalItems()).Equal(2)

	itemID := cl.Categories[0].Items[0].ID

	cl, err = uc.Checklist.ToggleItem(ctx, sessionID, model.FallbackCategoryName, itemID)
	gt.NoError(t, err).Required()
	got, _, ok := cl.FindItem(itemID)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, got.Completed).Equal(true)

	cl, err = uc.Checklist.EditItem(ctx, sessionID, model.FallbackCategoryName, itemID, "oat milk")
	gt.NoError(t, err).Required()
	got, _, _ = cl.FindItem(itemID)
	gt.Value(t, got.Text).Equal("oat milk")

	cl, err = uc.Checklist.DeleteItem(ctx, sessionID, model.FallbackCategoryName, itemID)
	gt.NoError(t, err).Required()
	gt.Number(t, cl.TotalItems()).Equal(1)

	cl, err = uc.Checklist.Clear(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Value(t, cl.IsEmpty()).Equal(true)

	stored, err = repo.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Value(t, stored.IsEmpty()).Equal(true)
}

func TestRemoveItemsOnEmptyChecklist(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)
	sessionID := types.NewSessionID()

	cl, err := uc.Checklist.RemoveItems(ctx, sessionID, []string{"milk"})
	gt.NoError(t, err).Required()
	gt.Value(t, cl.IsEmpty()).Equal(true)
}

func TestMoveItemAcrossSessions(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	s1 := types.NewSessionID()
	s2 := types.NewSessionID()

	cl1, err := uc.Checklist.AddItems(ctx, s1, []string{"hammer"})
	gt.NoError(t, err).Required()

	// sessions are fully isolated
	cl2, err := uc.Checklist.Get(ctx, s2)
	gt.NoError(t, err).Required()
	gt.Value(t, cl2.IsEmpty()).Equal(true)
	gt.Number(t, cl1.TotalItems()).Equal(1)
}

// failingChecklistRepo rejects every Put while leaving the stored value
// intact, which is exactly the contract a rollback depends on.
type failingChecklistRepo struct {
	interfaces.ChecklistRepository
}

func (r *failingChecklistRepo) Put(ctx context.Context, sessionID types.SessionID, cl model.Checklist) error {
	return errors.New("backend unavailable")
}

type failingRepo struct {
	*memory.Repository
	checklist *failingChecklistRepo
}

func (r *failingRepo) Checklist() interfaces.ChecklistRepository {
	return r.checklist
}

func TestMutationRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	base := memory.New()
	sessionID := types.NewSessionID()

	// seed a known state through the working repository
	seed := usecase.New(base)
	before, err := seed.Checklist.AddItems(ctx, sessionID, []string{"milk"})
	gt.NoError(t, err).Required()

	broken := &failingRepo{
		Repository: base,
		checklist:  &failingChecklistRepo{ChecklistRepository: base.Checklist()},
	}
	uc := usecase.New(broken)

	cl, err := uc.Checklist.AddItems(ctx, sessionID, []string{"bread"})
	gt.Error(t, err)
	gt.Value(t, errors.Is(err, usecase.ErrNotSaved)).Equal(true)

	// the returned value is the pre-mutation snapshot
	gt.Number(t, cl.TotalItems()).Equal(before.TotalItems())
	gt.Value(t, cl.Categories[0].Items[0].Text).Equal("milk")

	// and the stored value is untouched
	stored, err := base.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Number(t, stored.TotalItems()).Equal(1)
}
