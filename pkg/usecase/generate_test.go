package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
	"github.com/secmon-lab/ticklist/pkg/repository/memory"
	"github.com/secmon-lab/ticklist/pkg/usecase"
)

// stubGenerator returns a fixed checklist or error for any input
type stubGenerator struct {
	result model.Checklist
	err    error
}

func (g *stubGenerator) FromText(ctx context.Context, text string) (model.Checklist, error) {
	return g.result, g.err
}

func (g *stubGenerator) FromURL(ctx context.Context, url string) (model.Checklist, error) {
	return g.result, g.err
}

func generated() model.Checklist {
	return model.Checklist{Categories: []model.Category{
		{Name: "Produce", Items: []model.Item{
			{ID: types.NewItemID(), Text: "apple"},
			{ID: types.NewItemID(), Text: "kale"},
		}},
	}}
}

func TestGenerateFromTextMergesIntoChecklist(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo, usecase.WithGenerator(&stubGenerator{result: generated()}))
	sessionID := types.NewSessionID()

	_, err := uc.Checklist.AddItems(ctx, sessionID, []string{"milk"})
	gt.NoError(t, err).Required()

	res, err := uc.Checklist.GenerateFromText(ctx, sessionID, "salad recipe")
	gt.NoError(t, err).Required()
	gt.Value(t, res.Extracted).Equal(true)
	gt.Number(t, res.Checklist.TotalItems()).Equal(3)
	gt.Number(t, len(res.Checklist.Categories)).Equal(2)

	stored, err := repo.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Number(t, stored.TotalItems()).Equal(3)
}

func TestGenerateNothingExtracted(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo, usecase.WithGenerator(&stubGenerator{}))
	sessionID := types.NewSessionID()

	before, err := uc.Checklist.AddItems(ctx, sessionID, []string{"milk"})
	gt.NoError(t, err).Required()

	res, err := uc.Checklist.GenerateFromText(ctx, sessionID, "lorem ipsum")
	gt.NoError(t, err).Required()
	gt.Value(t, res.Extracted).Equal(false)
	gt.Number(t, res.Checklist.TotalItems()).Equal(before.TotalItems())

	// nothing was persisted
	stored, err := repo.Checklist().Get(ctx, sessionID)
	gt.NoError(t, err).Required()
	gt.Number(t, stored.TotalItems()).Equal(1)
}

func TestGenerateRepeatedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo, usecase.WithGenerator(&stubGenerator{result: generated()}))
	sessionID := types.NewSessionID()

	first, err := uc.Checklist.GenerateFromURL(ctx, sessionID, "https://example.com/recipe")
	gt.NoError(t, err).Required()
	gt.Number(t, first.Checklist.TotalItems()).Equal(2)

	// same extraction again adds nothing: duplicates are suppressed per category
	second, err := uc.Checklist.GenerateFromURL(ctx, sessionID, "https://example.com/recipe")
	gt.NoError(t, err).Required()
	gt.Number(t, second.Checklist.TotalItems()).Equal(2)
	gt.Number(t, len(second.Checklist.Categories)).Equal(1)
}

func TestGenerateErrorPropagates(t *testing.T) {
	ctx := context.Background()
	generr := errors.New("model unavailable")
	uc := usecase.New(memory.New(), usecase.WithGenerator(&stubGenerator{err: generr}))

	_, err := uc.Checklist.GenerateFromText(ctx, types.NewSessionID(), "text")
	gt.Error(t, err)
	gt.Value(t, errors.Is(err, generr)).Equal(true)
}

func TestGenerateWithoutGenerator(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, err := uc.Checklist.GenerateFromText(ctx, types.NewSessionID(), "text")
	gt.Error(t, err)
	gt.Value(t, errors.Is(err, usecase.ErrGeneratorDisabled)).Equal(true)

	_, err = uc.Checklist.GenerateFromURL(ctx, types.NewSessionID(), "https://example.com")
	gt.Error(t, err)
	gt.Value(t, errors.Is(err, usecase.ErrGeneratorDisabled)).Equal(true)
}
