package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// GenerateResult is the outcome of an LLM-backed generation request
type GenerateResult struct {
	// Checklist is the current value after the merge (unchanged when nothing
	// was extracted)
	Checklist model.Checklist `json:"checklist"`

	// Extracted reports whether the generator produced anything; false means
	// the caller should surface a retry prompt, and no state changed
	Extracted bool `json:"extracted"`
}

// GenerateFromText runs LLM extraction over free text and merges the result
// into the session's checklist.
func (uc *ChecklistUseCase) GenerateFromText(ctx context.Context, sessionID types.SessionID, text string) (*GenerateResult, error) {
	if uc.generator == nil {
		return nil, goerr.Wrap(ErrGeneratorDisabled, "cannot generate from text")
	}

	generated, err := uc.generator.FromText(ctx, text)
	if err != nil {
		return nil, goerr.Wrap(err, "generation from text failed")
	}

	return uc.mergeGenerated(ctx, sessionID, generated)
}

// GenerateFromURL fetches a page (e.g. a recipe) and merges the extracted
// checklist into the session's checklist.
func (uc *ChecklistUseCase) GenerateFromURL(ctx context.Context, sessionID types.SessionID, url string) (*GenerateResult, error) {
	if uc.generator == nil {
		return nil, goerr.Wrap(ErrGeneratorDisabled, "cannot generate from URL")
	}

	generated, err := uc.generator.FromURL(ctx, url)
	if err != nil {
		return nil, goerr.Wrap(err, "generation from URL failed", goerr.V("url", url))
	}

	return uc.mergeGenerated(ctx, sessionID, generated)
}

// mergeGenerated reconciles generated output into the persisted checklist.
// An empty generation result is the uniform "nothing extracted" signal: the
// checklist is returned untouched and nothing is persisted.
func (uc *ChecklistUseCase) mergeGenerated(ctx context.Context, sessionID types.SessionID, generated model.Checklist) (*GenerateResult, error) {
	if generated.IsEmpty() {
		current, err := uc.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		return &GenerateResult{Checklist: current, Extracted: false}, nil
	}

	merged, err := uc.commit(ctx, sessionID, model.ChangeOpMerge,
		describeMerge(generated),
		func(cl model.Checklist) model.Checklist {
			return model.Merge(cl, generated)
		})
	if err != nil {
		return nil, err
	}
	return &GenerateResult{Checklist: merged, Extracted: true}, nil
}

func describeMerge(generated model.Checklist) string {
	return fmt.Sprintf("%d categories, %d items generated",
		len(generated.Categories), generated.TotalItems())
}
