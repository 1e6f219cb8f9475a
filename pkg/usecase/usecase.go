package usecase

import (
	"github.com/secmon-lab/ticklist/pkg/domain/interfaces"
)

type UseCases struct {
	repo       interfaces.Repository
	generator  interfaces.Generator
	classifier interfaces.Classifier

	Checklist *ChecklistUseCase
}

type Option func(*UseCases)

// WithGenerator enables LLM-backed checklist generation
func WithGenerator(g interfaces.Generator) Option {
	return func(uc *UseCases) {
		uc.generator = g
	}
}

// WithClassifier enables free-text command handling
func WithClassifier(c interfaces.Classifier) Option {
	return func(uc *UseCases) {
		uc.classifier = c
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Checklist = NewChecklistUseCase(repo, uc.generator, uc.classifier)

	return uc
}
