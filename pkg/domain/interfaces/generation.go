package interfaces

import (
	"context"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
)

// Generator converts unstructured input into a categorized checklist.
// Inability to extract anything usable is signaled by an empty checklist,
// not an error; errors are reserved for transport/LLM failures.
type Generator interface {
	FromText(ctx context.Context, text string) (model.Checklist, error)
	FromURL(ctx context.Context, url string) (model.Checklist, error)
}

// Classifier turns one line of free text into a structured command.
// It never returns an error: any internal failure yields the UNKNOWN sentinel.
type Classifier interface {
	Classify(ctx context.Context, text string) model.Command
}
