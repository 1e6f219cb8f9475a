package generation

import (
	"strings"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// llmResponse is the structured output from the LLM. It is the only place
// unvalidated external data exists; toChecklist normalizes it into domain
// types before anything else sees it.
type llmResponse struct {
	Categories []llmCategory `json:"categories"`
}

type llmCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// toChecklist converts the raw LLM output into a valid checklist: category
// names are trimmed (empty ones fall back to the Uncategorized bucket), blank
// items are dropped, emptied categories are dropped, repeated category names
// are folded together, and every surviving item gets a fresh ID. Output that
// yields nothing becomes the empty checklist sentinel.
func (r llmResponse) toChecklist() model.Checklist {
	var cl model.Checklist
	for _, raw := range r.Categories {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			name = model.FallbackCategoryName
		}

		var items []model.Item
		for _, text := range raw.Items {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			items = append(items, model.Item{
				ID:        types.NewItemID(),
				Text:      text,
				Completed: false,
			})
		}
		if len(items) == 0 {
			continue
		}

		cl = model.Merge(cl, model.Checklist{Categories: []model.Category{{
			Name:  name,
			Items: items,
		}}})
	}
	return cl
}
