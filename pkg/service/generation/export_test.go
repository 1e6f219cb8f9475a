package generation

import "github.com/secmon-lab/ticklist/pkg/domain/model"

// RawResponse mirrors the LLM output shape for testing normalization
type RawResponse = llmResponse

// RawCategory mirrors one raw category for testing normalization
type RawCategory = llmCategory

// ToChecklistForTest exposes response normalization for testing
func ToChecklistForTest(r RawResponse) model.Checklist {
	return r.toChecklist()
}

// StripHTMLForTest exposes page reduction for testing
func StripHTMLForTest(s string) string {
	return stripHTML(s)
}
