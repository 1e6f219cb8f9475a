package generation

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/gollem"
)

const systemPrompt = `You are a checklist extraction assistant. Your task is to convert the given input into a categorized checklist.

## Instructions:

1. Extract every actionable or purchasable item from the input.
2. Group the items into categories that make sense for the content: grocery items by store aisle (Produce, Dairy, Bakery, ...), tasks by context, recipe ingredients by section.
3. Keep item texts short and concrete, in the same language as the input.
4. Do not invent items that are not implied by the input.
5. If nothing list-like can be extracted, return an empty categories array.`

func buildTextPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Convert the following text into a categorized checklist.\n\n")
	sb.WriteString("## Input:\n\n")
	sb.WriteString(text)
	sb.WriteString("\n")
	return sb.String()
}

func buildURLPrompt(url, content string) string {
	var sb strings.Builder
	sb.WriteString("The following is the content of a web page. If it is a recipe, extract the ingredient list; otherwise extract any actionable items. Return them as a categorized checklist.\n\n")
	fmt.Fprintf(&sb, "## Page URL: %s\n\n", url)
	sb.WriteString("## Page Content:\n\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	return sb.String()
}

// buildResponseSchema creates the JSON schema for structured output
func buildResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "ChecklistExtractionResponse",
		Description: "A categorized checklist extracted from the input",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"categories": {
				Type:        gollem.TypeArray,
				Description: "Categories in display order; empty when nothing could be extracted",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"name": {
							Type:        gollem.TypeString,
							Description: "Category name, e.g. a store aisle or task context",
							Required:    true,
						},
						"items": {
							Type:        gollem.TypeArray,
							Description: "Item texts belonging to this category",
							Items: &gollem.Parameter{
								Type: gollem.TypeString,
							},
							Required: true,
						},
					},
				},
				Required: true,
			},
		},
	}
}
