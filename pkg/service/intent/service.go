package intent

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/secmon-lab/ticklist/pkg/domain/interfaces"
	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
	"github.com/secmon-lab/ticklist/pkg/utils/logging"
)

// client implements interfaces.Classifier
type client struct {
	llmClient gollem.LLMClient
}

// New creates a new intent classifier with the provided LLM client
func New(llmClient gollem.LLMClient) (interfaces.Classifier, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}
	return &client{llmClient: llmClient}, nil
}

const systemPrompt = `You are an intent classifier for a checklist application. Classify the user's message into exactly one intent:

- ADD: the user wants to add items to the checklist
- REMOVE: the user wants to remove specific items from the checklist
- CLEAR: the user wants to empty the whole checklist
- UNKNOWN: anything else

Also extract the item phrases the intent applies to, in the order mentioned. For CLEAR and UNKNOWN the items array is empty. Phrases are the bare item names without verbs or quantifier words ("add two apples" -> ["apples"]).`

// llmResponse is the structured output from the LLM
type llmResponse struct {
	Intent string   `json:"intent"`
	Items  []string `json:"items"`
}

// Classify turns one line of free text into a command. It never returns an
// error: classification failures of any kind yield the UNKNOWN sentinel so
// the core only ever deals in well-formed commands.
func (c *client) Classify(ctx context.Context, text string) model.Command {
	if strings.TrimSpace(text) == "" {
		return model.UnknownCommand()
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(buildResponseSchema()),
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		logging.From(ctx).Warn("failed to create classifier session", "error", err.Error())
		return model.UnknownCommand()
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(text))
	if err != nil {
		logging.From(ctx).Warn("intent classification failed", "error", err.Error())
		return model.UnknownCommand()
	}
	if len(resp.Texts) == 0 {
		return model.UnknownCommand()
	}

	var llmResp llmResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &llmResp); err != nil {
		logging.From(ctx).Warn("classifier response is not valid JSON", "error", err.Error())
		return model.UnknownCommand()
	}

	intent := types.Intent(strings.ToUpper(strings.TrimSpace(llmResp.Intent))).Normalize()

	var items []string
	for _, item := range llmResp.Items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	return model.Command{Intent: intent, Items: items}
}

// buildResponseSchema creates the JSON schema for structured output
func buildResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "IntentClassificationResponse",
		Description: "The classified intent and extracted item phrases",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"intent": {
				Type:        gollem.TypeString,
				Description: "One of ADD, REMOVE, CLEAR, UNKNOWN",
				Enum:        []string{"ADD", "REMOVE", "CLEAR", "UNKNOWN"},
				Required:    true,
			},
			"items": {
				Type:        gollem.TypeArray,
				Description: "Item phrases the intent applies to, in mention order",
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
				Required: true,
			},
		},
	}
}
