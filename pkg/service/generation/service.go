package generation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/secmon-lab/ticklist/pkg/domain/interfaces"
	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/utils/logging"
)

// client implements interfaces.Generator
type client struct {
	llmClient gollem.LLMClient
	fetcher   Fetcher
}

// Option is a functional option for client configuration
type Option func(*client)

// WithFetcher replaces the page fetcher used by FromURL
func WithFetcher(f Fetcher) Option {
	return func(c *client) {
		c.fetcher = f
	}
}

// New creates a new generation service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (interfaces.Generator, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
		fetcher:   newHTTPFetcher(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FromText converts free-form text into a categorized checklist. When the
// model extracts nothing usable the result is an empty checklist, not an
// error; errors are reserved for session/transport failures.
func (c *client) FromText(ctx context.Context, text string) (model.Checklist, error) {
	if strings.TrimSpace(text) == "" {
		return model.Checklist{}, nil
	}
	return c.generate(ctx, buildTextPrompt(text))
}

// FromURL fetches the page behind the URL and converts its content into a
// checklist (e.g. recipe ingredients grouped by aisle). A page the model
// cannot extract from yields an empty checklist.
func (c *client) FromURL(ctx context.Context, url string) (model.Checklist, error) {
	content, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return model.Checklist{}, goerr.Wrap(err, "failed to fetch URL", goerr.V("url", url))
	}
	if strings.TrimSpace(content) == "" {
		return model.Checklist{}, nil
	}
	return c.generate(ctx, buildURLPrompt(url, content))
}

func (c *client) generate(ctx context.Context, userPrompt string) (model.Checklist, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(buildResponseSchema()),
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return model.Checklist{}, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(userPrompt))
	if err != nil {
		return model.Checklist{}, goerr.Wrap(err, "failed to generate content from LLM")
	}
	if len(resp.Texts) == 0 {
		return model.Checklist{}, nil
	}

	var llmResp llmResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &llmResp); err != nil {
		// Unparseable model output degrades to the empty-result sentinel;
		// the caller surfaces a retry prompt without any state change.
		logging.From(ctx).Warn("LLM response is not valid JSON, treating as empty",
			"error", err.Error())
		return model.Checklist{}, nil
	}

	return llmResp.toChecklist(), nil
}
