package mistral

import (
	"context"
	"strings"

	oai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/inquira/promptkit/parser"
	"github.com/inquira/promptkit/prompt"
	"github.com/inquira/promptkit/provider"
)

// Client sends completion requests to the Mistral platform over the
// OpenAI-compatible wire format. Safe for concurrent use.
type Client struct {
	api   oai.Client
	model string
}

// New creates a client from the given config.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return &Client{
		api: oai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(base),
		),
		model: cfg.Model,
	}
}

// Complete implements provider.Client. Structured requests are emulated:
// the schema rides in as a prompt instruction, and the JSON payload is
// dug out of the response text.
func (c *Client) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	resp, err := c.api.Chat.Completions.New(ctx, c.completionParams(req))
	if err != nil {
		return nil, provider.NewError(provider.Mistral, "complete", err, true)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, provider.NewError(provider.Mistral, "complete", provider.ErrEmptyResponse, false)
	}

	text := resp.Choices[0].Message.Content
	if len(req.Schema) > 0 {
		if payload := parser.ExtractJSONText(text); payload != "" {
			text = payload
		}
	}

	return &provider.Response{
		Text:  text,
		Model: resp.Model,
		Usage: provider.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// completionParams maps a provider.Request onto SDK parameters.
func (c *Client) completionParams(req provider.Request) oai.ChatCompletionNewParams {
	system := req.System
	if len(req.Schema) > 0 {
		system = prompt.WithStructuredInstruction(system, req.Schema)
	}

	var messages []oai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, oai.SystemMessage(system))
	}
	messages = append(messages, oai.UserMessage(req.Prompt))

	params := oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = oai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = oai.Float(*req.Temperature)
	}
	return params
}
