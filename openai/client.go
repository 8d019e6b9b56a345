package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	oai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/inquira/promptkit/provider"
)

// Client sends completion requests to the OpenAI chat completions API.
// Safe for concurrent use.
type Client struct {
	api    oai.Client
	model  string
	effort shared.ReasoningEffort
}

// New creates a client from the given config.
func New(cfg Config) *Client {
	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}

	return &Client{
		api:    oai.NewClient(opts...),
		model:  cfg.Model,
		effort: shared.ReasoningEffort(cfg.ReasoningEffort),
	}
}

// Complete implements provider.Client.
func (c *Client) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	params, err := c.completionParams(req)
	if err != nil {
		return nil, provider.NewError(provider.OpenAI, "complete", err, false)
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, provider.NewError(provider.OpenAI, "complete", err, true)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, provider.NewError(provider.OpenAI, "complete", provider.ErrEmptyResponse, false)
	}

	return &provider.Response{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
		Usage: provider.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// completionParams maps a provider.Request onto SDK parameters.
func (c *Client) completionParams(req provider.Request) (oai.ChatCompletionNewParams, error) {
	var messages []oai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, oai.SystemMessage(req.System))
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
	if c.effort != "" {
		params.ReasoningEffort = c.effort
	}
	if len(req.Schema) > 0 {
		format, err := responseFormat(req.Schema)
		if err != nil {
			return oai.ChatCompletionNewParams{}, err
		}
		params.ResponseFormat = format
	}
	return params, nil
}

// responseFormat wraps a JSON Schema document in the strict JSON-schema
// response format union.
func responseFormat(schema json.RawMessage) (oai.ChatCompletionNewParamsResponseFormatUnion, error) {
	var doc any
	if err := json.Unmarshal(schema, &doc); err != nil {
		return oai.ChatCompletionNewParamsResponseFormatUnion{}, fmt.Errorf("invalid schema: %w", err)
	}

	return oai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
			JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   "response",
				Schema: doc,
				Strict: oai.Bool(true),
			},
		},
	}, nil
}
