package azure

import (
	"context"
	"encoding/json"
	"fmt"

	oai "github.com/openai/openai-go/v3"
	azopt "github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/shared"

	"github.com/inquira/promptkit/provider"
)

// Client sends completion requests to an Azure OpenAI deployment.
// Safe for concurrent use.
type Client struct {
	api        oai.Client
	deployment string
}

// New creates a client from the given config. The config must be
// Complete(); the builder enforces that before construction.
func New(cfg Config) *Client {
	return &Client{
		api: oai.NewClient(
			azopt.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
			azopt.WithAPIKey(cfg.APIKey),
		),
		deployment: cfg.Deployment,
	}
}

// Complete implements provider.Client.
func (c *Client) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	params, err := c.completionParams(req)
	if err != nil {
		return nil, provider.NewError(provider.Azure, "complete", err, false)
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, provider.NewError(provider.Azure, "complete", err, true)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, provider.NewError(provider.Azure, "complete", provider.ErrEmptyResponse, false)
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

// completionParams maps a provider.Request onto SDK parameters. On Azure
// the model field carries the deployment name.
func (c *Client) completionParams(req provider.Request) (oai.ChatCompletionNewParams, error) {
	var messages []oai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, oai.SystemMessage(req.System))
	}
	messages = append(messages, oai.UserMessage(req.Prompt))

	params := oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.deployment),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = oai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = oai.Float(*req.Temperature)
	}
	if len(req.Schema) > 0 {
		var doc any
		if err := json.Unmarshal(req.Schema, &doc); err != nil {
			return oai.ChatCompletionNewParams{}, fmt.Errorf("invalid schema: %w", err)
		}
		params.ResponseFormat = oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "response",
					Schema: doc,
					Strict: oai.Bool(true),
				},
			},
		}
	}
	return params, nil
}
