package google

import (
	"context"
	"sync"

	"google.golang.org/genai"

	"github.com/inquira/promptkit/prompt"
	"github.com/inquira/promptkit/provider"
)

// Client sends completion requests to the Gemini API. The SDK client is
// created on first use so construction never fails at selection time.
// Safe for concurrent use.
type Client struct {
	cfg Config

	mu  sync.Mutex
	api *genai.Client
}

// New creates a client from the given config.
func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// load resolves the SDK client once.
func (c *Client) load(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api != nil {
		return c.api, nil
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	c.api = api
	return api, nil
}

// Complete implements provider.Client.
func (c *Client) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	api, err := c.load(ctx)
	if err != nil {
		return nil, provider.NewError(provider.Google, "complete", err, false)
	}

	gcfg := generationConfig(req)
	resp, err := api.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.Prompt), gcfg)
	if err != nil {
		return nil, provider.NewError(provider.Google, "complete", err, true)
	}

	text := resp.Text()
	if text == "" {
		return nil, provider.NewError(provider.Google, "complete", provider.ErrEmptyResponse, false)
	}

	out := &provider.Response{Text: text, Model: c.cfg.Model}
	if resp.UsageMetadata != nil {
		out.Usage = provider.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// generationConfig maps a provider.Request onto SDK generation settings.
// Structured requests pin the response MIME type to JSON and carry the
// schema in the system instruction.
func generationConfig(req provider.Request) *genai.GenerateContentConfig {
	gcfg := &genai.GenerateContentConfig{}

	system := req.System
	if len(req.Schema) > 0 {
		gcfg.ResponseMIMEType = "application/json"
		system = prompt.WithStructuredInstruction(system, req.Schema)
	}
	if system != "" {
		gcfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		gcfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		gcfg.Temperature = &temp
	}
	return gcfg
}
