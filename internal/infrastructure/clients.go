package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"pneuma_bot/internal/entities"
	"pneuma_bot/internal/interfaces"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiOptions configures NewGeminiClient. BaseURL and HTTPClient are only
// set when pointing the client at something other than the public API.
type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiClient talks to the Gemini API. One instance is created at startup
// and shared by every request; it is never modified after construction.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ interfaces.AIClient = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	model := opts.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiClient) Model() string {
	return g.model
}

// GenerateResponse sends one GenerateContent call with the system instruction
// and the rendered user turn, and returns the text of the first candidate.
// A response without text comes back as "", which the caller treats as a
// failure.
func (g *GeminiClient) GenerateResponse(ctx context.Context, req entities.LLMRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt()), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return res.Text(), nil
}
