package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var _ ports.AgentRuntime = (*Runtime)(nil)

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint.
	BaseURL    string
	HTTPClient *http.Client
}

// Runtime answers prompts with a Gemini model speaking as the configured character.
type Runtime struct {
	client *genai.Client
	model  string
	system string
	logger *zap.Logger
}

func New(ctx context.Context, cfg Config, character domain.Character, logger *zap.Logger) (*Runtime, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Runtime{
		client: client,
		model:  cfg.Model,
		system: systemInstruction(character),
		logger: logger,
	}, nil
}

// ShouldRespond asks the model for a decision. Output without a recognizable
// decision counts as IGNORE.
func (r *Runtime) ShouldRespond(ctx context.Context, prompt string) (domain.Decision, error) {
	text, err := r.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	decision, err := domain.ParseDecision(text)
	if err != nil {
		r.logger.Warn("unparseable response decision, ignoring", zap.Error(err))
		return domain.DecisionIgnore, nil
	}

	return decision, nil
}

func (r *Runtime) GenerateText(ctx context.Context, prompt string) (string, error) {
	text, err := r.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.New("gemini returned an empty completion")
	}

	return text, nil
}

func (r *Runtime) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: r.system}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

func systemInstruction(character domain.Character) string {
	if strings.TrimSpace(character.System) != "" {
		return character.System
	}

	return fmt.Sprintf("You are %s, an autonomous account on the Lens social network. Stay in character.", character.Name)
}
