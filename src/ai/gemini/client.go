package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/verilens/factcheck-api/src/ai/core"
)

const (
	defaultModelName = "gemini-2.0-flash"
	defaultMaxTokens = 1024
)

func init() {
	core.RegisterProvider("gemini", newClient, "gemini-flash")
}

// verdictSchema constrains the model to the two-field verdict shape with
// a closed status enum.
var verdictSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"status": {
			Type: genai.TypeString,
			Enum: []string{core.StatusTrue, core.StatusFalse, core.StatusSuspicious},
		},
		"explanation": {
			Type: genai.TypeString,
		},
	},
	Required: []string{"status", "explanation"},
}

type client struct {
	genai    *genai.Client
	defaults core.Options
}

func newClient(cfg core.FactoryConfig) (core.Client, error) {
	if cfg.GeminiKey == "" {
		return nil, fmt.Errorf("gemini: GEMINI_API_KEY not configured")
	}

	gc, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	model := cfg.Model
	if strings.TrimSpace(model) == "" {
		model = defaultModelName
	}

	return &client{
		genai: gc,
		defaults: core.Options{
			Model:               model,
			Temperature:         orFloat(cfg.Temperature, 0.2),
			MaxCompletionTokens: orInt(cfg.MaxCompletionTokens, defaultMaxTokens),
			SystemPrompt:        cfg.SystemPrompt,
		},
	}, nil
}

func (c *client) CheckFact(ctx context.Context, prompt string, opts core.Options) (string, error) {
	merged := c.merge(opts)

	m := c.genai.GenerativeModel(merged.Model)
	m.SetTemperature(float32(merged.Temperature))
	m.SetMaxOutputTokens(int32(merged.MaxCompletionTokens))
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = verdictSchema
	if strings.TrimSpace(merged.SystemPrompt) != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(merged.SystemPrompt)},
		}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok && string(t) != "" {
				return string(t)
			}
		}
	}
	return ""
}

func (c *client) merge(opts core.Options) core.Options {
	out := c.defaults
	if strings.TrimSpace(opts.Model) != "" {
		out.Model = opts.Model
	}
	if opts.Temperature != 0 {
		out.Temperature = opts.Temperature
	}
	if opts.MaxCompletionTokens != 0 {
		out.MaxCompletionTokens = opts.MaxCompletionTokens
	}
	if strings.TrimSpace(opts.SystemPrompt) != "" {
		out.SystemPrompt = opts.SystemPrompt
	}
	return out
}

func orInt(v, d int) int {
	if v != 0 {
		return v
	}
	return d
}

func orFloat(v, d float64) float64 {
	if v != 0 {
		return v
	}
	return d
}
