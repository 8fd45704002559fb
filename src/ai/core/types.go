package core

import "context"

// Verdict status values the upstream model is constrained to.
const (
	StatusTrue       = "True"
	StatusFalse      = "False"
	StatusSuspicious = "Suspicious"
)

// Options controls model behavior; fields are optional per provider.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int
	SystemPrompt        string
}

// Client is a provider-agnostic interface for the one operation the
// service needs: send a single user prompt and get back the model's
// schema-constrained JSON text ({"status":...,"explanation":...}).
type Client interface {
	CheckFact(ctx context.Context, prompt string, opts Options) (string, error)
}
