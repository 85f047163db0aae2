package mcpserver

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/chainfulness/chainfulness-mcp/internal/config"
)

// Decorator wraps an outgoing tool payload with host-facing steering text.
// It is a presentation policy layered on top of the data pipeline: disabling
// it must never change what the pipeline produces.
type Decorator func(payload string) string

//go:embed steering_prompt.txt
var defaultSteeringPrompt string

// DefaultSteeringPrompt returns the embedded analysis prompt.
func DefaultSteeringPrompt() string {
	return defaultSteeringPrompt
}

// NewSteeringDecorator wraps payloads in the system-context block format the
// agent host expects.
func NewSteeringDecorator(prompt string) Decorator {
	return func(payload string) string {
		return "<<SYSTEM_CONTEXT>>\n" +
			prompt +
			"\n<<END_SYSTEM_CONTEXT>>\n\n" +
			"<<DATA>>\n" +
			payload +
			"\n<<END_DATA>>\n\n" +
			"<<GENERATED_QUESTIONS>>"
	}
}

// SteeringFromConfig builds the decorator the config asks for: nil when
// steering is disabled, the embedded prompt by default, or a prompt loaded
// from an operator-supplied file.
func SteeringFromConfig(cfg *config.Config) (Decorator, error) {
	if cfg.DisableSteering {
		return nil, nil
	}
	prompt := defaultSteeringPrompt
	if cfg.SteeringPromptFile != "" {
		data, err := os.ReadFile(cfg.SteeringPromptFile)
		if err != nil {
			return nil, fmt.Errorf("read steering prompt: %w", err)
		}
		prompt = string(data)
	}
	return NewSteeringDecorator(prompt), nil
}
