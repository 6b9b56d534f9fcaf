// Package llm provides the text-generation capability used by the
// resume, insight, and interview-question endpoints.
package llm

import "os"

// defaultModel is used when GEMINI_MODEL is not set.
const defaultModel = "gemini-2.5-flash"

// Config holds the model configuration for the generator.
type Config struct {
	Model string
}

// DefaultConfig returns the configuration from the environment, falling
// back to the default model.
func DefaultConfig() *Config {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Config{Model: model}
}
