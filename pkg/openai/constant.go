package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "gpt-4o"

	// DefaultTimeout bounds a single completion call. The classifier treats a
	// timeout like any other failure and falls back to the rule pipeline.
	DefaultTimeout = 15 * time.Second
)
