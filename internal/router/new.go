package router

import (
	"context"

	"movi-agent/pkg/log"
	"movi-agent/pkg/openai"
)

// Router classifies a user message into a ParsedIntent. Classification never
// fails: every path degrades to the deterministic rule pipeline, so callers
// get one contract regardless of which path produced the result.
type Router interface {
	Classify(ctx context.Context, message string) ParsedIntent
}

// SemanticRouter tries the LLM collaborator first (when configured) and falls
// back to RuleClassify on any transport or parse failure.
type SemanticRouter struct {
	llm openai.IOpenAI // nil when no credential is configured
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. llm may be nil; the router then runs the
// rule pipeline only.
func New(llm openai.IOpenAI, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
