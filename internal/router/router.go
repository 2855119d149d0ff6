package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Classify determines user intent from the message.
// Convention: Method accepts context.Context as first parameter
func (r *SemanticRouter) Classify(ctx context.Context, message string) ParsedIntent {
	out := r.classify(ctx, message)

	// Escape hatch: a message with no recognisable keywords that is shaped
	// like a trip name ("Bulk - 00:01") is treated as a trip query.
	if out.Intent == IntentUnknown && LooksLikeTripName(message) {
		out.Intent = IntentTripQuery
		out.Target = strings.TrimSpace(message)
	}

	return out
}

func (r *SemanticRouter) classify(ctx context.Context, message string) ParsedIntent {
	if r.llm == nil || strings.TrimSpace(message) == "" {
		return RuleClassify(message)
	}

	raw, err := r.llm.ChatCompletion(ctx, fmt.Sprintf(PromptClassify, message))
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed, falling back to rules: %v", LogPrefixClassify, err)
		return RuleClassify(message)
	}

	parsed, ok := parseLLMOutput(raw)
	if !ok {
		r.l.Warnf(ctx, "%s: unusable LLM output %q, falling back to rules", LogPrefixClassify, raw)
		return RuleClassify(message)
	}

	parsed.RawText = message
	r.l.Infof(ctx, "%s: LLM classified as %s", LogPrefixClassify, parsed.Intent)
	return parsed
}

// llmOutput is the strict-JSON shape requested from the model.
type llmOutput struct {
	Intent     string  `json:"intent"`
	TargetText *string `json:"target_text"`
}

// parseLLMOutput validates the model answer against the closed intent set.
// Markdown code fences around the JSON are tolerated.
func parseLLMOutput(raw string) (ParsedIntent, bool) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```json") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimSuffix(raw, "```")
		raw = strings.TrimSpace(raw)
	} else if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
		raw = strings.TrimSpace(raw)
	}

	var out llmOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return ParsedIntent{}, false
	}

	intent, ok := ParseIntent(out.Intent)
	if !ok {
		return ParsedIntent{}, false
	}

	parsed := ParsedIntent{Intent: intent}
	if out.TargetText != nil {
		parsed.Target = strings.TrimSpace(*out.TargetText)
	}
	return parsed, true
}
