package router

import (
	"regexp"
	"strings"
)

// RuleClassify is the deterministic rule pipeline. It is a pure function:
// same text in, same ParsedIntent out. Rules are evaluated in a fixed order so
// more specific intents win over the generic query fallbacks.
func RuleClassify(text string) ParsedIntent {
	out := ParsedIntent{Intent: IntentUnknown, RawText: text}

	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return out
	}
	tokens := tokenize(lowered)

	// 1. Exact greetings and confirmations.
	if _, ok := greetingWords[lowered]; ok {
		out.Intent = IntentGreeting
		return out
	}
	if _, ok := confirmWords[lowered]; ok {
		out.Intent = IntentConfirm
		return out
	}

	// 2. Removal: verb + domain noun.
	if hasAnyToken(tokens, removalVerbs) && hasAnyToken(tokens, removalNouns) {
		out.Intent = IntentRemoveVehicle
		out.Target = extractRemovalTarget(text)
		return out
	}

	// 3. Assignment: verb + vehicle/bus.
	if hasAnyToken(tokens, assignVerbs) && hasAnyToken(tokens, assignNouns) {
		out.Intent = IntentAssignVehicle
		out.Target = extractAssignTarget(text)
		return out
	}

	// 4. Specific keyword combinations before the generic query fallbacks.
	switch {
	case tokens["tripsheet"] || (tokens["trip"] && tokens["sheet"]):
		out.Intent = IntentTripsheet
		out.Target = extractQueryTarget(text)
	case tokens["unassigned"] || (tokens["without"] && hasAnyToken(tokens, assignNouns)):
		out.Intent = IntentListUnassigned
	case tokens["trips"] && hasAnyToken(tokens, queryWords):
		out.Intent = IntentListTrips
	case tokens["routes"] && hasAnyToken(tokens, queryWords):
		out.Intent = IntentListRoutes
	case tokens["route"] && hasAnyToken(tokens, queryWords):
		out.Intent = IntentRouteQuery
		out.Target = extractQueryTarget(text)
	case tokens["trip"] && hasAnyToken(tokens, queryWords):
		out.Intent = IntentTripQuery
		out.Target = extractQueryTarget(text)
	}
	if out.Intent != IntentUnknown {
		return out
	}

	// 5. Generic query fallback.
	if strings.HasPrefix(lowered, "how many") || strings.HasPrefix(lowered, "what") ||
		tokens["status"] || tokens["list"] || tokens["show"] {
		out.Intent = IntentQuery
		return out
	}

	// 6. A bare removal verb with no object still reads as a removal attempt;
	// the orchestrator will ask which trip.
	switch lowered {
	case "delete", "remove", "cancel":
		out.Intent = IntentRemoveVehicle
		return out
	}

	return out
}

// IsConfirmWord reports whether text is an exact confirmation word. The
// orchestrator uses it to short-circuit confirm requests past the LLM.
func IsConfirmWord(text string) bool {
	_, ok := confirmWords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

var timeToken = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)

// LooksLikeTripName is the escape hatch for messages that carry no keywords
// but are shaped like a trip name: an HH:MM time token or a hyphen.
func LooksLikeTripName(text string) bool {
	return timeToken.MatchString(text) || strings.Contains(text, "-")
}

// tokenize splits lowered text into words, trimming surrounding punctuation
// but keeping in-word colons and hyphens (trip names carry both).
func tokenize(lowered string) map[string]bool {
	tokens := make(map[string]bool)
	for _, f := range strings.Fields(lowered) {
		f = strings.Trim(f, `.,!?"'()`)
		if f != "" {
			tokens[f] = true
		}
	}
	return tokens
}

func hasAnyToken(tokens map[string]bool, words []string) bool {
	for _, w := range words {
		if tokens[w] {
			return true
		}
	}
	return false
}

// extractRemovalTarget tries, in order: text after " from ", the first quoted
// phrase, else the last four tokens.
func extractRemovalTarget(text string) string {
	if idx := strings.Index(strings.ToLower(text), " from "); idx >= 0 {
		return strings.TrimSpace(text[idx+len(" from "):])
	}
	if q := quotedPhrase(text); q != "" {
		return q
	}
	return lastTokens(text, 4)
}

// extractAssignTarget tries: quoted phrase, text after " to " or " for ",
// else the last four tokens.
func extractAssignTarget(text string) string {
	if q := quotedPhrase(text); q != "" {
		return q
	}
	lowered := strings.ToLower(text)
	for _, sep := range []string{" to ", " for "} {
		if idx := strings.Index(lowered, sep); idx >= 0 {
			return strings.TrimSpace(text[idx+len(sep):])
		}
	}
	return lastTokens(text, 4)
}

// extractQueryTarget: quoted phrase, text after " of " or " for ", else the
// full text (the matcher's substring pass tolerates surrounding words).
func extractQueryTarget(text string) string {
	if q := quotedPhrase(text); q != "" {
		return q
	}
	lowered := strings.ToLower(text)
	for _, sep := range []string{" of ", " for "} {
		if idx := strings.Index(lowered, sep); idx >= 0 {
			return strings.TrimSpace(text[idx+len(sep):])
		}
	}
	return strings.TrimSpace(text)
}

func quotedPhrase(text string) string {
	parts := strings.Split(text, `"`)
	if len(parts) >= 3 {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func lastTokens(text string, n int) string {
	fields := strings.Fields(text)
	if len(fields) > n {
		fields = fields[len(fields)-n:]
	}
	return strings.Join(fields, " ")
}
