package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Greeting and confirmation word sets. Membership is exact (after
// normalisation), not substring.
var (
	greetingWords = map[string]struct{}{
		"hi": {}, "hello": {}, "hey": {}, "yo": {},
		"good morning": {}, "good afternoon": {}, "good evening": {},
	}
	confirmWords = map[string]struct{}{
		"yes": {}, "y": {}, "confirm": {}, "proceed": {},
	}
)

// Keyword sets for the rule pipeline.
var (
	removalVerbs = []string{"remove", "delete", "unassign", "cancel", "deassign"}
	removalNouns = []string{"vehicle", "trip", "deployment", "bus"}
	assignVerbs  = []string{"assign", "allocate", "deploy"}
	assignNouns  = []string{"vehicle", "bus"}
	queryWords   = []string{"what", "show", "list", "which", "status", "running", "runs", "from", "to"}
)

// Classification prompt for the optional LLM collaborator. The model must
// answer with strict JSON; anything else falls back to the rule pipeline.
const PromptClassify = `You are the intent extractor for a bus operations assistant.
Classify the user message into exactly one of these intents:
greeting, confirm, remove_vehicle, assign_vehicle, trip_query, route_query, list_trips, list_routes, list_unassigned_trips, tripsheet, query, unknown

target_text is the trip or route name the message refers to, or null if none.

Respond with strict JSON only, no prose, no markdown:
{"intent": "<intent>", "target_text": "<text or null>"}

Message: '''%s'''`
