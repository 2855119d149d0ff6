package router

// Intent is the closed set of intents the agent understands.
type Intent string

const (
	IntentGreeting        Intent = "greeting"
	IntentConfirm         Intent = "confirm"
	IntentRemoveVehicle   Intent = "remove_vehicle"
	IntentAssignVehicle   Intent = "assign_vehicle"
	IntentTripQuery       Intent = "trip_query"
	IntentRouteQuery      Intent = "route_query"
	IntentListTrips       Intent = "list_trips"
	IntentListRoutes      Intent = "list_routes"
	IntentListUnassigned  Intent = "list_unassigned_trips"
	IntentTripsheet       Intent = "tripsheet"
	IntentQuery           Intent = "query"
	IntentUnknown         Intent = "unknown"
)

// allIntents is used to validate LLM output against the closed set.
var allIntents = map[Intent]struct{}{
	IntentGreeting:       {},
	IntentConfirm:        {},
	IntentRemoveVehicle:  {},
	IntentAssignVehicle:  {},
	IntentTripQuery:      {},
	IntentRouteQuery:     {},
	IntentListTrips:      {},
	IntentListRoutes:     {},
	IntentListUnassigned: {},
	IntentTripsheet:      {},
	IntentQuery:          {},
	IntentUnknown:        {},
}

// ParseIntent reports whether s names a recognised intent.
func ParseIntent(s string) (Intent, bool) {
	in := Intent(s)
	_, ok := allIntents[in]
	return in, ok
}

// ParsedIntent is the classification result. RawText keeps the original
// utterance so the orchestrator can re-derive structured values (vehicle and
// driver numbers) the classifier does not extract.
type ParsedIntent struct {
	Intent  Intent
	Target  string
	RawText string
}
