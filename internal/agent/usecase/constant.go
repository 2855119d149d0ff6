package usecase

// Listing caps. Summaries and listings are truncated and annotated rather
// than dumped in full.
const (
	SummaryCap = 5
	ListCap    = 10
)

// Static replies for intents that need no backend call.
const (
	MsgGreeting = `Hello! I can help run today's bus operations. Try "Remove the vehicle from Bulk - 00:01", "Assign vehicle 7 to Bulk - 00:01", "list trips" or "tripsheet for Bulk - 00:01".`

	MsgHelp = `I can answer questions about today's trips and routes ("status of Bulk - 00:01", "list routes", "which trips have no vehicle") and manage deployments ("assign vehicle 7 to ...", "remove the vehicle from ...").`

	MsgUnknown = `I didn't understand. Try: "Remove vehicle from Bulk - 00:01", "Assign vehicle 7 to Bulk - 00:01" or "list trips".`

	MsgNoPendingToken = "There is no pending action to confirm. Nothing was changed."

	MsgPendingNotFound = "No pending action found (maybe expired)."

	MsgUnknownPendingKind = "Unknown pending action."

	MsgClarifyRemoveTarget = `Which trip do you want to remove the vehicle from? Name the trip, e.g. "Remove the vehicle from Bulk - 00:01".`

	MsgClarifyAssignTarget = `Which trip should the vehicle be assigned to? Name the trip, e.g. "Assign vehicle 7 to Bulk - 00:01".`

	MsgClarifyVehicleID = `Please name the vehicle explicitly, e.g. "Assign vehicle 7 to Bulk - 00:01".`
)
