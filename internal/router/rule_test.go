package router

import "testing"

func TestRuleClassify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantIntent Intent
		wantTarget string
	}{
		{
			name:       "empty message",
			text:       "",
			wantIntent: IntentUnknown,
		},
		{
			name:       "greeting",
			text:       "Hello",
			wantIntent: IntentGreeting,
		},
		{
			name:       "greeting phrase",
			text:       "good morning",
			wantIntent: IntentGreeting,
		},
		{
			name:       "confirmation word",
			text:       "yes",
			wantIntent: IntentConfirm,
		},
		{
			name:       "removal with from clause",
			text:       "remove the vehicle from Bulk - 00:01",
			wantIntent: IntentRemoveVehicle,
			wantTarget: "Bulk - 00:01",
		},
		{
			name:       "removal with quoted trip",
			text:       `cancel the "Bulk - 00:01" deployment`,
			wantIntent: IntentRemoveVehicle,
			wantTarget: "Bulk - 00:01",
		},
		{
			name:       "bare removal verb",
			text:       "remove",
			wantIntent: IntentRemoveVehicle,
			wantTarget: "",
		},
		{
			name:       "assignment with to clause",
			text:       "assign vehicle 7 to Bulk - 00:01",
			wantIntent: IntentAssignVehicle,
			wantTarget: "Bulk - 00:01",
		},
		{
			name:       "tripsheet with for clause",
			text:       "tripsheet for Bulk - 00:01",
			wantIntent: IntentTripsheet,
			wantTarget: "Bulk - 00:01",
		},
		{
			name:       "unassigned trips",
			text:       "show unassigned trips",
			wantIntent: IntentListUnassigned,
		},
		{
			name:       "trips without a vehicle",
			text:       "trips without a vehicle",
			wantIntent: IntentListUnassigned,
		},
		{
			name:       "list trips",
			text:       "list all trips",
			wantIntent: IntentListTrips,
		},
		{
			name:       "list routes",
			text:       "show routes",
			wantIntent: IntentListRoutes,
		},
		{
			name:       "route query",
			text:       "what route is Bulk on",
			wantIntent: IntentRouteQuery,
			wantTarget: "what route is Bulk on",
		},
		{
			name:       "trip query with for clause",
			text:       "show trip status for Bulk - 00:01",
			wantIntent: IntentTripQuery,
			wantTarget: "Bulk - 00:01",
		},
		{
			name:       "generic how many question",
			text:       "how many bookings today",
			wantIntent: IntentQuery,
		},
		{
			name:       "generic status question",
			text:       "status please",
			wantIntent: IntentQuery,
		},
		{
			name:       "gibberish",
			text:       "purple elephants",
			wantIntent: IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuleClassify(tt.text)
			if got.Intent != tt.wantIntent {
				t.Errorf("intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.Target != tt.wantTarget {
				t.Errorf("target = %q, want %q", got.Target, tt.wantTarget)
			}
			if got.RawText != tt.text {
				t.Errorf("raw text = %q, want %q", got.RawText, tt.text)
			}
		})
	}
}

func TestRuleClassifyDeterministic(t *testing.T) {
	const text = "remove the vehicle from Bulk - 00:01"
	first := RuleClassify(text)
	for i := 0; i < 10; i++ {
		if got := RuleClassify(text); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestIsConfirmWord(t *testing.T) {
	for _, word := range []string{"yes", "Y", " CONFIRM ", "proceed"} {
		if !IsConfirmWord(word) {
			t.Errorf("IsConfirmWord(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"yeah", "ok", "no", ""} {
		if IsConfirmWord(word) {
			t.Errorf("IsConfirmWord(%q) = true, want false", word)
		}
	}
}

func TestLooksLikeTripName(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Bulk - 00:01", true},
		{"07:30", true},
		{"North-Loop", true},
		{"hello there", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := LooksLikeTripName(tt.text); got != tt.want {
			t.Errorf("LooksLikeTripName(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
