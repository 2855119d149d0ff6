package router

import (
	"context"
	"errors"
	"testing"
)

// mockLLM implements openai.IOpenAI.
type mockLLM struct {
	resp  string
	err   error
	calls int
}

func (m *mockLLM) ChatCompletion(ctx context.Context, prompt string) (string, error) {
	m.calls++
	return m.resp, m.err
}

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

func TestClassifyWithoutLLM(t *testing.T) {
	r := New(nil, mockLogger{})

	got := r.Classify(context.Background(), "remove the vehicle from Bulk - 00:01")
	if got.Intent != IntentRemoveVehicle {
		t.Errorf("intent = %q, want %q", got.Intent, IntentRemoveVehicle)
	}
	if got.Target != "Bulk - 00:01" {
		t.Errorf("target = %q, want %q", got.Target, "Bulk - 00:01")
	}
}

func TestClassifyLLMAnswerUsed(t *testing.T) {
	llm := &mockLLM{resp: `{"intent": "trip_query", "target_text": "Bulk - 00:01"}`}
	r := New(llm, mockLogger{})

	got := r.Classify(context.Background(), "is the bulk run covered?")
	if got.Intent != IntentTripQuery {
		t.Errorf("intent = %q, want %q", got.Intent, IntentTripQuery)
	}
	if got.Target != "Bulk - 00:01" {
		t.Errorf("target = %q, want %q", got.Target, "Bulk - 00:01")
	}
	if llm.calls != 1 {
		t.Errorf("llm calls = %d, want 1", llm.calls)
	}
}

func TestClassifyLLMFencedJSON(t *testing.T) {
	llm := &mockLLM{resp: "```json\n{\"intent\": \"list_routes\", \"target_text\": null}\n```"}
	r := New(llm, mockLogger{})

	got := r.Classify(context.Background(), "routes overview please")
	if got.Intent != IntentListRoutes {
		t.Errorf("intent = %q, want %q", got.Intent, IntentListRoutes)
	}
}

func TestClassifyLLMFailureFallsBackToRules(t *testing.T) {
	tests := []struct {
		name string
		llm  *mockLLM
	}{
		{"transport error", &mockLLM{err: errors.New("timeout")}},
		{"not JSON", &mockLLM{resp: "Sure! The intent here is trip_query."}},
		{"unknown intent value", &mockLLM{resp: `{"intent": "make_coffee", "target_text": null}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.llm, mockLogger{})

			got := r.Classify(context.Background(), "list all trips")
			if got.Intent != IntentListTrips {
				t.Errorf("intent = %q, want %q (rule fallback)", got.Intent, IntentListTrips)
			}
			if tt.llm.calls != 1 {
				t.Errorf("llm calls = %d, want 1", tt.llm.calls)
			}
		})
	}
}

func TestClassifyEmptyMessageSkipsLLM(t *testing.T) {
	llm := &mockLLM{resp: `{"intent": "greeting", "target_text": null}`}
	r := New(llm, mockLogger{})

	got := r.Classify(context.Background(), "   ")
	if got.Intent != IntentUnknown {
		t.Errorf("intent = %q, want %q", got.Intent, IntentUnknown)
	}
	if llm.calls != 0 {
		t.Errorf("llm calls = %d, want 0", llm.calls)
	}
}

func TestClassifyTripNameShape(t *testing.T) {
	r := New(nil, mockLogger{})

	got := r.Classify(context.Background(), "Bulk - 00:01")
	if got.Intent != IntentTripQuery {
		t.Errorf("intent = %q, want %q", got.Intent, IntentTripQuery)
	}
	if got.Target != "Bulk - 00:01" {
		t.Errorf("target = %q, want %q", got.Target, "Bulk - 00:01")
	}
}
