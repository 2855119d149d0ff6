package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"movi-agent/internal/agent"
)

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

type mockUseCase struct {
	gotInput agent.ProcessInput
	out      agent.ProcessOutput
}

func (m *mockUseCase) Process(ctx context.Context, input agent.ProcessInput) agent.ProcessOutput {
	m.gotInput = input
	return m.out
}

func newTestRouter(uc agent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine.Group("/"), New(mockLogger{}, uc))
	return engine
}

func TestProcessEndpoint(t *testing.T) {
	uc := &mockUseCase{out: agent.ProcessOutput{OK: true, Message: "done", PendingID: "p_1_a"}}
	engine := newTestRouter(uc)

	body := `{"input": "remove vehicle from Bulk - 00:01", "currentPage": "daily-trips", "imageText": "", "pendingId": ""}`
	req := httptest.NewRequest(http.MethodPost, "/agent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if uc.gotInput.Input != "remove vehicle from Bulk - 00:01" {
		t.Errorf("input = %q", uc.gotInput.Input)
	}
	if uc.gotInput.CurrentPage != "daily-trips" {
		t.Errorf("currentPage = %q", uc.gotInput.CurrentPage)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["ok"] != true || resp["message"] != "done" {
		t.Errorf("resp = %v", resp)
	}
	if resp["pendingId"] != "p_1_a" {
		t.Errorf("pendingId = %v", resp["pendingId"])
	}
}

func TestProcessEndpointDomainFailureIs200(t *testing.T) {
	uc := &mockUseCase{out: agent.ProcessOutput{OK: false, Message: "Couldn't find a trip."}}
	engine := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/agent", strings.NewReader(`{"input": "remove vehicle from nowhere"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["ok"] != false {
		t.Errorf("ok = %v, want false", resp["ok"])
	}
}

func TestProcessEndpointOmitsEmptyDetail(t *testing.T) {
	uc := &mockUseCase{out: agent.ProcessOutput{OK: true, Message: "hi"}}
	engine := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/agent", strings.NewReader(`{"input": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"trip", "trips", "pendingId", "deleted", "confirmationRequired"} {
		if _, ok := resp[key]; ok {
			t.Errorf("key %q present in empty response", key)
		}
	}
}

func TestProcessEndpointBadJSON(t *testing.T) {
	engine := newTestRouter(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/agent", strings.NewReader(`{"input": `))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["ok"] != false {
		t.Errorf("ok = %v, want false", resp["ok"])
	}
}
