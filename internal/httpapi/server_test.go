package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/assistant"
	"github.com/praxislabs/praxis/internal/auth"
	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/store"
	"github.com/praxislabs/praxis/internal/tutor"
)

func newTestServer(t *testing.T, responses ...llm.MockResponse) *Server {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	log := zap.NewNop().Sugar()
	mock := llm.NewMockProvider(responses...)
	svc := tutor.New(s, assistant.New(mock), log)
	am := auth.New(s.Users(), []byte("test-secret"), 0)
	return New(s, svc, am, log)
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func registerAndLogin(t *testing.T, srv *Server, username string) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/register", "", map[string]string{
		"username": username, "password": "hunter2",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/login", "", map[string]string{
		"username": username, "password": "hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	token, _ := decode(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/progress", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/progress", "not-a-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d, want 401", rec.Code)
	}
}

func TestRegisterConflictAndBadLogin(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "alice")

	rec := doJSON(t, srv, http.MethodPost, "/api/register", "", map[string]string{
		"username": "alice", "password": "other",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: status = %d, want 401", rec.Code)
	}
}

func TestChallengeWorkflow(t *testing.T) {
	srv := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage("Enhanced prompt text")},
		llm.MockResponse{Content: json.RawMessage("Mentor guidance")},
		llm.MockResponse{Content: json.RawMessage(`{"Recursion": 0.9}`)},
		llm.MockResponse{Content: json.RawMessage("```python\ndef solve():\n    return 1\n```")},
		llm.MockResponse{Content: json.RawMessage("Good effort")},
		llm.MockResponse{Content: json.RawMessage("0.9")},
		llm.MockResponse{Content: json.RawMessage(`{"skills": {}, "quality": 0.7, "strengths": [], "weaknesses": []}`)},
		llm.MockResponse{Content: json.RawMessage(`[{"inputs": [1], "expected_output": 1, "description": "d"}]`)},
	)
	token := registerAndLogin(t, srv, "bob")

	rec := doJSON(t, srv, http.MethodPost, "/api/challenges", token, map[string]any{
		"prompt":   "reverse a string",
		"language": "Python",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("start challenge: status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	challenge := body["challenge"].(map[string]any)
	challengeID := challenge["id"].(string)
	if body["guidance"] != "Mentor guidance" {
		t.Fatalf("unexpected guidance: %v", body["guidance"])
	}

	// The stored challenge never exposes its solution on plain reads.
	rec = doJSON(t, srv, http.MethodGet, "/api/challenges/"+challengeID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get challenge: status = %d", rec.Code)
	}
	if got := decode(t, rec)["solution"]; got != nil && got != "" {
		t.Fatalf("solution leaked on read: %v", got)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/challenges/"+challengeID+"/attempts", token, map[string]any{
		"code":       "def solve():\n    return 1",
		"time_spent": 60,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit attempt: status = %d: %s", rec.Code, rec.Body.String())
	}
	result := decode(t, rec)
	if result["passed"] != true {
		t.Fatalf("expected passed=true: %v", result)
	}
	attempt := result["attempt"].(map[string]any)
	if attempt["attempt_number"].(float64) != 1 {
		t.Fatalf("unexpected attempt number: %v", attempt["attempt_number"])
	}
}

func TestUnknownChallengeIs404(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "carol")

	rec := doJSON(t, srv, http.MethodGet, "/api/challenges/nope", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestBuildPathWithoutHistoryIs404(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "dave")

	rec := doJSON(t, srv, http.MethodPost, "/api/paths", token, map[string]string{
		"language": "Python",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}
