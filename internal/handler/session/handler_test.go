package session

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mentorlab/coachdesk/internal/model/coach"
	"github.com/mentorlab/coachdesk/internal/service/roster"
	sessionservice "github.com/mentorlab/coachdesk/internal/service/session"
	"github.com/mentorlab/coachdesk/internal/store"
)

func setupRouter() *chi.Mux {
	svc := sessionservice.NewService(store.NewMemoryStore(), roster.DefaultPolicy(), nil)
	handler := New(svc, coach.NewCatalog(coach.Seed()))

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestStartSessionValid(t *testing.T) {
	r := setupRouter()

	resp := postJSON(t, r, "/start_session", map[string]string{
		"ageGroup":   "Grade 6-8",
		"mentorRole": "Motivation Coach",
		"tone":       "Calm",
		"language":   "English",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var state struct {
		SessionID string `json:"sessionId"`
		Coach     string `json:"coach"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if state.Coach != string(coach.NameTara) {
		t.Fatalf("unexpected coach: %s", state.Coach)
	}
}

func TestStartSessionUnknownAgeGroup(t *testing.T) {
	r := setupRouter()

	resp := postJSON(t, r, "/start_session", map[string]string{
		"ageGroup":   "Preschool",
		"mentorRole": "Motivation Coach",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatUnknownSession(t *testing.T) {
	r := setupRouter()

	resp := postJSON(t, r, "/chat", map[string]string{
		"sessionId": "missing",
		"message":   "hello",
	})

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestChatRoundTrip(t *testing.T) {
	r := setupRouter()

	created := postJSON(t, r, "/start_session", map[string]string{
		"ageGroup":   "Grade 9-12",
		"mentorRole": "Exam Strategist",
		"tone":       "Direct",
		"language":   "English",
	})
	var state struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(created.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	resp := postJSON(t, r, "/chat", map[string]string{
		"sessionId": state.SessionID,
		"message":   "I procrastinate",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var chat struct {
		Coach string `json:"coach"`
		Reply string `json:"reply"`
		Turns int    `json:"turns"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &chat); err != nil {
		t.Fatalf("decode chat response: %v", err)
	}
	if chat.Turns != 2 {
		t.Fatalf("expected 2 turns, got %d", chat.Turns)
	}
	if chat.Reply == "" {
		t.Fatal("expected a non-empty reply")
	}
}

func TestSwitchCoachUnknownSession(t *testing.T) {
	r := setupRouter()

	resp := postJSON(t, r, "/switch_coach", map[string]string{
		"sessionId":  "missing",
		"mentorRole": "Exam Strategist",
	})

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListCoaches(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/coaches", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var coaches []coach.Profile
	if err := json.Unmarshal(resp.Body.Bytes(), &coaches); err != nil {
		t.Fatalf("decode coaches: %v", err)
	}
	if len(coaches) != 2 {
		t.Fatalf("expected 2 coaches, got %d", len(coaches))
	}
}
