package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/apexridge/roofline/internal/core"
	"github.com/apexridge/roofline/internal/core/assistant"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Generate(ctx context.Context, systemPrompt string, turns []core.Turn) (string, error) {
	return s.response, s.err
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Chat(rr, req)
	return rr
}

func TestChat_MissingMessage(t *testing.T) {
	asst := assistant.New(&stubProvider{response: "hi"}, 10, zerolog.Nop())
	h := NewChatHandler(asst, zerolog.Nop())

	for _, body := range []string{`{}`, `{"message":""}`} {
		rr := postChat(t, h, body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rr.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body %q: invalid JSON response: %v", body, err)
		}
		if resp["error"] != "No message provided" {
			t.Errorf("body %q: error = %q", body, resp["error"])
		}
	}
}

func TestChat_MalformedBody(t *testing.T) {
	asst := assistant.New(&stubProvider{response: "hi"}, 10, zerolog.Nop())
	h := NewChatHandler(asst, zerolog.Nop())

	rr := postChat(t, h, `not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["error"] != "Invalid request body" {
		t.Errorf("error = %q, want distinct malformed-body message", resp["error"])
	}
}

func TestChat_Success(t *testing.T) {
	asst := assistant.New(&stubProvider{response: "We can inspect that leak."}, 10, zerolog.Nop())
	h := NewChatHandler(asst, zerolog.Nop())

	rr := postChat(t, h, `{"message":"my roof leaks","user_info":{"name":"Jo"}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Response != "We can inspect that leak." {
		t.Errorf("response = %q", resp.Response)
	}
	if resp.SessionID == "" {
		t.Error("session_id missing from response")
	}
}

// Provider failures are degraded inside the assistant, so the endpoint
// still answers 200 with the apology text.
func TestChat_ProviderFailureDegrades(t *testing.T) {
	asst := assistant.New(&stubProvider{err: errors.New("api down")}, 10, zerolog.Nop())
	h := NewChatHandler(asst, zerolog.Nop())

	rr := postChat(t, h, `{"message":"hello"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !strings.Contains(resp.Response, "technical difficulties") {
		t.Errorf("response = %q, want degraded apology", resp.Response)
	}
}

func TestChat_SessionContinuity(t *testing.T) {
	asst := assistant.New(&stubProvider{response: "ok"}, 10, zerolog.Nop())
	h := NewChatHandler(asst, zerolog.Nop())

	rr := postChat(t, h, `{"message":"first"}`)
	var first chatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &first); err != nil {
		t.Fatal(err)
	}

	rr = postChat(t, h, `{"message":"second","session_id":"`+first.SessionID+`"}`)
	var second chatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &second); err != nil {
		t.Fatal(err)
	}
	if second.SessionID != first.SessionID {
		t.Errorf("session_id changed: %q -> %q", first.SessionID, second.SessionID)
	}
}
