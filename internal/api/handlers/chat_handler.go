package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/apexridge/roofline/internal/core/assistant"
)

type ChatHandler struct {
	assistant *assistant.Assistant
	log       zerolog.Logger
}

func NewChatHandler(asst *assistant.Assistant, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{assistant: asst, log: log}
}

type chatRequest struct {
	Message   string            `json:"message"`
	UserInfo  map[string]string `json:"user_info"`
	SessionID string            `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// Chat handles chatbot interactions from the landing page widget.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Error().Interface("panic", rec).Msg("chat handler panicked")
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "Sorry, I'm having trouble right now. Please try again.",
			})
		}
	}()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A body we cannot parse is the caller's mistake, not an internal
		// failure, so it gets its own 400 rather than the 500 apology.
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No message provided"})
		return
	}

	reply, sid := h.assistant.Respond(r.Context(), req.SessionID, req.Message, req.UserInfo)
	writeJSON(w, http.StatusOK, chatResponse{Response: reply, SessionID: sid})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
