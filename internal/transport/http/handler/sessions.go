package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/colis-timer-api/internal/application/session"
	"github.com/colis-timer-api/internal/domain"
)

const (
	msgListSessions        = "Erreur lors de la récupération des sessions"
	msgListSessionDetails  = "Erreur lors de la récupération des sessions détaillées"
	msgCreateSessionFailed = "Erreur lors de l'ajout de la session"
)

// SessionHandler handles work-session endpoints.
type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		storeFailure(w, r, err, msgListSessions)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *SessionHandler) ListDetailed(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ListDetailed(r.Context())
	if err != nil {
		storeFailure(w, r, err, msgListSessionDetails)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// Create records a session and echoes the stored row with 201.
// An unreadable body gets the same 400 as a missing field.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgSessionFieldsRequired)
		return
	}
	row, err := h.svc.Create(r.Context(), req)
	if errors.Is(err, domain.ErrBadRequest) {
		writeError(w, http.StatusBadRequest, domain.MsgSessionFieldsRequired)
		return
	}
	if err != nil {
		storeFailure(w, r, err, msgCreateSessionFailed)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}
