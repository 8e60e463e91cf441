package handler

import (
	"net/http"

	"github.com/colis-timer-api/internal/application/health"
	"github.com/go-chi/chi/v5"
)

const msgDBUnavailable = "Erreur de connexion à la base"

// HealthHandler handles health-check and store probe endpoints.
type HealthHandler struct {
	svc health.Service
}

func NewHealthHandler(svc health.Service) *HealthHandler { return &HealthHandler{svc: svc} }

// Ping answers without touching the store.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	if action == "ping" {
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
		return
	}
	writeError(w, http.StatusBadRequest, "unknown action")
}

// TestDB returns the store clock as {"now": ...}.
func (h *HealthHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	row, err := h.svc.DBTime(r.Context())
	if err != nil {
		storeFailure(w, r, err, msgDBUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, row)
}
