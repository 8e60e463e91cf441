package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// storeFailure logs err and answers 500 with a fixed plain-text message.
// Clients never see the underlying cause.
func storeFailure(w http.ResponseWriter, r *http.Request, err error, msg string) {
	fields := logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		fields["request_id"] = id
	}
	var coded interface{ SQLState() string }
	if errors.As(err, &coded) && coded.SQLState() != "" {
		fields["sqlstate"] = coded.SQLState()
	}
	logrus.WithFields(fields).WithError(err).Error(msg)
	http.Error(w, msg, http.StatusInternalServerError)
}
