package handler

import (
	"net/http"

	"github.com/colis-timer-api/internal/application/employee"
	"github.com/colis-timer-api/internal/application/supermarket"
)

const (
	msgListSupermarkets = "Erreur lors de la récupération des supermarchés"
	msgListEmployees    = "Erreur lors de la récupération des employés"
)

// SupermarketHandler serves the read-only supermarket list.
type SupermarketHandler struct {
	svc supermarket.Service
}

func NewSupermarketHandler(svc supermarket.Service) *SupermarketHandler {
	return &SupermarketHandler{svc: svc}
}

func (h *SupermarketHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		storeFailure(w, r, err, msgListSupermarkets)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// EmployeeHandler serves the read-only employee list.
type EmployeeHandler struct {
	svc employee.Service
}

func NewEmployeeHandler(svc employee.Service) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		storeFailure(w, r, err, msgListEmployees)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
