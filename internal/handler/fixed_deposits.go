package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finboard/finboard/internal/models"
)

// ListFixedDeposits returns all fixed deposits for the logged-in user
func (h *Handler) ListFixedDeposits(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	deposits, err := h.svc.ListFixedDeposits(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if deposits == nil {
		deposits = []models.FixedDeposit{}
	}
	h.writeJSON(w, http.StatusOK, deposits)
}

// CreateFixedDeposit adds a new fixed deposit
func (h *Handler) CreateFixedDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var fd models.FixedDeposit
	if err := json.NewDecoder(r.Body).Decode(&fd); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fd.BankName == "" || fd.StartDate.IsZero() || fd.TenureMonths < 1 {
		h.writeMessage(w, http.StatusBadRequest, "Please enter all required fields: Bank Name, Principal, Rate, Start Date, Tenure")
		return
	}
	if fd.PrincipalAmount < 0 || fd.InterestRate < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amounts cannot be negative")
		return
	}
	if err := h.svc.CreateFixedDeposit(r.Context(), userID, &fd); err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, fd)
}

// UpdateFixedDeposit updates an existing fixed deposit
func (h *Handler) UpdateFixedDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.FixedDeposit
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.PrincipalAmount < 0 || in.InterestRate < 0 || in.TenureMonths < 1 {
		h.writeMessage(w, http.StatusBadRequest, "Invalid fixed deposit details")
		return
	}
	fd, err := h.svc.UpdateFixedDeposit(r.Context(), userID, id, &in)
	if err != nil {
		h.writeServiceError(w, err, "Fixed deposit not found")
		return
	}
	h.writeJSON(w, http.StatusOK, fd)
}

// DeleteFixedDeposit removes a fixed deposit
func (h *Handler) DeleteFixedDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteFixedDeposit(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, err, "Fixed deposit not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "Fixed deposit removed")
}
