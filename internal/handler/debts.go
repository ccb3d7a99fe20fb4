package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finboard/finboard/internal/models"
)

// ListDebts returns all debts for the logged-in user
func (h *Handler) ListDebts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	debts, err := h.svc.ListDebts(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if debts == nil {
		debts = []models.Debt{}
	}
	h.writeJSON(w, http.StatusOK, debts)
}

// CreateDebt adds a new debt
func (h *Handler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var debt models.Debt
	if err := json.NewDecoder(r.Body).Decode(&debt); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if debt.PersonName == "" || debt.Type == "" {
		h.writeMessage(w, http.StatusBadRequest, "Please enter all required fields: Person Name, Amount, Type")
		return
	}
	if debt.Type != models.DebtTypeIOwe && debt.Type != models.DebtTypeOwedToMe {
		h.writeMessage(w, http.StatusBadRequest, "Debt type must be 'I Owe' or 'Owed To Me'")
		return
	}
	if debt.Amount < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amount cannot be negative")
		return
	}
	if err := h.svc.CreateDebt(r.Context(), userID, &debt); err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, debt)
}

// UpdateDebt updates an existing debt
func (h *Handler) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.Debt
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Amount < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amount cannot be negative")
		return
	}
	debt, err := h.svc.UpdateDebt(r.Context(), userID, id, &in)
	if err != nil {
		h.writeServiceError(w, err, "Debt not found")
		return
	}
	h.writeJSON(w, http.StatusOK, debt)
}

// DeleteDebt removes a debt
func (h *Handler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteDebt(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, err, "Debt not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "Debt removed")
}
