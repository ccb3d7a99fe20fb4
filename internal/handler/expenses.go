package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finboard/finboard/internal/models"
)

// ListExpenses returns all expenses for the logged-in user, newest first
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	expenses, err := h.svc.ListExpenses(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	h.writeJSON(w, http.StatusOK, expenses)
}

// CreateExpense adds a new expense
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var exp models.Expense
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if exp.Category == "" || exp.Description == "" {
		h.writeMessage(w, http.StatusBadRequest, "Please enter all required fields: Amount, Category, Description")
		return
	}
	if exp.Amount < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amount cannot be negative")
		return
	}
	if err := h.svc.CreateExpense(r.Context(), userID, &exp); err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, exp)
}

// UpdateExpense updates an existing expense
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.Expense
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Amount < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amount cannot be negative")
		return
	}
	exp, err := h.svc.UpdateExpense(r.Context(), userID, id, &in)
	if err != nil {
		h.writeServiceError(w, err, "Expense not found")
		return
	}
	h.writeJSON(w, http.StatusOK, exp)
}

// DeleteExpense removes an expense
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteExpense(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, err, "Expense not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "Expense removed")
}
