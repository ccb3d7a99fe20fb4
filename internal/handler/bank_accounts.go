package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finboard/finboard/internal/models"
)

// ListBankAccounts returns all bank accounts for the logged-in user
func (h *Handler) ListBankAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	accounts, err := h.svc.ListBankAccounts(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if accounts == nil {
		accounts = []models.BankAccount{}
	}
	h.writeJSON(w, http.StatusOK, accounts)
}

// CreateBankAccount adds a new bank account
func (h *Handler) CreateBankAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var acc models.BankAccount
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if acc.BankName == "" {
		h.writeMessage(w, http.StatusBadRequest, "Please enter all required fields: Bank Name, Account Type, Balance")
		return
	}
	if acc.Balance < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Balance cannot be negative")
		return
	}
	if err := h.svc.CreateBankAccount(r.Context(), userID, &acc); err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, acc)
}

// UpdateBankAccount updates an existing bank account
func (h *Handler) UpdateBankAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.BankAccount
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Balance < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Balance cannot be negative")
		return
	}
	acc, err := h.svc.UpdateBankAccount(r.Context(), userID, id, &in)
	if err != nil {
		h.writeServiceError(w, err, "Bank account not found")
		return
	}
	h.writeJSON(w, http.StatusOK, acc)
}

// DeleteBankAccount removes a bank account
func (h *Handler) DeleteBankAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteBankAccount(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, err, "Bank account not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "Bank account removed")
}
