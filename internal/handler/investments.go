package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finboard/finboard/internal/models"
)

// ListInvestments returns all investments for the logged-in user
func (h *Handler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	investments, err := h.svc.ListInvestments(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if investments == nil {
		investments = []models.Investment{}
	}
	h.writeJSON(w, http.StatusOK, investments)
}

// CreateInvestment adds a new investment
func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var inv models.Investment
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if inv.StockName == "" {
		h.writeMessage(w, http.StatusBadRequest, "Please enter all required fields: Stock Name, Quantity, Buy Price, Market Price")
		return
	}
	if inv.Quantity < 0 || inv.AvgBuyPrice < 0 || inv.CurrentMarketPrice < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amounts cannot be negative")
		return
	}
	if err := h.svc.CreateInvestment(r.Context(), userID, &inv); err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, inv)
}

// UpdateInvestment updates an existing investment
func (h *Handler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.Investment
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Quantity < 0 || in.AvgBuyPrice < 0 || in.CurrentMarketPrice < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amounts cannot be negative")
		return
	}
	inv, err := h.svc.UpdateInvestment(r.Context(), userID, id, &in)
	if err != nil {
		h.writeServiceError(w, err, "Investment not found")
		return
	}
	h.writeJSON(w, http.StatusOK, inv)
}

// DeleteInvestment removes an investment
func (h *Handler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteInvestment(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, err, "Investment not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "Investment removed")
}
