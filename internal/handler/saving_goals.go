package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finboard/finboard/internal/models"
)

// ListSavingGoals returns all saving goals for the logged-in user
func (h *Handler) ListSavingGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	goals, err := h.svc.ListSavingGoals(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if goals == nil {
		goals = []models.SavingGoal{}
	}
	h.writeJSON(w, http.StatusOK, goals)
}

// CreateSavingGoal adds a new saving goal
func (h *Handler) CreateSavingGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var goal models.SavingGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if goal.GoalName == "" || goal.Deadline.IsZero() {
		h.writeMessage(w, http.StatusBadRequest, "Please enter all required fields: Goal Name, Category, Target Amount, Deadline")
		return
	}
	if goal.TargetAmount < 0 || goal.CurrentSaved < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amounts cannot be negative")
		return
	}
	if err := h.svc.CreateSavingGoal(r.Context(), userID, &goal); err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, goal)
}

// UpdateSavingGoal updates an existing saving goal
func (h *Handler) UpdateSavingGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.SavingGoal
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.TargetAmount < 0 || in.CurrentSaved < 0 {
		h.writeMessage(w, http.StatusBadRequest, "Amounts cannot be negative")
		return
	}
	goal, err := h.svc.UpdateSavingGoal(r.Context(), userID, id, &in)
	if err != nil {
		h.writeServiceError(w, err, "Saving goal not found")
		return
	}
	h.writeJSON(w, http.StatusOK, goal)
}

// DeleteSavingGoal removes a saving goal
func (h *Handler) DeleteSavingGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteSavingGoal(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, err, "Saving goal not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "Saving goal removed")
}
