package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/finboard/finboard/internal/middleware"
	"github.com/finboard/finboard/internal/repository"
	"github.com/finboard/finboard/internal/service"
)

// Handler exposes the HTTP surface of the service
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"message": message})
}

// serverError logs the full error and returns a generic message. No internal
// detail crosses the boundary.
func (h *Handler) serverError(w http.ResponseWriter, err error) {
	h.log.Errorf("Server error: %v", err)
	h.writeMessage(w, http.StatusInternalServerError, "Server error")
}

// writeServiceError maps the service error taxonomy onto HTTP statuses
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.writeMessage(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrNotOwner):
		h.writeMessage(w, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, service.ErrComputation):
		h.writeMessage(w, http.StatusBadRequest, "Could not calculate EMI. Check loan details.")
	default:
		h.serverError(w, err)
	}
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeMessage(w, http.StatusUnauthorized, "Not authorized")
		return 0, false
	}
	return userID, true
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

type authRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		h.writeMessage(w, http.StatusBadRequest, "Please enter all required fields: Name, Email, Password")
		return
	}

	user, token, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			h.writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   token,
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
	})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		h.writeMessage(w, http.StatusBadRequest, "Please enter email and password")
		return
	}

	user, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.writeMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, authResponse{
		Message: "Logged in successfully",
		Token:   token,
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
	})
}

// DashboardSummary returns the consolidated dashboard payload
func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	data, err := h.svc.DashboardSummary(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, data)
}
