package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/finboard/finboard/internal/models"
)

type loanRequest struct {
	LoanName          string     `json:"loanName"`
	LoanType          string     `json:"loanType"`
	TotalLoanAmount   *float64   `json:"totalLoanAmount"`
	InterestRate      *float64   `json:"interestRate"`
	LoanTenureMonths  *int       `json:"loanTenureMonths"`
	EMIAmount         *float64   `json:"emiAmount"`
	StartDate         *time.Time `json:"startDate"`
	NextDueDate       *time.Time `json:"nextDueDate"`
	RemainingAmount   *float64   `json:"remainingAmount"`
	TotalInterestPaid *float64   `json:"totalInterestPaid"`
}

// toModel resolves optional fields the way the API contract defines them:
// a missing remainingAmount means the full loan amount is still owed.
func (req loanRequest) toModel() *models.Loan {
	loan := &models.Loan{
		LoanName:        req.LoanName,
		LoanType:        req.LoanType,
		TotalLoanAmount: *req.TotalLoanAmount,
		InterestRate:    *req.InterestRate,
		TenureMonths:    *req.LoanTenureMonths,
		StartDate:       *req.StartDate,
		NextDueDate:     *req.NextDueDate,
	}
	if req.EMIAmount != nil {
		loan.EMIAmount = *req.EMIAmount
	}
	if req.RemainingAmount != nil {
		loan.RemainingAmount = *req.RemainingAmount
	} else {
		loan.RemainingAmount = loan.TotalLoanAmount
	}
	if req.TotalInterestPaid != nil {
		loan.TotalInterestPaid = *req.TotalInterestPaid
	}
	return loan
}

func (req loanRequest) validate() string {
	if req.LoanName == "" || req.LoanType == "" || req.TotalLoanAmount == nil ||
		req.InterestRate == nil || req.LoanTenureMonths == nil ||
		req.StartDate == nil || req.NextDueDate == nil {
		return "Please enter all required fields: Loan Name, Type, Amount, Rate, Tenure, Start Date, Next Due Date"
	}
	if *req.TotalLoanAmount < 0 || *req.InterestRate < 0 {
		return "Amounts cannot be negative"
	}
	if *req.LoanTenureMonths < 1 {
		return "Loan tenure must be at least 1 month"
	}
	if req.RemainingAmount != nil && *req.RemainingAmount < 0 {
		return "Remaining amount cannot be negative"
	}
	return ""
}

// ListLoans returns all loans for the logged-in user, soonest due first
func (h *Handler) ListLoans(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	loans, err := h.svc.ListLoans(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if loans == nil {
		loans = []models.Loan{}
	}
	h.writeJSON(w, http.StatusOK, loans)
}

// CreateLoan adds a new loan, deriving the EMI when the client omits it
func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		h.writeMessage(w, http.StatusBadRequest, msg)
		return
	}
	loan := req.toModel()
	if err := h.svc.CreateLoan(r.Context(), userID, loan); err != nil {
		h.writeServiceError(w, err, "Loan not found")
		return
	}
	h.writeJSON(w, http.StatusCreated, loan)
}

// UpdateLoan updates an existing loan
func (h *Handler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		h.writeMessage(w, http.StatusBadRequest, msg)
		return
	}
	loan, err := h.svc.UpdateLoan(r.Context(), userID, id, req.toModel())
	if err != nil {
		h.writeServiceError(w, err, "Loan not found")
		return
	}
	h.writeJSON(w, http.StatusOK, loan)
}

// DeleteLoan removes a loan
func (h *Handler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.svc.DeleteLoan(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, err, "Loan not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "Loan removed")
}
