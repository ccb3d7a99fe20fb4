package models

import "time"

// Loan types
const (
	LoanTypeHome      = "Home Loan"
	LoanTypeCar       = "Car Loan"
	LoanTypePersonal  = "Personal Loan"
	LoanTypeEducation = "Education Loan"
	LoanTypeOther     = "Other"
)

// Loan represents an amortizing loan tracked by its EMI schedule
type Loan struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	LoanName          string    `json:"loanName"`
	LoanType          string    `json:"loanType"`
	TotalLoanAmount   float64   `json:"totalLoanAmount"`
	InterestRate      float64   `json:"interestRate"`
	TenureMonths      int       `json:"loanTenureMonths"`
	EMIAmount         float64   `json:"emiAmount"`
	StartDate         time.Time `json:"startDate"`
	NextDueDate       time.Time `json:"nextDueDate"`
	RemainingAmount   float64   `json:"remainingAmount"`
	TotalInterestPaid float64   `json:"totalInterestPaid"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Active reports whether the loan still has an outstanding balance.
// Fully paid-off loans are excluded from every dashboard figure.
func (l Loan) Active() bool {
	return l.RemainingAmount > 0
}
