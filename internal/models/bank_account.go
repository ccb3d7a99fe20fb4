package models

import "time"

// Account types
const (
	AccountTypeSavings  = "Savings"
	AccountTypeCurrent  = "Current"
	AccountTypeChecking = "Checking"
	AccountTypeOther    = "Other"
)

// BankAccount represents a user's bank account
type BankAccount struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	BankName    string    `json:"bankName"`
	AccountType string    `json:"accountType"`
	Balance     float64   `json:"balance"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}
