package models

import "time"

// Expense sources
const (
	ExpenseSourceManual    = "Manual"
	ExpenseSourceAutomated = "Automated"
)

// Expense represents a single spend, entered manually or ingested upstream
type Expense struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate"`
	Source          string    `json:"source"`
	CreatedAt       time.Time `json:"createdAt"`
}
