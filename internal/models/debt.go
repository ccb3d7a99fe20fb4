package models

import "time"

// Debt directions
const (
	DebtTypeIOwe     = "I Owe"
	DebtTypeOwedToMe = "Owed To Me"
)

// Debt statuses
const (
	DebtStatusPending = "Pending"
	DebtStatusPaid    = "Paid"
)

// Debt represents money owed to or by another person
type Debt struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"userId"`
	PersonName      string     `json:"personName"`
	Amount          float64    `json:"amount"`
	Type            string     `json:"type"`
	Description     string     `json:"description,omitempty"`
	Category        string     `json:"category"`
	TransactionDate time.Time  `json:"transactionDate"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}
