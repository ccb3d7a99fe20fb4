package models

import "time"

// Saving goal statuses
const (
	GoalStatusActive    = "Active"
	GoalStatusCompleted = "Completed"
)

// SavingGoal represents progress toward a savings target
type SavingGoal struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	GoalName     string    `json:"goalName"`
	Category     string    `json:"category"`
	TargetAmount float64   `json:"targetAmount"`
	CurrentSaved float64   `json:"currentSaved"`
	Deadline     time.Time `json:"deadline"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
