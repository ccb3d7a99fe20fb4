package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finboard/finboard/internal/models"
)

// CreateSavingGoal creates a new saving goal record
func (r *Repository) CreateSavingGoal(ctx context.Context, goal *models.SavingGoal) error {
	query := `
		INSERT INTO finance.saving_goals (user_id, goal_name, category, target_amount, current_saved, deadline, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		goal.UserID, goal.GoalName, goal.Category, goal.TargetAmount, goal.CurrentSaved, goal.Deadline, goal.Status).
		Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create saving goal: %w", err)
	}
	return nil
}

// ListSavingGoals retrieves all saving goals for a user, nearest deadline first
func (r *Repository) ListSavingGoals(ctx context.Context, userID int64) ([]models.SavingGoal, error) {
	query := `
		SELECT id, user_id, goal_name, category, target_amount, current_saved, deadline, status, created_at
		FROM finance.saving_goals
		WHERE user_id = $1
		ORDER BY deadline ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving goals: %w", err)
	}
	defer rows.Close()

	var goals []models.SavingGoal
	for rows.Next() {
		var g models.SavingGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.GoalName, &g.Category, &g.TargetAmount, &g.CurrentSaved, &g.Deadline, &g.Status, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saving goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read saving goals: %w", err)
	}
	return goals, nil
}

// FindSavingGoalByID retrieves a single saving goal
func (r *Repository) FindSavingGoalByID(ctx context.Context, id int64) (*models.SavingGoal, error) {
	g := &models.SavingGoal{}
	query := `
		SELECT id, user_id, goal_name, category, target_amount, current_saved, deadline, status, created_at
		FROM finance.saving_goals
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&g.ID, &g.UserID, &g.GoalName, &g.Category, &g.TargetAmount, &g.CurrentSaved, &g.Deadline, &g.Status, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find saving goal: %w", err)
	}
	return g, nil
}

// UpdateSavingGoal persists changes to an existing saving goal
func (r *Repository) UpdateSavingGoal(ctx context.Context, goal *models.SavingGoal) error {
	query := `
		UPDATE finance.saving_goals
		SET goal_name = $1, category = $2, target_amount = $3, current_saved = $4, deadline = $5, status = $6
		WHERE id = $7`
	if _, err := r.db.ExecContext(ctx, query,
		goal.GoalName, goal.Category, goal.TargetAmount, goal.CurrentSaved, goal.Deadline, goal.Status, goal.ID); err != nil {
		return fmt.Errorf("failed to update saving goal: %w", err)
	}
	return nil
}

// DeleteSavingGoal removes a saving goal record
func (r *Repository) DeleteSavingGoal(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance.saving_goals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete saving goal: %w", err)
	}
	return nil
}
