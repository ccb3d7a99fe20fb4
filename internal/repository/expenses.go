package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finboard/finboard/internal/models"
)

// CreateExpense creates a new expense record
func (r *Repository) CreateExpense(ctx context.Context, exp *models.Expense) error {
	query := `
		INSERT INTO finance.expenses (user_id, amount, category, description, transaction_date, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		exp.UserID, exp.Amount, exp.Category, exp.Description, exp.TransactionDate, exp.Source).
		Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses for a user, newest first
func (r *Repository) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, description, transaction_date, source, created_at
		FROM finance.expenses
		WHERE user_id = $1
		ORDER BY transaction_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.ID, &exp.UserID, &exp.Amount, &exp.Category, &exp.Description, &exp.TransactionDate, &exp.Source, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}
	return expenses, nil
}

// FindExpenseByID retrieves a single expense
func (r *Repository) FindExpenseByID(ctx context.Context, id int64) (*models.Expense, error) {
	exp := &models.Expense{}
	query := `
		SELECT id, user_id, amount, category, description, transaction_date, source, created_at
		FROM finance.expenses
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&exp.ID, &exp.UserID, &exp.Amount, &exp.Category, &exp.Description, &exp.TransactionDate, &exp.Source, &exp.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return exp, nil
}

// UpdateExpense persists changes to an existing expense
func (r *Repository) UpdateExpense(ctx context.Context, exp *models.Expense) error {
	query := `
		UPDATE finance.expenses
		SET amount = $1, category = $2, description = $3, transaction_date = $4, source = $5
		WHERE id = $6`
	if _, err := r.db.ExecContext(ctx, query,
		exp.Amount, exp.Category, exp.Description, exp.TransactionDate, exp.Source, exp.ID); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense record
func (r *Repository) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance.expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
