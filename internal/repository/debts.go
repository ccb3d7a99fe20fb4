package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finboard/finboard/internal/models"
)

// CreateDebt creates a new debt record
func (r *Repository) CreateDebt(ctx context.Context, debt *models.Debt) error {
	query := `
		INSERT INTO finance.debts (user_id, person_name, amount, type, description, category, transaction_date, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		debt.UserID, debt.PersonName, debt.Amount, debt.Type, debt.Description,
		debt.Category, debt.TransactionDate, debt.DueDate, debt.Status).
		Scan(&debt.ID, &debt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

// ListDebts retrieves all debts for a user
func (r *Repository) ListDebts(ctx context.Context, userID int64) ([]models.Debt, error) {
	query := `
		SELECT id, user_id, person_name, amount, type, description, category, transaction_date, due_date, status, created_at
		FROM finance.debts
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		var d models.Debt
		if err := rows.Scan(&d.ID, &d.UserID, &d.PersonName, &d.Amount, &d.Type, &d.Description, &d.Category, &d.TransactionDate, &d.DueDate, &d.Status, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read debts: %w", err)
	}
	return debts, nil
}

// FindDebtByID retrieves a single debt
func (r *Repository) FindDebtByID(ctx context.Context, id int64) (*models.Debt, error) {
	d := &models.Debt{}
	query := `
		SELECT id, user_id, person_name, amount, type, description, category, transaction_date, due_date, status, created_at
		FROM finance.debts
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&d.ID, &d.UserID, &d.PersonName, &d.Amount, &d.Type, &d.Description, &d.Category, &d.TransactionDate, &d.DueDate, &d.Status, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}
	return d, nil
}

// UpdateDebt persists changes to an existing debt
func (r *Repository) UpdateDebt(ctx context.Context, debt *models.Debt) error {
	query := `
		UPDATE finance.debts
		SET person_name = $1, amount = $2, type = $3, description = $4, category = $5, transaction_date = $6, due_date = $7, status = $8
		WHERE id = $9`
	if _, err := r.db.ExecContext(ctx, query,
		debt.PersonName, debt.Amount, debt.Type, debt.Description, debt.Category,
		debt.TransactionDate, debt.DueDate, debt.Status, debt.ID); err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	return nil
}

// DeleteDebt removes a debt record
func (r *Repository) DeleteDebt(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance.debts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	return nil
}
