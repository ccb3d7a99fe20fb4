package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finboard/finboard/internal/models"
)

// CreateFixedDeposit creates a new fixed deposit record
func (r *Repository) CreateFixedDeposit(ctx context.Context, fd *models.FixedDeposit) error {
	query := `
		INSERT INTO finance.fixed_deposits (user_id, bank_name, principal_amount, interest_rate, start_date, tenure_months, fd_account_number, compounding_frequency, interest_payout, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		fd.UserID, fd.BankName, fd.PrincipalAmount, fd.InterestRate, fd.StartDate,
		fd.TenureMonths, fd.FDAccountNumber, fd.CompoundingFrequency, fd.InterestPayout).
		Scan(&fd.ID, &fd.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fixed deposit: %w", err)
	}
	return nil
}

// ListFixedDeposits retrieves all fixed deposits for a user
func (r *Repository) ListFixedDeposits(ctx context.Context, userID int64) ([]models.FixedDeposit, error) {
	query := `
		SELECT id, user_id, bank_name, principal_amount, interest_rate, start_date, tenure_months, fd_account_number, compounding_frequency, interest_payout, created_at
		FROM finance.fixed_deposits
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed deposits: %w", err)
	}
	defer rows.Close()

	var deposits []models.FixedDeposit
	for rows.Next() {
		var fd models.FixedDeposit
		if err := rows.Scan(&fd.ID, &fd.UserID, &fd.BankName, &fd.PrincipalAmount, &fd.InterestRate, &fd.StartDate, &fd.TenureMonths, &fd.FDAccountNumber, &fd.CompoundingFrequency, &fd.InterestPayout, &fd.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fixed deposit: %w", err)
		}
		deposits = append(deposits, fd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixed deposits: %w", err)
	}
	return deposits, nil
}

// FindFixedDepositByID retrieves a single fixed deposit
func (r *Repository) FindFixedDepositByID(ctx context.Context, id int64) (*models.FixedDeposit, error) {
	fd := &models.FixedDeposit{}
	query := `
		SELECT id, user_id, bank_name, principal_amount, interest_rate, start_date, tenure_months, fd_account_number, compounding_frequency, interest_payout, created_at
		FROM finance.fixed_deposits
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&fd.ID, &fd.UserID, &fd.BankName, &fd.PrincipalAmount, &fd.InterestRate, &fd.StartDate, &fd.TenureMonths, &fd.FDAccountNumber, &fd.CompoundingFrequency, &fd.InterestPayout, &fd.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find fixed deposit: %w", err)
	}
	return fd, nil
}

// UpdateFixedDeposit persists changes to an existing fixed deposit
func (r *Repository) UpdateFixedDeposit(ctx context.Context, fd *models.FixedDeposit) error {
	query := `
		UPDATE finance.fixed_deposits
		SET bank_name = $1, principal_amount = $2, interest_rate = $3, start_date = $4, tenure_months = $5, fd_account_number = $6, compounding_frequency = $7, interest_payout = $8
		WHERE id = $9`
	if _, err := r.db.ExecContext(ctx, query,
		fd.BankName, fd.PrincipalAmount, fd.InterestRate, fd.StartDate, fd.TenureMonths,
		fd.FDAccountNumber, fd.CompoundingFrequency, fd.InterestPayout, fd.ID); err != nil {
		return fmt.Errorf("failed to update fixed deposit: %w", err)
	}
	return nil
}

// DeleteFixedDeposit removes a fixed deposit record
func (r *Repository) DeleteFixedDeposit(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance.fixed_deposits WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete fixed deposit: %w", err)
	}
	return nil
}
