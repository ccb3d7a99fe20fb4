package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finboard/finboard/internal/models"
)

// CreateBankAccount creates a new bank account record
func (r *Repository) CreateBankAccount(ctx context.Context, acc *models.BankAccount) error {
	query := `
		INSERT INTO finance.bank_accounts (user_id, bank_name, account_type, balance, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, acc.UserID, acc.BankName, acc.AccountType, acc.Balance, acc.Currency).
		Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bank account: %w", err)
	}
	return nil
}

// ListBankAccounts retrieves all bank accounts for a user
func (r *Repository) ListBankAccounts(ctx context.Context, userID int64) ([]models.BankAccount, error) {
	query := `
		SELECT id, user_id, bank_name, account_type, balance, currency, created_at
		FROM finance.bank_accounts
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.BankAccount
	for rows.Next() {
		var acc models.BankAccount
		if err := rows.Scan(&acc.ID, &acc.UserID, &acc.BankName, &acc.AccountType, &acc.Balance, &acc.Currency, &acc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bank account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bank accounts: %w", err)
	}
	return accounts, nil
}

// FindBankAccountByID retrieves a single bank account
func (r *Repository) FindBankAccountByID(ctx context.Context, id int64) (*models.BankAccount, error) {
	acc := &models.BankAccount{}
	query := `
		SELECT id, user_id, bank_name, account_type, balance, currency, created_at
		FROM finance.bank_accounts
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&acc.ID, &acc.UserID, &acc.BankName, &acc.AccountType, &acc.Balance, &acc.Currency, &acc.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bank account: %w", err)
	}
	return acc, nil
}

// UpdateBankAccount persists changes to an existing bank account
func (r *Repository) UpdateBankAccount(ctx context.Context, acc *models.BankAccount) error {
	query := `
		UPDATE finance.bank_accounts
		SET bank_name = $1, account_type = $2, balance = $3, currency = $4
		WHERE id = $5`
	if _, err := r.db.ExecContext(ctx, query, acc.BankName, acc.AccountType, acc.Balance, acc.Currency, acc.ID); err != nil {
		return fmt.Errorf("failed to update bank account: %w", err)
	}
	return nil
}

// DeleteBankAccount removes a bank account record
func (r *Repository) DeleteBankAccount(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance.bank_accounts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete bank account: %w", err)
	}
	return nil
}
