package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finboard/finboard/internal/models"
)

// CreateInvestment creates a new investment record
func (r *Repository) CreateInvestment(ctx context.Context, inv *models.Investment) error {
	query := `
		INSERT INTO finance.investments (user_id, stock_name, quantity, avg_buy_price, current_market_price, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, inv.UserID, inv.StockName, inv.Quantity, inv.AvgBuyPrice, inv.CurrentMarketPrice, inv.PurchaseDate).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

// ListInvestments retrieves all investments for a user
func (r *Repository) ListInvestments(ctx context.Context, userID int64) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, stock_name, quantity, avg_buy_price, current_market_price, purchase_date, created_at
		FROM finance.investments
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var investments []models.Investment
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.StockName, &inv.Quantity, &inv.AvgBuyPrice, &inv.CurrentMarketPrice, &inv.PurchaseDate, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read investments: %w", err)
	}
	return investments, nil
}

// FindInvestmentByID retrieves a single investment
func (r *Repository) FindInvestmentByID(ctx context.Context, id int64) (*models.Investment, error) {
	inv := &models.Investment{}
	query := `
		SELECT id, user_id, stock_name, quantity, avg_buy_price, current_market_price, purchase_date, created_at
		FROM finance.investments
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&inv.ID, &inv.UserID, &inv.StockName, &inv.Quantity, &inv.AvgBuyPrice, &inv.CurrentMarketPrice, &inv.PurchaseDate, &inv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}
	return inv, nil
}

// UpdateInvestment persists changes to an existing investment
func (r *Repository) UpdateInvestment(ctx context.Context, inv *models.Investment) error {
	query := `
		UPDATE finance.investments
		SET stock_name = $1, quantity = $2, avg_buy_price = $3, current_market_price = $4, purchase_date = $5
		WHERE id = $6`
	if _, err := r.db.ExecContext(ctx, query, inv.StockName, inv.Quantity, inv.AvgBuyPrice, inv.CurrentMarketPrice, inv.PurchaseDate, inv.ID); err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}
	return nil
}

// DeleteInvestment removes an investment record
func (r *Repository) DeleteInvestment(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance.investments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	return nil
}
