package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/finboard/finboard/internal/models"
)

const loanColumns = `id, user_id, loan_name, loan_type, total_loan_amount, interest_rate, tenure_months, emi_amount, start_date, next_due_date, remaining_amount, total_interest_paid, created_at`

func scanLoan(rows *sql.Rows) (models.Loan, error) {
	var l models.Loan
	err := rows.Scan(&l.ID, &l.UserID, &l.LoanName, &l.LoanType, &l.TotalLoanAmount, &l.InterestRate, &l.TenureMonths, &l.EMIAmount, &l.StartDate, &l.NextDueDate, &l.RemainingAmount, &l.TotalInterestPaid, &l.CreatedAt)
	return l, err
}

// CreateLoan creates a new loan record
func (r *Repository) CreateLoan(ctx context.Context, loan *models.Loan) error {
	query := `
		INSERT INTO finance.loans (user_id, loan_name, loan_type, total_loan_amount, interest_rate, tenure_months, emi_amount, start_date, next_due_date, remaining_amount, total_interest_paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		loan.UserID, loan.LoanName, loan.LoanType, loan.TotalLoanAmount, loan.InterestRate,
		loan.TenureMonths, loan.EMIAmount, loan.StartDate, loan.NextDueDate,
		loan.RemainingAmount, loan.TotalInterestPaid).
		Scan(&loan.ID, &loan.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

// ListLoans retrieves all loans for a user, soonest due first
func (r *Repository) ListLoans(ctx context.Context, userID int64) ([]models.Loan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.loans
		WHERE user_id = $1
		ORDER BY next_due_date ASC`, loanColumns)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read loans: %w", err)
	}
	return loans, nil
}

// ListLoansDueBetween retrieves outstanding loans across all users whose next
// due date falls inside the window. Used by the reminder job.
func (r *Repository) ListLoansDueBetween(ctx context.Context, start, end time.Time) ([]models.Loan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.loans
		WHERE remaining_amount > 0 AND next_due_date >= $1 AND next_due_date <= $2
		ORDER BY next_due_date ASC`, loanColumns)
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list due loans: %w", err)
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read due loans: %w", err)
	}
	return loans, nil
}

// FindLoanByID retrieves a single loan
func (r *Repository) FindLoanByID(ctx context.Context, id int64) (*models.Loan, error) {
	l := &models.Loan{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM finance.loans
		WHERE id = $1`, loanColumns)
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&l.ID, &l.UserID, &l.LoanName, &l.LoanType, &l.TotalLoanAmount, &l.InterestRate, &l.TenureMonths, &l.EMIAmount, &l.StartDate, &l.NextDueDate, &l.RemainingAmount, &l.TotalInterestPaid, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}
	return l, nil
}

// UpdateLoan persists changes to an existing loan
func (r *Repository) UpdateLoan(ctx context.Context, loan *models.Loan) error {
	query := `
		UPDATE finance.loans
		SET loan_name = $1, loan_type = $2, total_loan_amount = $3, interest_rate = $4, tenure_months = $5, emi_amount = $6, start_date = $7, next_due_date = $8, remaining_amount = $9, total_interest_paid = $10
		WHERE id = $11`
	if _, err := r.db.ExecContext(ctx, query,
		loan.LoanName, loan.LoanType, loan.TotalLoanAmount, loan.InterestRate, loan.TenureMonths,
		loan.EMIAmount, loan.StartDate, loan.NextDueDate, loan.RemainingAmount, loan.TotalInterestPaid,
		loan.ID); err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	return nil
}

// DeleteLoan removes a loan record
func (r *Repository) DeleteLoan(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance.loans WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	return nil
}
