package service

import (
	"context"

	"github.com/finboard/finboard/internal/models"
)

// ListLoans returns the user's loans, soonest due first
func (s *Service) ListLoans(ctx context.Context, userID int64) ([]models.Loan, error) {
	return s.repo.ListLoans(ctx, userID)
}

// CreateLoan stores a new loan. When the EMI amount is absent or non-positive
// it is derived from the amortization formula; a degenerate computation
// rejects the loan instead of persisting a bogus installment.
func (s *Service) CreateLoan(ctx context.Context, userID int64, loan *models.Loan) error {
	loan.UserID = userID
	if loan.EMIAmount <= 0 {
		emi, err := CalculateEMI(loan.TotalLoanAmount, loan.InterestRate, loan.TenureMonths)
		if err != nil {
			return err
		}
		loan.EMIAmount = emi
	}
	if err := s.repo.CreateLoan(ctx, loan); err != nil {
		return err
	}
	s.log.Infof("Loan created for user %d: %s (EMI %.2f)", userID, loan.LoanName, loan.EMIAmount)
	return nil
}

// UpdateLoan replaces an existing loan's fields after an ownership check
func (s *Service) UpdateLoan(ctx context.Context, userID, id int64, in *models.Loan) (*models.Loan, error) {
	loan, err := s.repo.FindLoanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loan.UserID != userID {
		return nil, ErrNotOwner
	}

	if in.EMIAmount <= 0 {
		emi, err := CalculateEMI(in.TotalLoanAmount, in.InterestRate, in.TenureMonths)
		if err != nil {
			return nil, err
		}
		in.EMIAmount = emi
	}

	loan.LoanName = in.LoanName
	loan.LoanType = in.LoanType
	loan.TotalLoanAmount = in.TotalLoanAmount
	loan.InterestRate = in.InterestRate
	loan.TenureMonths = in.TenureMonths
	loan.EMIAmount = in.EMIAmount
	loan.StartDate = in.StartDate
	loan.NextDueDate = in.NextDueDate
	loan.RemainingAmount = in.RemainingAmount
	loan.TotalInterestPaid = in.TotalInterestPaid

	if err := s.repo.UpdateLoan(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// DeleteLoan removes a loan after an ownership check
func (s *Service) DeleteLoan(ctx context.Context, userID, id int64) error {
	loan, err := s.repo.FindLoanByID(ctx, id)
	if err != nil {
		return err
	}
	if loan.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.DeleteLoan(ctx, id)
}
