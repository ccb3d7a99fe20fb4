package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/service"
)

func TestCalculateEMI(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		annualRate   float64
		tenureMonths int
		want         float64
		wantErr      bool
	}{
		{
			name:         "zero rate divides principal evenly",
			principal:    120000,
			annualRate:   0,
			tenureMonths: 12,
			want:         10000,
		},
		{
			name:         "standard amortization",
			principal:    100000,
			annualRate:   10,
			tenureMonths: 12,
			want:         8791.59,
		},
		{
			name:         "single installment",
			principal:    5000,
			annualRate:   12,
			tenureMonths: 1,
			want:         5050,
		},
		{
			name:         "zero tenure fails",
			principal:    100000,
			annualRate:   10,
			tenureMonths: 0,
			wantErr:      true,
		},
		{
			name:         "non-finite principal fails",
			principal:    math.Inf(1),
			annualRate:   10,
			tenureMonths: 12,
			wantErr:      true,
		},
		{
			name:         "NaN principal fails",
			principal:    math.NaN(),
			annualRate:   10,
			tenureMonths: 12,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emi, err := service.CalculateEMI(tt.principal, tt.annualRate, tt.tenureMonths)
			if tt.wantErr {
				require.ErrorIs(t, err, service.ErrComputation)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, emi, 0.01)
			assert.False(t, math.IsNaN(emi))
			assert.GreaterOrEqual(t, emi, 0.0)
		})
	}
}

func TestCreateLoanDerivesEMI(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo, nil)

	loan := &models.Loan{
		LoanName:        "Home",
		LoanType:        models.LoanTypeHome,
		TotalLoanAmount: 100000,
		InterestRate:    10,
		TenureMonths:    12,
		StartDate:       fixedNow,
		NextDueDate:     fixedNow.AddDate(0, 1, 0),
		RemainingAmount: 100000,
	}
	require.NoError(t, svc.CreateLoan(context.Background(), 1, loan))
	assert.InDelta(t, 8791.59, loan.EMIAmount, 0.01)
	require.Len(t, repo.createdLoans, 1)
}

func TestCreateLoanKeepsProvidedEMI(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo, nil)

	loan := &models.Loan{
		LoanName:        "Car",
		LoanType:        models.LoanTypeCar,
		TotalLoanAmount: 60000,
		InterestRate:    9,
		TenureMonths:    24,
		EMIAmount:       2700,
		StartDate:       fixedNow,
		NextDueDate:     fixedNow.AddDate(0, 1, 0),
		RemainingAmount: 60000,
	}
	require.NoError(t, svc.CreateLoan(context.Background(), 1, loan))
	assert.Equal(t, 2700.0, loan.EMIAmount)
}

func TestCreateLoanRejectsDegenerateEMI(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo, nil)

	loan := &models.Loan{
		LoanName:        "Broken",
		LoanType:        models.LoanTypeOther,
		TotalLoanAmount: math.Inf(1),
		InterestRate:    10,
		TenureMonths:    12,
		StartDate:       fixedNow,
		NextDueDate:     fixedNow.AddDate(0, 1, 0),
	}
	err := svc.CreateLoan(context.Background(), 1, loan)
	require.ErrorIs(t, err, service.ErrComputation)
	assert.Empty(t, repo.createdLoans, "a degenerate EMI must never be persisted")
}

func TestUpdateLoanOwnership(t *testing.T) {
	repo := &stubRepo{
		loans: []models.Loan{{
			ID: 7, UserID: 2, LoanName: "Home", LoanType: models.LoanTypeHome,
			TotalLoanAmount: 100000, InterestRate: 10, TenureMonths: 12,
			EMIAmount: 8791.59, RemainingAmount: 90000,
			StartDate: fixedNow, NextDueDate: fixedNow.AddDate(0, 1, 0),
		}},
	}
	svc := newTestService(repo, nil)

	_, err := svc.UpdateLoan(context.Background(), 1, 7, &models.Loan{
		LoanName: "Home", LoanType: models.LoanTypeHome,
		TotalLoanAmount: 100000, InterestRate: 10, TenureMonths: 12,
		EMIAmount: 8791.59, RemainingAmount: 80000,
		StartDate: fixedNow, NextDueDate: fixedNow.AddDate(0, 2, 0),
	})
	require.ErrorIs(t, err, service.ErrNotOwner)
}

func TestSendDueLoanReminders(t *testing.T) {
	repo := &stubRepo{
		users: map[int64]*models.User{
			1: {ID: 1, Name: "Asha", Email: "asha@example.com"},
		},
		loans: []models.Loan{
			{ID: 1, UserID: 1, LoanName: "Home", RemainingAmount: 90000, EMIAmount: 8791.59, NextDueDate: fixedNow.AddDate(0, 0, 2)},
			{ID: 2, UserID: 1, LoanName: "Car", RemainingAmount: 0, NextDueDate: fixedNow.AddDate(0, 0, 1)},
			{ID: 3, UserID: 1, LoanName: "Personal", RemainingAmount: 5000, NextDueDate: fixedNow.AddDate(0, 0, 30)},
		},
	}
	sender := &stubSender{}
	svc := newTestService(repo, sender)

	require.NoError(t, svc.SendDueLoanReminders(context.Background()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Home", sender.sent[0].LoanName)
}
