package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finboard/finboard/internal/models"
)

// accumulate folds amount into the distribution under key, summing on repeats.
// Every chart breakdown goes through this single fold.
func accumulate(dist map[string]float64, key string, amount float64) {
	dist[key] += amount
}

// monthWindow returns the inclusive bounds of now's calendar month: midnight
// on the first day through the last instant of the last day, in now's location.
func monthWindow(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return first, last
}

// DashboardSummary fetches the user's seven record collections concurrently
// and reduces them into the consolidated summary and chart payload. Any
// failed fetch fails the whole aggregation; there is no partial summary.
func (s *Service) DashboardSummary(ctx context.Context, userID int64) (*models.DashboardData, error) {
	var (
		accounts    []models.BankAccount
		investments []models.Investment
		deposits    []models.FixedDeposit
		loans       []models.Loan
		debts       []models.Debt
		expenses    []models.Expense
		goals       []models.SavingGoal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		accounts, err = s.repo.ListBankAccounts(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		investments, err = s.repo.ListInvestments(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		deposits, err = s.repo.ListFixedDeposits(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		loans, err = s.repo.ListLoans(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		debts, err = s.repo.ListDebts(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.repo.ListExpenses(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		goals, err = s.repo.ListSavingGoals(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard fetch failed for user %d: %w", userID, err)
	}

	var summary models.DashboardSummary
	charts := models.ChartsData{
		ExpenseCategoryBreakdown: make(map[string]float64),
		InvestmentDistribution:   make(map[string]float64),
		BankBalanceDistribution:  make(map[string]float64),
		FDPrincipalDistribution:  make(map[string]float64),
		LoanTypeOutstanding:      make(map[string]float64),
		DebtBreakdown: map[string]float64{
			models.DebtTypeIOwe:     0,
			models.DebtTypeOwedToMe: 0,
		},
		SavingGoalProgress: make(map[string]models.GoalProgress),
	}

	for _, acc := range accounts {
		summary.TotalBankBalance += acc.Balance
		accumulate(charts.BankBalanceDistribution, acc.BankName, acc.Balance)
	}

	for _, inv := range investments {
		value := inv.CurrentValue()
		summary.TotalInvestmentValue += value
		accumulate(charts.InvestmentDistribution, inv.StockName, value)
	}

	for _, fd := range deposits {
		summary.TotalFDMaturityValue += fd.MaturityValue()
		summary.TotalFDPrincipal += fd.PrincipalAmount
		accumulate(charts.FDPrincipalDistribution, fd.BankName, fd.PrincipalAmount)
	}

	for _, loan := range loans {
		if !loan.Active() {
			continue
		}
		summary.TotalOutstandingLoans += loan.RemainingAmount
		summary.TotalMonthlyEMIOutflow += loan.EMIAmount
		accumulate(charts.LoanTypeOutstanding, loan.LoanType, loan.RemainingAmount)
	}

	for _, debt := range debts {
		if debt.Status != models.DebtStatusPending {
			continue
		}
		if debt.Type == models.DebtTypeIOwe {
			summary.TotalIOwe += debt.Amount
		} else {
			summary.TotalOwedToMe += debt.Amount
		}
		accumulate(charts.DebtBreakdown, debt.Type, debt.Amount)
	}

	first, last := monthWindow(s.clock.Now())
	for _, exp := range expenses {
		if exp.TransactionDate.Before(first) || exp.TransactionDate.After(last) {
			continue
		}
		summary.TotalMonthlyExpense += exp.Amount
		accumulate(charts.ExpenseCategoryBreakdown, exp.Category, exp.Amount)
	}

	for _, goal := range goals {
		if goal.Status != models.GoalStatusActive {
			continue
		}
		summary.TotalSavingsCurrentSaved += goal.CurrentSaved
		summary.TotalSavingsTargetAmount += goal.TargetAmount
		charts.SavingGoalProgress[goal.GoalName] = models.GoalProgress{
			Current: goal.CurrentSaved,
			Target:  goal.TargetAmount,
		}
	}

	// Assets: bank balances, investment mark-to-market, projected FD maturity,
	// money owed to the user, savings accumulated so far. Liabilities:
	// outstanding loan balances and money the user owes.
	summary.NetWorth = (summary.TotalBankBalance + summary.TotalInvestmentValue +
		summary.TotalFDMaturityValue + summary.TotalOwedToMe + summary.TotalSavingsCurrentSaved) -
		(summary.TotalOutstandingLoans + summary.TotalIOwe)

	s.log.Debugf("Dashboard summary computed for user %d: net worth %.2f", userID, summary.NetWorth)
	return &models.DashboardData{Summary: summary, ChartsData: charts}, nil
}
