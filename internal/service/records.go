package service

import (
	"context"

	"github.com/finboard/finboard/internal/models"
)

// Bank accounts

func (s *Service) ListBankAccounts(ctx context.Context, userID int64) ([]models.BankAccount, error) {
	return s.repo.ListBankAccounts(ctx, userID)
}

func (s *Service) CreateBankAccount(ctx context.Context, userID int64, acc *models.BankAccount) error {
	acc.UserID = userID
	if acc.AccountType == "" {
		acc.AccountType = models.AccountTypeSavings
	}
	if acc.Currency == "" {
		acc.Currency = "INR"
	}
	if err := s.repo.CreateBankAccount(ctx, acc); err != nil {
		return err
	}
	s.log.Infof("Bank account created for user %d: %s", userID, acc.BankName)
	return nil
}

func (s *Service) UpdateBankAccount(ctx context.Context, userID, id int64, in *models.BankAccount) (*models.BankAccount, error) {
	acc, err := s.repo.FindBankAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc.UserID != userID {
		return nil, ErrNotOwner
	}
	acc.BankName = in.BankName
	acc.AccountType = in.AccountType
	acc.Balance = in.Balance
	acc.Currency = in.Currency
	if err := s.repo.UpdateBankAccount(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Service) DeleteBankAccount(ctx context.Context, userID, id int64) error {
	acc, err := s.repo.FindBankAccountByID(ctx, id)
	if err != nil {
		return err
	}
	if acc.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.DeleteBankAccount(ctx, id)
}

// Investments

func (s *Service) ListInvestments(ctx context.Context, userID int64) ([]models.Investment, error) {
	return s.repo.ListInvestments(ctx, userID)
}

func (s *Service) CreateInvestment(ctx context.Context, userID int64, inv *models.Investment) error {
	inv.UserID = userID
	if inv.PurchaseDate.IsZero() {
		inv.PurchaseDate = s.clock.Now()
	}
	if err := s.repo.CreateInvestment(ctx, inv); err != nil {
		return err
	}
	s.log.Infof("Investment created for user %d: %s", userID, inv.StockName)
	return nil
}

func (s *Service) UpdateInvestment(ctx context.Context, userID, id int64, in *models.Investment) (*models.Investment, error) {
	inv, err := s.repo.FindInvestmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.UserID != userID {
		return nil, ErrNotOwner
	}
	inv.StockName = in.StockName
	inv.Quantity = in.Quantity
	inv.AvgBuyPrice = in.AvgBuyPrice
	inv.CurrentMarketPrice = in.CurrentMarketPrice
	if !in.PurchaseDate.IsZero() {
		inv.PurchaseDate = in.PurchaseDate
	}
	if err := s.repo.UpdateInvestment(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) DeleteInvestment(ctx context.Context, userID, id int64) error {
	inv, err := s.repo.FindInvestmentByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.DeleteInvestment(ctx, id)
}

// Fixed deposits

func (s *Service) ListFixedDeposits(ctx context.Context, userID int64) ([]models.FixedDeposit, error) {
	return s.repo.ListFixedDeposits(ctx, userID)
}

func (s *Service) CreateFixedDeposit(ctx context.Context, userID int64, fd *models.FixedDeposit) error {
	fd.UserID = userID
	if fd.CompoundingFrequency == "" {
		fd.CompoundingFrequency = models.CompoundingAnnually
	}
	if fd.InterestPayout == "" {
		fd.InterestPayout = models.PayoutCumulative
	}
	if err := s.repo.CreateFixedDeposit(ctx, fd); err != nil {
		return err
	}
	s.log.Infof("Fixed deposit created for user %d: %s", userID, fd.BankName)
	return nil
}

func (s *Service) UpdateFixedDeposit(ctx context.Context, userID, id int64, in *models.FixedDeposit) (*models.FixedDeposit, error) {
	fd, err := s.repo.FindFixedDepositByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fd.UserID != userID {
		return nil, ErrNotOwner
	}
	fd.BankName = in.BankName
	fd.PrincipalAmount = in.PrincipalAmount
	fd.InterestRate = in.InterestRate
	fd.StartDate = in.StartDate
	fd.TenureMonths = in.TenureMonths
	fd.FDAccountNumber = in.FDAccountNumber
	fd.CompoundingFrequency = in.CompoundingFrequency
	fd.InterestPayout = in.InterestPayout
	if err := s.repo.UpdateFixedDeposit(ctx, fd); err != nil {
		return nil, err
	}
	return fd, nil
}

func (s *Service) DeleteFixedDeposit(ctx context.Context, userID, id int64) error {
	fd, err := s.repo.FindFixedDepositByID(ctx, id)
	if err != nil {
		return err
	}
	if fd.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.DeleteFixedDeposit(ctx, id)
}

// Debts

func (s *Service) ListDebts(ctx context.Context, userID int64) ([]models.Debt, error) {
	return s.repo.ListDebts(ctx, userID)
}

func (s *Service) CreateDebt(ctx context.Context, userID int64, debt *models.Debt) error {
	debt.UserID = userID
	if debt.Category == "" {
		debt.Category = "Other"
	}
	if debt.Status == "" {
		debt.Status = models.DebtStatusPending
	}
	if debt.TransactionDate.IsZero() {
		debt.TransactionDate = s.clock.Now()
	}
	if err := s.repo.CreateDebt(ctx, debt); err != nil {
		return err
	}
	s.log.Infof("Debt created for user %d: %s %s", userID, debt.Type, debt.PersonName)
	return nil
}

func (s *Service) UpdateDebt(ctx context.Context, userID, id int64, in *models.Debt) (*models.Debt, error) {
	debt, err := s.repo.FindDebtByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt.UserID != userID {
		return nil, ErrNotOwner
	}
	debt.PersonName = in.PersonName
	debt.Amount = in.Amount
	debt.Type = in.Type
	debt.Description = in.Description
	debt.Category = in.Category
	if !in.TransactionDate.IsZero() {
		debt.TransactionDate = in.TransactionDate
	}
	debt.DueDate = in.DueDate
	debt.Status = in.Status
	if err := s.repo.UpdateDebt(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

func (s *Service) DeleteDebt(ctx context.Context, userID, id int64) error {
	debt, err := s.repo.FindDebtByID(ctx, id)
	if err != nil {
		return err
	}
	if debt.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.DeleteDebt(ctx, id)
}

// Expenses

func (s *Service) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	return s.repo.ListExpenses(ctx, userID)
}

func (s *Service) CreateExpense(ctx context.Context, userID int64, exp *models.Expense) error {
	exp.UserID = userID
	if exp.Source == "" {
		exp.Source = models.ExpenseSourceManual
	}
	if exp.TransactionDate.IsZero() {
		exp.TransactionDate = s.clock.Now()
	}
	if err := s.repo.CreateExpense(ctx, exp); err != nil {
		return err
	}
	s.log.Infof("Expense created for user %d: %.2f (%s)", userID, exp.Amount, exp.Category)
	return nil
}

func (s *Service) UpdateExpense(ctx context.Context, userID, id int64, in *models.Expense) (*models.Expense, error) {
	exp, err := s.repo.FindExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp.UserID != userID {
		return nil, ErrNotOwner
	}
	exp.Amount = in.Amount
	exp.Category = in.Category
	exp.Description = in.Description
	if !in.TransactionDate.IsZero() {
		exp.TransactionDate = in.TransactionDate
	}
	if in.Source != "" {
		exp.Source = in.Source
	}
	if err := s.repo.UpdateExpense(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *Service) DeleteExpense(ctx context.Context, userID, id int64) error {
	exp, err := s.repo.FindExpenseByID(ctx, id)
	if err != nil {
		return err
	}
	if exp.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.DeleteExpense(ctx, id)
}

// Saving goals

func (s *Service) ListSavingGoals(ctx context.Context, userID int64) ([]models.SavingGoal, error) {
	return s.repo.ListSavingGoals(ctx, userID)
}

func (s *Service) CreateSavingGoal(ctx context.Context, userID int64, goal *models.SavingGoal) error {
	goal.UserID = userID
	if goal.Category == "" {
		goal.Category = "Other"
	}
	if goal.Status == "" {
		goal.Status = models.GoalStatusActive
	}
	if err := s.repo.CreateSavingGoal(ctx, goal); err != nil {
		return err
	}
	s.log.Infof("Saving goal created for user %d: %s", userID, goal.GoalName)
	return nil
}

func (s *Service) UpdateSavingGoal(ctx context.Context, userID, id int64, in *models.SavingGoal) (*models.SavingGoal, error) {
	goal, err := s.repo.FindSavingGoalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrNotOwner
	}
	goal.GoalName = in.GoalName
	goal.Category = in.Category
	goal.TargetAmount = in.TargetAmount
	goal.CurrentSaved = in.CurrentSaved
	goal.Deadline = in.Deadline
	goal.Status = in.Status
	if err := s.repo.UpdateSavingGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *Service) DeleteSavingGoal(ctx context.Context, userID, id int64) error {
	goal, err := s.repo.FindSavingGoalByID(ctx, id)
	if err != nil {
		return err
	}
	if goal.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.DeleteSavingGoal(ctx, id)
}
