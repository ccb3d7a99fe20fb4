package service_test

import (
	"context"
	"time"

	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/repository"
)

// stubRepo serves canned collections and lets tests inject a failure on any
// one of the seven list fetches.
type stubRepo struct {
	users       map[int64]*models.User
	accounts    []models.BankAccount
	investments []models.Investment
	deposits    []models.FixedDeposit
	loans       []models.Loan
	debts       []models.Debt
	expenses    []models.Expense
	goals       []models.SavingGoal

	failList error  // returned by the collection named in failOn
	failOn   string // "accounts", "investments", "deposits", "loans", "debts", "expenses", "goals"

	createdLoans []*models.Loan
	updatedLoans []*models.Loan
	nextID       int64
}

func (s *stubRepo) fail(collection string) error {
	if s.failOn == collection {
		return s.failList
	}
	return nil
}

func (s *stubRepo) CreateUser(_ context.Context, user *models.User) error {
	if s.users == nil {
		s.users = make(map[int64]*models.User)
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return nil
}

func (s *stubRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) CreateBankAccount(_ context.Context, acc *models.BankAccount) error {
	s.nextID++
	acc.ID = s.nextID
	s.accounts = append(s.accounts, *acc)
	return nil
}

func (s *stubRepo) ListBankAccounts(_ context.Context, _ int64) ([]models.BankAccount, error) {
	return s.accounts, s.fail("accounts")
}

func (s *stubRepo) FindBankAccountByID(_ context.Context, id int64) (*models.BankAccount, error) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) UpdateBankAccount(_ context.Context, _ *models.BankAccount) error { return nil }
func (s *stubRepo) DeleteBankAccount(_ context.Context, _ int64) error               { return nil }

func (s *stubRepo) CreateInvestment(_ context.Context, inv *models.Investment) error {
	s.nextID++
	inv.ID = s.nextID
	s.investments = append(s.investments, *inv)
	return nil
}

func (s *stubRepo) ListInvestments(_ context.Context, _ int64) ([]models.Investment, error) {
	return s.investments, s.fail("investments")
}

func (s *stubRepo) FindInvestmentByID(_ context.Context, id int64) (*models.Investment, error) {
	for i := range s.investments {
		if s.investments[i].ID == id {
			return &s.investments[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) UpdateInvestment(_ context.Context, _ *models.Investment) error { return nil }
func (s *stubRepo) DeleteInvestment(_ context.Context, _ int64) error              { return nil }

func (s *stubRepo) CreateFixedDeposit(_ context.Context, fd *models.FixedDeposit) error {
	s.nextID++
	fd.ID = s.nextID
	s.deposits = append(s.deposits, *fd)
	return nil
}

func (s *stubRepo) ListFixedDeposits(_ context.Context, _ int64) ([]models.FixedDeposit, error) {
	return s.deposits, s.fail("deposits")
}

func (s *stubRepo) FindFixedDepositByID(_ context.Context, id int64) (*models.FixedDeposit, error) {
	for i := range s.deposits {
		if s.deposits[i].ID == id {
			return &s.deposits[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) UpdateFixedDeposit(_ context.Context, _ *models.FixedDeposit) error { return nil }
func (s *stubRepo) DeleteFixedDeposit(_ context.Context, _ int64) error                { return nil }

func (s *stubRepo) CreateLoan(_ context.Context, loan *models.Loan) error {
	s.nextID++
	loan.ID = s.nextID
	s.loans = append(s.loans, *loan)
	s.createdLoans = append(s.createdLoans, loan)
	return nil
}

func (s *stubRepo) ListLoans(_ context.Context, _ int64) ([]models.Loan, error) {
	return s.loans, s.fail("loans")
}

func (s *stubRepo) ListLoansDueBetween(_ context.Context, start, end time.Time) ([]models.Loan, error) {
	var due []models.Loan
	for _, l := range s.loans {
		if l.RemainingAmount > 0 && !l.NextDueDate.Before(start) && !l.NextDueDate.After(end) {
			due = append(due, l)
		}
	}
	return due, s.fail("loans")
}

func (s *stubRepo) FindLoanByID(_ context.Context, id int64) (*models.Loan, error) {
	for i := range s.loans {
		if s.loans[i].ID == id {
			return &s.loans[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) UpdateLoan(_ context.Context, loan *models.Loan) error {
	s.updatedLoans = append(s.updatedLoans, loan)
	return nil
}

func (s *stubRepo) DeleteLoan(_ context.Context, _ int64) error { return nil }

func (s *stubRepo) CreateDebt(_ context.Context, debt *models.Debt) error {
	s.nextID++
	debt.ID = s.nextID
	s.debts = append(s.debts, *debt)
	return nil
}

func (s *stubRepo) ListDebts(_ context.Context, _ int64) ([]models.Debt, error) {
	return s.debts, s.fail("debts")
}

func (s *stubRepo) FindDebtByID(_ context.Context, id int64) (*models.Debt, error) {
	for i := range s.debts {
		if s.debts[i].ID == id {
			return &s.debts[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) UpdateDebt(_ context.Context, _ *models.Debt) error { return nil }
func (s *stubRepo) DeleteDebt(_ context.Context, _ int64) error        { return nil }

func (s *stubRepo) CreateExpense(_ context.Context, exp *models.Expense) error {
	s.nextID++
	exp.ID = s.nextID
	s.expenses = append(s.expenses, *exp)
	return nil
}

func (s *stubRepo) ListExpenses(_ context.Context, _ int64) ([]models.Expense, error) {
	return s.expenses, s.fail("expenses")
}

func (s *stubRepo) FindExpenseByID(_ context.Context, id int64) (*models.Expense, error) {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			return &s.expenses[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) UpdateExpense(_ context.Context, _ *models.Expense) error { return nil }
func (s *stubRepo) DeleteExpense(_ context.Context, _ int64) error           { return nil }

func (s *stubRepo) CreateSavingGoal(_ context.Context, goal *models.SavingGoal) error {
	s.nextID++
	goal.ID = s.nextID
	s.goals = append(s.goals, *goal)
	return nil
}

func (s *stubRepo) ListSavingGoals(_ context.Context, _ int64) ([]models.SavingGoal, error) {
	return s.goals, s.fail("goals")
}

func (s *stubRepo) FindSavingGoalByID(_ context.Context, id int64) (*models.SavingGoal, error) {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return &s.goals[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRepo) UpdateSavingGoal(_ context.Context, _ *models.SavingGoal) error { return nil }
func (s *stubRepo) DeleteSavingGoal(_ context.Context, _ int64) error              { return nil }

// stubSender records reminder deliveries
type stubSender struct {
	sent    []models.Loan
	sendErr error
}

func (s *stubSender) SendLoanReminder(_, _ string, loan models.Loan) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, loan)
	return nil
}
