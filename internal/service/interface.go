package service

import (
	"context"
	"time"

	"github.com/finboard/finboard/internal/models"
)

// Repository abstracts persistence so the service can be tested against stubs.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)

	CreateBankAccount(ctx context.Context, acc *models.BankAccount) error
	ListBankAccounts(ctx context.Context, userID int64) ([]models.BankAccount, error)
	FindBankAccountByID(ctx context.Context, id int64) (*models.BankAccount, error)
	UpdateBankAccount(ctx context.Context, acc *models.BankAccount) error
	DeleteBankAccount(ctx context.Context, id int64) error

	CreateInvestment(ctx context.Context, inv *models.Investment) error
	ListInvestments(ctx context.Context, userID int64) ([]models.Investment, error)
	FindInvestmentByID(ctx context.Context, id int64) (*models.Investment, error)
	UpdateInvestment(ctx context.Context, inv *models.Investment) error
	DeleteInvestment(ctx context.Context, id int64) error

	CreateFixedDeposit(ctx context.Context, fd *models.FixedDeposit) error
	ListFixedDeposits(ctx context.Context, userID int64) ([]models.FixedDeposit, error)
	FindFixedDepositByID(ctx context.Context, id int64) (*models.FixedDeposit, error)
	UpdateFixedDeposit(ctx context.Context, fd *models.FixedDeposit) error
	DeleteFixedDeposit(ctx context.Context, id int64) error

	CreateLoan(ctx context.Context, loan *models.Loan) error
	ListLoans(ctx context.Context, userID int64) ([]models.Loan, error)
	ListLoansDueBetween(ctx context.Context, start, end time.Time) ([]models.Loan, error)
	FindLoanByID(ctx context.Context, id int64) (*models.Loan, error)
	UpdateLoan(ctx context.Context, loan *models.Loan) error
	DeleteLoan(ctx context.Context, id int64) error

	CreateDebt(ctx context.Context, debt *models.Debt) error
	ListDebts(ctx context.Context, userID int64) ([]models.Debt, error)
	FindDebtByID(ctx context.Context, id int64) (*models.Debt, error)
	UpdateDebt(ctx context.Context, debt *models.Debt) error
	DeleteDebt(ctx context.Context, id int64) error

	CreateExpense(ctx context.Context, exp *models.Expense) error
	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
	FindExpenseByID(ctx context.Context, id int64) (*models.Expense, error)
	UpdateExpense(ctx context.Context, exp *models.Expense) error
	DeleteExpense(ctx context.Context, id int64) error

	CreateSavingGoal(ctx context.Context, goal *models.SavingGoal) error
	ListSavingGoals(ctx context.Context, userID int64) ([]models.SavingGoal, error)
	FindSavingGoalByID(ctx context.Context, id int64) (*models.SavingGoal, error)
	UpdateSavingGoal(ctx context.Context, goal *models.SavingGoal) error
	DeleteSavingGoal(ctx context.Context, id int64) error
}

// ReminderSender delivers EMI due-date notifications.
type ReminderSender interface {
	SendLoanReminder(to, name string, loan models.Loan) error
}
