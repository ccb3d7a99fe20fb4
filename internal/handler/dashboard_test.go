package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/juju/clock/testclock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/handler"
	"github.com/finboard/finboard/internal/middleware"
	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/repository"
	"github.com/finboard/finboard/internal/service"
)

// fixtureRepo serves a single canned snapshot for dashboard endpoint tests.
type fixtureRepo struct {
	debts    []models.Debt
	loans    []models.Loan
	listErr  error
	accounts []models.BankAccount
}

func (f *fixtureRepo) CreateUser(context.Context, *models.User) error { return nil }
func (f *fixtureRepo) FindUserByEmail(context.Context, string) (*models.User, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) FindUserByID(context.Context, int64) (*models.User, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) CreateBankAccount(context.Context, *models.BankAccount) error { return nil }
func (f *fixtureRepo) ListBankAccounts(context.Context, int64) ([]models.BankAccount, error) {
	return f.accounts, f.listErr
}
func (f *fixtureRepo) FindBankAccountByID(context.Context, int64) (*models.BankAccount, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) UpdateBankAccount(context.Context, *models.BankAccount) error { return nil }
func (f *fixtureRepo) DeleteBankAccount(context.Context, int64) error               { return nil }
func (f *fixtureRepo) CreateInvestment(context.Context, *models.Investment) error   { return nil }
func (f *fixtureRepo) ListInvestments(context.Context, int64) ([]models.Investment, error) {
	return nil, nil
}
func (f *fixtureRepo) FindInvestmentByID(context.Context, int64) (*models.Investment, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) UpdateInvestment(context.Context, *models.Investment) error     { return nil }
func (f *fixtureRepo) DeleteInvestment(context.Context, int64) error                  { return nil }
func (f *fixtureRepo) CreateFixedDeposit(context.Context, *models.FixedDeposit) error { return nil }
func (f *fixtureRepo) ListFixedDeposits(context.Context, int64) ([]models.FixedDeposit, error) {
	return nil, nil
}
func (f *fixtureRepo) FindFixedDepositByID(context.Context, int64) (*models.FixedDeposit, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) UpdateFixedDeposit(context.Context, *models.FixedDeposit) error { return nil }
func (f *fixtureRepo) DeleteFixedDeposit(context.Context, int64) error                { return nil }
func (f *fixtureRepo) CreateLoan(context.Context, *models.Loan) error                 { return nil }
func (f *fixtureRepo) ListLoans(context.Context, int64) ([]models.Loan, error) {
	return f.loans, nil
}
func (f *fixtureRepo) ListLoansDueBetween(context.Context, time.Time, time.Time) ([]models.Loan, error) {
	return nil, nil
}
func (f *fixtureRepo) FindLoanByID(context.Context, int64) (*models.Loan, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) UpdateLoan(context.Context, *models.Loan) error { return nil }
func (f *fixtureRepo) DeleteLoan(context.Context, int64) error        { return nil }
func (f *fixtureRepo) CreateDebt(context.Context, *models.Debt) error { return nil }
func (f *fixtureRepo) ListDebts(context.Context, int64) ([]models.Debt, error) {
	return f.debts, nil
}
func (f *fixtureRepo) FindDebtByID(context.Context, int64) (*models.Debt, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) UpdateDebt(context.Context, *models.Debt) error       { return nil }
func (f *fixtureRepo) DeleteDebt(context.Context, int64) error              { return nil }
func (f *fixtureRepo) CreateExpense(context.Context, *models.Expense) error { return nil }
func (f *fixtureRepo) ListExpenses(context.Context, int64) ([]models.Expense, error) {
	return nil, nil
}
func (f *fixtureRepo) FindExpenseByID(context.Context, int64) (*models.Expense, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) UpdateExpense(context.Context, *models.Expense) error       { return nil }
func (f *fixtureRepo) DeleteExpense(context.Context, int64) error                 { return nil }
func (f *fixtureRepo) CreateSavingGoal(context.Context, *models.SavingGoal) error { return nil }
func (f *fixtureRepo) ListSavingGoals(context.Context, int64) ([]models.SavingGoal, error) {
	return nil, nil
}
func (f *fixtureRepo) FindSavingGoalByID(context.Context, int64) (*models.SavingGoal, error) {
	return nil, repository.ErrNotFound
}
func (f *fixtureRepo) UpdateSavingGoal(context.Context, *models.SavingGoal) error { return nil }
func (f *fixtureRepo) DeleteSavingGoal(context.Context, int64) error              { return nil }

func newTestHandler(repo service.Repository) *handler.Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret", ReminderDays: 3}
	clk := testclock.NewClock(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC))
	svc := service.NewService(repo, logger, cfg, clk, nil)
	return handler.NewHandler(svc, logger)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	repo := &fixtureRepo{
		accounts: []models.BankAccount{{BankName: "HDFC", Balance: 1500}},
		debts: []models.Debt{
			{Type: models.DebtTypeIOwe, Amount: 500, Status: models.DebtStatusPending},
			{Type: models.DebtTypeOwedToMe, Amount: 1000, Status: models.DebtStatusPaid},
		},
	}
	h := newTestHandler(repo)

	r := mux.NewRouter()
	r.HandleFunc("/api/dashboard/summary", h.DashboardSummary).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Summary    models.DashboardSummary `json:"summary"`
		ChartsData models.ChartsData       `json:"chartsData"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, 1500.0, payload.Summary.TotalBankBalance)
	assert.Equal(t, 500.0, payload.Summary.TotalIOwe)
	assert.Equal(t, 0.0, payload.Summary.TotalOwedToMe)
	assert.Equal(t, 1000.0, payload.Summary.NetWorth)
	assert.Equal(t, 1500.0, payload.ChartsData.BankBalanceDistribution["HDFC"])
	// Both debt keys survive serialization even when one side is zero.
	assert.Contains(t, payload.ChartsData.DebtBreakdown, models.DebtTypeOwedToMe)
}

func TestDashboardSummaryEndpointFetchFailure(t *testing.T) {
	repo := &fixtureRepo{listErr: errors.New("db down")}
	h := newTestHandler(repo)

	r := mux.NewRouter()
	r.HandleFunc("/api/dashboard/summary", h.DashboardSummary).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error")
	assert.NotContains(t, rec.Body.String(), "db down", "internal detail must not leak")
}

func TestDashboardSummaryEndpointNoUser(t *testing.T) {
	h := newTestHandler(&fixtureRepo{})

	r := mux.NewRouter()
	r.HandleFunc("/api/dashboard/summary", h.DashboardSummary).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
