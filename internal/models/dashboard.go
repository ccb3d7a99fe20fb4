package models

// DashboardSummary holds the twelve scalar aggregates shown on the dashboard
type DashboardSummary struct {
	NetWorth                 float64 `json:"netWorth"`
	TotalBankBalance         float64 `json:"totalBankBalance"`
	TotalInvestmentValue     float64 `json:"totalInvestmentValue"`
	TotalFDPrincipal         float64 `json:"totalFDPrincipal"`
	TotalFDMaturityValue     float64 `json:"totalFDMaturityValue"`
	TotalOutstandingLoans    float64 `json:"totalOutstandingLoans"`
	TotalIOwe                float64 `json:"totalIOwe"`
	TotalOwedToMe            float64 `json:"totalOwedToMe"`
	TotalMonthlyExpense      float64 `json:"totalMonthlyExpense"`
	TotalMonthlyEMIOutflow   float64 `json:"totalMonthlyEmiOutflow"`
	TotalSavingsCurrentSaved float64 `json:"totalSavingsCurrentSaved"`
	TotalSavingsTargetAmount float64 `json:"totalSavingsTargetAmount"`
}

// GoalProgress pairs saved and target amounts for one goal
type GoalProgress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// ChartsData holds the raw category breakdowns the frontend charts consume.
// Values are absolute amounts; percentage math is left to the consumer.
type ChartsData struct {
	ExpenseCategoryBreakdown map[string]float64      `json:"expenseCategoryBreakdown"`
	InvestmentDistribution   map[string]float64      `json:"investmentDistribution"`
	BankBalanceDistribution  map[string]float64      `json:"bankBalanceDistribution"`
	FDPrincipalDistribution  map[string]float64      `json:"fdPrincipalDistribution"`
	LoanTypeOutstanding      map[string]float64      `json:"loanTypeOutstanding"`
	DebtBreakdown            map[string]float64      `json:"debtBreakdown"`
	SavingGoalProgress       map[string]GoalProgress `json:"savingGoalProgress"`
}

// DashboardData is the full payload of GET /api/dashboard/summary
type DashboardData struct {
	Summary    DashboardSummary `json:"summary"`
	ChartsData ChartsData       `json:"chartsData"`
}
