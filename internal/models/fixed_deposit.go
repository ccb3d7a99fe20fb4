package models

import "time"

// Compounding frequencies
const (
	CompoundingMonthly    = "Monthly"
	CompoundingQuarterly  = "Quarterly"
	CompoundingHalfYearly = "Half-Yearly"
	CompoundingAnnually   = "Annually"
	CompoundingAtMaturity = "At Maturity"
	CompoundingOther      = "Other"
)

// Interest payout modes
const (
	PayoutCumulative = "Cumulative"
	PayoutPeriodic   = "Periodic"
)

// FixedDeposit represents a fixed deposit held at a bank
type FixedDeposit struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"userId"`
	BankName             string    `json:"bankName"`
	PrincipalAmount      float64   `json:"principalAmount"`
	InterestRate         float64   `json:"interestRate"`
	StartDate            time.Time `json:"startDate"`
	TenureMonths         int       `json:"tenure"`
	FDAccountNumber      string    `json:"fdAccountNumber,omitempty"`
	CompoundingFrequency string    `json:"compoundingFrequency"`
	InterestPayout       string    `json:"interestPayout"`
	CreatedAt            time.Time `json:"createdAt"`
}

// MaturityValue projects the value at the end of the tenure using simple
// interest. CompoundingFrequency and InterestPayout deliberately do not
// enter this calculation; switching to compound interest is pending a
// product decision.
func (fd FixedDeposit) MaturityValue() float64 {
	if fd.TenureMonths == 0 {
		return 0
	}
	return fd.PrincipalAmount * (1 + (fd.InterestRate/100)*(float64(fd.TenureMonths)/12))
}
