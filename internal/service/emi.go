package service

import (
	"errors"
	"math"
)

// ErrComputation is returned when a numeric input produces a non-finite result
var ErrComputation = errors.New("computation produced a non-finite result")

// CalculateEMI computes the equated monthly installment for an amortizing
// loan. A zero annual rate degenerates to straight division of the principal
// over the tenure. Degenerate inputs that would yield NaN or Inf fail rather
// than persist a bogus installment.
func CalculateEMI(principal, annualRate float64, tenureMonths int) (float64, error) {
	if tenureMonths < 1 {
		return 0, ErrComputation
	}
	n := float64(tenureMonths)
	if annualRate == 0 {
		emi := principal / n
		if math.IsNaN(emi) || math.IsInf(emi, 0) {
			return 0, ErrComputation
		}
		return emi, nil
	}

	monthlyRate := annualRate / (12 * 100)
	factor := math.Pow(1+monthlyRate, n)
	emi := principal * monthlyRate * factor / (factor - 1)
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		return 0, ErrComputation
	}
	return emi, nil
}
