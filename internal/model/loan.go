package model

import (
	"errors"
	"fmt"
	"math"
)

// Method selects the shape of the repayment schedule.
type Method string

const (
	// MethodAnnuity keeps the monthly payment level for the life of the loan.
	MethodAnnuity Method = "Annuity"
	// MethodLinear repays equal principal installments; the total payment
	// shrinks as interest on the declining balance shrinks.
	MethodLinear Method = "Linear"
)

var ErrInvalidMethod = errors.New("invalid repayment method")

// LoanParams defines the mortgage being simulated.
// Units:
// - HouseValue: currency
// - LoanFraction: 0..1 share of the house value that is financed
// - AnnualRate: decimal form (0.037 == 3.7%)
type LoanParams struct {
	HouseValue   float64
	LoanFraction float64
	AnnualRate   float64
	TermYears    int
	Method       Method
}

// Loan bundles the derived figures with the monthly schedule.
type Loan struct {
	Params      LoanParams
	DownPayment float64
	LoanAmount  float64
	Schedule    PaymentSchedule
}

func NewLoan(params LoanParams) (*Loan, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	loanAmount := params.HouseValue * params.LoanFraction
	schedule, err := computeSchedule(loanAmount, params.AnnualRate, params.TermYears, params.Method)
	if err != nil {
		return nil, err
	}
	return &Loan{
		Params:      params,
		DownPayment: params.HouseValue - loanAmount,
		LoanAmount:  loanAmount,
		Schedule:    schedule,
	}, nil
}

func (p LoanParams) Validate() error {
	if p.HouseValue <= 0 {
		return fmt.Errorf("%w: HouseValue must be > 0", ErrDomain)
	}
	if p.LoanFraction < 0 || p.LoanFraction > 1 {
		return fmt.Errorf("%w: LoanFraction must be in [0, 1]", ErrDomain)
	}
	if p.AnnualRate < 0 {
		return fmt.Errorf("%w: AnnualRate must be >= 0", ErrDomain)
	}
	if p.TermYears < 1 {
		return fmt.Errorf("%w: TermYears must be >= 1", ErrDomain)
	}
	return nil
}

// computeSchedule builds the monthly payment series, one entry per month of
// the loan term.
//
// Linear interest uses a straight-line approximation of the declining
// balance, 1-(m-1)/n, rather than a true declining-balance amortization.
// Existing outputs depend on that approximation, so it is kept as is.
func computeSchedule(loanAmount, annualRate float64, termYears int, method Method) (PaymentSchedule, error) {
	monthlyRate := annualRate / 12
	termMonths := termYears * 12

	switch method {
	case MethodAnnuity:
		var payment float64
		if monthlyRate == 0 {
			// Annuity formula is undefined at zero rate.
			payment = loanAmount / float64(termMonths)
		} else {
			growth := math.Pow(1+monthlyRate, float64(termMonths))
			payment = loanAmount * monthlyRate * growth / (growth - 1)
		}
		schedule := make(PaymentSchedule, termMonths)
		for m := range schedule {
			schedule[m] = payment
		}
		return schedule, nil
	case MethodLinear:
		schedule := make(PaymentSchedule, termMonths)
		n := float64(termMonths)
		for m := 1; m <= termMonths; m++ {
			schedule[m-1] = loanAmount/n + loanAmount*monthlyRate*(1-float64(m-1)/n)
		}
		return schedule, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
}

// PaymentSchedule is the ordered sequence of monthly payments. It is treated
// as immutable once produced.
type PaymentSchedule []float64

// YearSum returns the total of the 12 payments falling in the given 1-indexed
// year. Years beyond the end of the schedule contribute zero: the mortgage is
// paid off and only other ownership costs continue.
func (s PaymentSchedule) YearSum(year int) float64 {
	lo := (year - 1) * 12
	hi := year * 12
	if lo > len(s) {
		lo = len(s)
	}
	if hi > len(s) {
		hi = len(s)
	}
	sum := 0.0
	for _, p := range s[lo:hi] {
		sum += p
	}
	return sum
}

// RemainingAfterYear returns the sum of all payments scheduled after the
// given year. This stands in for the outstanding balance when the property is
// sold: paying off the mortgage is approximated as paying every not-yet-due
// scheduled payment, not as a true remaining-principal calculation.
func (s PaymentSchedule) RemainingAfterYear(year int) float64 {
	lo := year * 12
	if lo > len(s) {
		lo = len(s)
	}
	if lo < 0 {
		lo = 0
	}
	sum := 0.0
	for _, p := range s[lo:] {
		sum += p
	}
	return sum
}

// Total is the sum of every scheduled payment.
func (s PaymentSchedule) Total() float64 {
	sum := 0.0
	for _, p := range s {
		sum += p
	}
	return sum
}
