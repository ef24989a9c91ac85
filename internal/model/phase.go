package model

// Phase is the buy-and-sell branch state for a simulated year.
// Keep these values stable; they are intended for CSV output.
type Phase string

const (
	PhaseHolding Phase = "HOLDING"
	PhaseSale    Phase = "SALE"
	PhaseSold    Phase = "SOLD"
)

// PhaseForYear compares the simulated year to the chosen sale year. The
// progression is one-shot: HOLDING up to the sale year, SALE exactly once,
// SOLD thereafter.
func PhaseForYear(year, sellYear int) Phase {
	switch {
	case year < sellYear:
		return PhaseHolding
	case year == sellYear:
		return PhaseSale
	default:
		return PhaseSold
	}
}
