package pricing

import "math"

const (
	weightCoef = 0.5
	valueCoef  = 0.01
)

// DeliveryCost prices a package in local currency from its weight (kg),
// declared content value (USD) and the USD rate. A nil or non-positive rate
// leaves the package unpriced (nil). Pure; result is rounded to 2 decimals.
func DeliveryCost(weight, contentValueUSD float64, rate *float64) *float64 {
	if rate == nil || *rate <= 0 {
		return nil
	}

	cost := math.Round((weight*weightCoef+contentValueUSD*valueCoef)*(*rate)*100) / 100
	return &cost
}
