// Package pricing turns a weight and a per-kilogram rate into a rounded amount.
package pricing

import "github.com/shopspring/decimal"

// Currency is the only currency the scale sells in.
const Currency = "PLN"

var gramsPerKg = decimal.NewFromInt(1000)

// Result is a priced weighing. Product fields are filled by the caller that
// resolved the rate.
type Result struct {
	ProductName       string  `json:"product_name"`
	ProductNamePolish string  `json:"product_name_polish,omitempty"`
	WeightGrams       float64 `json:"weight_grams"`
	WeightKg          float64 `json:"weight_kg"`
	PricePerKg        float64 `json:"price_per_kg"`
	TotalPrice        float64 `json:"total_price"`
	Currency          string  `json:"currency"`
}

// Calculator is stateless and safe for concurrent use.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate prices weightGrams at pricePerKg. The caller guarantees
// pricePerKg > 0 and weightGrams >= 0.
func (c *Calculator) Calculate(pricePerKg, weightGrams float64) Result {
	weightKg := decimal.NewFromFloat(weightGrams).Div(gramsPerKg)
	return Result{
		WeightGrams: weightGrams,
		// Display only; the total uses the unrounded weight.
		WeightKg:   weightKg.Round(3).InexactFloat64(),
		PricePerKg: pricePerKg,
		TotalPrice: Total(pricePerKg, weightGrams).InexactFloat64(),
		Currency:   Currency,
	}
}

// Total returns round(weightGrams / 1000 * pricePerKg, 2) in exact decimal
// arithmetic.
func Total(pricePerKg, weightGrams float64) decimal.Decimal {
	weightKg := decimal.NewFromFloat(weightGrams).Div(gramsPerKg)
	return weightKg.Mul(decimal.NewFromFloat(pricePerKg)).Round(2)
}
