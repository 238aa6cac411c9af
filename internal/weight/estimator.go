package weight

import (
	"fmt"
	"math"
)

const (
	// FallbackGrams is returned for products without a profile.
	FallbackGrams = 150.0
	// DefaultVariation is the default relative spread around the typical weight.
	DefaultVariation = 0.15
)

// Confidence tags how an estimate was produced.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
)

// Estimate is a single weight guess. Range fields are zero on the fallback path.
type Estimate struct {
	ProductID    string     `json:"-"`
	Grams        float64    `json:"weight_grams"`
	Kilograms    float64    `json:"weight_kg"`
	MinGrams     float64    `json:"min_weight,omitempty"`
	TypicalGrams float64    `json:"typical_weight,omitempty"`
	MaxGrams     float64    `json:"max_weight,omitempty"`
	Confidence   Confidence `json:"confidence"`
	Note         string     `json:"note"`
}

// Range describes a profile in grams and kilograms.
type Range struct {
	MinGrams     float64 `json:"min_grams"`
	TypicalGrams float64 `json:"typical_grams"`
	MaxGrams     float64 `json:"max_grams"`
	MinKg        float64 `json:"min_kg"`
	TypicalKg    float64 `json:"typical_kg"`
	MaxKg        float64 `json:"max_kg"`
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithVariation sets the relative spread. Values outside [0, 1) are ignored.
func WithVariation(factor float64) Option {
	return func(e *Estimator) {
		if factor >= 0 && factor < 1 {
			e.variation = factor
		}
	}
}

// WithRandomSource replaces the time-seeded source.
func WithRandomSource(src RandomSource) Option {
	return func(e *Estimator) {
		if src != nil {
			e.rng = src
		}
	}
}

// Estimator turns product ids into bounded weight estimates.
type Estimator struct {
	table     *Table
	rng       RandomSource
	variation float64
}

// NewEstimator builds an estimator over table.
func NewEstimator(table *Table, opts ...Option) *Estimator {
	e := &Estimator{
		table:     table,
		rng:       NewTimeSource(),
		variation: DefaultVariation,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Variation returns the configured spread.
func (e *Estimator) Variation() float64 {
	return e.variation
}

// Estimate never fails: unknown ids, including "", degrade to FallbackGrams.
func (e *Estimator) Estimate(productID string) Estimate {
	p, ok := e.table.Lookup(productID)
	if !ok {
		return Estimate{
			ProductID:  productID,
			Grams:      FallbackGrams,
			Kilograms:  roundTo(FallbackGrams/1000, 3),
			Confidence: ConfidenceLow,
			Note:       fmt.Sprintf("No specific data for %s, using generic estimate", productID),
		}
	}

	r := e.rng.NextUniform(-e.variation, e.variation)
	grams := p.TypicalGrams * (1 + r)
	grams = math.Max(p.MinGrams, math.Min(grams, p.MaxGrams))
	kilograms := roundTo(grams/1000, 3)
	grams = roundTo(grams, 1)

	return Estimate{
		ProductID:    productID,
		Grams:        grams,
		Kilograms:    kilograms,
		MinGrams:     p.MinGrams,
		TypicalGrams: p.TypicalGrams,
		MaxGrams:     p.MaxGrams,
		Confidence:   ConfidenceMedium,
		Note:         fmt.Sprintf("Estimated based on typical %s weight", productID),
	}
}

// Range reports the profile of productID.
func (e *Estimator) Range(productID string) (Range, bool) {
	p, ok := e.table.Lookup(productID)
	if !ok {
		return Range{}, false
	}
	return Range{
		MinGrams:     p.MinGrams,
		TypicalGrams: p.TypicalGrams,
		MaxGrams:     p.MaxGrams,
		MinKg:        roundTo(p.MinGrams/1000, 3),
		TypicalKg:    roundTo(p.TypicalGrams/1000, 3),
		MaxKg:        roundTo(p.MaxGrams/1000, 3),
	}, true
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
