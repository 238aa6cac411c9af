package weight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	value     float64
	low, high float64
	calls     int
}

func (f *fixedSource) NextUniform(low, high float64) float64 {
	f.calls++
	f.low, f.high = low, high
	return f.value
}

func TestEstimateUnknownProductFallsBack(t *testing.T) {
	src := &fixedSource{value: 0.1}
	est := NewEstimator(DefaultTable(), WithRandomSource(src))

	for _, id := range []string{"", "Durian", "banana", "Watermelon "} {
		got := est.Estimate(id)
		assert.Equal(t, FallbackGrams, got.Grams, "id %q", id)
		assert.Equal(t, 0.15, got.Kilograms)
		assert.Equal(t, ConfidenceLow, got.Confidence)
		assert.Contains(t, got.Note, "using generic estimate")
	}
	assert.Zero(t, src.calls, "fallback path must not consume randomness")
}

func TestEstimateUsesTypicalWeightAndVariationBounds(t *testing.T) {
	src := &fixedSource{value: 0}
	est := NewEstimator(DefaultTable(), WithRandomSource(src))

	got := est.Estimate("Banana")

	assert.Equal(t, 150.0, got.Grams)
	assert.Equal(t, ConfidenceMedium, got.Confidence)
	assert.Equal(t, 120.0, got.MinGrams)
	assert.Equal(t, 180.0, got.MaxGrams)
	assert.Equal(t, -DefaultVariation, src.low)
	assert.Equal(t, DefaultVariation, src.high)
}

func TestEstimateAppliesPerturbation(t *testing.T) {
	est := NewEstimator(DefaultTable(), WithRandomSource(&fixedSource{value: 0.15}))

	got := est.Estimate("Watermelon")

	assert.Equal(t, 5750.0, got.Grams)
	assert.Equal(t, 5.75, got.Kilograms)
}

func TestEstimateRoundsToOneDecimal(t *testing.T) {
	est := NewEstimator(DefaultTable(), WithRandomSource(&fixedSource{value: 0.0123}))

	got := est.Estimate("Apple Braeburn")

	assert.Equal(t, 182.2, got.Grams)
	assert.Equal(t, 0.182, got.Kilograms)
}

func TestEstimateClampsIntoProfileRange(t *testing.T) {
	high := NewEstimator(DefaultTable(), WithVariation(0.5), WithRandomSource(&fixedSource{value: 0.5}))
	low := NewEstimator(DefaultTable(), WithVariation(0.5), WithRandomSource(&fixedSource{value: -0.5}))

	assert.Equal(t, 180.0, high.Estimate("Banana").Grams)
	assert.Equal(t, 120.0, low.Estimate("Banana").Grams)
}

func TestEstimateWatermelonStaysInRangeOverSeededTrials(t *testing.T) {
	est := NewEstimator(DefaultTable(), WithVariation(0.15), WithRandomSource(NewSeededSource(42)))

	for i := 0; i < 10000; i++ {
		got := est.Estimate("Watermelon")
		if got.Grams < 3000 || got.Grams > 8000 {
			t.Fatalf("trial %d: %v outside [3000, 8000]", i, got.Grams)
		}
	}
}

func TestEstimateKnownProductsStayInRange(t *testing.T) {
	table := DefaultTable()
	est := NewEstimator(table, WithRandomSource(NewSeededSource(7)))

	for _, id := range table.IDs() {
		p, _ := table.Lookup(id)
		for i := 0; i < 200; i++ {
			got := est.Estimate(id)
			require.GreaterOrEqual(t, got.Grams, p.MinGrams, id)
			require.LessOrEqual(t, got.Grams, p.MaxGrams, id)
			require.Equal(t, ConfidenceMedium, got.Confidence, id)
		}
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewEstimator(DefaultTable(), WithRandomSource(NewSeededSource(99)))
	b := NewEstimator(DefaultTable(), WithRandomSource(NewSeededSource(99)))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Estimate("Mango").Grams, b.Estimate("Mango").Grams)
	}
}

func TestSeededSourceStaysWithinBounds(t *testing.T) {
	src := NewSeededSource(1)
	for i := 0; i < 1000; i++ {
		v := src.NextUniform(-0.15, 0.15)
		require.GreaterOrEqual(t, v, -0.15)
		require.LessOrEqual(t, v, 0.15)
	}
}

func TestWithVariationIgnoresInvalidFactor(t *testing.T) {
	assert.Equal(t, DefaultVariation, NewEstimator(DefaultTable(), WithVariation(-0.2)).Variation())
	assert.Equal(t, DefaultVariation, NewEstimator(DefaultTable(), WithVariation(1.5)).Variation())
	assert.Equal(t, 0.3, NewEstimator(DefaultTable(), WithVariation(0.3)).Variation())
}

func TestRange(t *testing.T) {
	est := NewEstimator(DefaultTable())

	r, ok := est.Range("Pineapple")
	require.True(t, ok)
	assert.Equal(t, Range{
		MinGrams: 800, TypicalGrams: 1200, MaxGrams: 1800,
		MinKg: 0.8, TypicalKg: 1.2, MaxKg: 1.8,
	}, r)

	_, ok = est.Range("Durian")
	assert.False(t, ok)
}

func TestEstimateKilogramsUseUnroundedGrams(t *testing.T) {
	est := NewEstimator(DefaultTable(), WithRandomSource(&fixedSource{value: -0.14366}))

	got := est.Estimate("Banana")
	// 128.451 g shows as 128.5 g but 0.128 kg.
	assert.Equal(t, 128.5, got.Grams)
	assert.Equal(t, 0.128, got.Kilograms)
}
