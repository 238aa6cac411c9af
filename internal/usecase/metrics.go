package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/example/smartscale/internal/apperr"
	"github.com/example/smartscale/internal/pricing"
)

// SalesSummary represents aggregated insights over the transaction log.
type SalesSummary struct {
	TotalTransactions  int64   `json:"total_transactions"`
	TotalRevenue       float64 `json:"total_revenue"`
	AverageTicket      float64 `json:"average_ticket"`
	AverageWeightGrams float64 `json:"average_weight_grams"`
	AverageConfidence  float64 `json:"average_confidence"`
	Currency           string  `json:"currency"`
}

// GetSalesSummary aggregates recorded transactions.
func (uc *ScaleUseCase) GetSalesSummary(ctx context.Context) (*SalesSummary, error) {
	aggregation, err := uc.store.AggregateSales(ctx)
	if err != nil {
		return nil, apperr.Upstream("store unavailable", err)
	}

	revenue := decimal.NewFromFloat(aggregation.TotalRevenue)
	summary := &SalesSummary{
		TotalTransactions:  aggregation.TotalCount,
		TotalRevenue:       revenue.Round(2).InexactFloat64(),
		AverageWeightGrams: roundTo(aggregation.AverageWeightG, 1),
		AverageConfidence:  roundTo(aggregation.AverageConfidence, 2),
		Currency:           pricing.Currency,
	}

	if aggregation.TotalCount > 0 {
		summary.AverageTicket = revenue.Div(decimal.NewFromInt(aggregation.TotalCount)).Round(2).InexactFloat64()
	}

	return summary, nil
}
