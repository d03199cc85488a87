package services

import (
	"trade-analyzer/src/schemas"
)

type ValuationServiceI interface {
	ValuePortfolio(portfolio schemas.Portfolio, marketData schemas.MarketData) schemas.PortfolioValuation
}

type ValuationService struct{}

func NewValuationService() *ValuationService {
	return &ValuationService{}
}

// ValuePortfolio prices every holding that has a ticker in the market data and
// accumulates the total portfolio value starting from the post-transaction
// cash balance. Holdings without market data are left out of both the
// per-asset values and the total; that is the caller's cue that concentration
// for those symbols cannot be judged.
func (s *ValuationService) ValuePortfolio(portfolio schemas.Portfolio, marketData schemas.MarketData) schemas.PortfolioValuation {
	valuation := schemas.PortfolioValuation{
		TotalValue: portfolio.Cash,
	}

	for _, holding := range portfolio.Holdings {
		ticker, ok := marketData[holding.ActiveSymbol]
		if !ok {
			continue
		}
		value := holding.Quantity * ticker.Price
		valuation.AssetValues = append(valuation.AssetValues, schemas.AssetValue{
			Symbol: holding.ActiveSymbol,
			Value:  value,
		})
		valuation.TotalValue += value
	}

	return valuation
}
