package services

import (
	"fmt"
	"trade-analyzer/src/config"
	"trade-analyzer/src/schemas"
)

type RiskServiceI interface {
	Analyze(portfolio schemas.Portfolio, transaction schemas.Transaction, marketData schemas.MarketData) []schemas.FeedbackMessage
}

// RiskService detects all-in cash usage on a BUY and single-asset
// over-concentration of the post-transaction portfolio.
type RiskService struct {
	cfg       config.RiskConfig
	valuation ValuationServiceI
}

func NewRiskService(cfg config.RiskConfig, valuation ValuationServiceI) *RiskService {
	return &RiskService{cfg: cfg, valuation: valuation}
}

// Analyze returns risk alerts in deterministic order: the all-in alert first,
// then one concentration alert per offending symbol in holdings order.
func (s *RiskService) Analyze(portfolio schemas.Portfolio, transaction schemas.Transaction, marketData schemas.MarketData) []schemas.FeedbackMessage {
	var messages []schemas.FeedbackMessage

	if transaction.Type == schemas.TransactionTypeBuy {
		if msg, ok := s.checkAllIn(portfolio, transaction); ok {
			messages = append(messages, msg)
		}
	}

	valuation := s.valuation.ValuePortfolio(portfolio, marketData)
	if valuation.TotalValue == 0 {
		// Nothing to divide by; concentration is undefined.
		return messages
	}

	for _, asset := range valuation.AssetValues {
		concentration := asset.Value / valuation.TotalValue * 100
		if concentration > s.cfg.ConcentrationLimit {
			messages = append(messages, schemas.FeedbackMessage{
				PortafolioID: portfolio.ID,
				Message: fmt.Sprintf(
					"Risk alert! You have %.0f%% of your portfolio in %s. Consider diversifying.",
					concentration, asset.Symbol),
				Type: schemas.FeedbackTypeRiskAlert,
			})
		}
	}

	return messages
}

// checkAllIn reconstructs the cash balance before the BUY (the portfolio
// snapshot arrives post-transaction) and flags trades that consumed more than
// the configured share of it. A non-positive pre-transaction balance yields no
// meaningful ratio, so the check is skipped.
func (s *RiskService) checkAllIn(portfolio schemas.Portfolio, transaction schemas.Transaction) (schemas.FeedbackMessage, bool) {
	txCost := transaction.Amount * transaction.Price
	cashBeforeTx := portfolio.Cash + txCost

	if cashBeforeTx <= 0 {
		return schemas.FeedbackMessage{}, false
	}
	ratio := txCost / cashBeforeTx
	if ratio <= s.cfg.AllInCashRatio {
		return schemas.FeedbackMessage{}, false
	}

	return schemas.FeedbackMessage{
		PortafolioID: portfolio.ID,
		Message: fmt.Sprintf(
			"Risk alert! You used %.0f%% of your available cash on a single purchase of %s. Avoid going all-in to keep risk under control.",
			ratio*100, transaction.ActiveSymbol),
		Type: schemas.FeedbackTypeRiskAlert,
	}, true
}
