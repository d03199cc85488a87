package services

import (
	"fmt"
	"trade-analyzer/src/config"
	"trade-analyzer/src/schemas"
)

type BehaviorServiceI interface {
	Analyze(transaction schemas.Transaction, marketData schemas.MarketData) []schemas.FeedbackMessage
}

// BehaviorService nudges the user about FOMO buys and panic sells based on
// the 24h price move of the transacted symbol.
type BehaviorService struct {
	cfg config.BehaviorConfig
}

func NewBehaviorService(cfg config.BehaviorConfig) *BehaviorService {
	return &BehaviorService{cfg: cfg}
}

func (s *BehaviorService) Analyze(transaction schemas.Transaction, marketData schemas.MarketData) []schemas.FeedbackMessage {
	ticker, ok := marketData[transaction.ActiveSymbol]
	if !ok {
		return nil
	}
	priceChange24h := ticker.PricePercentChg24

	switch transaction.Type {
	case schemas.TransactionTypeBuy:
		if priceChange24h > s.cfg.FomoChangeThreshold {
			return []schemas.FeedbackMessage{{
				PortafolioID: transaction.PortafolioID,
				Message: fmt.Sprintf(
					"Behavioral check: you bought %s after it went up %.2f%% in 24 hours. Could this be FOMO (fear of missing out)?",
					transaction.ActiveSymbol, priceChange24h),
				Type: schemas.FeedbackTypeBehavioralNudge,
			}}
		}
	case schemas.TransactionTypeSell:
		if priceChange24h < -s.cfg.PanicChangeThreshold {
			return []schemas.FeedbackMessage{{
				PortafolioID: transaction.PortafolioID,
				Message: fmt.Sprintf(
					"Behavioral check: you sold %s after it dropped %.2f%% in 24 hours. Are you sure this is not a panic sell?",
					transaction.ActiveSymbol, priceChange24h),
				Type: schemas.FeedbackTypeBehavioralNudge,
			}}
		}
	}

	return nil
}
