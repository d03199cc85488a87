package services

import (
	"fmt"
	"trade-analyzer/src/config"
	"trade-analyzer/src/schemas"
)

type CostServiceI interface {
	Analyze(transaction schemas.Transaction, marketData schemas.MarketData) []schemas.FeedbackMessage
}

// CostService computes the simulated commission on each transaction and the
// slippage versus the best quote on the transacted symbol.
type CostService struct {
	cfg config.CostConfig
}

func NewCostService(cfg config.CostConfig) *CostService {
	return &CostService{cfg: cfg}
}

func (s *CostService) Analyze(transaction schemas.Transaction, marketData schemas.MarketData) []schemas.FeedbackMessage {
	var messages []schemas.FeedbackMessage

	// Commission is informational; it is only dispatched when the deployment
	// opts in, but the computation stays live so the toggle is cheap.
	commission := transaction.Amount * transaction.Price * s.cfg.FeeRate
	if s.cfg.NotifyCommission {
		messages = append(messages, schemas.FeedbackMessage{
			PortafolioID: transaction.PortafolioID,
			Message: fmt.Sprintf(
				"Cost analysis: your %s transaction generated a simulated commission of $%.2f (%.1f%%).",
				transaction.ActiveSymbol, commission, s.cfg.FeeRate*100),
			Type: schemas.FeedbackTypeCostAnalysis,
		})
	}

	ticker, ok := marketData[transaction.ActiveSymbol]
	if !ok {
		// No quote to compare against.
		return messages
	}

	slippage := slippageFor(transaction, ticker)
	if slippage > 0 && transaction.Price > 0 && slippage/transaction.Price > s.cfg.SlippageTolerance {
		slippagePercent := slippage / transaction.Price * 100
		messages = append(messages, schemas.FeedbackMessage{
			PortafolioID: transaction.PortafolioID,
			Message: fmt.Sprintf(
				"Cost analysis: your %s of %s had a negative slippage of %.2f%%. You got a worse price than the best quote available in the market.",
				transaction.Type, transaction.ActiveSymbol, slippagePercent),
			Type: schemas.FeedbackTypeCostAnalysis,
		})
	}

	return messages
}

// slippageFor measures how far the executed price landed on the wrong side of
// the best quote. A missing quote defaults to the transaction price itself,
// which yields zero slippage. The result is never negative.
func slippageFor(transaction schemas.Transaction, ticker schemas.Ticker) float64 {
	switch transaction.Type {
	case schemas.TransactionTypeBuy:
		bestAsk := quoteOrDefault(ticker.BestAsk, transaction.Price)
		if transaction.Price > bestAsk {
			return transaction.Price - bestAsk
		}
	case schemas.TransactionTypeSell:
		bestBid := quoteOrDefault(ticker.BestBid, transaction.Price)
		if transaction.Price < bestBid {
			return bestBid - transaction.Price
		}
	}
	return 0
}

func quoteOrDefault(quote *float64, fallback float64) float64 {
	if quote == nil {
		return fallback
	}
	return *quote
}
