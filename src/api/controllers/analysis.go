package controllers

import (
	"context"
	"trade-analyzer/src/schemas"
	"trade-analyzer/src/utils"
)

type AnalysisControllerI interface {
	AnalyzeTrade(ctx context.Context, req schemas.AnalyzeTradeRequest) []schemas.FeedbackMessage
}

// AnalyzeTrade runs every rule evaluator against the request and dispatches
// the resulting feedback messages. Evaluation order is fixed: risk (all-in,
// then concentration), costs/slippage, behavior. Delivery failures are logged
// and swallowed so one bad dispatch never affects the others or the caller.
func (c *Controller) AnalyzeTrade(ctx context.Context, req schemas.AnalyzeTradeRequest) []schemas.FeedbackMessage {
	logger := utils.LoggerFromContext(ctx)

	var messages []schemas.FeedbackMessage
	messages = append(messages, c.RiskService.Analyze(req.Portafolio, req.Transaction, req.MarketData)...)
	messages = append(messages, c.CostService.Analyze(req.Transaction, req.MarketData)...)
	messages = append(messages, c.BehaviorService.Analyze(req.Transaction, req.MarketData)...)

	for _, message := range messages {
		if err := c.FeedbackClient.SendFeedback(ctx, message); err != nil {
			logger.WithError(err).WithField("type", message.Type).Error("Error sending feedback")
		}
	}

	return messages
}
