package controllers

import (
	"trade-analyzer/src/clients/feedback"
	"trade-analyzer/src/services"
)

type Controller struct {
	RiskService     services.RiskServiceI
	CostService     services.CostServiceI
	BehaviorService services.BehaviorServiceI
	FeedbackClient  feedback.FeedbackClientI
}

func NewController(
	riskService services.RiskServiceI,
	costService services.CostServiceI,
	behaviorService services.BehaviorServiceI,
	feedbackClient feedback.FeedbackClientI,
) *Controller {
	return &Controller{
		RiskService:     riskService,
		CostService:     costService,
		BehaviorService: behaviorService,
		FeedbackClient:  feedbackClient,
	}
}
