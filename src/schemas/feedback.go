package schemas

type FeedbackType string

const (
	FeedbackTypeRiskAlert       FeedbackType = "RISK_ALERT"
	FeedbackTypeCostAnalysis    FeedbackType = "COST_ANALYSIS"
	FeedbackTypeBehavioralNudge FeedbackType = "BEHAVIORAL_NUDGE"
)

// FeedbackMessage is the payload posted to the feedback sink.
type FeedbackMessage struct {
	PortafolioID string       `json:"portafolioId"`
	Message      string       `json:"message"`
	Type         FeedbackType `json:"type"`
}
