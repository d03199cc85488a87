package feedback

import (
	"context"
	"fmt"
	"time"
	"trade-analyzer/src/config"
	"trade-analyzer/src/schemas"
	"trade-analyzer/src/utils"
	"trade-analyzer/src/utils/requests"

	"github.com/google/uuid"
)

type FeedbackClientI interface {
	SendFeedback(ctx context.Context, message schemas.FeedbackMessage) error
}

// FeedbackClient posts feedback messages to the NestJS feedback sink.
type FeedbackClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new instance of FeedbackClient
func NewClient(cfg *config.Config) *FeedbackClient {
	timeout := time.Duration(cfg.ExternalClients.Feedback.TimeoutSeconds) * time.Second
	return &FeedbackClient{
		API:     requests.NewExternalAPIService(timeout),
		BaseURL: cfg.ExternalClients.Feedback.URL,
		Timeout: timeout,
	}
}

// SendFeedback delivers one feedback message. Each dispatch gets its own id
// so a failed delivery can be matched to its send attempt in the logs.
func (c *FeedbackClient) SendFeedback(ctx context.Context, message schemas.FeedbackMessage) error {
	logger := utils.LoggerFromContext(ctx)
	dispatchID := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	logger.WithFields(map[string]interface{}{
		"dispatchId":   dispatchID,
		"portafolioId": message.PortafolioID,
		"type":         message.Type,
	}).Info("Sending feedback")

	resp, err := c.API.Post(ctx, c.BaseURL, message)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return utils.NewHTTPError(resp.StatusCode, fmt.Sprintf("feedback sink replied %s", resp.Status))
	}

	logger.WithFields(map[string]interface{}{
		"dispatchId":   dispatchID,
		"portafolioId": message.PortafolioID,
		"type":         message.Type,
	}).Info("Feedback sent")
	return nil
}
