package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"trade-analyzer/src/schemas"
	"trade-analyzer/src/utils"
)

// AnalyzeTrade evaluates one transaction against the portfolio and market
// snapshots in the body. The caller always gets a queued status back; rule
// outcomes travel asynchronously through the feedback sink. A missing
// portfolio id skips evaluation entirely and, to keep the NestJS contract
// intact, still answers 200 with an error payload.
func (h *Handler) AnalyzeTrade(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var req schemas.AnalyzeTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	if req.Portafolio.ID == "" {
		h.respond(w, r, map[string]string{"error": "No portafolio ID provided"}, http.StatusOK)
		return
	}

	h.Controller.AnalyzeTrade(ctx, req)

	h.respond(w, r, schemas.AnalyzeTradeResponse{Status: "analysis_queued"}, http.StatusOK)
}
