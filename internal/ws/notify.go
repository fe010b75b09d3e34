package ws

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"job-portal/internal/domain/application"
)

const EventApplicationSubmitted = "application_submitted"

type ApplicationSubmittedEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Email         string `json:"email"`
	Timestamp     string `json:"timestamp"`
}

// ApplicationSubmitted broadcasts a stored application to every feed client.
func (h *Hub) ApplicationSubmitted(a application.Application) {
	if h == nil {
		return
	}

	evt := ApplicationSubmittedEvent{
		Type:          EventApplicationSubmitted,
		ApplicationID: a.ID.String(),
		JobID:         a.JobID.String(),
		JobTitle:      a.JobTitle,
		Email:         a.Email,
		Timestamp:     a.AppliedAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Warn("ws event encode failed", zap.Error(err))
		return
	}

	h.Broadcast(b)
}
