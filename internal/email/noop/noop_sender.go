package noop

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"demandcast/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendRunCompleted(_ context.Context, toEmail string, n port.RunNotification) error {
	resultsURL := fmt.Sprintf("%s/results?session_id=%s", s.frontendURL, url.QueryEscape(n.DatasetID))
	log.Printf("[NOOP EMAIL] Run completed for %s (dataset %q, best model %s, %d models): %s",
		toEmail, n.DatasetName, n.BestModel, n.ModelCount, resultsURL)
	return nil
}

func (s *noopSender) SendRunFailed(_ context.Context, toEmail string, datasetName, reason string) error {
	log.Printf("[NOOP EMAIL] Run failed for %s (dataset %q): %s", toEmail, datasetName, reason)
	return nil
}
