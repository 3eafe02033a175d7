package port

import "context"

// RunNotification carries what a completion email needs to say about a
// finished model comparison.
type RunNotification struct {
	DatasetID   string
	DatasetName string
	BestModel   string
	BestMAPE    *float64
	ModelCount  int
}

// EmailSender defines the contract for sending run lifecycle emails.
type EmailSender interface {
	SendRunCompleted(ctx context.Context, toEmail string, n RunNotification) error
	SendRunFailed(ctx context.Context, toEmail string, datasetName, reason string) error
}
