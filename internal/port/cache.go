package port

import (
	"context"
	"time"
)

// ResultsCache is the hot-path store for serialized forecast results, keyed
// by dataset ID. A miss is (nil, false, nil); errors are reserved for backend
// failures.
type ResultsCache interface {
	Get(ctx context.Context, datasetID string) ([]byte, bool, error)
	Set(ctx context.Context, datasetID string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, datasetID string) error
	Ping(ctx context.Context) error
}
