package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	readRetries  = 2
	retryBackoff = 50 * time.Millisecond
)

// withRetry re-attempts transient failures of idempotent reads. Writes and
// the enrollment commit never go through here.
func withRetry[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var out T
	var err error
	for attempt := 0; attempt <= readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(retryBackoff):
			}
		}
		out, err = fn(ctx)
		if err == nil || !isTransient(err) {
			return out, err
		}
	}
	return out, err
}

func isTransient(err error) bool {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
