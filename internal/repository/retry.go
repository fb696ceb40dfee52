package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	errorvalues "github.com/limbo/missions/internal/error_values"
)

// RetryPolicy bounds the retries of a contended read-modify-write.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:      5,
	InitialInterval: 10 * time.Millisecond,
	MaxInterval:     200 * time.Millisecond,
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

// withRetry runs op until it succeeds, fails with a non-contention error or
// the policy gives up. Contention that outlives the policy is reported as
// ErrConcurrentUpdate.
func withRetry(ctx context.Context, policy RetryPolicy, op func() error) error {
	return backoff.Retry(func() error {
		err := op()
		if err == nil || errors.Is(err, errorvalues.ErrConcurrentUpdate) {
			return err
		}
		return backoff.Permanent(err)
	}, policy.backOff(ctx))
}

func isContention(err error) bool {
	switch pgErrCode(err) {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}
