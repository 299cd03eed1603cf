package engine

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// errNotSettled drives the retry loop while the stop predicate is
// unsatisfied. Never escapes PollUntil.
var errNotSettled = errors.New("engine: condition not yet satisfied")

// ErrPollExhausted is returned when the attempt budget ran out before
// the stop predicate was satisfied. The last fetched value is still
// returned so the caller can inspect how far settlement got.
var ErrPollExhausted = errors.New("engine: polling stopped before the condition was satisfied")

// PollUntil repeatedly invokes fetch on a fixed interval until done
// reports true for the fetched value, fetch itself returns an error, or
// the context is cancelled. maxAttempts of zero polls without bound;
// the poller imposes no wall-clock limit of its own. The last fetched
// value is returned alongside any terminal error.
func PollUntil[T any](ctx context.Context, interval time.Duration, maxAttempts uint64, fetch func(context.Context) (T, error), done func(T) bool) (T, error) {
	var last T

	var policy backoff.BackOff = backoff.NewConstantBackOff(interval)
	if maxAttempts > 0 {
		policy = backoff.WithMaxRetries(policy, maxAttempts-1)
	}
	policy = backoff.WithContext(policy, ctx)

	operation := func() error {
		value, err := fetch(ctx)
		if err != nil {
			// A fetch failure is fatal; the poller never retries past a
			// backend-reported error.
			return backoff.Permanent(err)
		}
		last = value
		if !done(value) {
			return errNotSettled
		}
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, errNotSettled) {
			return last, ErrPollExhausted
		}
		return last, err
	}
	return last, nil
}
