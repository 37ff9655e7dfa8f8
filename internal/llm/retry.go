package llm

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// RetryProvider retries transient provider failures with exponential
// backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return r.attempt(ctx, func() (*Response, error) {
		return r.inner.Generate(ctx, req)
	})
}

// Stream retries like Generate, but only while nothing has been delivered
// to onDelta yet. A stream that fails midway is returned as
// *ErrStreamInterrupted carrying the text already delivered.
func (r *RetryProvider) Stream(ctx context.Context, req Request, onDelta func(string)) (*Response, error) {
	return r.attempt(ctx, func() (*Response, error) {
		var partial strings.Builder
		resp, err := StreamOrGenerate(ctx, r.inner, req, func(s string) {
			partial.WriteString(s)
			if onDelta != nil {
				onDelta(s)
			}
		})
		if err != nil && partial.Len() > 0 {
			return nil, &ErrStreamInterrupted{Partial: partial.String(), Err: err}
		}
		return resp, err
	})
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *RetryProvider) attempt(ctx context.Context, call func() (*Response, error)) (*Response, error) {
	var (
		lastErr     error
		invalidSeen bool
	)
	for n := range max(r.config.MaxAttempts, 1) {
		resp, err := call()
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidSeen) || n == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(n, err)
		slog.Debug("llm call failed, retrying", "model", r.inner.ModelID(), "attempt", n+1, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, lastErr
}

// retryable reports whether err is worth another attempt. A schema or empty
// content failure is retried once; invalidSeen tracks that across attempts.
func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var (
		truncated   *ErrMaxTokensExceeded
		interrupted *ErrStreamInterrupted
		invalid     *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &truncated), errors.As(err, &interrupted):
		return false
	case errors.As(err, &invalid):
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}

	// Rate limits, outages and plain network errors.
	return true
}

// backoff returns the wait before attempt n+1. A rate limit's RetryAfter
// wins over the computed delay.
func (r *RetryProvider) backoff(n int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := min(
		float64(r.config.InitialWait)*math.Pow(r.config.Multiplier, float64(n)),
		float64(r.config.MaxWait),
	)
	wait *= 1 + 0.2*(2*rand.Float64()-1) // ±20%
	return time.Duration(max(wait, 0))
}
