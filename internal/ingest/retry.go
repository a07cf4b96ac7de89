package ingest

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/config"
	"go-property-analyzer/internal/logger"
	"go-property-analyzer/pkg/utils"
)

// RetryPolicy controls how remote sources are re-fetched after transient
// failures: network errors, 429 and 5xx responses.
type RetryPolicy struct {
	MaxAttempts       int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

// DefaultRetryPolicy is used by LoadFiles and NewLoader.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:       3,
	InitialDelay:      1 * time.Second,
	MaxDelay:          30 * time.Second,
	BackoffMultiplier: 2.0,
}

// PolicyFromConfig builds a RetryPolicy from settings, falling back to
// DefaultRetryPolicy delays for unparsable durations.
func PolicyFromConfig(c config.IngestConfig) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       c.RetryAttempts,
		InitialDelay:      utils.ParseDuration(c.RetryDelay, DefaultRetryPolicy.InitialDelay),
		MaxDelay:          utils.ParseDuration(c.RetryMaxDelay, DefaultRetryPolicy.MaxDelay),
		BackoffMultiplier: DefaultRetryPolicy.BackoffMultiplier,
	}
}

// delay returns the wait before the given retry (1-based).
func (p RetryPolicy) delay(retry int) time.Duration {
	mult := p.BackoffMultiplier
	if mult < 1 {
		mult = 1
	}
	d := time.Duration(float64(p.InitialDelay) * math.Pow(mult, float64(retry-1)))
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// fetch GETs url, retrying transient failures per policy. The caller
// closes the returned body.
func fetch(ctx context.Context, url string, policy RetryPolicy) (io.ReadCloser, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			wait := policy.delay(attempt - 1)
			logger.Warnw("retrying fetch", "url", url, "attempt", attempt, "wait", wait, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, apperr.Wrapf(err, "build request for %s", url)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = apperr.Wrapf(err, "GET %s", url)
			continue
		}
		if resp.StatusCode == http.StatusOK {
			return resp.Body, nil
		}
		resp.Body.Close()

		lastErr = apperr.Newf("GET %s: %s", url, resp.Status)
		if !retryableStatus(resp.StatusCode) {
			return nil, lastErr
		}
	}
	return nil, apperr.Wrapf(lastErr, "after %d attempts", attempts)
}
