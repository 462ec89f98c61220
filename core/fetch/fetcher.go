package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrFetchExhausted is returned when a fetch was throttled more times than
// the configured retry budget allows.
var ErrFetchExhausted = errors.New("fetch retry budget exhausted")

// StatusError is returned for non-success responses that are not throttling.
// These are never retried.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.StatusCode, e.URL)
}

// throttledError signals an HTTP 429 with an optional advertised wait.
type throttledError struct {
	retryAfter time.Duration
}

func (e *throttledError) Error() string {
	return "upstream throttled the request"
}

// ThrottleReporter is invoked before each backoff sleep so a tracked
// operation can surface the wait to external pollers.
type ThrottleReporter func(wait time.Duration, attempt int)

// Fetcher performs HTTP GETs against a rate-limited upstream. It bounds the
// number of in-flight requests, paces admissions, and retries throttled
// responses with backoff up to a fixed budget.
type Fetcher struct {
	client      *http.Client
	slots       chan struct{}
	pacer       *rate.Limiter
	maxRetries  int
	backoffBase time.Duration
	logger      *zap.Logger
}

// New creates a fetcher from the configuration.
func New(cfg Config, logger *zap.Logger) *Fetcher {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}
	minDelay := time.Duration(cfg.MinDelayMs) * time.Millisecond
	if minDelay <= 0 {
		minDelay = time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 15
	}
	backoffBase := time.Duration(cfg.BackoffBaseMs) * time.Millisecond
	if backoffBase <= 0 {
		backoffBase = 30 * time.Second
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Fetcher{
		client:      &http.Client{Timeout: time.Duration(timeout) * time.Second},
		slots:       make(chan struct{}, concurrency),
		pacer:       rate.NewLimiter(rate.Every(minDelay), 1),
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
		logger:      logger,
	}
}

// Fetch retrieves the body at url, retrying throttled responses.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchWithReporter(ctx, url, nil)
}

// FetchWithReporter behaves like Fetch but additionally invokes report before
// each backoff sleep, so long waits are visible to whoever tracks the
// surrounding operation.
func (f *Fetcher) FetchWithReporter(ctx context.Context, url string, report ThrottleReporter) ([]byte, error) {
	retries := 0
	for {
		body, err := f.doOnce(ctx, url)
		if err == nil {
			return body, nil
		}

		var throttled *throttledError
		if !errors.As(err, &throttled) {
			return nil, err
		}

		retries++
		if retries > f.maxRetries {
			return nil, fmt.Errorf("fetching %s after %d throttled attempts: %w", url, retries, ErrFetchExhausted)
		}

		wait := throttled.retryAfter
		if wait <= 0 {
			// 2^retries * base when the upstream gives no hint.
			wait = f.backoffBase * (1 << retries)
		}

		f.logger.Warn("Upstream throttled request, backing off",
			zap.String("url", url),
			zap.Int("attempt", retries),
			zap.Duration("wait", wait))

		if report != nil {
			report(wait, retries)
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// doOnce performs a single request. The concurrency slot is held only for the
// duration of the call and is always released before the caller sleeps,
// retries or returns.
func (f *Fetcher) doOnce(ctx context.Context, url string) ([]byte, error) {
	select {
	case f.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-f.slots }()

	if err := f.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &throttledError{retryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}

// parseRetryAfter understands the delta-seconds form of the Retry-After
// header. The HTTP-date form is rare on the upstreams we talk to and falls
// back to exponential backoff.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
