package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ImplausibleRateThreshold is the sanity bound on fetched exchange rates.
// No currency pair we convert between trades anywhere near this ratio; a
// rate at or above it indicates a malformed or stale response, not a market
// move. This is an anti-corruption check, not a business rule.
const ImplausibleRateThreshold = 500.0

const (
	defaultMaxAttempts = 5
	defaultRetryDelay  = time.Second
)

// Normalizer resolves exchange rates from a secondary rate service so price
// quotes can be converted into the reference currency.
type Normalizer struct {
	ratesURL    string
	client      *http.Client
	maxAttempts int
	retryDelay  time.Duration
	logger      *zap.Logger
}

// NewNormalizer creates a normalizer against the given rates endpoint.
func NewNormalizer(ratesURL string, logger *zap.Logger) *Normalizer {
	return &Normalizer{
		ratesURL:    ratesURL,
		client:      &http.Client{Timeout: 15 * time.Second},
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		logger:      logger,
	}
}

// WithRetryDelay overrides the fixed delay between sanity-check retries.
func (n *Normalizer) WithRetryDelay(d time.Duration) *Normalizer {
	n.retryDelay = d
	return n
}

// ratesResponse is the payload of the rate service: a map of target
// currency codes to rates relative to the requested base.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Normalize returns the exchange rate from one currency to another, or 0
// when no plausible rate could be obtained. Zero means "do not convert";
// the caller keeps the original quote.
func (n *Normalizer) Normalize(ctx context.Context, from, to string) float64 {
	if from == to {
		return 1
	}

	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		rate, err := n.fetchRate(ctx, from, to)
		if err != nil {
			n.logger.Warn("Exchange rate lookup failed",
				zap.String("from", from),
				zap.String("to", to),
				zap.Error(err))
			return 0
		}

		if rate < ImplausibleRateThreshold {
			return rate
		}

		n.logger.Warn("Exchange rate failed sanity bound, retrying",
			zap.String("from", from),
			zap.String("to", to),
			zap.Float64("rate", rate),
			zap.Int("attempt", attempt))

		select {
		case <-time.After(n.retryDelay):
		case <-ctx.Done():
			return 0
		}
	}

	return 0
}

func (n *Normalizer) fetchRate(ctx context.Context, from, to string) (float64, error) {
	url := fmt.Sprintf("%s/%s", n.ratesURL, from)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building rates request: %w", err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("requesting rates for %s: %w", from, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate service returned status %d", resp.StatusCode)
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decoding rates response: %w", err)
	}

	rate, ok := payload.Rates[to]
	if !ok {
		return 0, fmt.Errorf("rate service has no rate from %s to %s", from, to)
	}
	return rate, nil
}
