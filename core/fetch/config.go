package fetch

// Config holds configuration for the rate-limited upstream fetcher.
type Config struct {
	// Concurrency is the number of outbound requests allowed in flight.
	Concurrency int `mapstructure:"concurrency" default:"3"`
	// MinDelayMs is the minimum delay between requests even when capacity is
	// available, to stay under the upstream request budget.
	MinDelayMs int `mapstructure:"min_delay_ms" default:"1000"`
	// MaxRetries is the number of throttled attempts tolerated per fetch
	// before the fetch is declared exhausted.
	MaxRetries int `mapstructure:"max_retries" default:"15"`
	// BackoffBaseMs is the exponential backoff base used when the upstream
	// does not advertise a Retry-After value.
	BackoffBaseMs int `mapstructure:"backoff_base_ms" default:"30000"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
