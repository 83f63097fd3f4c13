package llmwire

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultMaxRate    = 1000
	defaultTimePeriod = time.Second
)

// newRateGate builds the per-client request gate admitting maxRate requests
// per period, the whole allowance available at once. Non-positive arguments
// fall back to the defaults.
func newRateGate(maxRate float64, period time.Duration) *rate.Limiter {
	if maxRate <= 0 {
		maxRate = defaultMaxRate
	}
	if period <= 0 {
		period = defaultTimePeriod
	}
	burst := int(maxRate)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(maxRate/period.Seconds()), burst)
}
