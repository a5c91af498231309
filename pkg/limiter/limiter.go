package limiter

import (
	"time"

	"golang.org/x/time/rate"
)

// Tier mirrors the Slack Web API rate limit tiers, expressed in requests
// per minute. Most read methods used by this client are Tier 2 or 3.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 20
	Tier3 Tier = 50
	Tier4 Tier = 100
)

// Limiter returns a token bucket for the tier with a small burst so that
// short command invocations are not throttled on their first calls.
func (t Tier) Limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(t)), int(t))
}
