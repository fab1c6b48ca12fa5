package frame

import "time"

// NewTestLimiter returns a Limiter driven by a fake clock.
func NewTestLimiter(now func() time.Time, sleep func(time.Duration)) *Limiter {
	return &Limiter{now: now, sleep: sleep}
}
