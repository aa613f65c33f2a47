package models

import (
	"time"
)

const (
	// DefaultWindow is the fixed counting window.
	DefaultWindow = time.Minute
	// DefaultBurstInterval is the spacing under which consecutive calls count as a burst.
	DefaultBurstInterval = time.Second
)

// Limits are the thresholds for one (source, client) pair.
type Limits struct {
	RequestsPerMinute int
	BurstLimit        int
	Window            time.Duration
	BurstInterval     time.Duration
}

// NewLimits returns limits over the default window and burst interval.
func NewLimits(requestsPerMinute, burstLimit int) Limits {
	return Limits{
		RequestsPerMinute: requestsPerMinute,
		BurstLimit:        burstLimit,
		Window:            DefaultWindow,
		BurstInterval:     DefaultBurstInterval,
	}
}

// Normalized fills zero durations with the defaults.
func (l Limits) Normalized() Limits {
	if l.Window <= 0 {
		l.Window = DefaultWindow
	}
	if l.BurstInterval <= 0 {
		l.BurstInterval = DefaultBurstInterval
	}
	return l
}

// Window is the counter state for one key.
type Window struct {
	Count       int       `json:"count"`
	ResetAt     time.Time `json:"reset_at"`
	LastRequest time.Time `json:"last_request"`
}

// Expired reports whether the window has elapsed as of now.
func (w Window) Expired(now time.Time) bool {
	return !now.Before(w.ResetAt)
}

// RateLimitResult represents the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
	Burst      bool      `json:"burst,omitempty"`       // denied by the burst sub-limit
}
