package models

import (
	"time"

	"proplink/pkg/platform/httputil"
)

// APIError is one error in an envelope.
type APIError = httputil.ErrorBody

// Metadata accompanies every adapter envelope.
type Metadata struct {
	ProcessingTimeMs   int64 `json:"processingTimeMs"`
	CacheHit           bool  `json:"cacheHit,omitempty"`
	RateLimitRemaining *int  `json:"rateLimitRemaining,omitempty"`
}

// SourceResponse is the envelope returned by a single portal adapter.
// Data holds one portal record or, for name searches, a list of them.
type SourceResponse struct {
	Success   bool       `json:"success"`
	Source    string     `json:"source"`
	RequestID string     `json:"requestId"`
	Timestamp time.Time  `json:"timestamp"`
	Data      any        `json:"data"`
	Metadata  Metadata   `json:"metadata"`
	Errors    []APIError `json:"errors,omitempty"`

	// Status is the HTTP status this envelope is served with.
	Status int `json:"-"`
}

// SourceData is one entry of the unified data list.
type SourceData struct {
	Source string `json:"source"`
	Data   any    `json:"data"`
}

// UnifiedMetadata summarises a cross-portal lookup.
type UnifiedMetadata struct {
	TotalSources      int   `json:"totalSources"`
	SuccessfulSources int   `json:"successfulSources"`
	FailedSources     int   `json:"failedSources"`
	ProcessingTimeMs  int64 `json:"processingTimeMs"`
	CacheHit          bool  `json:"cacheHit,omitempty"`
}

// UnifiedResponse is the envelope returned by the cross-portal endpoint.
// Success is true iff Data is non-empty.
type UnifiedResponse struct {
	Success   bool            `json:"success"`
	RequestID string          `json:"requestId"`
	Timestamp time.Time       `json:"timestamp"`
	Sources   []string        `json:"sources"`
	Data      []SourceData    `json:"data"`
	Errors    []APIError      `json:"errors,omitempty"`
	Metadata  UnifiedMetadata `json:"metadata"`

	Status int `json:"-"`
}
