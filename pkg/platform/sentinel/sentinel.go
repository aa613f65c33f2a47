package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers return
// these (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: key does not exist in a store or dataset
// - ErrExpired: cached entry outlived its TTL
// - ErrUnavailable: backing service temporarily unavailable
// - ErrTimeout: upstream did not answer before its deadline
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
	ErrTimeout     = errors.New("timeout")
)
