package profile

import "errors"

var (
	// ErrInvalidThresholds is returned when inference thresholds are out of range.
	ErrInvalidThresholds = errors.New("invalid inference thresholds")

	// ErrTableRequired is returned when a nil table is summarized.
	ErrTableRequired = errors.New("table required")
)

// ErrCorruptSummaries is returned when serialized summaries cannot be decoded.
var ErrCorruptSummaries = errors.New("corrupt serialized summaries")
