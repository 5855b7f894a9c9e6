package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidRanking        = errors.New("invalid ranking")
	ErrEmptyGroup            = errors.New("empty group")
	ErrInconsistentItemCount = errors.New("inconsistent item count")
	ErrDimensionMismatch     = errors.New("score vector dimension mismatch")

	// Engine errors
	ErrInvalidTrialCount = errors.New("invalid trial count")
	ErrEmptyNullSample   = errors.New("empty null sample")

	// Configuration errors
	ErrUnknownAggregator = errors.New("unknown aggregator")
	ErrUnknownComparator = errors.New("unknown comparator")
)

// Error constructors with context

func NewEmptyGroupError(group string) error {
	return fmt.Errorf("%w: group %s has no rankings", ErrEmptyGroup, group)
}

func NewInconsistentItemCountError(group string, index, want, got int) error {
	return fmt.Errorf("%w: group %s ranking %d has %d items, expected %d",
		ErrInconsistentItemCount, group, index, got, want)
}

func NewDimensionMismatchError(lenX, lenY int) error {
	return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, lenX, lenY)
}

func NewInvalidTrialCountError(trials int) error {
	return fmt.Errorf("%w: %d (must be positive)", ErrInvalidTrialCount, trials)
}

// Error checking helpers

// IsValidationError reports whether err is a deterministic input-validation
// failure, as opposed to an internal fault. None of these are retryable.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRanking) ||
		errors.Is(err, ErrEmptyGroup) ||
		errors.Is(err, ErrInconsistentItemCount) ||
		errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrInvalidTrialCount) ||
		errors.Is(err, ErrEmptyNullSample) ||
		errors.Is(err, ErrUnknownAggregator) ||
		errors.Is(err, ErrUnknownComparator)
}
