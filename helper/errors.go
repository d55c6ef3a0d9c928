package helper

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError: malformed or out-of-range input. Not retryable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError: the requested hours are already held by a live booking.
// Retryable after re-fetching availability.
type ConflictError struct {
	Hours []int
}

func (e *ConflictError) Error() string {
	sorted := append([]int(nil), e.Hours...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, h := range sorted {
		parts[i] = fmt.Sprintf("%d", h)
	}
	return "slot conflict on hours: " + strings.Join(parts, ", ")
}

// StateError: the booking is not in the lifecycle state the operation needs.
type StateError struct {
	Reason string // constants.WRONG_STATUS etc.
	Detail string
}

func (e *StateError) Error() string {
	if e.Detail == "" {
		return e.Reason
	}
	return e.Reason + ": " + e.Detail
}

// AmountMismatchError carries the full arithmetic breakdown so the caller can
// see exactly where the proposed payment diverged.
type AmountMismatchError struct {
	RemainingDue float64
	ExtraTotal   float64
	Discount     float64
	Expected     float64
	Provided     float64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf(
		"payment amount mismatch: remaining due %.2f + extra charges %.2f - discount %.2f = expected %.2f, got %.2f",
		e.RemainingDue, e.ExtraTotal, e.Discount, e.Expected, e.Provided)
}

// StorageError: the transaction itself failed; everything was rolled back.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage error: " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }
