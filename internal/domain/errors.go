package domain

import "errors"

var (
	// ErrInvalidDay is returned when a claim names a day outside the roster.
	ErrInvalidDay = errors.New("invalid day")
	// ErrCapacityExceeded marks a claim rejected because the day is full.
	ErrCapacityExceeded = errors.New("day is full")
	// ErrNotFound marks a cancel for a user without a signup.
	ErrNotFound = errors.New("signup not found")
	// ErrDeliveryFailure wraps transport errors when sending a payload.
	ErrDeliveryFailure = errors.New("delivery failure")
	// ErrTriggerOutOfSequence is returned when a trigger doesn't match the current phase.
	ErrTriggerOutOfSequence = errors.New("trigger out of sequence")
)
