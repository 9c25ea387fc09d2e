package domain

import "errors"

// Validation errors are reported straight back to the requester and are never
// fatal to the process.
var (
	ErrUnknownTimezone = errors.New("unknown timezone name")
	ErrInvalidDate     = errors.New("invalid calendar date")
	ErrTimeInPast      = errors.New("reminder time is in the past")
	ErrNoTimezoneSet   = errors.New("no timezone set for user")
	ErrBadTargets      = errors.New("a reminder needs between 1 and 3 target users")

	ErrNotAuthorized = errors.New("user is not authorized")

	ErrInvalidAmount          = errors.New("amount must be a positive number")
	ErrUnknownTransactionType = errors.New("transaction type must be income or expense")
	ErrUnknownField           = errors.New("unknown transaction field")
	ErrNotFound               = errors.New("record not found")
	ErrNoJobSet               = errors.New("user has no job set")
)
