package domain

import "errors"

var (
	// ErrInvalidTransition is returned for any status change outside the lifecycle table
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrUnknownStatus is returned for status values outside the closed set
	ErrUnknownStatus = errors.New("domain: unknown booking status")
)
