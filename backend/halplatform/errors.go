package halplatform

import "errors"

// Package errors for the hal platform.
var (
	// ErrClosed is returned when the platform is used after Close.
	ErrClosed = errors.New("halplatform: platform closed")

	// ErrUnknownAdapter is returned when an adapter handle was not issued by
	// this platform.
	ErrUnknownAdapter = errors.New("halplatform: unknown adapter handle")

	// ErrNoQueue is returned when an opened device reports no queue.
	ErrNoQueue = errors.New("halplatform: device has no queue")
)
