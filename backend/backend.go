package backend

import (
	"errors"

	"github.com/gogpu/nativegpu"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNilPlatform is returned when a factory reports success without a platform.
	ErrNilPlatform = errors.New("backend: factory returned nil platform")
)

// Platform is a nativegpu.Platform that a backend created and owns.
//
// The platform owns every native object behind the handles it issues.
// Close releases them; handles issued by the platform are stale afterwards.
type Platform interface {
	nativegpu.Platform

	// Name returns the backend identifier (e.g., "vulkan", "noop").
	Name() string

	// Close releases all native objects owned by the platform.
	Close() error
}
