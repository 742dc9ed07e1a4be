// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nativegpu

// PowerClass classifies a physical adapter for selection.
type PowerClass uint8

const (
	// PowerClassHighPerformance is a discrete or otherwise non-low-power GPU.
	PowerClassHighPerformance PowerClass = iota
	// PowerClassLowPower is an integrated or power-saving GPU.
	PowerClassLowPower
)

// String returns the power class name.
func (p PowerClass) String() string {
	switch p {
	case PowerClassHighPerformance:
		return "high-performance"
	case PowerClassLowPower:
		return "low-power"
	default:
		return "unknown"
	}
}

// AdapterDescriptor describes one physical adapter exposed by a Platform.
// Descriptors are produced by enumeration and are never mutated.
type AdapterDescriptor struct {
	// Name is the display name reported by the driver.
	Name string
	// Power is the adapter's power class.
	Power PowerClass
	// Handle is a non-owning reference to the native adapter.
	Handle AdapterHandle
}

// IsLowPower reports whether the adapter is classified as low-power.
func (d AdapterDescriptor) IsLowPower() bool {
	return d.Power == PowerClassLowPower
}

// Platform is the platform graphics runtime that owns every native object
// referenced by this package. Implementations live under backend/.
//
// Platform methods are called sequentially during bring-up; implementations
// need not be safe for concurrent use unless they document it.
type Platform interface {
	// Adapters enumerates the physical adapters in platform order. The order
	// is deterministic within one call but need not be stable across runs.
	Adapters() []AdapterDescriptor

	// DefaultAdapter returns the system default adapter, if there is one.
	DefaultAdapter() (AdapterDescriptor, bool)

	// NewCommandQueue creates one command submission queue on adapter.
	// A zero handle or a non-nil error means no queue was created.
	NewCommandQueue(adapter AdapterHandle) (QueueHandle, error)
}
