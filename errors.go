// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nativegpu

import "errors"

// Bring-up errors. Components return these (possibly wrapped with the
// platform's cause) from their initializing call; use errors.Is to classify.
var (
	// ErrNoDevicesFound is returned by AdapterSelector.Select when the
	// enumeration is empty and the platform has no default adapter.
	ErrNoDevicesFound = errors.New("nativegpu: no devices found")

	// ErrQueueCreationFailed is returned by DeviceBringup.Initialize when the
	// adapter could not produce a command submission queue.
	ErrQueueCreationFailed = errors.New("nativegpu: unable to create command queue")

	// ErrNilPlatform is returned when a component was built without a Platform.
	ErrNilPlatform = errors.New("nativegpu: nil platform")
)
