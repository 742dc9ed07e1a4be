// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nativegpu

import "fmt"

// DeviceBringup creates exactly one command submission queue on an adapter.
//
// The adapter handle is borrowed: DeviceBringup does not check where it came
// from or what kind of object it names. Passing anything other than a handle
// obtained from AdapterSelector.NativeHandle on the same Platform is
// undefined at this layer.
//
// DeviceBringup never releases the queue; its lifetime belongs to the
// Platform. It is not safe for concurrent use.
type DeviceBringup struct {
	platform Platform
	adapter  AdapterHandle
	opts     options

	state State
	err   error
	queue QueueHandle
}

// NewDeviceBringup creates a bring-up for adapter on p.
func NewDeviceBringup(p Platform, adapter AdapterHandle, opts ...Option) *DeviceBringup {
	return &DeviceBringup{
		platform: p,
		adapter:  adapter,
		opts:     buildOptions(opts),
	}
}

// Initialize requests one command submission queue from the platform.
//
// On failure it returns an error matching ErrQueueCreationFailed and no queue
// is retained. The failure is final: further calls return the same error.
// After success further calls return nil and the queue is never recreated.
func (d *DeviceBringup) Initialize() error {
	switch d.state {
	case StateReady:
		return nil
	case StateFailed:
		return d.err
	}

	if d.platform == nil {
		return d.fail(fmt.Errorf("%w: %w", ErrQueueCreationFailed, ErrNilPlatform))
	}

	queue, err := d.platform.NewCommandQueue(d.adapter)
	if err != nil {
		return d.fail(fmt.Errorf("%w: %w", ErrQueueCreationFailed, err))
	}
	if queue.IsZero() {
		return d.fail(ErrQueueCreationFailed)
	}

	d.queue = queue
	d.state = StateReady
	d.opts.log().Info("nativegpu: command queue initialized",
		"queue", queue, "adapter", d.adapter)
	return nil
}

func (d *DeviceBringup) fail(err error) error {
	d.state = StateFailed
	d.err = err
	return err
}

// CommandQueueHandle returns the created queue. It reports false until
// Initialize has succeeded; afterwards it always returns the same handle.
func (d *DeviceBringup) CommandQueueHandle() (QueueHandle, bool) {
	if d.state != StateReady {
		return QueueHandle{}, false
	}
	return d.queue, true
}

// AdapterHandle returns the borrowed adapter handle this bring-up targets.
func (d *DeviceBringup) AdapterHandle() AdapterHandle {
	return d.adapter
}

// State returns the bring-up's lifecycle state.
func (d *DeviceBringup) State() State {
	return d.state
}
