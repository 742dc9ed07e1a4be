// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nativegpu

// Result is the outcome of a successful BringUp: the handles a GPU API runtime
// needs for command submission.
type Result struct {
	// Adapter describes the selected adapter.
	Adapter AdapterDescriptor
	// AdapterHandle references the selected adapter.
	AdapterHandle AdapterHandle
	// QueueHandle references the command submission queue.
	QueueHandle QueueHandle
}

// BringUp runs adapter selection followed by device bring-up on p.
//
// Errors from either step are returned as-is, so errors.Is(err,
// ErrNoDevicesFound) and errors.Is(err, ErrQueueCreationFailed) both work.
//
// Example:
//
//	res, err := nativegpu.BringUp(platform)
//	if err != nil {
//		return err
//	}
//	submit(res.QueueHandle)
func BringUp(p Platform, opts ...Option) (*Result, error) {
	sel := NewAdapterSelector(p, opts...)
	if err := sel.Select(); err != nil {
		return nil, err
	}

	desc, _ := sel.Adapter()
	adapter, _ := sel.NativeHandle()

	dev := NewDeviceBringup(p, adapter, opts...)
	if err := dev.Initialize(); err != nil {
		return nil, err
	}
	queue, _ := dev.CommandQueueHandle()

	return &Result{
		Adapter:       desc,
		AdapterHandle: adapter,
		QueueHandle:   queue,
	}, nil
}
