// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package handoff

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/nativegpu"
	"github.com/gogpu/nativegpu/backend/halplatform"
)

var (
	// ErrStaleHandle is returned when a handle no longer resolves on the platform.
	ErrStaleHandle = errors.New("handoff: stale handle")

	// ErrNilResult is returned when New is given no bring-up result.
	ErrNilResult = errors.New("handoff: nil result")
)

// Option configures a Provider.
type Option func(*Provider)

// WithSurfaceFormat sets the texture format reported by SurfaceFormat.
// Callers that attach a surface pass its format here. Without it the
// Provider is headless and reports TextureFormatUndefined.
func WithSurfaceFormat(f gputypes.TextureFormat) Option {
	return func(p *Provider) {
		p.format = f
	}
}

// Provider exposes a brought-up adapter and queue as a
// gpucontext.DeviceProvider.
type Provider struct {
	adapterHandle nativegpu.AdapterHandle
	queueHandle   nativegpu.QueueHandle

	device  *Device
	queue   *Queue
	adapter *Adapter
	format  gputypes.TextureFormat
}

// New resolves r's handles on platform. It fails with ErrStaleHandle if
// either handle was not issued by platform or the platform has been closed.
func New(platform *halplatform.Platform, r *nativegpu.Result, opts ...Option) (*Provider, error) {
	if r == nil {
		return nil, ErrNilResult
	}
	if platform == nil {
		return nil, nativegpu.ErrNilPlatform
	}

	exposed, desc, ok := platform.Adapter(r.AdapterHandle)
	if !ok {
		return nil, fmt.Errorf("%w: adapter %s", ErrStaleHandle, r.AdapterHandle)
	}
	device, queue, ok := platform.Queue(r.QueueHandle)
	if !ok {
		return nil, fmt.Errorf("%w: queue %s", ErrStaleHandle, r.QueueHandle)
	}
	if owner, _ := platform.QueueAdapter(r.QueueHandle); owner != r.AdapterHandle {
		return nil, fmt.Errorf("handoff: queue %s was not created on adapter %s", r.QueueHandle, r.AdapterHandle)
	}

	p := &Provider{
		adapterHandle: r.AdapterHandle,
		queueHandle:   r.QueueHandle,
		device:        &Device{hal: device},
		queue:         &Queue{hal: queue},
		adapter:       &Adapter{hal: exposed, desc: desc},
		format:        gputypes.TextureFormatUndefined,
	}
	for _, opt := range opts {
		opt(p)
	}

	nativegpu.Logger().Debug("handoff: provider ready",
		"adapter", desc.Name, "queue", r.QueueHandle)
	return p, nil
}

// Device returns the logical device the queue belongs to.
func (p *Provider) Device() gpucontext.Device { return p.device }

// Queue returns the command submission queue.
func (p *Provider) Queue() gpucontext.Queue { return p.queue }

// Adapter returns the selected adapter.
func (p *Provider) Adapter() gpucontext.Adapter { return p.adapter }

// SurfaceFormat returns the preferred texture format for presentation, or
// TextureFormatUndefined when no surface format was given.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat { return p.format }

// AdapterInfo returns the adapter's name and type.
func (p *Provider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: p.adapter.desc.Name,
		Type: adapterType(p.adapter.hal.Info.DeviceType),
	}
}

// adapterType maps a hal device type to the gpucontext adapter type.
func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// HalDevice returns the hal.Device for consumers that work at the HAL level.
func (p *Provider) HalDevice() any { return p.device.hal }

// HalQueue returns the hal.Queue for consumers that work at the HAL level.
func (p *Provider) HalQueue() any { return p.queue.hal }

// AdapterHandle returns the handle the adapter was resolved from.
func (p *Provider) AdapterHandle() nativegpu.AdapterHandle { return p.adapterHandle }

// QueueHandle returns the handle the queue was resolved from.
func (p *Provider) QueueHandle() nativegpu.QueueHandle { return p.queueHandle }

// Device is a non-owning view of a hal.Device.
type Device struct {
	hal hal.Device
}

// Poll is a no-op: nothing is submitted through this layer.
func (d *Device) Poll(wait bool) {}

// Destroy is a no-op. The platform owns the device and releases it on Close.
func (d *Device) Destroy() {}

// Hal returns the underlying hal.Device.
func (d *Device) Hal() hal.Device { return d.hal }

// Queue is a non-owning view of a hal.Queue.
type Queue struct {
	hal hal.Queue
}

// Hal returns the underlying hal.Queue.
func (q *Queue) Hal() hal.Queue { return q.hal }

// Adapter is a non-owning view of the selected adapter.
type Adapter struct {
	hal  hal.ExposedAdapter
	desc nativegpu.AdapterDescriptor
}

// Name returns the adapter's display name.
func (a *Adapter) Name() string { return a.desc.Name }

// Power returns the adapter's power class.
func (a *Adapter) Power() nativegpu.PowerClass { return a.desc.Power }

// Hal returns the adapter as exposed by the hal instance.
func (a *Adapter) Hal() hal.ExposedAdapter { return a.hal }

// Interface compliance checks.
var (
	_ gpucontext.DeviceProvider = (*Provider)(nil)
	_ gpucontext.Device         = (*Device)(nil)
	_ gpucontext.Queue          = (*Queue)(nil)
	_ gpucontext.Adapter        = (*Adapter)(nil)
)
