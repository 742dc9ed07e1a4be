// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halplatform

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/nativegpu"
)

// epochs hands out a distinct epoch to every Platform.
var epochs atomic.Uint32

// adapterSlot is one enumerated hal adapter.
type adapterSlot struct {
	exposed hal.ExposedAdapter
	desc    nativegpu.AdapterDescriptor
	listed  bool // false for software/virtual adapters kept as default candidates
}

// queueSlot is one device/queue pair opened by NewCommandQueue.
type queueSlot struct {
	device  hal.Device
	queue   hal.Queue
	adapter nativegpu.AdapterHandle
}

// Platform is a nativegpu.Platform backed by a hal.Instance.
//
// Platform is safe for concurrent use. Adapters are enumerated from the
// instance once, on first use, so adapter handles stay stable for the
// Platform's lifetime.
type Platform struct {
	mu sync.RWMutex

	name     string
	instance hal.Instance
	epoch    uint32

	enumerated bool
	adapters   []adapterSlot
	queues     []queueSlot
	closed     bool
}

// New creates a Platform that takes ownership of instance.
// Close destroys the instance and every device opened through the Platform.
func New(name string, instance hal.Instance) *Platform {
	return &Platform{
		name:     name,
		instance: instance,
		epoch:    epochs.Add(1),
	}
}

// Name returns the backend identifier given to New.
func (p *Platform) Name() string {
	return p.name
}

// Adapters returns the hardware adapters of the instance in hal order.
func (p *Platform) Adapters() []nativegpu.AdapterDescriptor {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.enumerateLocked()

	out := make([]nativegpu.AdapterDescriptor, 0, len(p.adapters))
	for _, s := range p.adapters {
		if s.listed {
			out = append(out, s.desc)
		}
	}
	return out
}

// DefaultAdapter returns the first adapter that is neither discrete nor
// integrated, typically a software rasterizer.
func (p *Platform) DefaultAdapter() (nativegpu.AdapterDescriptor, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nativegpu.AdapterDescriptor{}, false
	}
	p.enumerateLocked()

	for _, s := range p.adapters {
		if !s.listed {
			return s.desc, true
		}
	}
	return nativegpu.AdapterDescriptor{}, false
}

// enumerateLocked fills the adapter table. Must be called with mu held.
func (p *Platform) enumerateLocked() {
	if p.enumerated || p.instance == nil {
		return
	}
	p.registerLocked(p.instance.EnumerateAdapters(nil))
}

// registerLocked builds the adapter table from an enumeration. Must be called
// with mu held.
func (p *Platform) registerLocked(exposed []hal.ExposedAdapter) {
	p.enumerated = true
	p.adapters = make([]adapterSlot, 0, len(exposed))
	for i := range exposed {
		power, listed := nativegpu.PowerClassLowPower, true
		switch exposed[i].Info.DeviceType {
		case gputypes.DeviceTypeDiscreteGPU:
			power = nativegpu.PowerClassHighPerformance
		case gputypes.DeviceTypeIntegratedGPU:
			power = nativegpu.PowerClassLowPower
		default:
			listed = false
		}
		h := nativegpu.AdapterHandle{Handle: nativegpu.MakeHandle(uint32(len(p.adapters)+1), p.epoch)}
		p.adapters = append(p.adapters, adapterSlot{
			exposed: exposed[i],
			listed:  listed,
			desc: nativegpu.AdapterDescriptor{
				Name:   displayName(exposed[i].Info.Name),
				Power:  power,
				Handle: h,
			},
		})
		nativegpu.Logger().Debug("halplatform: adapter found",
			"backend", p.name, "name", exposed[i].Info.Name, "listed", listed, "handle", h)
	}
}

// displayName normalizes a driver-reported adapter name.
func displayName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// NewCommandQueue opens a logical device on adapter and returns a handle to
// its queue. The device stays owned by the Platform until Close.
func (p *Platform) NewCommandQueue(adapter nativegpu.AdapterHandle) (nativegpu.QueueHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nativegpu.QueueHandle{}, ErrClosed
	}
	slot, ok := p.adapterLocked(adapter)
	if !ok {
		return nativegpu.QueueHandle{}, fmt.Errorf("%w: %s", ErrUnknownAdapter, adapter)
	}

	openDev, err := slot.exposed.Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		return nativegpu.QueueHandle{}, fmt.Errorf("open device on %q: %w", slot.desc.Name, err)
	}
	if openDev.Queue == nil {
		if openDev.Device != nil {
			openDev.Device.Destroy()
		}
		return nativegpu.QueueHandle{}, fmt.Errorf("%w: %q", ErrNoQueue, slot.desc.Name)
	}

	p.queues = append(p.queues, queueSlot{
		device:  openDev.Device,
		queue:   openDev.Queue,
		adapter: adapter,
	})
	return nativegpu.QueueHandle{Handle: nativegpu.MakeHandle(uint32(len(p.queues)), p.epoch)}, nil
}

// adapterLocked resolves an adapter handle. Must be called with mu held.
func (p *Platform) adapterLocked(h nativegpu.AdapterHandle) (*adapterSlot, bool) {
	i, ok := p.slot(h.Handle, len(p.adapters))
	if !ok {
		return nil, false
	}
	return &p.adapters[i], true
}

// slot converts a handle to a table index if it belongs to this platform.
func (p *Platform) slot(h nativegpu.Handle, n int) (int, bool) {
	if h.IsZero() || h.Epoch() != p.epoch {
		return 0, false
	}
	i := int(h.Index()) - 1
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// Adapter resolves an adapter handle to the hal adapter as exposed by the
// instance, and its descriptor.
func (p *Platform) Adapter(h nativegpu.AdapterHandle) (hal.ExposedAdapter, nativegpu.AdapterDescriptor, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return hal.ExposedAdapter{}, nativegpu.AdapterDescriptor{}, false
	}
	s, ok := p.adapterLocked(h)
	if !ok {
		return hal.ExposedAdapter{}, nativegpu.AdapterDescriptor{}, false
	}
	return s.exposed, s.desc, true
}

// Queue resolves a queue handle to the hal device and queue it belongs to.
func (p *Platform) Queue(h nativegpu.QueueHandle) (hal.Device, hal.Queue, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, nil, false
	}
	i, ok := p.slot(h.Handle, len(p.queues))
	if !ok {
		return nil, nil, false
	}
	return p.queues[i].device, p.queues[i].queue, true
}

// QueueAdapter returns the adapter a queue was created on.
func (p *Platform) QueueAdapter(h nativegpu.QueueHandle) (nativegpu.AdapterHandle, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nativegpu.AdapterHandle{}, false
	}
	i, ok := p.slot(h.Handle, len(p.queues))
	if !ok {
		return nativegpu.AdapterHandle{}, false
	}
	return p.queues[i].adapter, true
}

// Close destroys every opened device, then the instance. Handles issued by
// the Platform no longer resolve afterwards. Close is idempotent.
func (p *Platform) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	// Release in reverse order of creation.
	for i := len(p.queues) - 1; i >= 0; i-- {
		if d := p.queues[i].device; d != nil {
			d.Destroy()
		}
	}
	p.queues = nil
	p.adapters = nil

	if p.instance != nil {
		p.instance.Destroy()
		p.instance = nil
	}
	nativegpu.Logger().Debug("halplatform: closed", "backend", p.name)
	return nil
}

// Interface compliance check.
var _ nativegpu.Platform = (*Platform)(nil)
