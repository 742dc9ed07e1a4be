package halplatform

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/nativegpu"
)

// newNoopPlatform creates a Platform over a noop hal instance and closes it
// when the test ends.
func newNoopPlatform(t *testing.T) *Platform {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	require.NoError(t, err, "CreateInstance")
	p := New("noop", instance)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// noopExposed returns the adapters exposed by a fresh noop instance.
func noopExposed(t *testing.T) []hal.ExposedAdapter {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	require.NoError(t, err, "CreateInstance")
	t.Cleanup(func() { instance.Destroy() })
	adapters := instance.EnumerateAdapters(nil)
	require.NotEmpty(t, adapters)
	return adapters
}

func TestNoopPlatformBringUp(t *testing.T) {
	p := newNoopPlatform(t)

	res, err := nativegpu.BringUp(p)
	require.NoError(t, err)

	device, queue, ok := p.Queue(res.QueueHandle)
	require.True(t, ok)
	assert.NotNil(t, device)
	assert.NotNil(t, queue)

	adapter, ok := p.QueueAdapter(res.QueueHandle)
	require.True(t, ok)
	assert.Equal(t, res.AdapterHandle, adapter)

	_, desc, ok := p.Adapter(res.AdapterHandle)
	require.True(t, ok)
	assert.Equal(t, res.Adapter, desc)
}

func TestNoopPlatformExposesAnAdapter(t *testing.T) {
	p := newNoopPlatform(t)

	listed := p.Adapters()
	_, hasDefault := p.DefaultAdapter()
	assert.True(t, len(listed) > 0 || hasDefault, "noop instance should expose at least one adapter")
}

func TestAdapterHandlesAreStable(t *testing.T) {
	p := newNoopPlatform(t)

	first := p.Adapters()
	second := p.Adapters()
	assert.Equal(t, first, second)

	d1, ok1 := p.DefaultAdapter()
	d2, ok2 := p.DefaultAdapter()
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, d1, d2)
}

func TestClassification(t *testing.T) {
	base := noopExposed(t)[0]

	discrete := base
	discrete.Info.DeviceType = gputypes.DeviceTypeDiscreteGPU
	discrete.Info.Name = "  Discrete  "
	integrated := base
	integrated.Info.DeviceType = gputypes.DeviceTypeIntegratedGPU
	integrated.Info.Name = "Integrated"

	p := New("test", nil)
	t.Cleanup(func() { _ = p.Close() })
	p.mu.Lock()
	p.registerLocked([]hal.ExposedAdapter{integrated, discrete})
	p.mu.Unlock()

	got := p.Adapters()
	require.Len(t, got, 2)
	assert.Equal(t, "Integrated", got[0].Name)
	assert.Equal(t, nativegpu.PowerClassLowPower, got[0].Power)
	assert.Equal(t, "Discrete", got[1].Name)
	assert.Equal(t, nativegpu.PowerClassHighPerformance, got[1].Power)

	_, ok := p.DefaultAdapter()
	assert.False(t, ok, "no software adapter registered")

	sel := nativegpu.NewAdapterSelector(p)
	require.NoError(t, sel.Select())
	h, _ := sel.NativeHandle()
	assert.Equal(t, got[1].Handle, h)
}

func TestNewCommandQueueUnknownAdapter(t *testing.T) {
	p := newNoopPlatform(t)
	other := newNoopPlatform(t)
	res, err := nativegpu.BringUp(other)
	require.NoError(t, err)

	tests := []struct {
		name   string
		handle nativegpu.AdapterHandle
	}{
		{"zero", nativegpu.AdapterHandle{}},
		{"out of range", nativegpu.AdapterHandle{Handle: nativegpu.MakeHandle(999, p.epoch)}},
		{"other platform", res.AdapterHandle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Adapters()
			_, err := p.NewCommandQueue(tt.handle)
			assert.ErrorIs(t, err, ErrUnknownAdapter)
		})
	}
}

func TestDeviceBringupUnknownAdapter(t *testing.T) {
	p := newNoopPlatform(t)
	d := nativegpu.NewDeviceBringup(p, nativegpu.AdapterHandle{Handle: nativegpu.MakeHandle(42, 0)})

	err := d.Initialize()
	require.ErrorIs(t, err, nativegpu.ErrQueueCreationFailed)
	assert.ErrorIs(t, err, ErrUnknownAdapter)
	_, ok := d.CommandQueueHandle()
	assert.False(t, ok)
}

func TestCloseInvalidatesHandles(t *testing.T) {
	p := newNoopPlatform(t)
	res, err := nativegpu.BringUp(p)
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close(), "Close is idempotent")

	_, _, ok := p.Queue(res.QueueHandle)
	assert.False(t, ok)
	_, _, ok = p.Adapter(res.AdapterHandle)
	assert.False(t, ok)
	_, ok = p.QueueAdapter(res.QueueHandle)
	assert.False(t, ok)
	assert.Empty(t, p.Adapters())
	_, ok = p.DefaultAdapter()
	assert.False(t, ok)

	_, err = p.NewCommandQueue(res.AdapterHandle)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPlatformsHaveDistinctEpochs(t *testing.T) {
	a := New("a", nil)
	b := New("b", nil)
	assert.NotEqual(t, a.epoch, b.epoch)
	assert.Equal(t, "a", a.Name())
}

func TestDisplayName(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	assert.Equal(t, "Radeon\u00e9", displayName(" Radeone\u0301\n"))
	assert.Equal(t, "", displayName("   "))
}
