package nativegpu

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCreatesQueue(t *testing.T) {
	p := &fakePlatform{}
	a := AdapterHandle{MakeHandle(1, 1)}
	d := NewDeviceBringup(p, a)

	_, ok := d.CommandQueueHandle()
	assert.False(t, ok, "queue before Initialize")

	require.NoError(t, d.Initialize())

	q1, ok1 := d.CommandQueueHandle()
	q2, ok2 := d.CommandQueueHandle()
	require.True(t, ok1)
	require.True(t, ok2)
	assert.False(t, q1.IsZero())
	assert.Equal(t, q1, q2)
	assert.Equal(t, a, p.lastQueue)
	assert.Equal(t, a, d.AdapterHandle())
	assert.Equal(t, StateReady, d.State())
}

func TestInitializeNeverRecreatesQueue(t *testing.T) {
	p := &fakePlatform{}
	d := NewDeviceBringup(p, AdapterHandle{MakeHandle(1, 1)})
	require.NoError(t, d.Initialize())
	first, _ := d.CommandQueueHandle()

	require.NoError(t, d.Initialize())
	second, _ := d.CommandQueueHandle()

	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.queueCalls)
}

func TestInitializePlatformError(t *testing.T) {
	p := &fakePlatform{queueErr: errOutOfMemory}
	d := NewDeviceBringup(p, AdapterHandle{MakeHandle(1, 1)})

	err := d.Initialize()
	require.ErrorIs(t, err, ErrQueueCreationFailed)
	assert.ErrorIs(t, err, errOutOfMemory)

	_, ok := d.CommandQueueHandle()
	assert.False(t, ok)
	assert.Equal(t, StateFailed, d.State())
}

func TestInitializeNoQueueReturned(t *testing.T) {
	p := &fakePlatform{zeroQueue: true}
	d := NewDeviceBringup(p, AdapterHandle{MakeHandle(1, 1)})

	require.ErrorIs(t, d.Initialize(), ErrQueueCreationFailed)

	_, ok := d.CommandQueueHandle()
	assert.False(t, ok)
}

func TestInitializeFailureIsTerminal(t *testing.T) {
	p := &fakePlatform{queueErr: errOutOfMemory}
	d := NewDeviceBringup(p, AdapterHandle{MakeHandle(1, 1)})
	first := d.Initialize()
	require.Error(t, first)

	p.queueErr = nil
	second := d.Initialize()
	assert.True(t, errors.Is(second, ErrQueueCreationFailed))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.queueCalls)

	_, ok := d.CommandQueueHandle()
	assert.False(t, ok)
}

func TestInitializeNilPlatform(t *testing.T) {
	d := NewDeviceBringup(nil, AdapterHandle{MakeHandle(1, 1)})

	err := d.Initialize()
	require.ErrorIs(t, err, ErrQueueCreationFailed)
	assert.ErrorIs(t, err, ErrNilPlatform)
}

func TestInitializeLogsQueue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d := NewDeviceBringup(&fakePlatform{}, AdapterHandle{MakeHandle(1, 1)}, WithLogger(logger))
	require.NoError(t, d.Initialize())

	q, _ := d.CommandQueueHandle()
	assert.Contains(t, buf.String(), "command queue initialized")
	assert.Contains(t, buf.String(), q.String())
}
