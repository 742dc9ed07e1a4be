package nativegpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlePacking(t *testing.T) {
	h := MakeHandle(7, 3)
	assert.Equal(t, uint32(7), h.Index())
	assert.Equal(t, uint32(3), h.Epoch())
	assert.False(t, h.IsZero())
	assert.Equal(t, "7@3", h.String())
}

func TestHandleZero(t *testing.T) {
	var h Handle
	assert.True(t, h.IsZero())
	assert.Equal(t, "invalid", h.String())
	assert.True(t, AdapterHandle{}.IsZero())
	assert.True(t, QueueHandle{}.IsZero())
}

func TestHandleKindsShareRepresentation(t *testing.T) {
	a := AdapterHandle{MakeHandle(1, 2)}
	q := QueueHandle{MakeHandle(1, 2)}
	assert.Equal(t, a.Handle, q.Handle)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateUninitialized, "uninitialized"},
		{StateReady, "ready"},
		{StateFailed, "failed"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestPowerClassString(t *testing.T) {
	assert.Equal(t, "high-performance", PowerClassHighPerformance.String())
	assert.Equal(t, "low-power", PowerClassLowPower.String())
	assert.Equal(t, "unknown", PowerClass(9).String())
}
