// Package noop registers a platform backed by gogpu/wgpu/hal/noop.
//
// The noop platform exposes adapters and queues that accept every call and
// do no work. It is always available, which makes it the registry's last
// resort and a stand-in for hardware in tests.
//
//	import _ "github.com/gogpu/nativegpu/backend/noop"
package noop

import (
	"fmt"

	halnoop "github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/nativegpu/backend"
	"github.com/gogpu/nativegpu/backend/halplatform"
)

func init() {
	backend.Register(backend.BackendNoop, Open)
}

// Open creates a noop instance and wraps it in a platform.
func Open() (backend.Platform, error) {
	api := halnoop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	return halplatform.New(backend.BackendNoop, instance), nil
}
