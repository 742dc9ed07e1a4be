//go:build !nogpu

package vulkan

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/nativegpu/backend"
	"github.com/gogpu/nativegpu/backend/halplatform"
)

// init registers the Vulkan platform on package import.
func init() {
	backend.Register(backend.BackendVulkan, Open)
}

// getBackend looks up the hal backend. Replaced in tests.
var getBackend = hal.GetBackend

// Open creates a Vulkan instance and wraps it in a platform.
// It fails with backend.ErrBackendNotAvailable when hal has no Vulkan backend.
func Open() (backend.Platform, error) {
	api, ok := getBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: hal has no %s backend", backend.ErrBackendNotAvailable, gputypes.BackendVulkan)
	}
	instance, err := api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	return halplatform.New(backend.BackendVulkan, instance), nil
}
