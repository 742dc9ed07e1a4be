// Package halplatform implements nativegpu.Platform on top of gogpu/wgpu/hal.
//
// A Platform wraps one hal.Instance and acts as the registry that owns every
// adapter, device and queue referenced by the handles it issues. Handles are
// slot indices tagged with an epoch unique to the Platform, so a handle from a
// different Platform, or one used after Close, never resolves.
//
// Adapter classification follows the hal device type:
//
//   - discrete GPU: nativegpu.PowerClassHighPerformance
//   - integrated GPU: nativegpu.PowerClassLowPower
//   - anything else (software, virtual, unknown): not enumerated; the first
//     such adapter is reported as the platform default adapter
//
// Platforms are normally opened through the backend registry:
//
//	import _ "github.com/gogpu/nativegpu/backend/vulkan"
//
//	p, err := backend.Get("vulkan")
package halplatform
