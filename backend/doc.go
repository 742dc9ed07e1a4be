// Package backend provides the registry of platform graphics runtimes.
//
// A backend package registers a Factory from its init function; callers
// then open a nativegpu.Platform by name or let the registry pick the best
// one available.
//
// # Backend Registration
//
// Backends are registered on import:
//
//	import _ "github.com/gogpu/nativegpu/backend/vulkan"
//	import _ "github.com/gogpu/nativegpu/backend/noop"
//
// # Backend Selection
//
// Use Default to open the best available platform, or Get to open a
// specific one:
//
//	p, err := backend.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	// Or request a specific backend
//	p, err = backend.Get("noop")
//
// # Available Backends
//
//   - "vulkan": Vulkan through gogpu/wgpu/hal (build tag !nogpu)
//   - "noop": gogpu/wgpu/hal/noop, always available, no real device
package backend
