// Package vulkan registers the Vulkan platform with the backend registry.
//
// To use it, import the package for its side effect:
//
//	import _ "github.com/gogpu/nativegpu/backend/vulkan"
//
// Building with -tags nogpu leaves the package empty, so the registry falls
// back to the remaining backends.
package vulkan
