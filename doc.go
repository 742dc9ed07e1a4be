// Package nativegpu brings up a native GPU for a WebGPU-style runtime.
//
// # Overview
//
// Bring-up is two linear steps over a Platform, the graphics runtime that
// owns every native object:
//
//   - AdapterSelector enumerates physical adapters and binds one.
//   - DeviceBringup creates exactly one command submission queue on it.
//
// Both steps hand back opaque, non-owning handles (AdapterHandle,
// QueueHandle). Handles are process-local and only valid while the platform
// keeps the referenced objects alive; this package never frees them.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/nativegpu"
//		"github.com/gogpu/nativegpu/backend"
//		_ "github.com/gogpu/nativegpu/backend/vulkan"
//	)
//
//	p, err := backend.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	res, err := nativegpu.BringUp(p)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Adapter.Name, res.QueueHandle)
//
// # Adapter Selection
//
// The built-in policy prefers the first adapter that is not low-power, then
// the first low-power adapter, then the platform default adapter. Any other
// outcome is ErrNoDevicesFound. Policy is the hook for a future caller
// supplied power preference.
//
// # Lifecycle
//
// Each component moves from StateUninitialized to StateReady or StateFailed
// exactly once. Failure is terminal; construct a new component to retry.
//
// # Logging
//
// Components log the selected adapter and created queue through the logger
// given with WithLogger, or through the package logger set by SetLogger.
// Both default to silent.
package nativegpu
