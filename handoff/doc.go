// Package handoff passes a completed bring-up to a GPU API runtime.
//
// A Provider resolves the adapter and queue handles of a nativegpu.Result
// against the halplatform that issued them and exposes the native objects
// through gpucontext.DeviceProvider, the interface gogpu runtimes accept:
//
//	p, _ := backend.Get("vulkan")
//	hp := p.(*halplatform.Platform)
//	res, err := nativegpu.BringUp(hp)
//	if err != nil {
//		return err
//	}
//	provider, err := handoff.New(hp, res)
//	if err != nil {
//		return err
//	}
//	runtime.Attach(provider)
//
// The Provider never owns what it exposes. Destroying the device through it
// is a no-op; the platform releases everything on Close, after which the
// Provider must not be used.
package handoff
