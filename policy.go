// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nativegpu

// Policy chooses one adapter from an enumeration. It returns false when
// nothing in adapters is acceptable, in which case the selector falls back to
// the platform default adapter. Adapters without a handle are removed before
// the policy sees the enumeration.
//
// Policy is the extension point for a caller supplied power preference
// (https://www.w3.org/TR/webgpu/#adapter-selection). No such preference is
// defined yet; PreferHighPerformance is the only built-in policy.
type Policy func(adapters []AdapterDescriptor) (AdapterDescriptor, bool)

// PreferHighPerformance selects the first adapter that is not low-power,
// otherwise the first low-power adapter, in enumeration order.
func PreferHighPerformance(adapters []AdapterDescriptor) (AdapterDescriptor, bool) {
	for _, a := range adapters {
		if !a.IsLowPower() {
			return a, true
		}
	}
	for _, a := range adapters {
		if a.IsLowPower() {
			return a, true
		}
	}
	return AdapterDescriptor{}, false
}
