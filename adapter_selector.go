// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nativegpu

// AdapterSelector chooses one physical adapter from a Platform and binds it.
//
// The selector is single-use: Select binds at most one adapter for the
// lifetime of the selector, and a failed Select is final. Construct a new
// selector to try again.
//
// AdapterSelector is not safe for concurrent use. Callers must serialize
// access during bring-up.
type AdapterSelector struct {
	platform Platform
	opts     options

	state    State
	err      error
	selected AdapterDescriptor
}

// NewAdapterSelector creates a selector over p. Nothing is enumerated until
// Select is called.
func NewAdapterSelector(p Platform, opts ...Option) *AdapterSelector {
	return &AdapterSelector{
		platform: p,
		opts:     buildOptions(opts),
	}
}

// Select enumerates the platform's adapters and binds one.
//
// The default policy binds the first adapter that is not low-power, then the
// first low-power adapter. If the enumeration yields nothing acceptable, the
// platform default adapter is bound. If there is none, Select fails with
// ErrNoDevicesFound.
//
// Once Select has succeeded, further calls return nil without enumerating
// again. Once it has failed, further calls return the same error.
func (s *AdapterSelector) Select() error {
	switch s.state {
	case StateReady:
		return nil
	case StateFailed:
		return s.err
	}

	if s.platform == nil {
		return s.fail(ErrNilPlatform)
	}

	log := s.opts.log()
	enumerated := s.platform.Adapters()
	adapters := make([]AdapterDescriptor, 0, len(enumerated))
	for i, a := range enumerated {
		log.Debug("nativegpu: adapter enumerated",
			"index", i, "name", a.Name, "power", a.Power, "handle", a.Handle)
		// An adapter without a handle cannot be bound.
		if a.Handle.IsZero() {
			continue
		}
		adapters = append(adapters, a)
	}

	source := "enumeration"
	chosen, ok := s.opts.policy(adapters)
	if !ok || chosen.Handle.IsZero() {
		source = "default"
		chosen, ok = s.platform.DefaultAdapter()
	}
	if !ok || chosen.Handle.IsZero() {
		return s.fail(ErrNoDevicesFound)
	}

	s.selected = chosen
	s.state = StateReady
	log.Info("nativegpu: adapter selected",
		"name", chosen.Name, "power", chosen.Power, "source", source)
	return nil
}

func (s *AdapterSelector) fail(err error) error {
	s.state = StateFailed
	s.err = err
	return err
}

// NativeHandle returns the bound adapter's handle. It reports false until
// Select has succeeded; afterwards it always returns the same handle.
func (s *AdapterSelector) NativeHandle() (AdapterHandle, bool) {
	if s.state != StateReady {
		return AdapterHandle{}, false
	}
	return s.selected.Handle, true
}

// Adapter returns the bound adapter's descriptor, if Select has succeeded.
func (s *AdapterSelector) Adapter() (AdapterDescriptor, bool) {
	if s.state != StateReady {
		return AdapterDescriptor{}, false
	}
	return s.selected, true
}

// State returns the selector's lifecycle state.
func (s *AdapterSelector) State() State {
	return s.state
}
