package nativegpu

// State is the lifecycle of an AdapterSelector or DeviceBringup.
//
//	StateUninitialized -> StateReady   (initializing call succeeded)
//	StateUninitialized -> StateFailed  (initializing call failed, terminal)
type State uint8

const (
	// StateUninitialized is the state before the initializing call.
	StateUninitialized State = iota
	// StateReady means the adapter or queue is bound and will not change.
	StateReady
	// StateFailed means the initializing call failed. The error is kept and
	// returned by later calls.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
