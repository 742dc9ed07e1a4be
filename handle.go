// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nativegpu

import "fmt"

// Handle is a fixed-width, non-owning token referencing an object owned by a
// Platform. The low 32 bits hold a slot index and the high 32 bits an epoch
// chosen by the platform, in the same spirit as the registry IDs of
// gogpu/wgpu/core.
//
// A Handle never owns the object it names. It is only meaningful to the
// platform that issued it, only inside the current process, and only while
// that platform keeps the object alive. Handles must not be persisted or sent
// over the wire.
//
// The zero Handle is invalid.
type Handle uint64

// MakeHandle packs a slot index and an epoch into a Handle.
func MakeHandle(index, epoch uint32) Handle {
	return Handle(uint64(epoch)<<32 | uint64(index))
}

// Index returns the slot index of the handle.
func (h Handle) Index() uint32 { return uint32(h) }

// Epoch returns the epoch of the handle.
func (h Handle) Epoch() uint32 { return uint32(h >> 32) }

// IsZero reports whether h is the invalid handle.
func (h Handle) IsZero() bool { return h == 0 }

// String returns a short form such as "3@7" (index@epoch).
func (h Handle) String() string {
	if h.IsZero() {
		return "invalid"
	}
	return fmt.Sprintf("%d@%d", h.Index(), h.Epoch())
}

// AdapterHandle references a physical adapter owned by a Platform.
type AdapterHandle struct{ Handle }

// QueueHandle references a command submission queue owned by a Platform.
type QueueHandle struct{ Handle }
