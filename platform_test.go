package nativegpu

import "errors"

// fakePlatform is an in-memory Platform for tests.
type fakePlatform struct {
	adapters   []AdapterDescriptor
	def        *AdapterDescriptor
	queueErr   error
	zeroQueue  bool
	nextQueue  uint32
	enumCalls  int
	queueCalls int
	lastQueue  AdapterHandle
}

func (p *fakePlatform) Adapters() []AdapterDescriptor {
	p.enumCalls++
	out := make([]AdapterDescriptor, len(p.adapters))
	copy(out, p.adapters)
	return out
}

func (p *fakePlatform) DefaultAdapter() (AdapterDescriptor, bool) {
	if p.def == nil {
		return AdapterDescriptor{}, false
	}
	return *p.def, true
}

func (p *fakePlatform) NewCommandQueue(adapter AdapterHandle) (QueueHandle, error) {
	p.queueCalls++
	p.lastQueue = adapter
	if p.queueErr != nil {
		return QueueHandle{}, p.queueErr
	}
	if p.zeroQueue {
		return QueueHandle{}, nil
	}
	p.nextQueue++
	return QueueHandle{MakeHandle(p.nextQueue, 9)}, nil
}

var errOutOfMemory = errors.New("out of device memory")

func adapter(index uint32, name string, power PowerClass) AdapterDescriptor {
	return AdapterDescriptor{
		Name:   name,
		Power:  power,
		Handle: AdapterHandle{MakeHandle(index, 1)},
	}
}
