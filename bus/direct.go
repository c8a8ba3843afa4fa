package bus

import (
	"sync"
)

// Direct is a synchronous bus to a single peripheral. Callers on any number
// of goroutines are serialized, so at most one request is in flight.
type Direct struct {
	mutex      sync.Mutex
	Peripheral Peripheral
}

var _ Bus = (*Direct)(nil)

// NewDirect creates a synchronous bus in front of a peripheral.
func NewDirect(peripheral Peripheral) *Direct {
	return &Direct{Peripheral: peripheral}
}

// Query services a request on the caller's goroutine.
func (bus *Direct) Query(req Request) Response {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	if bus.Peripheral == nil {
		return Fail(FAIL_CLOSED)
	}

	return bus.Peripheral.Handle(req)
}

// Tick advances the peripheral by one cycle.
func (bus *Direct) Tick() error {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	if bus.Peripheral == nil {
		return ErrBusClosed
	}

	return bus.Peripheral.Tick()
}
