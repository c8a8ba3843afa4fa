// Package bus implements the request/response protocol between a processor
// and its memory/IO peripherals.
//
// A processor issues Load and Store requests and blocks until the response
// arrives. Peripherals never see more than one request at a time: Direct
// serializes callers with a mutex, and Server owns its peripheral from a single
// goroutine fed by a bounded request channel.
package bus

// Kind is the type of a bus request.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_LOAD  = Kind(0) // load
	KIND_STORE = Kind(1) // store
)

// Status is the type of a bus response.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_DATA = Status(0) // data
	STATUS_ACK  = Status(1) // ack
	STATUS_FAIL = Status(2) // fail
)

// Failure codes carried by a STATUS_FAIL response.
const (
	FAIL_ADDRESS = uint16(0) // Address not served by the peripheral.
	FAIL_REQUEST = uint16(1) // Request kind not understood.
	FAIL_CLOSED  = uint16(2) // Bus owner has stopped.
)

// Request is a message from a processor to a peripheral.
type Request struct {
	Kind    Kind
	Address uint16
	Value   uint16 // Value to store; unused by loads.
}

// Load creates a request for the word at address.
func Load(address uint16) Request {
	return Request{Kind: KIND_LOAD, Address: address}
}

// Store creates a request writing value to address.
func Store(value, address uint16) Request {
	return Request{Kind: KIND_STORE, Address: address, Value: value}
}

// Response is a message from a peripheral back to a processor.
type Response struct {
	Status Status
	Value  uint16 // Loaded data, or the failure code.
}

// Data creates a successful load response.
func Data(value uint16) Response {
	return Response{Status: STATUS_DATA, Value: value}
}

// Ack creates a successful store response.
func Ack() Response {
	return Response{Status: STATUS_ACK}
}

// Fail creates a failure response.
func Fail(code uint16) Response {
	return Response{Status: STATUS_FAIL, Value: code}
}

// Failed returns true if the response is a failure.
func (resp Response) Failed() bool {
	return resp.Status == STATUS_FAIL
}

// Peripheral is a device reachable over the bus.
type Peripheral interface {
	// Handle services a single request.
	Handle(req Request) Response
	// Tick advances the device by one machine cycle.
	Tick() error
}

// Bus is the processor side of a bus.
type Bus interface {
	// Query issues a request and waits for its response.
	Query(req Request) Response
	// Tick advances the peripheral behind the bus by one machine cycle.
	Tick() error
}
