// Package io provides the memory/IO peripheral of the risc16 machine: a word
// addressable store served over the bus, with a console device mapped onto
// two reserved addresses.
package io

import (
	"log"

	"github.com/ezrec/risc16/bus"
	"github.com/ezrec/risc16/isa"
)

// Memory is a word store implementing bus.Peripheral.
type Memory struct {
	Verbose  bool    // If set, logs every store.
	Capacity int     // Words of storage; zero means isa.MEMORY_SIZE.
	Console  Console // Console device polled on every Tick.

	Data []uint16
}

var _ bus.Peripheral = (*Memory)(nil)

// NewMemory creates a full size memory.
func NewMemory() (mem *Memory) {
	mem = &Memory{}
	mem.Rewind()
	return
}

// Rewind clears the store, sizing it to Capacity.
func (mem *Memory) Rewind() {
	if mem.Capacity <= 0 || mem.Capacity > isa.MEMORY_SIZE {
		mem.Capacity = isa.MEMORY_SIZE
	}

	if len(mem.Data) != mem.Capacity {
		mem.Data = make([]uint16, mem.Capacity)
	} else {
		clear(mem.Data)
	}
}

// LoadImage copies words into the store starting at offset. Addresses wrap
// around the end of the store.
func (mem *Memory) LoadImage(offset uint16, words []uint16) {
	if len(mem.Data) == 0 {
		mem.Rewind()
	}

	for n, word := range words {
		mem.Data[(int(offset)+n)%len(mem.Data)] = word
	}
}

// Handle serves a bus request.
func (mem *Memory) Handle(req bus.Request) bus.Response {
	addr := int(req.Address)
	if addr >= len(mem.Data) {
		return bus.Fail(bus.FAIL_ADDRESS)
	}

	switch req.Kind {
	case bus.KIND_LOAD:
		return bus.Data(mem.Data[addr])
	case bus.KIND_STORE:
		if mem.Verbose {
			log.Printf("memory: [%d] = %d", addr, req.Value)
		}
		mem.Data[addr] = req.Value
		return bus.Ack()
	}

	return bus.Fail(bus.FAIL_REQUEST)
}

// Tick runs the console device for one machine cycle.
func (mem *Memory) Tick() error {
	return mem.Console.Cycle(mem.Data)
}
