package emulator

import (
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/risc16/bus"
	"github.com/ezrec/risc16/cpu"
	"github.com/ezrec/risc16/io"
	"github.com/ezrec/risc16/isa"
)

// Machine is any number of processors sharing one memory. The memory is
// owned by a bus server; each processor runs on its own worker.
type Machine struct {
	Verbose bool       // If set, enables verbose logging.
	Depth   int        // Bus request queue depth; zero for the default.
	Memory  *io.Memory // Shared memory peripheral.
	Cpu     []*cpu.Cpu // Processors, all started at isa.PROGRAM_OFFSET.
}

// NewMachine creates a machine with the given number of processors.
func NewMachine(processors int) (m *Machine) {
	m = &Machine{
		Memory: io.NewMemory(),
	}

	for range processors {
		m.Cpu = append(m.Cpu, cpu.NewCpu(nil))
	}

	return
}

// Reset clears memory, loads a program image and resets every processor.
func (m *Machine) Reset(image []uint16) {
	m.Memory.Verbose = m.Verbose
	m.Memory.Rewind()
	m.Memory.Console.Written = 0
	m.Memory.LoadImage(isa.PROGRAM_OFFSET, image)

	for _, c := range m.Cpu {
		c.Verbose = m.Verbose
		c.Reset()
	}
}

// worker runs one processor until it halts. Each processor cycle is
// followed by a peripheral cycle.
func worker(c *cpu.Cpu, port *bus.Port) (err error) {
	for !c.Halted {
		count := c.Register[isa.REG_COUNT]

		err = c.Tick()
		if err == nil {
			err = port.Tick()
		}
		if err != nil {
			err = &ErrRuntime{Count: count, LineNo: -1, Err: err}
			return
		}
	}

	return
}

// Run starts every processor on its own worker and waits for all of them
// to halt. The first runtime error is returned.
func (m *Machine) Run() (err error) {
	server := bus.NewServer(m.Memory, m.Depth)
	go server.Serve()
	defer server.Close()

	var group errgroup.Group
	for n, c := range m.Cpu {
		port := server.Port()
		c.SetChannel(cpu.CHANNEL_MEMORY, port)
		group.Go(func() error {
			err := worker(c, port)
			if m.Verbose {
				log.Printf("machine: cpu %d halted (%v) after %d ticks", n, c.Fault, c.Ticks)
			}
			return err
		})
	}

	err = group.Wait()
	return
}
