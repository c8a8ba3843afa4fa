package bus

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// cell is a one word peripheral that tracks concurrent entry.
type cell struct {
	value    uint16
	ticks    int
	inflight atomic.Int32
	overlap  atomic.Bool
	tickErr  error
}

func (c *cell) enter() func() {
	if c.inflight.Add(1) > 1 {
		c.overlap.Store(true)
	}
	runtime.Gosched()
	return func() { c.inflight.Add(-1) }
}

func (c *cell) Handle(req Request) Response {
	defer c.enter()()

	if req.Address != 0 {
		return Fail(FAIL_ADDRESS)
	}
	switch req.Kind {
	case KIND_LOAD:
		return Data(c.value)
	case KIND_STORE:
		c.value = req.Value
		return Ack()
	}
	return Fail(FAIL_REQUEST)
}

func (c *cell) Tick() error {
	defer c.enter()()

	c.ticks++
	return c.tickErr
}

func TestMessages(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Request{Kind: KIND_LOAD, Address: 7}, Load(7))
	assert.Equal(Request{Kind: KIND_STORE, Address: 7, Value: 3}, Store(3, 7))
	assert.Equal(Response{Status: STATUS_DATA, Value: 9}, Data(9))
	assert.Equal(Response{Status: STATUS_ACK}, Ack())
	assert.True(Fail(FAIL_ADDRESS).Failed())
	assert.False(Ack().Failed())
	assert.Equal("store", KIND_STORE.String())
	assert.Equal("fail", STATUS_FAIL.String())
}

func TestDirect(t *testing.T) {
	assert := assert.New(t)

	c := &cell{}
	bus := NewDirect(c)

	assert.Equal(Ack(), bus.Query(Store(42, 0)))
	assert.Equal(Data(42), bus.Query(Load(0)))
	assert.Equal(Fail(FAIL_ADDRESS), bus.Query(Load(1)))
	assert.Equal(Fail(FAIL_REQUEST), bus.Query(Request{Kind: Kind(9)}))

	assert.NoError(bus.Tick())
	assert.Equal(1, c.ticks)

	c.tickErr = errors.New("console")
	assert.Equal(c.tickErr, bus.Tick())

	empty := &Direct{}
	assert.Equal(Fail(FAIL_CLOSED), empty.Query(Load(0)))
	assert.ErrorIs(empty.Tick(), ErrBusClosed)
}

func TestDirectSerialized(t *testing.T) {
	assert := assert.New(t)

	c := &cell{}
	bus := NewDirect(c)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bus.Query(Load(0))
				bus.Tick()
			}
		}()
	}
	wg.Wait()

	assert.False(c.overlap.Load())
	assert.Equal(800, c.ticks)
}

func TestServer(t *testing.T) {
	assert := assert.New(t)

	c := &cell{}
	srv := NewServer(c, 0)
	go srv.Serve()
	defer srv.Close()

	port := srv.Port()
	assert.Equal(Ack(), port.Query(Store(5, 0)))
	assert.Equal(Data(5), port.Query(Load(0)))
	assert.Equal(Fail(FAIL_ADDRESS), port.Query(Store(1, 2)))
	assert.NoError(port.Tick())
	assert.Equal(1, c.ticks)
}

func TestServerSerialized(t *testing.T) {
	assert := assert.New(t)

	c := &cell{}
	srv := NewServer(c, 2)
	go srv.Serve()
	defer srv.Close()

	var wg sync.WaitGroup
	for range 4 {
		port := srv.Port()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				resp := port.Query(Load(0))
				assert.Equal(STATUS_DATA, resp.Status)
				assert.NoError(port.Tick())
			}
		}()
	}
	wg.Wait()

	assert.False(c.overlap.Load())
	assert.Equal(200, c.ticks)
}

func TestServerClosed(t *testing.T) {
	assert := assert.New(t)

	c := &cell{}
	srv := NewServer(c, 1)
	srv.Close()
	srv.Close()

	// Serve returns immediately once closed.
	srv.Serve()

	port := srv.Port()
	assert.Equal(Fail(FAIL_CLOSED), port.Query(Load(0)))
	assert.ErrorIs(port.Tick(), ErrBusClosed)
	assert.Equal(0, c.ticks)
}
