package bus

import (
	"sync"
)

// SERVER_DEFAULT_DEPTH is the request queue depth used when none is given.
const SERVER_DEFAULT_DEPTH = 8

type reply struct {
	resp Response
	err  error
}

type message struct {
	tick  bool
	req   Request
	reply chan reply
}

// Server owns a peripheral on its own goroutine and serves requests from
// any number of Ports, one at a time, in arrival order.
type Server struct {
	Peripheral Peripheral

	requests chan message
	closed   chan struct{}
	once     sync.Once
}

// NewServer creates a bus owner for peripheral with a bounded request queue.
func NewServer(peripheral Peripheral, depth int) *Server {
	if depth <= 0 {
		depth = SERVER_DEFAULT_DEPTH
	}

	return &Server{
		Peripheral: peripheral,
		requests:   make(chan message, depth),
		closed:     make(chan struct{}),
	}
}

// Serve handles requests until Close is called.
func (srv *Server) Serve() {
	for {
		select {
		case msg := <-srv.requests:
			var rep reply
			if msg.tick {
				rep.err = srv.Peripheral.Tick()
			} else {
				rep.resp = srv.Peripheral.Handle(msg.req)
			}
			msg.reply <- rep
		case <-srv.closed:
			return
		}
	}
}

// Close stops the server. Queries after Close fail with FAIL_CLOSED.
func (srv *Server) Close() {
	srv.once.Do(func() { close(srv.closed) })
}

// Port returns a new processor-side handle to the server.
func (srv *Server) Port() *Port {
	return &Port{server: srv}
}

// Port is a processor-side handle to a Server.
type Port struct {
	server *Server
}

var _ Bus = (*Port)(nil)

// call queues a message and blocks for its reply.
func (port *Port) call(msg message) (rep reply) {
	srv := port.server
	msg.reply = make(chan reply, 1)

	select {
	case srv.requests <- msg:
	case <-srv.closed:
		return reply{resp: Fail(FAIL_CLOSED), err: ErrBusClosed}
	}

	select {
	case rep = <-msg.reply:
	case <-srv.closed:
		rep = reply{resp: Fail(FAIL_CLOSED), err: ErrBusClosed}
	}

	return
}

// Query sends a request to the server and waits for the response.
func (port *Port) Query(req Request) Response {
	return port.call(message{req: req}).resp
}

// Tick asks the server to advance its peripheral by one cycle.
func (port *Port) Tick() error {
	return port.call(message{tick: true}).err
}
