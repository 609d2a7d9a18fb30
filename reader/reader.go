// Package reader runs the socket-reading side of a connection: a goroutine
// that pulls length-prefixed frames off a net.Conn and hands them to a
// single consumer over a channel. There is exactly one reader goroutine
// and one consumer (the session's dispatch loop) per connection, so a
// buffered channel models the relationship exactly.
package reader

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/wvietor/ibkr-go/wire"
)

// Frames is the channel type frames are delivered on: the NUL-split fields
// of one incoming message.
type Frames <-chan [][]byte

// Reader owns the read half of a connection.
type Reader struct {
	conn io.Reader
	out  chan [][]byte
}

// New returns a Reader that will deliver parsed frames on its Frames channel
// once Run is started. bufSize controls how many frames may queue up before
// Run blocks on delivery.
func New(conn io.Reader, bufSize int) *Reader {
	return &Reader{
		conn: conn,
		out:  make(chan [][]byte, bufSize),
	}
}

// Frames returns the channel frames are delivered on. It is closed when Run
// exits, which is how the consumer learns the connection is gone.
func (r *Reader) Frames() Frames { return r.out }

// Run reads frames until ctx is canceled or the connection errors. It races
// the blocking socket read against ctx.Done in a background goroutine and
// closes the Frames channel on exit.
func (r *Reader) Run(ctx context.Context) {
	defer close(r.out)

	type readResult struct {
		fields [][]byte
		err    error
	}
	next := make(chan readResult, 1)

	readOne := func() {
		fields, err := wire.ReadFrame(r.conn)
		next <- readResult{fields: fields, err: err}
	}

	go readOne()

	for {
		select {
		case <-ctx.Done():
			return
		case res := <-next:
			if res.err != nil {
				if !errors.Is(res.err, context.Canceled) {
					log.Printf("reader: read error: %v", res.err)
				}
				return
			}
			select {
			case r.out <- res.fields:
			case <-ctx.Done():
				return
			}
			go readOne()
		}
	}
}
