// Package writer owns the write half of a connection: a mutex-guarded frame
// sender shared by every goroutine that issues requests. Messages go out as
// a length-prefixed NUL-joined body, except the one raw preamble the
// handshake opens with.
package writer

import (
	"context"
	"io"
	"sync"

	"github.com/wvietor/ibkr-go/ratelimit"
	"github.com/wvietor/ibkr-go/wire"
)

// Writer serializes and sends outgoing frames. One Writer is shared by every
// requester on a session; Send is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	conn    io.Writer
	limiter *ratelimit.Limiter
}

// New returns a Writer sending on conn, gated by limiter. limiter may be nil
// to disable rate limiting (used in tests).
func New(conn io.Writer, limiter *ratelimit.Limiter) *Writer {
	return &Writer{conn: conn, limiter: limiter}
}

// SendRaw writes a preformed body (with no length prefix applied yet) to the
// connection, patching in the length prefix. It is exported for the
// handshake, which needs to control framing directly.
func (w *Writer) SendRaw(body []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return wire.WriteFrame(w.conn, body)
}

// SendPreamble writes bytes with no length prefix at all — used once, for
// the literal "API\0" handshake opener, which precedes any framed message.
func (w *Writer) SendPreamble(raw []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := w.conn.Write(raw)
	return err
}

// Send composes one message from code and fields and writes it as a framed
// body, blocking on the rate limiter first if one is configured.
func (w *Writer) Send(ctx context.Context, code wire.OutCode, fields ...wire.Field) error {
	if w.limiter != nil {
		if err := w.limiter.Reserve(ctx); err != nil {
			return err
		}
	}
	body := wire.EncodeMessage(code, fields...)
	return w.SendRaw(body)
}
