// Package wire implements the gateway's length-prefixed, NUL-delimited,
// ASCII-field wire codec: frame read/write and field encoding/decoding. It
// has no notion of sockets, sessions, or message semantics; those live in
// reader, writer, decode, and the root ibkr package.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrOverflow is returned by WriteFrame when body is too large to fit the
// wire format's 4-byte length prefix: overflow is a hard error, not a
// silently truncated length.
var ErrOverflow = errors.New("wire: frame body exceeds 4GiB length prefix")

// MaxPayloadBytes bounds a single frame's body. A length prefix above this
// indicates a desynchronized stream rather than a legitimate oversized
// message.
const MaxPayloadBytes = 3_000_000

// ReadFrame reads one length-prefixed frame from r and splits its body on
// NUL into a slice of raw fields, one per NUL-terminated field (the last
// field's terminator does not produce an extra empty field). It blocks
// until the full frame has arrived, erroring only on a short read or an
// over-limit length.
func ReadFrame(r io.Reader) ([][]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("wire: read length prefix: %w", err)
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > MaxPayloadBytes {
		return nil, fmt.Errorf("wire: frame length %d exceeds max %d", n, MaxPayloadBytes)
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("wire: read frame body (%d bytes): %w", n, err)
	}
	body = bytes.TrimSuffix(body, []byte{0})
	return bytes.Split(body, []byte{0}), nil
}

// WriteFrame writes body to w prefixed with its 4-byte big-endian length.
func WriteFrame(w io.Writer, body []byte) error {
	if uint64(len(body)) >= 1<<32 {
		return ErrOverflow
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(body)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("wire: write length prefix: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("wire: write frame body: %w", err)
	}
	return nil
}

// Encoder composes an outgoing message's NUL-joined body.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an Encoder ready to accept fields.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Put appends one field followed by its terminating NUL.
func (e *Encoder) Put(f Field) *Encoder {
	e.buf.Write(f)
	e.buf.WriteByte(0)
	return e
}

// PutCode appends an outgoing message code as the message's first field.
func (e *Encoder) PutCode(code OutCode) *Encoder {
	return e.Put(Int(int64(code)))
}

// Bytes returns the composed body, ready to pass to WriteFrame.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// EncodeMessage is a convenience wrapper for the common case of one code
// field followed by a fixed field list.
func EncodeMessage(code OutCode, fields ...Field) []byte {
	e := NewEncoder().PutCode(code)
	for _, f := range fields {
		e.Put(f)
	}
	return e.Bytes()
}
