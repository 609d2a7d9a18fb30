// Package ibkr is a client for a proprietary trading-venue gateway's
// length-prefixed, NUL-delimited, ASCII-field wire protocol. A Session owns
// one TCP connection: it performs the handshake, allocates request/order
// ids, dispatches typed requests through writer.Writer, and routes decoded
// server events to a caller-supplied callback.Wrapper.
package ibkr

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/decode"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/ratelimit"
	"github.com/wvietor/ibkr-go/reader"
	"github.com/wvietor/ibkr-go/wire"
	"github.com/wvietor/ibkr-go/writer"
)

// MinServerVersion and MaxServerVersion bound the protocol version range
// this client advertises during the handshake preamble.
const (
	MinServerVersion = 151
	MaxServerVersion = 178
	clientVersion    = MaxServerVersion
)

// apiPreamble is the literal, non-length-prefixed marker that opens every
// connection, ahead of any framed message.
var apiPreamble = []byte("API\x00")

// frameQueueSize bounds how many decoded frames may queue between the
// reader goroutine and the dispatch loop before the reader blocks.
const frameQueueSize = 256

// handshakeTimeout bounds how long Connect waits for ManagedAccounts and
// NextValidID after sending StartApi before declaring the handshake failed.
const handshakeTimeout = 10 * time.Second

// WrapperFactory builds the callback dispatcher once a Session has reached
// StateActive, given the session itself (so the wrapper can issue further
// requests) and a CancelFunc it may call to tear the session down.
type WrapperFactory func(s *Session, cancel context.CancelFunc) callback.Wrapper

// Session is one live connection to the gateway. All exported methods are
// safe for concurrent use; writes are serialized by the underlying
// writer.Writer, and the correlation table is guarded independently.
type Session struct {
	conn    net.Conn
	wtr     *writer.Writer
	rdr     *reader.Reader
	limiter *ratelimit.Limiter

	traceID uuid.UUID

	mu              sync.Mutex
	state           State
	managedAccounts []string

	nextReqID   atomic.Int64
	nextOrderID atomic.Int64

	corr *correlationTable

	pendingContracts sync.Map // model.RequestID -> chan model.Contract

	wrapper callback.Wrapper
	recur   callback.Recurring

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Connect dials cfg's address, performs the handshake, and returns an
// Active Session. wf builds the dispatcher once the handshake completes;
// recur, if non-nil, is invoked every 50ms from the dispatch loop,
// interleaved with frame delivery.
func Connect(ctx context.Context, cfg Config, wf WrapperFactory, recur callback.Recurring) (*Session, error) {
	cfg = cfg.resolve()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Address())
	if err != nil {
		return nil, wrapError(ErrIO, "dial "+cfg.Address(), err)
	}

	sessCtx, cancel := context.WithCancel(context.Background())
	limiter := ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow)

	s := &Session{
		conn:    conn,
		wtr:     writer.New(conn, limiter),
		rdr:     reader.New(conn, frameQueueSize),
		limiter: limiter,
		traceID: uuid.New(),
		state:   StateDisconnected,
		corr:    newCorrelationTable(),
		ctx:     sessCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		recur:   recur,
	}

	s.setState(StateHandshaking)
	go s.rdr.Run(sessCtx)

	if err := s.handshake(ctx, cfg); err != nil {
		cancel()
		_ = conn.Close()
		s.setState(StateClosed)
		return nil, err
	}

	s.wrapper = wf(s, cancel)
	s.setState(StateActive)
	log.Printf("ibkr[%s]: session active, accounts=%v", s.traceID, s.managedAccounts)

	go s.dispatchLoop()

	return s, nil
}

func (s *Session) setState(next State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.transition(next)
}

// State reports the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ManagedAccounts returns the account set learned during the handshake.
// The set is populated once and read-only after Connect returns.
func (s *Session) ManagedAccounts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.managedAccounts))
	copy(out, s.managedAccounts)
	return out
}

// handshakeCapture is a throwaway Wrapper used only to observe the two
// unsolicited handshake replies without routing anything to the caller's
// real dispatcher, which does not exist until the handshake succeeds.
type handshakeCapture struct {
	callback.NoOpWrapper
	accounts    []string
	gotAccounts bool
	orderID     model.OrderID
	gotOrderID  bool
}

func (h *handshakeCapture) ManagedAccounts(accounts []string) {
	h.accounts = accounts
	h.gotAccounts = true
}

func (h *handshakeCapture) NextValidID(orderID model.OrderID) {
	h.orderID = orderID
	h.gotOrderID = true
}

// handshake runs the connection-opening sequence: preamble, version range,
// StartApi, then wait for ManagedAccounts + NextValidID.
func (s *Session) handshake(ctx context.Context, cfg Config) error {
	if err := s.wtr.SendPreamble(apiPreamble); err != nil {
		return wrapError(ErrHandshake, "send preamble", err)
	}

	versionBody := wire.NewEncoder().
		Put(wire.Int(int64(cfg.MinVersion))).
		Put(wire.Int(int64(cfg.MaxVersion))).
		Put(wire.Omit()).
		Bytes()
	if err := s.wtr.SendRaw(versionBody); err != nil {
		return wrapError(ErrHandshake, "send version range", err)
	}

	if err := s.wtr.Send(ctx, wire.OutStartApi,
		wire.Int(clientVersion),
		wire.Int(cfg.ClientID),
		wire.Omit(),
	); err != nil {
		return wrapError(ErrHandshake, "send StartApi", err)
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, handshakeTimeout)
	defer cancel()

	capture := &handshakeCapture{}
	for !(capture.gotAccounts && capture.gotOrderID) {
		select {
		case <-deadlineCtx.Done():
			return wrapError(ErrHandshake, "timed out waiting for ManagedAccounts/NextValidId", deadlineCtx.Err())
		case raw, ok := <-s.rdr.Frames():
			if !ok {
				return newError(ErrHandshake, "connection closed during handshake")
			}
			if err := s.dispatchRaw(raw, capture); err != nil {
				log.Printf("ibkr[%s]: handshake decode error: %v", s.traceID, err)
			}
		}
	}

	s.mu.Lock()
	s.managedAccounts = capture.accounts
	s.mu.Unlock()
	s.nextOrderID.Store(int64(capture.orderID))
	return nil
}

// dispatchRaw splits a frame's leading message-code field and hands the
// rest to decode.Dispatch.
func (s *Session) dispatchRaw(raw [][]byte, w callback.Wrapper) error {
	tok := wire.NewTokens(raw)
	code, err := tok.Int64("code")
	if err != nil {
		return err
	}
	return decode.Dispatch(wire.InCode(code), tok, w)
}

// dispatchLoop is the long-lived goroutine that owns the dispatcher: it
// pulls frames off the reader's channel in order and runs each one to
// completion (exactly one callback in flight) before taking the next,
// optionally interleaving the user's recurring task.
func (s *Session) dispatchLoop() {
	defer close(s.done)
	sw := &sessionWrapper{Wrapper: s.wrapper, sess: s}

	var cycle <-chan time.Time
	if s.recur != nil {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		cycle = ticker.C
	}

	for {
		select {
		case <-s.ctx.Done():
			return
		case raw, ok := <-s.rdr.Frames():
			if !ok {
				s.setState(StateClosed)
				return
			}
			if err := s.dispatchRaw(raw, sw); err != nil {
				log.Printf("ibkr[%s]: decode error: %v", s.traceID, err)
			}
		case <-cycle:
			s.recur.Cycle()
		}
	}
}

// Close transitions the session to Draining, shuts the write half down,
// cancels the reader/dispatch goroutines, and closes the socket. It is
// safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.state == StateClosed || s.state == StateDraining {
		s.mu.Unlock()
		return nil
	}
	s.state = s.state.transition(StateDraining)
	s.mu.Unlock()

	s.cancel()
	err := s.conn.Close()
	s.setState(StateClosed)
	return err
}

// Done returns a channel closed once the dispatch loop has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// nextRequestID allocates a fresh request id; ids are never reused within
// a session.
func (s *Session) nextRequestID() model.RequestID {
	return model.RequestID(s.nextReqID.Add(1))
}

// NextOrderID allocates an order id from the server-provided seed received
// during the handshake. Orders have their own id space, disjoint from
// request ids.
func (s *Session) NextOrderID() model.OrderID {
	return model.OrderID(s.nextOrderID.Add(1))
}

// send writes a fully-formed outgoing message, respecting the rate limiter
// and the writer's mutex. ctx defaults to the session's own context when
// the caller passes nil.
func (s *Session) send(ctx context.Context, code wire.OutCode, fields ...wire.Field) error {
	if ctx == nil {
		ctx = s.ctx
	}
	if s.State() != StateActive {
		return newError(ErrClosed, fmt.Sprintf("session is %s, not active", s.State()))
	}
	if err := s.wtr.Send(ctx, code, fields...); err != nil {
		if errors.Is(err, wire.ErrOverflow) {
			return wrapError(ErrOverflow, "outgoing message too large to frame", err)
		}
		return wrapError(ErrIO, "write failed", err)
	}
	return nil
}

// register allocates a request id and records its correlation entry before
// any byte is written.
func (s *Session) register(kind pendingKind, dataType model.DataType) model.RequestID {
	id := s.nextRequestID()
	s.corr.put(id, pendingRequest{kind: kind, dataType: dataType})
	return id
}

// registerContractQuery allocates a request id for a ReqContractDetails
// call, recording the echoed contract_id/exchange the decoder must confirm
// the reply matches before dispatching it to the caller's wrapper.
func (s *Session) registerContractQuery(contractID int64, exchange string) model.RequestID {
	id := s.nextRequestID()
	s.corr.put(id, pendingRequest{kind: pendingContractDetails, contractID: contractID, exchange: exchange})
	return id
}

// retire removes a correlation entry; it is a no-op (no error, no frame)
// if id is not present, keeping cancellation idempotent.
func (s *Session) retire(id model.RequestID) {
	s.corr.remove(id)
}
