package ibkr

import (
	"context"
	"errors"

	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// ReqMarketData subscribes to a live tick stream for contract. genericTicks
// is the gateway's comma-joined additional-tick-type list (e.g.
// "100,101,104"); pass "" for none. snapshot requests a single refresh
// instead of a stream. Returns the request id, needed later for
// CancelMarketData.
func (s *Session) ReqMarketData(ctx context.Context, contract model.Contract, genericTicks string, snapshot, regulatorySnapshot bool) (model.RequestID, error) {
	id := s.register(pendingMarketData, "")
	enc := wire.NewEncoder().PutCode(wire.OutReqMktData).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	enc.Put(wire.String(genericTicks)).
		Put(wire.Bool(snapshot)).
		Put(wire.Bool(regulatorySnapshot)).
		Put(wire.Omit()) // mktDataOptions: unused by this client

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelMarketData ends a ReqMarketData subscription. A no-op (no frame,
// no error) if id is not an active correlation entry.
func (s *Session) CancelMarketData(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelMktData, wire.Int(int64(id)))
}

// ReqMarketDepth subscribes to an order book. numRows bounds the depth of
// book the gateway reports; smartDepth requests the SMART-aggregated book
// instead of one exchange's book.
func (s *Session) ReqMarketDepth(ctx context.Context, contract model.Contract, numRows int, smartDepth bool) (model.RequestID, error) {
	id := s.register(pendingMarketDepth, "")
	enc := wire.NewEncoder().PutCode(wire.OutReqMktDepth).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	enc.Put(wire.Int(int64(numRows))).
		Put(wire.Bool(smartDepth)).
		Put(wire.Omit()) // mktDepthOptions: unused

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelMarketDepth ends a ReqMarketDepth subscription.
func (s *Session) CancelMarketDepth(ctx context.Context, id model.RequestID, smartDepth bool) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelMktDepth, wire.Int(int64(id)), wire.Bool(smartDepth))
}

// ReqMarketDataType switches between live, frozen, delayed, and
// delayed-frozen market data for the session. It is global, not
// per-request, and retires no correlation entry.
func (s *Session) ReqMarketDataType(ctx context.Context, dataType int) error {
	return s.send(ctx, wire.OutReqMarketDataType, wire.Int(int64(dataType)))
}

// ReqTickByTickData subscribes to the tick-by-tick stream (last, all-last,
// bid/ask, or midpoint) for contract.
func (s *Session) ReqTickByTickData(ctx context.Context, contract model.Contract, tickType string, numberOfTicks int, ignoreSize bool) (model.RequestID, error) {
	id := s.register(pendingTickByTick, "")
	enc := wire.NewEncoder().PutCode(wire.OutReqTickByTickData).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	enc.Put(wire.Enum(tickType)).
		Put(wire.Int(int64(numberOfTicks))).
		Put(wire.Bool(ignoreSize))

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelTickByTickData ends a ReqTickByTickData subscription.
func (s *Session) CancelTickByTickData(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelTickByTickData, wire.Int(int64(id)))
}

// sendEncoded flushes an Encoder already loaded with a code and fields.
func (s *Session) sendEncoded(ctx context.Context, enc *wire.Encoder) error {
	if ctx == nil {
		ctx = s.ctx
	}
	if s.State() != StateActive {
		return newError(ErrClosed, "session is not active")
	}
	if s.limiter != nil {
		if err := s.limiter.Reserve(ctx); err != nil {
			return err
		}
	}
	if err := s.wtr.SendRaw(enc.Bytes()); err != nil {
		if errors.Is(err, wire.ErrOverflow) {
			return wrapError(ErrOverflow, "outgoing message too large to frame", err)
		}
		return wrapError(ErrIO, "write failed", err)
	}
	return nil
}

// retireIfKnown retires id and reports whether it was present, the shared
// guard every Cancel* method uses to keep cancellation idempotent:
// cancelling an unknown id sends no frame.
func (s *Session) retireIfKnown(id model.RequestID) bool {
	return s.corr.remove(id)
}
