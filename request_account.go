package ibkr

import (
	"context"

	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// ReqCurrentTime asks for the gateway's current time. The reply arrives on
// Wrapper.CurrentTime with no request id attached (it is a global reply).
func (s *Session) ReqCurrentTime(ctx context.Context) error {
	return s.send(ctx, wire.OutReqCurrentTime, wire.Int(1))
}

// ReqManagedAccounts re-requests the managed account list outside the
// handshake (the handshake already captures it once via Session.ManagedAccounts).
func (s *Session) ReqManagedAccounts(ctx context.Context) error {
	return s.send(ctx, wire.OutReqManagedAccts, wire.Int(1))
}

// ReqScannerParameters fetches the server's scanner filter catalog (an XML
// document delivered via Wrapper.ScannerParameters). Global, no request id.
func (s *Session) ReqScannerParameters(ctx context.Context) error {
	return s.send(ctx, wire.OutReqScannerParameters, wire.Int(1))
}

// ReqPositions subscribes to the full position list across all managed
// accounts, terminated by Wrapper.PositionEnd.
func (s *Session) ReqPositions(ctx context.Context) error {
	return s.send(ctx, wire.OutReqPositions, wire.Int(1))
}

// CancelPositions ends a ReqPositions subscription.
func (s *Session) CancelPositions(ctx context.Context) error {
	return s.send(ctx, wire.OutCancelPositions, wire.Int(1))
}

// ReqAccountUpdates subscribes (or, if subscribe is false, cancels) the
// per-account value/portfolio stream for account. The gateway reuses one
// message code for both directions, keyed by the subscribe flag.
func (s *Session) ReqAccountUpdates(ctx context.Context, subscribe bool, account string) error {
	return s.send(ctx, wire.OutReqAcctData, wire.Int(2), wire.Bool(subscribe), wire.String(account))
}

// ReqAccountSummary subscribes to the named account-summary tags (a
// comma-joined tag list, e.g. "NetLiquidation,TotalCashValue") across
// group (or "All"). Returns the request id for CancelAccountSummary.
func (s *Session) ReqAccountSummary(ctx context.Context, group string, tags string) (model.RequestID, error) {
	id := s.register(pendingAccountSummary, "")
	if err := s.send(ctx, wire.OutReqAccountSummary, wire.Int(int64(id)), wire.String(group), wire.String(tags)); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelAccountSummary ends a ReqAccountSummary subscription.
func (s *Session) CancelAccountSummary(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelAccountSummary, wire.Int(int64(id)))
}

// ReqPnl subscribes to the daily/unrealized/realized PnL stream for
// account (optionally scoped to one model code).
func (s *Session) ReqPnl(ctx context.Context, account, modelCode string) (model.RequestID, error) {
	id := s.register(pendingPnl, "")
	if err := s.send(ctx, wire.OutReqPnl, wire.Int(int64(id)), wire.String(account), wire.String(modelCode)); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelPnl ends a ReqPnl subscription.
func (s *Session) CancelPnl(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelPnl, wire.Int(int64(id)))
}

// ReqPnlSingle subscribes to single-position PnL for conID within account.
func (s *Session) ReqPnlSingle(ctx context.Context, account, modelCode string, conID int64) (model.RequestID, error) {
	id := s.register(pendingPnlSingle, "")
	if err := s.send(ctx, wire.OutReqPnlSingle, wire.Int(int64(id)), wire.String(account), wire.String(modelCode), wire.Int(conID)); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelPnlSingle ends a ReqPnlSingle subscription.
func (s *Session) CancelPnlSingle(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelPnlSingle, wire.Int(int64(id)))
}

// ReqExecutions requests past fills matching filter, terminated by
// Wrapper.Execution calls followed by the (currently no-op) executionDataEnd.
func (s *Session) ReqExecutions(ctx context.Context, filter model.ExecutionFilter) (model.RequestID, error) {
	id := s.nextRequestID()
	enc := wire.NewEncoder().PutCode(wire.OutReqExecutions).Put(wire.Int(int64(id)))
	putExecutionFilter(enc, filter)
	if err := s.sendEncoded(ctx, enc); err != nil {
		return 0, err
	}
	return id, nil
}
