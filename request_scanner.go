package ibkr

import (
	"context"

	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// ReqScannerSubscription starts a market scanner. Per DESIGN.md's resolved
// Open Question, this request id is considered live from the moment the
// request is sent (the gateway sends its entire result set in one
// scannerData frame, which this client treats as self-terminating — see
// decode/misc.go's scannerData).
func (s *Session) ReqScannerSubscription(ctx context.Context, sub model.ScannerSubscription) (model.RequestID, error) {
	id := s.register(pendingScanner, "")
	enc := wire.NewEncoder().PutCode(wire.OutReqScannerSubscription).Put(wire.Int(int64(id)))
	putScannerSubscription(enc, sub)
	enc.Put(wire.Omit()).Put(wire.Omit()) // scannerSubscriptionOptions, scannerSubscriptionFilterOptions: unused

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelScannerSubscription ends a live scanner subscription. Per the same
// Open Question decision, this is the only operation that removes a
// scanner's correlation entry if ScannerData/ScannerDataEnd have not
// already done so.
func (s *Session) CancelScannerSubscription(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelScannerSubscription, wire.Int(int64(id)))
}
