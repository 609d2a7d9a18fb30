package ibkr

import (
	"context"

	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// ReqPlaceOrder submits orderID (from Session.NextOrderID) against contract
// with the given order fields. This client does not validate order
// business rules (leg/algo combinations, margin, and so on); it serializes
// exactly model.Order's fields in the fixed order the wire format
// requires.
func (s *Session) ReqPlaceOrder(ctx context.Context, orderID model.OrderID, contract model.Contract, order model.Order) error {
	enc := wire.NewEncoder().PutCode(wire.OutPlaceOrder).Put(wire.Int(int64(orderID)))
	putContract(enc, contract)
	putOrder(enc, order)
	return s.sendEncoded(ctx, enc)
}

// CancelOrder cancels a previously placed, still-working order.
func (s *Session) CancelOrder(ctx context.Context, orderID model.OrderID) error {
	return s.send(ctx, wire.OutCancelOrder, wire.Int(int64(orderID)), wire.Omit())
}

// ReqGlobalCancel cancels every working order across the account, the
// session-wide escape hatch distinct from cancelling one order id.
func (s *Session) ReqGlobalCancel(ctx context.Context) error {
	return s.send(ctx, wire.OutReqGlobalCancel)
}
