package ibkr

import (
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// putContract appends one contract's canonical field order to enc: id,
// symbol, security type, expiry, strike, right, multiplier, exchange,
// primary exchange, currency, local symbol, trading class. This is the
// outgoing mirror of decode.decodeContract — the fixed order every
// contract-carrying request shares.
func putContract(enc *wire.Encoder, c model.Contract) {
	enc.Put(wire.Int(c.ContractID)).
		Put(wire.String(c.Symbol)).
		Put(wire.Enum(string(c.SecType))).
		Put(wire.String(c.Expiry)).
		Put(wire.Float(c.Strike)).
		Put(wire.Enum(string(c.Right))).
		Put(wire.String(c.Multiplier)).
		Put(wire.String(c.Exchange)).
		Put(wire.Enum(string(c.PrimaryExchange))).
		Put(wire.Enum(string(c.Currency))).
		Put(wire.String(c.LocalSymbol)).
		Put(wire.String(c.TradingClass))
}

// putOrder appends the documented, non-deprecated place-order fields this
// client exposes (model.Order), per DESIGN.md's Open Question decision:
// only these fields are written, in this fixed order; everything else the
// wire format's ~120-field message defines is the caller's business-rule
// territory, which this client does not validate (explicit Non-goal).
func putOrder(enc *wire.Encoder, o model.Order) {
	enc.Put(wire.Enum(string(o.Action))).
		Put(wire.Float(o.TotalQuantity)).
		Put(wire.Enum(string(o.OrderType))).
		Put(wire.Float(limitOrUnset(o))).
		Put(wire.Float(auxOrUnset(o))).
		Put(wire.Enum(string(o.TimeInForce))).
		Put(wire.String(o.OCAGroup)).
		Put(wire.String(o.Account)).
		Put(wire.Int(int64(o.Origin))).
		Put(wire.String(o.OrderRef)).
		Put(wire.Bool(o.Transmit)).
		Put(wire.Int(int64(o.ParentID))).
		Put(wire.Bool(o.OutsideRTH)).
		Put(wire.Bool(o.Hidden)).
		Put(wire.String(o.GoodAfterTime)).
		Put(wire.String(o.GoodTilDate)).
		Put(wire.String(o.ModelCode)).
		Put(wire.Bool(o.AllOrNone)).
		Put(minQtyField(o)).
		Put(wire.Float(o.PercentOffset)).
		Put(cashQtyField(o))
}

func limitOrUnset(o model.Order) float64 {
	if o.OrderType == model.OrderMarket {
		return model.UnsetDouble
	}
	return o.LimitPrice
}

func auxOrUnset(o model.Order) float64 {
	if o.OrderType != model.OrderStop && o.OrderType != model.OrderStopLimit && o.OrderType != model.OrderTrail {
		return model.UnsetDouble
	}
	return o.AuxPrice
}

func minQtyField(o model.Order) wire.Field {
	if o.MinQty == 0 {
		return wire.Omit()
	}
	return wire.Int(o.MinQty)
}

func cashQtyField(o model.Order) wire.Field {
	if o.CashQty == 0 {
		return wire.Float(model.UnsetDouble)
	}
	return wire.Float(o.CashQty)
}

// putExecutionFilter appends a ReqExecutions filter's fields, blank-for-
// unfiltered per field, matching the gateway's convention.
func putExecutionFilter(enc *wire.Encoder, f model.ExecutionFilter) {
	enc.Put(wire.Int(f.ClientID)).
		Put(wire.String(f.AccountNumber)).
		Put(wire.String("")). // time: this client does not filter by time
		Put(wire.String(f.Symbol)).
		Put(wire.Enum(string(f.SecType))).
		Put(wire.String(f.Exchange)).
		Put(wire.Enum(string(f.Side)))
}

// putScannerSubscription appends a scanner filter's fields in the gateway's
// documented order.
func putScannerSubscription(enc *wire.Encoder, sub model.ScannerSubscription) {
	enc.Put(wire.Int(int64(sub.NumberOfRows))).
		Put(wire.String(sub.Instrument)).
		Put(wire.String(sub.LocationCode)).
		Put(wire.String(sub.ScanCode)).
		Put(wire.Float(sub.AbovePrice)).
		Put(wire.Float(sub.BelowPrice)).
		Put(wire.Int(int64(sub.AboveVolume))).
		Put(wire.Int(int64(sub.AverageOptionVolumeAbove))).
		Put(wire.Float(sub.MarketCapAbove)).
		Put(wire.Float(sub.MarketCapBelow)).
		Put(wire.String(sub.MoodyRatingAbove)).
		Put(wire.String(sub.MoodyRatingBelow)).
		Put(wire.String(sub.SPRatingAbove)).
		Put(wire.String(sub.SPRatingBelow)).
		Put(wire.String(sub.MaturityDateAbove)).
		Put(wire.String(sub.MaturityDateBelow)).
		Put(wire.Float(sub.CouponRateAbove)).
		Put(wire.Float(sub.CouponRateBelow)).
		Put(wire.String(sub.ExcludeConvertible)).
		Put(wire.String(sub.ScannerSettingPairs)).
		Put(wire.String(sub.StockTypeFilter))
}
