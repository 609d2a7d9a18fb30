package decode

import (
	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/timezonedb"
	"github.com/wvietor/ibkr-go/wire"
)

// orderStatus decodes an orderStatus message: order id, status,
// filled/remaining/average fill price, perm id, parent id, last fill
// price, client id, why-held text, market cap price.
func orderStatus(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	orderID, err := tok.Int64("orderId")
	if err != nil {
		return wrapField(MissingData, "orderId", err)
	}
	status, err := tok.String("status")
	if err != nil {
		return wrapField(MissingData, "status", err)
	}
	filled, err := tok.Float64("filled")
	if err != nil {
		return wrapField(ParseField, "filled", err)
	}
	remaining, err := tok.Float64("remaining")
	if err != nil {
		return wrapField(ParseField, "remaining", err)
	}
	avgPrice, err := tok.Float64("avgFillPrice")
	if err != nil {
		return wrapField(ParseField, "avgFillPrice", err)
	}
	permID, err := tok.Int64("permId")
	if err != nil {
		return wrapField(MissingData, "permId", err)
	}
	parentID, err := tok.Int64("parentId")
	if err != nil {
		return wrapField(MissingData, "parentId", err)
	}
	lastPrice, err := tok.Float64("lastFillPrice")
	if err != nil {
		return wrapField(ParseField, "lastFillPrice", err)
	}
	clientID, err := tok.Int64("clientId")
	if err != nil {
		return wrapField(MissingData, "clientId", err)
	}
	whyHeld, err := tok.String("whyHeld")
	if err != nil {
		return wrapField(MissingData, "whyHeld", err)
	}
	mktCapPrice, err := tok.Float64("mktCapPrice")
	if err != nil {
		return wrapField(ParseField, "mktCapPrice", err)
	}

	w.OrderStatus(model.OrderStatus{
		OrderID: model.OrderID(orderID), Status: model.OrderStatusKind(status),
		Filled: filled, Remaining: remaining, AvgFillPrice: avgPrice,
		PermID: permID, ParentID: model.OrderID(parentID), LastFillPrice: lastPrice,
		ClientID: clientID, WhyHeld: whyHeld, MktCapPrice: mktCapPrice,
	})
	return nil
}

// openOrder decodes an openOrder message: order id, contract block, then
// (after a run of fields this client's pragmatic Order subset does not
// surface) client id, perm id, and parent id.
func openOrder(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	orderID, err := tok.Int64("orderId")
	if err != nil {
		return wrapField(MissingData, "orderId", err)
	}
	contract, err := decodeContract(tok)
	if err != nil {
		return err
	}
	tok.Skip(10)
	clientID, err := tok.Int64("clientId")
	if err != nil {
		return wrapField(MissingData, "clientId", err)
	}
	permID, err := tok.Int64("permId")
	if err != nil {
		return wrapField(MissingData, "permId", err)
	}
	tok.Skip(32)
	parentID, err := tok.Int64("parentId")
	if err != nil {
		return wrapField(MissingData, "parentId", err)
	}

	w.OpenOrder(model.OpenOrder{
		OrderID:  model.OrderID(orderID),
		Contract: contract,
		Status: model.OrderStatus{
			OrderID: model.OrderID(orderID), ClientID: clientID, PermID: permID, ParentID: model.OrderID(parentID),
		},
	})
	return nil
}

func openOrderEnd(_ *wire.Tokens, w callback.Wrapper) error {
	w.OpenOrderEnd()
	return nil
}

// executionData decodes an execDetails message: request id, order id,
// contract block, execution id, datetime, account, exchange, side,
// quantity, price, perm id, client id, liquidation flag, cumulative
// quantity, average price.
func executionData(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	orderID, err := tok.Int64("orderId")
	if err != nil {
		return wrapField(MissingData, "orderId", err)
	}
	contract, err := decodeContract(tok)
	if err != nil {
		return err
	}
	execID, err := tok.String("execId")
	if err != nil {
		return wrapField(MissingData, "execId", err)
	}
	datetime, err := tok.String("datetime")
	if err != nil {
		return wrapField(MissingData, "datetime", err)
	}
	execTime, err := timezonedb.ParseTimestamp(datetime)
	if err != nil {
		return wrapField(ParseDateTime, "datetime", err)
	}
	account, err := tok.String("account")
	if err != nil {
		return wrapField(MissingData, "account", err)
	}
	exchange, err := tok.String("exchange")
	if err != nil {
		return wrapField(MissingData, "exchange", err)
	}
	side, err := tok.String("side")
	if err != nil {
		return wrapField(MissingData, "side", err)
	}
	quantity, err := tok.Float64("quantity")
	if err != nil {
		return wrapField(ParseField, "quantity", err)
	}
	price, err := tok.Float64("price")
	if err != nil {
		return wrapField(ParseField, "price", err)
	}
	permID, err := tok.Int64("permId")
	if err != nil {
		return wrapField(MissingData, "permId", err)
	}
	clientID, err := tok.Int64("clientId")
	if err != nil {
		return wrapField(MissingData, "clientId", err)
	}
	liquidation, err := tok.Int64("liquidation")
	if err != nil {
		return wrapField(MissingData, "liquidation", err)
	}
	cumQty, err := tok.Float64("cumQty")
	if err != nil {
		return wrapField(ParseField, "cumQty", err)
	}
	avgPrice, err := tok.Float64("avgPrice")
	if err != nil {
		return wrapField(ParseField, "avgPrice", err)
	}

	w.Execution(model.RequestID(reqID), model.Execution{
		RequestID: model.RequestID(reqID), OrderID: model.OrderID(orderID), Contract: contract,
		ExecID: execID, Time: execTime, Account: account, Exchange: exchange, Side: model.OrderSide(side),
		Shares: quantity, Price: price, PermID: permID, ClientID: clientID, Liquidation: liquidation,
		CumQty: cumQty, AvgPrice: avgPrice,
	})
	return nil
}

// commissionReport decodes a commissionReport message: execution id,
// commission, currency, realized PnL, yield, yield redemption date.
func commissionReport(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	execID, err := tok.String("execId")
	if err != nil {
		return wrapField(MissingData, "execId", err)
	}
	commission, err := tok.Float64("commission")
	if err != nil {
		return wrapField(ParseField, "commission", err)
	}
	currency, err := tok.String("currency")
	if err != nil {
		return wrapField(MissingData, "currency", err)
	}
	realizedPnl, err := tok.Float64("realizedPnl")
	if err != nil {
		return wrapField(ParseField, "realizedPnl", err)
	}
	yld, err := tok.Float64("yield")
	if err != nil {
		return wrapField(ParseField, "yield", err)
	}
	redemptionDate, err := tok.Int64("yieldRedemptionDate")
	if err != nil {
		return wrapField(MissingData, "yieldRedemptionDate", err)
	}

	w.CommissionReport(model.CommissionReport{
		ExecID: execID, Commission: commission, Currency: currency,
		RealizedPnL: realizedPnl, Yield: yld, YieldRedemptionDate: redemptionDate,
	})
	return nil
}
