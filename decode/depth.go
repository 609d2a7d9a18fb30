package decode

import (
	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

func depthSide(v int64) model.DepthSide {
	if v == 0 {
		return model.DepthAsk
	}
	return model.DepthBid
}

// marketDepth decodes a marketDepth message: request id, book position,
// operation, side, price, size. One row of a non-aggregated
// (single-exchange) order book.
func marketDepth(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	position, err := tok.Int64("position")
	if err != nil {
		return wrapField(MissingData, "position", err)
	}
	operation, err := tok.Int64("operation")
	if err != nil {
		return wrapField(MissingData, "operation", err)
	}
	side, err := tok.Int64("side")
	if err != nil {
		return wrapField(MissingData, "side", err)
	}
	price, err := tok.Float64("price")
	if err != nil {
		return wrapField(ParseField, "price", err)
	}
	size, err := tok.Float64("size")
	if err != nil {
		return wrapField(ParseField, "size", err)
	}

	w.MarketDepth(model.DepthUpdateEvent{
		RequestID: model.RequestID(reqID),
		Operation: model.DepthOperation(operation),
		Entry: model.DepthEntry{
			Side: depthSide(side),
			Row:  model.DepthRow{Position: position, Price: price, Size: size},
		},
		Origin: model.DepthOriginNone,
	})
	return nil
}

// marketDepthL2 decodes a marketDepthL2 message: request id, position, a
// market-maker id (or exchange, depending on the trailing smart-depth
// flag), operation, side, price, size, and the smart-depth flag itself.
func marketDepthL2(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	position, err := tok.Int64("position")
	if err != nil {
		return wrapField(MissingData, "position", err)
	}
	marketMaker, err := tok.String("marketMaker")
	if err != nil {
		return wrapField(MissingData, "marketMaker", err)
	}
	operation, err := tok.Int64("operation")
	if err != nil {
		return wrapField(MissingData, "operation", err)
	}
	side, err := tok.Int64("side")
	if err != nil {
		return wrapField(MissingData, "side", err)
	}
	price, err := tok.Float64("price")
	if err != nil {
		return wrapField(ParseField, "price", err)
	}
	size, err := tok.Float64("size")
	if err != nil {
		return wrapField(ParseField, "size", err)
	}
	isSmart, err := tok.Int64("isSmart")
	if err != nil {
		return wrapField(MissingData, "isSmart", err)
	}

	ev := model.DepthUpdateEvent{
		RequestID: model.RequestID(reqID),
		Operation: model.DepthOperation(operation),
		Entry: model.DepthEntry{
			Side: depthSide(side),
			Row:  model.DepthRow{Position: position, Price: price, Size: size},
		},
	}
	if isSmart == 0 {
		if len(marketMaker) != 4 {
			return &DecodeError{Kind: ParseField, Message: "marketMaker is not a 4-character id"}
		}
		ev.Origin = model.DepthOriginMarketMaker
		ev.MarketMaker = marketMaker
	} else {
		ev.Origin = model.DepthOriginExchange
		ev.Exchange = marketMaker
		ev.IsSmartDepth = true
	}
	w.MarketDepth(ev)
	return nil
}
