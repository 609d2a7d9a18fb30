package decode

import (
	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// decodeContract reads one contract in the fixed field order every contract-
// carrying message shares: id, symbol, security type, expiry, strike,
// right, multiplier, exchange, currency, local symbol, trading class. Some
// messages add fields before or after this block (primary exchange, FIGI);
// callers handle those themselves with Skip/extra reads around the call.
func decodeContract(tok *wire.Tokens) (model.Contract, error) {
	var c model.Contract
	id, err := tok.Int64("contractId")
	if err != nil {
		return c, wrapField(MissingData, "contractId", err)
	}
	symbol, err := tok.String("symbol")
	if err != nil {
		return c, wrapField(MissingData, "symbol", err)
	}
	secType, err := tok.String("secType")
	if err != nil {
		return c, wrapField(MissingData, "secType", err)
	}
	expiry, err := tok.String("expiry")
	if err != nil {
		return c, wrapField(MissingData, "expiry", err)
	}
	strike, err := tok.Float64("strike")
	if err != nil {
		return c, wrapField(ParseField, "strike", err)
	}
	right, err := tok.String("right")
	if err != nil {
		return c, wrapField(MissingData, "right", err)
	}
	multiplier, err := tok.String("multiplier")
	if err != nil {
		return c, wrapField(MissingData, "multiplier", err)
	}
	exchange, err := tok.String("exchange")
	if err != nil {
		return c, wrapField(MissingData, "exchange", err)
	}
	currency, err := tok.String("currency")
	if err != nil {
		return c, wrapField(MissingData, "currency", err)
	}
	localSymbol, err := tok.String("localSymbol")
	if err != nil {
		return c, wrapField(MissingData, "localSymbol", err)
	}
	tradingClass, err := tok.String("tradingClass")
	if err != nil {
		return c, wrapField(MissingData, "tradingClass", err)
	}

	c.ContractID = id
	c.Symbol = symbol
	c.SecType = model.SecurityType(secType)
	c.Expiry = expiry
	c.Strike = strike
	c.Right = model.Right(right)
	c.Multiplier = multiplier
	c.Exchange = exchange
	c.Currency = model.Currency(currency)
	c.LocalSymbol = localSymbol
	c.TradingClass = tradingClass
	return c, nil
}

// ContractVerifier is an optional interface a callback.Wrapper may satisfy
// to cross-check a contractData reply against the pending query recorded
// when the request was emitted. It is not part of callback.Wrapper itself,
// since most wrapper implementations have no in-flight request state to
// check against; Session's internal wrapper is the one implementation that
// does.
type ContractVerifier interface {
	VerifyContractQuery(reqID model.RequestID, contractID int64, exchange string) error
}

func contractData(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	c, err := decodeContract(tok)
	if err != nil {
		return err
	}
	if v, ok := w.(ContractVerifier); ok {
		if err := v.VerifyContractQuery(model.RequestID(reqID), c.ContractID, c.Exchange); err != nil {
			return &DecodeError{Kind: UnexpectedData, Message: err.Error()}
		}
	}
	w.ContractDetails(model.RequestID(reqID), c)
	return nil
}

func contractDataEnd(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	w.ContractDetailsEnd(model.RequestID(reqID))
	return nil
}
