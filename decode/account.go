package decode

import (
	"time"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// acctValue decodes an acctValue message: tag name, value, currency,
// account number. The gateway defines dozens of named attributes (and a
// segment-suffixed subset of them); this client keeps the tag as data
// (model.AccountValue) and strips the "-C"/"-P"/"-S" segment suffix
// generically rather than enumerating every attribute name.
func acctValue(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	name, err := tok.String("name")
	if err != nil {
		return wrapField(MissingData, "name", err)
	}
	value, err := tok.String("value")
	if err != nil {
		return wrapField(MissingData, "value", err)
	}
	currency, err := tok.String("currency")
	if err != nil {
		return wrapField(MissingData, "currency", err)
	}
	account, err := tok.String("account")
	if err != nil {
		return wrapField(MissingData, "account", err)
	}

	base, seg := model.ParseSegmentSuffix(name)
	w.AccountValue(model.AccountValue{Key: base, Segment: seg, Value: value, Currency: currency, Account: account})
	return nil
}

// portfolioValue decodes a portfolioValue message: the contract block,
// then position, market price, market value, average cost,
// unrealized/realized PnL, and the account number.
func portfolioValue(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	contract, err := decodeContract(tok)
	if err != nil {
		return err
	}
	position, err := tok.Float64("position")
	if err != nil {
		return wrapField(ParseField, "position", err)
	}
	marketPrice, err := tok.Float64("marketPrice")
	if err != nil {
		return wrapField(ParseField, "marketPrice", err)
	}
	marketValue, err := tok.Float64("marketValue")
	if err != nil {
		return wrapField(ParseField, "marketValue", err)
	}
	averageCost, err := tok.Float64("averageCost")
	if err != nil {
		return wrapField(ParseField, "averageCost", err)
	}
	unrealizedPnl, err := tok.Float64("unrealizedPnl")
	if err != nil {
		return wrapField(ParseField, "unrealizedPnl", err)
	}
	realizedPnl, err := tok.Float64("realizedPnl")
	if err != nil {
		return wrapField(ParseField, "realizedPnl", err)
	}
	account, err := tok.String("account")
	if err != nil {
		return wrapField(MissingData, "account", err)
	}

	w.PortfolioValue(model.PortfolioValue{
		Contract: contract, Position: position, MarketPrice: marketPrice, MarketValue: marketValue,
		AverageCost: averageCost, UnrealizedPnL: unrealizedPnl, RealizedPnL: realizedPnl, Account: account,
	})
	return nil
}

// acctUpdateTime decodes an acctUpdateTime message: a "HH:MM" timestamp
// with no associated account number.
func acctUpdateTime(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	raw, err := tok.String("timestamp")
	if err != nil {
		return wrapField(MissingData, "timestamp", err)
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return wrapField(ParseDateTime, "timestamp", err)
	}
	w.AccountValueTime("", t)
	return nil
}

// acctDownloadEnd decodes an acctDownloadEnd message: the account number
// whose snapshot just finished streaming.
func acctDownloadEnd(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	account, err := tok.String("account")
	if err != nil {
		return wrapField(MissingData, "account", err)
	}
	w.AccountDownloadEnd(account)
	return nil
}

// positionData decodes a positionData message: account number, contract
// block, position, average cost.
func positionData(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	account, err := tok.String("account")
	if err != nil {
		return wrapField(MissingData, "account", err)
	}
	contract, err := decodeContract(tok)
	if err != nil {
		return err
	}
	position, err := tok.Float64("position")
	if err != nil {
		return wrapField(ParseField, "position", err)
	}
	averageCost, err := tok.Float64("averageCost")
	if err != nil {
		return wrapField(ParseField, "averageCost", err)
	}
	w.PositionValue(model.PositionValue{Account: account, Contract: contract, Position: position, AverageCost: averageCost})
	return nil
}

func positionEnd(_ *wire.Tokens, w callback.Wrapper) error {
	w.PositionEnd()
	return nil
}

// accountSummary decodes an accountSummary message: request id, account
// number, tag, value, currency.
func accountSummary(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	account, err := tok.String("account")
	if err != nil {
		return wrapField(MissingData, "account", err)
	}
	tag, err := tok.String("tag")
	if err != nil {
		return wrapField(MissingData, "tag", err)
	}
	value, err := tok.String("value")
	if err != nil {
		return wrapField(MissingData, "value", err)
	}
	currency, err := tok.String("currency")
	if err != nil {
		return wrapField(MissingData, "currency", err)
	}
	w.AccountSummary(model.RequestID(reqID), account, model.AccountValue{Key: tag, Value: value, Currency: currency, Account: account})
	return nil
}

func accountSummaryEnd(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	w.AccountSummaryEnd(model.RequestID(reqID))
	return nil
}

// pnl decodes a pnl message: request id, daily, unrealized, realized PnL.
func pnl(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	daily, err := tok.Float64("dailyPnl")
	if err != nil {
		return wrapField(ParseField, "dailyPnl", err)
	}
	unrealized, err := tok.Float64("unrealizedPnl")
	if err != nil {
		return wrapField(ParseField, "unrealizedPnl", err)
	}
	realized, err := tok.Float64("realizedPnl")
	if err != nil {
		return wrapField(ParseField, "realizedPnl", err)
	}
	w.PnL(model.PnL{
		RequestID: model.RequestID(reqID), DailyPnL: daily,
		UnrealizedPnL: unrealized, RealizedPnL: realized,
	})
	return nil
}

// pnlSingle decodes a pnlSingle message: request id, position size,
// daily/unrealized/realized PnL, market value.
func pnlSingle(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	position, err := tok.Float64("position")
	if err != nil {
		return wrapField(ParseField, "position", err)
	}
	daily, err := tok.Float64("dailyPnl")
	if err != nil {
		return wrapField(ParseField, "dailyPnl", err)
	}
	unrealized, err := tok.Float64("unrealizedPnl")
	if err != nil {
		return wrapField(ParseField, "unrealizedPnl", err)
	}
	realized, err := tok.Float64("realizedPnl")
	if err != nil {
		return wrapField(ParseField, "realizedPnl", err)
	}
	value, err := tok.Float64("value")
	if err != nil {
		return wrapField(ParseField, "value", err)
	}
	w.PnLSingle(model.PnLSingle{
		RequestID: model.RequestID(reqID), Position: position, DailyPnL: daily,
		UnrealizedPnL: unrealized, RealizedPnL: realized, Value: value,
	})
	return nil
}
