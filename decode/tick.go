package decode

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// parseCalc turns a raw option-calculation field into the three-state
// CalculationResult the gateway's sentinel values distinguish: -1 for "not
// computed", -2 for "not yet computed", anything else a delivered value.
func parseCalc(v float64) model.CalculationResult {
	switch v {
	case -1:
		return model.NotComputed()
	case -2:
		return model.NotYetComputed()
	default:
		return model.Computed(v)
	}
}

// tickPrice decodes a tickPrice message: request id, tick type, price, an
// optional paired size, and a trailing attribute mask whose low bits flag
// auto-execute/past-limit/pre-open (not surfaced).
// tick_type is classified per the fixed range table into Live/Delayed
// price+size, 13/26/52-week extremes, auction price, mark price, yield, or
// ETF NAV, each routed to its own callback; an unrecognized code is a
// decode error.
func tickPrice(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	tickType, err := tok.Int64("tickType")
	if err != nil {
		return wrapField(MissingData, "tickType", err)
	}
	price, err := tok.Float64("price")
	if err != nil {
		return wrapField(ParseField, "price", err)
	}
	size, hasSize, err := tok.OptionalFloat64("size")
	if err != nil {
		return wrapField(ParseField, "size", err)
	}
	tok.Skip(1) // attrMask: auto-execute/past-limit/pre-open flags

	if !(model.PriceSize{Price: price, Size: size}).IsSet() {
		return nil
	}

	reqid := model.RequestID(reqID)
	switch tickType {
	case 1, 2, 4, 6, 7, 9, 14:
		emitPriceSize(w, reqid, model.Live, tickType, price, size, hasSize)
	case 15, 16, 17, 18, 19, 20:
		w.ExtremeData(model.ExtremeValueEvent{RequestID: reqid, Period: extremePeriod(tickType), Bound: extremeBound(tickType), Price: price})
	case 35:
		w.Auction(model.AuctionEvent{RequestID: reqid, Kind: model.AuctionPrice, Value: price})
	case 37, 79:
		kind := model.MarkPriceStandard
		if tickType == 79 {
			kind = model.MarkPriceSlow
		}
		w.MarkPrice(model.MarkPriceEvent{RequestID: reqid, Kind: kind, Price: price})
	case 50, 51, 52:
		w.YieldData(model.YieldEvent{RequestID: reqid, Kind: yieldKind(tickType), Value: price})
	case 57:
		w.PriceData(model.PriceEvent{RequestID: reqid, Quote: model.Live, Kind: model.PriceLastRthTrade, Price: price})
	case 66, 67, 68, 72, 73, 75, 76:
		emitPriceSize(w, reqid, model.Delayed, tickType, price, size, hasSize)
	case 92, 93, 94, 95, 96, 97, 98, 99:
		w.EtfNav(model.EtfNavEvent{RequestID: reqid, Kind: etfNavKind(tickType), Value: price})
	default:
		return &DecodeError{Kind: UnexpectedData, Message: fmt.Sprintf("unexpected price tick type %d", tickType)}
	}
	return nil
}

// emitPriceSize dispatches a classified price tick and, when the paired
// size token was present, the matching size tick with the same Live/Delayed
// discriminant — the bid/ask/last ranges carry a size, high/low/close/open
// never do.
func emitPriceSize(w callback.Wrapper, reqID model.RequestID, quote model.Quote, tickType int64, price, size float64, hasSize bool) {
	var kind model.PriceKind
	var sizeKind model.SizeKind
	pairsSize := false
	switch tickType {
	case 1, 66:
		kind, sizeKind, pairsSize = model.PriceBid, model.SizeBid, true
	case 2, 67:
		kind, sizeKind, pairsSize = model.PriceAsk, model.SizeAsk, true
	case 4, 68:
		kind, sizeKind, pairsSize = model.PriceLast, model.SizeLast, true
	case 6, 72:
		kind = model.PriceHigh
	case 7, 73:
		kind = model.PriceLow
	case 9, 75:
		kind = model.PriceClose
	case 14, 76:
		kind = model.PriceOpen
	}
	w.PriceData(model.PriceEvent{RequestID: reqID, Quote: quote, Kind: kind, Price: price})
	if pairsSize && hasSize {
		w.SizeData(model.SizeEvent{RequestID: reqID, Quote: quote, Kind: sizeKind, Size: size})
	}
}

func extremePeriod(tickType int64) model.ExtremePeriod {
	switch tickType {
	case 15, 16:
		return model.ThirteenWeek
	case 17, 18:
		return model.TwentySixWeek
	default:
		return model.FiftyTwoWeek
	}
}

func extremeBound(tickType int64) model.ExtremeBound {
	if tickType%2 == 0 {
		return model.ExtremeHigh
	}
	return model.ExtremeLow
}

func yieldKind(tickType int64) model.YieldKind {
	switch tickType {
	case 50:
		return model.YieldBid
	case 51:
		return model.YieldAsk
	default:
		return model.YieldLast
	}
}

func etfNavKind(tickType int64) model.EtfNavKind {
	switch tickType {
	case 92:
		return model.EtfNavClose
	case 93:
		return model.EtfNavPriorClose
	case 94:
		return model.EtfNavBid
	case 95:
		return model.EtfNavAsk
	case 96:
		return model.EtfNavLast
	case 97:
		return model.EtfNavFrozenLast
	case 98:
		return model.EtfNavHigh
	default:
		return model.EtfNavLow
	}
}

// tickSize decodes a tickSize message: request id, tick type, value. It
// shares the generic-tick classification table with tickGeneric.
func tickSize(tok *wire.Tokens, w callback.Wrapper) error {
	reqID, tickType, value, err := decodeGenericTick(tok)
	if err != nil {
		return err
	}
	return dispatchGenericTick(reqID, tickType, value, w)
}

// tickGeneric decodes a tickGeneric message, the same shape as tickSize,
// dispatched through the same classification table (the table does not
// distinguish its two callers).
func tickGeneric(tok *wire.Tokens, w callback.Wrapper) error {
	reqID, tickType, value, err := decodeGenericTick(tok)
	if err != nil {
		return err
	}
	return dispatchGenericTick(reqID, tickType, value, w)
}

// decodeGenericTick reads the req id/tick type/value triple shared by
// tickSize and tickGeneric.
func decodeGenericTick(tok *wire.Tokens) (model.RequestID, int64, float64, error) {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return 0, 0, 0, wrapField(MissingData, "reqId", err)
	}
	tickType, err := tok.Int64("tickType")
	if err != nil {
		return 0, 0, 0, wrapField(MissingData, "tickType", err)
	}
	value, err := tok.Float64("value")
	if err != nil {
		return 0, 0, 0, wrapField(ParseField, "value", err)
	}
	return model.RequestID(reqID), tickType, value, nil
}

// dispatchGenericTick routes a (tick type, value) pair into the shared
// numeric-code table spanning volume, rate, volatility, open interest,
// accessibility, IPO, summary volumes, auction data, mark-price factors,
// and delayed size variants. An
// unrecognized code is a decode error.
func dispatchGenericTick(reqID model.RequestID, tickType int64, value float64, w callback.Wrapper) error {
	switch tickType {
	case 0, 3, 5:
		w.SizeData(model.SizeEvent{RequestID: reqID, Quote: model.Live, Kind: liveSizeKind(tickType), Size: value})
	case 8, 74:
		quote := model.Live
		if tickType == 74 {
			quote = model.Delayed
		}
		w.Volume(model.VolumeEvent{RequestID: reqID, Quote: quote, Value: value})
	case 21, 63, 64, 65:
		w.SummaryVolume(model.SummaryVolumeEvent{RequestID: reqID, Kind: summaryVolumeKind(tickType), Value: value})
	case 23, 24, 58:
		w.Volatility(model.VolatilityEvent{RequestID: reqID, Kind: volatilityKind(tickType), Value: value})
	case 29, 30, 87:
		w.SecOptionVolume(model.SecOptionVolumeEvent{RequestID: reqID, Kind: secOptionVolumeKind(tickType), Value: value})
	case 34, 36, 61:
		w.Auction(model.AuctionEvent{RequestID: reqID, Kind: auctionVolumeKind(tickType), Value: value})
	case 27, 28, 86:
		w.OpenInterest(model.OpenInterestEvent{RequestID: reqID, Kind: openInterestKind(tickType), Value: value})
	case 31, 60:
		w.PriceFactor(model.PriceFactorEvent{RequestID: reqID, Kind: priceFactorKind(tickType), Value: value})
	case 46, 49, 89:
		w.Accessibility(model.AccessibilityEvent{RequestID: reqID, Kind: accessibilityKind(tickType), Value: value})
	case 54:
		w.TradeCount(reqID, value)
	case 55, 56:
		kind := model.RateTrade
		if tickType == 56 {
			kind = model.RateVolume
		}
		w.Rate(model.RateEvent{RequestID: reqID, Kind: kind, Value: value})
	case 69, 70, 71:
		w.SizeData(model.SizeEvent{RequestID: reqID, Quote: model.Delayed, Kind: delayedSizeKind(tickType), Size: value})
	case 101, 102:
		kind := model.IpoEstimated
		if tickType == 102 {
			kind = model.IpoFinal
		}
		w.Ipo(model.IpoEvent{RequestID: reqID, Kind: kind, Value: value})
	default:
		return &DecodeError{Kind: UnexpectedData, Message: fmt.Sprintf("unexpected generic tick type %d", tickType)}
	}
	return nil
}

func liveSizeKind(tickType int64) model.SizeKind {
	switch tickType {
	case 0:
		return model.SizeBid
	case 3:
		return model.SizeAsk
	default:
		return model.SizeLast
	}
}

func delayedSizeKind(tickType int64) model.SizeKind {
	switch tickType {
	case 69:
		return model.SizeBid
	case 70:
		return model.SizeAsk
	default:
		return model.SizeLast
	}
}

func summaryVolumeKind(tickType int64) model.SummaryVolumeKind {
	switch tickType {
	case 21:
		return model.SummaryVolumeNinetyDayAverage
	case 63:
		return model.SummaryVolumeThreeMinutes
	case 64:
		return model.SummaryVolumeFiveMinutes
	default:
		return model.SummaryVolumeTenMinutes
	}
}

func volatilityKind(tickType int64) model.VolatilityKind {
	switch tickType {
	case 23:
		return model.VolatilitySecOptionHistorical
	case 24:
		return model.VolatilitySecOptionImplied
	default:
		return model.VolatilityRealTimeHistorical
	}
}

func secOptionVolumeKind(tickType int64) model.SecOptionVolumeKind {
	switch tickType {
	case 29:
		return model.SecOptionVolumeCall
	case 30:
		return model.SecOptionVolumePut
	default:
		return model.SecOptionVolumeAverage
	}
}

func auctionVolumeKind(tickType int64) model.AuctionKind {
	switch tickType {
	case 34:
		return model.AuctionVolume
	case 36:
		return model.AuctionImbalance
	default:
		return model.AuctionRegulatory
	}
}

func openInterestKind(tickType int64) model.OpenInterestKind {
	switch tickType {
	case 27:
		return model.OpenInterestSecOptionCall
	case 28:
		return model.OpenInterestSecOptionPut
	default:
		return model.OpenInterestSecFuture
	}
}

func priceFactorKind(tickType int64) model.PriceFactorKind {
	if tickType == 31 {
		return model.PriceFactorIndexFuturePremium
	}
	return model.PriceFactorBondMultiplier
}

func accessibilityKind(tickType int64) model.AccessibilityKind {
	switch tickType {
	case 46:
		return model.AccessibilityShortable
	case 49:
		return model.AccessibilityHalted
	default:
		return model.AccessibilityShortableShares
	}
}

// tickString decodes a tickString message and branches on the tick type:
// quoting-exchange character sets, last-trade/regulatory timestamps, the
// semicolon-delimited real-time volume composite, the comma-delimited
// dividends composite, or free-form news text.
func tickString(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	tickType, err := tok.Int64("tickType")
	if err != nil {
		return wrapField(MissingData, "tickType", err)
	}
	value, err := tok.String("value")
	if err != nil {
		return wrapField(MissingData, "value", err)
	}

	reqid := model.RequestID(reqID)
	switch tickType {
	case 32, 33, 84:
		kind := model.QuotingExchangesBid
		switch tickType {
		case 33:
			kind = model.QuotingExchangesAsk
		case 84:
			kind = model.QuotingExchangesLast
		}
		w.QuotingExchanges(model.QuotingExchangesEvent{RequestID: reqid, Kind: kind, Exchanges: value})
	case 45, 85, 88:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return wrapField(ParseField, "value", err)
		}
		if n == 0 {
			return nil
		}
		ev := model.TimestampEvent{RequestID: reqid, Quote: model.Live, Kind: model.TimestampLast}
		switch tickType {
		case 45:
			ev.Time = time.Unix(n, 0).UTC()
		case 85:
			// Regulatory timestamps are the one millisecond-valued case.
			ev.Kind = model.TimestampRegulatory
			ev.Time = time.UnixMilli(n).UTC()
		case 88:
			ev.Quote = model.Delayed
			ev.Time = time.Unix(n, 0).UTC()
		}
		w.Timestamp(ev)
	case 48, 77:
		ev, err := parseRealTimeVolume(reqid, tickType, value)
		if err != nil {
			return err
		}
		w.RealTimeVolume(ev)
	case 59:
		ev, err := parseDividends(reqid, value)
		if err != nil {
			return err
		}
		w.Dividends(ev)
	case 62:
		w.News(reqid, value)
	default:
		return &DecodeError{Kind: UnexpectedData, Message: fmt.Sprintf("unexpected string tick type %d", tickType)}
	}
	return nil
}

// parseRealTimeVolume splits the RT volume composite:
// lastPrice;lastSize;lastTime;dayVolume;vwap;singleMarketMaker.
func parseRealTimeVolume(reqID model.RequestID, tickType int64, value string) (model.RealTimeVolumeEvent, error) {
	ev := model.RealTimeVolumeEvent{RequestID: reqID, Kind: model.RealTimeVolumeAll}
	if tickType == 77 {
		ev.Kind = model.RealTimeVolumeTrades
	}

	parts := strings.Split(value, ";")
	if len(parts) < 6 {
		return ev, &DecodeError{Kind: MissingData, Message: "realTimeVolume composite"}
	}
	var err error
	if ev.LastPrice, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return ev, wrapField(ParseField, "lastPrice", err)
	}
	if ev.LastSize, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return ev, wrapField(ParseField, "lastSize", err)
	}
	secs, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return ev, wrapField(ParseField, "lastTime", err)
	}
	ev.LastTime = time.Unix(secs, 0).UTC()
	if ev.DayVolume, err = strconv.ParseFloat(parts[3], 64); err != nil {
		return ev, wrapField(ParseField, "dayVolume", err)
	}
	if ev.WAP, err = strconv.ParseFloat(parts[4], 64); err != nil {
		return ev, wrapField(ParseField, "vwap", err)
	}
	if ev.SingleMarketMaker, err = strconv.ParseBool(parts[5]); err != nil {
		return ev, wrapField(ParseField, "singleMarketMaker", err)
	}
	return ev, nil
}

// parseDividends splits the dividends composite:
// trailingYear,forwardYear,nextDate,nextPrice (nextDate as YYYYMMDD).
func parseDividends(reqID model.RequestID, value string) (model.DividendsEvent, error) {
	ev := model.DividendsEvent{RequestID: reqID}

	parts := strings.Split(value, ",")
	if len(parts) < 4 {
		return ev, &DecodeError{Kind: MissingData, Message: "dividends composite"}
	}
	var err error
	if ev.TrailingYear, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return ev, wrapField(ParseField, "trailingYear", err)
	}
	if ev.ForwardYear, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return ev, wrapField(ParseField, "forwardYear", err)
	}
	if ev.NextDate, err = time.Parse("20060102", parts[2]); err != nil {
		return ev, wrapField(ParseDateTime, "nextDate", err)
	}
	if ev.NextPrice, err = strconv.ParseFloat(parts[3], 64); err != nil {
		return ev, wrapField(ParseField, "nextPrice", err)
	}
	return ev, nil
}

// tickOptionComputation decodes a tickOptionComputation message: request id,
// tick type, the return/price calculation base, then the eight
// Greeks-and-price fields in fixed order, each a three-state
// CalculationResult.
func tickOptionComputation(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	tickType, err := tok.Int64("tickType")
	if err != nil {
		return wrapField(MissingData, "tickType", err)
	}
	base, err := tok.Int64("base")
	if err != nil {
		return wrapField(MissingData, "base", err)
	}
	fields := make([]float64, 8)
	names := []string{"impliedVolatility", "delta", "price", "pvDividend", "gamma", "vega", "theta", "underlyingPrice"}
	for i, name := range names {
		v, err := tok.Float64(name)
		if err != nil {
			return wrapField(ParseField, name, err)
		}
		fields[i] = v
	}

	ev := model.TickOptionComputation{
		RequestID:         model.RequestID(reqID),
		ImpliedVolatility: parseCalc(fields[0]),
		Delta:             parseCalc(fields[1]),
		OptionPrice:       parseCalc(fields[2]),
		PvDividend:        parseCalc(fields[3]),
		Gamma:             parseCalc(fields[4]),
		Vega:              parseCalc(fields[5]),
		Theta:             parseCalc(fields[6]),
		UnderlyingPrice:   parseCalc(fields[7]),
	}
	switch base {
	case 0:
		ev.Base = model.CalcReturnBased
	case 1:
		ev.Base = model.CalcPriceBased
	default:
		return &DecodeError{Kind: UnexpectedData, Message: fmt.Sprintf("unexpected option calculation base %d", base)}
	}
	switch tickType {
	case 10, 80:
		ev.Source = model.CalcSourceBid
	case 11, 81:
		ev.Source = model.CalcSourceAsk
	case 12, 82:
		ev.Source = model.CalcSourceLast
	case 13, 83:
		ev.Source = model.CalcSourceModel
	case 53:
		ev.Source = model.CalcSourceCustom
	default:
		return &DecodeError{Kind: UnexpectedData, Message: fmt.Sprintf("unexpected option computation tick type %d", tickType)}
	}
	if tickType >= 80 && tickType <= 83 {
		ev.Quote = model.Delayed
	}
	w.TickOptionComputation(ev)
	return nil
}

// tickByTick decodes a tickByTick message: request id, stream kind, a unix
// timestamp, then kind-specific fields (last/all-last carry price+size+
// exchange, bid/ask carries four prices/sizes, midpoint carries one price).
func tickByTick(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	kind, err := tok.Int64("tickType")
	if err != nil {
		return wrapField(MissingData, "tickType", err)
	}
	ts, err := tok.Int64("time")
	if err != nil {
		return wrapField(MissingData, "time", err)
	}

	ev := model.TickByTickEvent{RequestID: model.RequestID(reqID), Time: ts}
	switch kind {
	case 1, 2:
		ev.Kind = model.TickByTickLast
		if kind == 2 {
			ev.Kind = model.TickByTickAllLast
		}
		if ev.Price, err = tok.Float64("price"); err != nil {
			return wrapField(ParseField, "price", err)
		}
		if ev.Size, err = tok.Float64("size"); err != nil {
			return wrapField(ParseField, "size", err)
		}
		tok.Skip(1)
		if ev.Exchange, err = tok.String("exchange"); err != nil {
			return wrapField(MissingData, "exchange", err)
		}
		if ev.SpecialConditions, err = tok.String("specialConditions"); err != nil {
			return wrapField(MissingData, "specialConditions", err)
		}
	case 3:
		ev.Kind = model.TickByTickBidAsk
		if ev.BidPrice, err = tok.Float64("bidPrice"); err != nil {
			return wrapField(ParseField, "bidPrice", err)
		}
		if ev.AskPrice, err = tok.Float64("askPrice"); err != nil {
			return wrapField(ParseField, "askPrice", err)
		}
		if ev.BidSize, err = tok.Float64("bidSize"); err != nil {
			return wrapField(ParseField, "bidSize", err)
		}
		if ev.AskSize, err = tok.Float64("askSize"); err != nil {
			return wrapField(ParseField, "askSize", err)
		}
	case 4:
		ev.Kind = model.TickByTickMidPoint
		if ev.Price, err = tok.Float64("price"); err != nil {
			return wrapField(ParseField, "price", err)
		}
	default:
		return &DecodeError{Kind: UnexpectedData, Message: "unexpected tick-by-tick kind"}
	}
	w.TickByTick(ev)
	return nil
}

// tickSnapshotEnd decodes a tickSnapshotEnd message: request id only.
func tickSnapshotEnd(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	w.TickSnapshotEnd(model.RequestID(reqID))
	return nil
}
