package decode

import (
	"strconv"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// historicalData decodes a historicalData message: request id, a start/end
// date pair this client does not surface, a bar count, then that many
// 8-field bar rows.
func historicalData(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	tok.Skip(2) // start date, end date
	count, err := tok.Int64("count")
	if err != nil {
		return wrapField(MissingData, "count", err)
	}

	bars := make([]model.Bar, 0, count)
	for i := int64(0); i < count; i++ {
		bar, err := decodeBarRow(tok)
		if err != nil {
			return err
		}
		bars = append(bars, bar)
	}
	w.HistoricalBars(model.RequestID(reqID), bars)
	return nil
}

func decodeBarRow(tok *wire.Tokens) (model.Bar, error) {
	var bar model.Bar
	t, err := tok.String("time")
	if err != nil {
		return bar, wrapField(MissingData, "time", err)
	}
	open, err := tok.Float64("open")
	if err != nil {
		return bar, wrapField(ParseField, "open", err)
	}
	high, err := tok.Float64("high")
	if err != nil {
		return bar, wrapField(ParseField, "high", err)
	}
	low, err := tok.Float64("low")
	if err != nil {
		return bar, wrapField(ParseField, "low", err)
	}
	closePx, err := tok.Float64("close")
	if err != nil {
		return bar, wrapField(ParseField, "close", err)
	}
	volume, err := tok.Float64("volume")
	if err != nil {
		return bar, wrapField(ParseField, "volume", err)
	}
	wap, err := tok.Float64("wap")
	if err != nil {
		return bar, wrapField(ParseField, "wap", err)
	}
	tradeCount, err := tok.Int64("tradeCount")
	if err != nil {
		return bar, wrapField(ParseField, "tradeCount", err)
	}

	bar.Core = model.BarCore{Time: t, Open: open, High: high, Low: low, Close: closePx}
	bar.Volume = volume
	bar.WAP = wap
	bar.TradeCount = tradeCount
	bar.Kind = model.ClassifyBar(volume, wap, tradeCount)
	return bar, nil
}

// updatingHistoricalBar decodes a historicalDataUpdate message: request id,
// trade count, then the same datetime/OHLC/wap/volume fields as a regular
// bar row but in a different order (trade count leads here).
func updatingHistoricalBar(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	tradeCount, err := tok.Int64("tradeCount")
	if err != nil {
		return wrapField(MissingData, "tradeCount", err)
	}
	t, err := tok.String("time")
	if err != nil {
		return wrapField(MissingData, "time", err)
	}
	open, err := tok.Float64("open")
	if err != nil {
		return wrapField(ParseField, "open", err)
	}
	high, err := tok.Float64("high")
	if err != nil {
		return wrapField(ParseField, "high", err)
	}
	low, err := tok.Float64("low")
	if err != nil {
		return wrapField(ParseField, "low", err)
	}
	closePx, err := tok.Float64("close")
	if err != nil {
		return wrapField(ParseField, "close", err)
	}
	wap, err := tok.Float64("wap")
	if err != nil {
		return wrapField(ParseField, "wap", err)
	}
	volume, err := tok.Float64("volume")
	if err != nil {
		return wrapField(ParseField, "volume", err)
	}

	bar := model.Bar{
		Core:       model.BarCore{Time: t, Open: open, High: high, Low: low, Close: closePx},
		Volume:     volume,
		WAP:        wap,
		TradeCount: tradeCount,
		Kind:       model.ClassifyBar(volume, wap, tradeCount),
	}
	w.UpdatingHistoricalBar(model.RequestID(reqID), bar)
	return nil
}

// realTimeBars decodes a realTimeBars message: request id, a unix-second
// timestamp, OHLC, volume, wap, trade count.
func realTimeBars(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(2)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	dateTime, err := tok.Int64("dateTime")
	if err != nil {
		return wrapField(MissingData, "dateTime", err)
	}
	open, err := tok.Float64("open")
	if err != nil {
		return wrapField(ParseField, "open", err)
	}
	high, err := tok.Float64("high")
	if err != nil {
		return wrapField(ParseField, "high", err)
	}
	low, err := tok.Float64("low")
	if err != nil {
		return wrapField(ParseField, "low", err)
	}
	closePx, err := tok.Float64("close")
	if err != nil {
		return wrapField(ParseField, "close", err)
	}
	volume, err := tok.Float64("volume")
	if err != nil {
		return wrapField(ParseField, "volume", err)
	}
	wap, err := tok.Float64("wap")
	if err != nil {
		return wrapField(ParseField, "wap", err)
	}
	tradeCount, err := tok.Int64("tradeCount")
	if err != nil {
		return wrapField(MissingData, "tradeCount", err)
	}

	bar := model.Bar{
		Core:       model.BarCore{Time: strconv.FormatInt(dateTime, 10), Open: open, High: high, Low: low, Close: closePx},
		Volume:     volume,
		WAP:        wap,
		TradeCount: tradeCount,
		Kind:       model.ClassifyBar(volume, wap, tradeCount),
	}
	w.RealTimeBar(model.RequestID(reqID), bar)
	return nil
}

// headTimestamp decodes a headTimestamp message: request id, a unix-second
// timestamp of the earliest available bar.
func headTimestamp(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	ts, err := tok.Int64("timestamp")
	if err != nil {
		return wrapField(MissingData, "timestamp", err)
	}
	t, err := unixSeconds(ts)
	if err != nil {
		return err
	}
	w.HeadTimestamp(model.RequestID(reqID), t)
	return nil
}

// histogramData decodes a histogramData message: request id, a bin count,
// then that many price/size pairs.
func histogramData(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	n, err := tok.Int64("count")
	if err != nil {
		return wrapField(MissingData, "count", err)
	}
	entries := make([]model.HistogramEntry, 0, n)
	for i := int64(0); i < n; i++ {
		price, err := tok.Float64("price")
		if err != nil {
			return wrapField(ParseField, "price", err)
		}
		size, err := tok.Float64("size")
		if err != nil {
			return wrapField(ParseField, "size", err)
		}
		entries = append(entries, model.HistogramEntry{Price: price, Size: int64(size)})
	}
	w.HistogramData(model.RequestID(reqID), entries)
	return nil
}

// historicalTicksMidpoint decodes a historicalTicks message: request id, a
// tick count, then that many (time, _, price, size) rows.
func historicalTicksMidpoint(tok *wire.Tokens, w callback.Wrapper) error {
	reqID, n, err := historicalTicksHeader(tok)
	if err != nil {
		return err
	}
	ticks := make([]model.HistoricalTickMidpoint, 0, n)
	for i := int64(0); i < n; i++ {
		ts, err := tok.Int64("time")
		if err != nil {
			return wrapField(MissingData, "time", err)
		}
		tok.Skip(1)
		price, err := tok.Float64("price")
		if err != nil {
			return wrapField(ParseField, "price", err)
		}
		size, err := tok.Float64("size")
		if err != nil {
			return wrapField(ParseField, "size", err)
		}
		ticks = append(ticks, model.HistoricalTickMidpoint{Time: ts, Price: price, Size: size})
	}
	w.HistoricalTicksMidpoint(reqID, ticks)
	return nil
}

// historicalTicksBidAsk decodes a historicalTicksBidAsk message: request
// id, a tick count, then that many (time, _, bidPrice, askPrice, bidSize,
// askSize) rows.
func historicalTicksBidAsk(tok *wire.Tokens, w callback.Wrapper) error {
	reqID, n, err := historicalTicksHeader(tok)
	if err != nil {
		return err
	}
	ticks := make([]model.HistoricalTickBidAsk, 0, n)
	for i := int64(0); i < n; i++ {
		ts, err := tok.Int64("time")
		if err != nil {
			return wrapField(MissingData, "time", err)
		}
		tok.Skip(1)
		bidPrice, err := tok.Float64("bidPrice")
		if err != nil {
			return wrapField(ParseField, "bidPrice", err)
		}
		askPrice, err := tok.Float64("askPrice")
		if err != nil {
			return wrapField(ParseField, "askPrice", err)
		}
		bidSize, err := tok.Float64("bidSize")
		if err != nil {
			return wrapField(ParseField, "bidSize", err)
		}
		askSize, err := tok.Float64("askSize")
		if err != nil {
			return wrapField(ParseField, "askSize", err)
		}
		ticks = append(ticks, model.HistoricalTickBidAsk{
			Time: ts, BidPrice: bidPrice, AskPrice: askPrice, BidSize: bidSize, AskSize: askSize,
		})
	}
	w.HistoricalTicksBidAsk(reqID, ticks)
	return nil
}

// historicalTicksLast decodes a historicalTicksLast message: request id, a
// tick count, then that many (time, _, price, size, exchange, conditions)
// rows.
func historicalTicksLast(tok *wire.Tokens, w callback.Wrapper) error {
	reqID, n, err := historicalTicksHeader(tok)
	if err != nil {
		return err
	}
	ticks := make([]model.HistoricalTickLast, 0, n)
	for i := int64(0); i < n; i++ {
		ts, err := tok.Int64("time")
		if err != nil {
			return wrapField(MissingData, "time", err)
		}
		tok.Skip(1)
		price, err := tok.Float64("price")
		if err != nil {
			return wrapField(ParseField, "price", err)
		}
		size, err := tok.Float64("size")
		if err != nil {
			return wrapField(ParseField, "size", err)
		}
		exchange, err := tok.String("exchange")
		if err != nil {
			return wrapField(MissingData, "exchange", err)
		}
		conditions, err := tok.String("specialConditions")
		if err != nil {
			return wrapField(MissingData, "specialConditions", err)
		}
		ticks = append(ticks, model.HistoricalTickLast{
			Time: ts, Price: price, Size: size, Exchange: exchange, SpecialConditions: conditions,
		})
	}
	w.HistoricalTicksLast(reqID, ticks)
	return nil
}

func historicalTicksHeader(tok *wire.Tokens) (model.RequestID, int64, error) {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return 0, 0, wrapField(MissingData, "reqId", err)
	}
	n, err := tok.Int64("count")
	if err != nil {
		return 0, 0, wrapField(MissingData, "count", err)
	}
	return model.RequestID(reqID), n, nil
}
