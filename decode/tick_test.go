package decode_test

import (
	"testing"
	"time"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/decode"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// tickCapture records the classified tick callbacks under test, leaving
// every other callback a no-op.
type tickCapture struct {
	callback.NoOpWrapper

	prices      []model.PriceEvent
	sizes       []model.SizeEvent
	extremes    []model.ExtremeValueEvent
	volumes     []model.VolumeEvent
	tradeCounts []float64

	quotingExchanges []model.QuotingExchangesEvent
	timestamps       []model.TimestampEvent
	rtVolumes        []model.RealTimeVolumeEvent
	dividends        []model.DividendsEvent
	news             []string
	computations     []model.TickOptionComputation
}

func (c *tickCapture) PriceData(ev model.PriceEvent)          { c.prices = append(c.prices, ev) }
func (c *tickCapture) SizeData(ev model.SizeEvent)            { c.sizes = append(c.sizes, ev) }
func (c *tickCapture) ExtremeData(ev model.ExtremeValueEvent) { c.extremes = append(c.extremes, ev) }
func (c *tickCapture) Volume(ev model.VolumeEvent)            { c.volumes = append(c.volumes, ev) }
func (c *tickCapture) TradeCount(_ model.RequestID, value float64) {
	c.tradeCounts = append(c.tradeCounts, value)
}

func (c *tickCapture) QuotingExchanges(ev model.QuotingExchangesEvent) {
	c.quotingExchanges = append(c.quotingExchanges, ev)
}
func (c *tickCapture) Timestamp(ev model.TimestampEvent) { c.timestamps = append(c.timestamps, ev) }
func (c *tickCapture) RealTimeVolume(ev model.RealTimeVolumeEvent) {
	c.rtVolumes = append(c.rtVolumes, ev)
}
func (c *tickCapture) Dividends(ev model.DividendsEvent) { c.dividends = append(c.dividends, ev) }
func (c *tickCapture) News(_ model.RequestID, article string) {
	c.news = append(c.news, article)
}
func (c *tickCapture) TickOptionComputation(ev model.TickOptionComputation) {
	c.computations = append(c.computations, ev)
}

func TestTickPriceLiveBidEmitsPairedSize(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	// two filler fields, reqId=1, tickType=1 (bid), price=100.5, size=300, attrMask=0
	if err := decode.Dispatch(wire.InTickPrice, fields("6", "0", "1", "1", "100.5", "300", "0"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.prices) != 1 || c.prices[0].Quote != model.Live || c.prices[0].Kind != model.PriceBid || c.prices[0].Price != 100.5 {
		t.Fatalf("prices = %+v, want one live bid @100.5", c.prices)
	}
	if len(c.sizes) != 1 || c.sizes[0].Quote != model.Live || c.sizes[0].Kind != model.SizeBid || c.sizes[0].Size != 300 {
		t.Fatalf("sizes = %+v, want one live bid size=300", c.sizes)
	}
}

func TestTickPriceDelayedAskEmitsPairedSize(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	// tickType=67 is the delayed ask price
	if err := decode.Dispatch(wire.InTickPrice, fields("6", "0", "5", "67", "101.25", "400", "0"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.prices) != 1 || c.prices[0].Quote != model.Delayed || c.prices[0].Kind != model.PriceAsk {
		t.Fatalf("prices = %+v, want one delayed ask", c.prices)
	}
	if len(c.sizes) != 1 || c.sizes[0].Quote != model.Delayed || c.sizes[0].Kind != model.SizeAsk || c.sizes[0].Size != 400 {
		t.Fatalf("sizes = %+v, want one delayed ask size=400", c.sizes)
	}
}

func TestTickPriceHighLowCarriesNoPairedSize(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	// tickType=6 (high) never pairs a size, even though the token is present.
	if err := decode.Dispatch(wire.InTickPrice, fields("6", "0", "1", "6", "110.0", "0", "0"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.prices) != 1 || c.prices[0].Kind != model.PriceHigh {
		t.Fatalf("prices = %+v, want one high tick", c.prices)
	}
	if len(c.sizes) != 0 {
		t.Fatalf("sizes = %+v, want none for a high tick", c.sizes)
	}
}

func TestTickPriceExtremeValue(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	// tickType=18 is the 26-week high.
	if err := decode.Dispatch(wire.InTickPrice, fields("6", "0", "9", "18", "250.0", "", "0"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.extremes) != 1 || c.extremes[0].Period != model.TwentySixWeek || c.extremes[0].Bound != model.ExtremeHigh || c.extremes[0].Price != 250.0 {
		t.Fatalf("extremes = %+v, want one 26-week high @250", c.extremes)
	}
}

func TestTickPriceSentinelDiscarded(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	if err := decode.Dispatch(wire.InTickPrice, fields("6", "0", "1", "4", "-1.0", "0", "0"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.prices) != 0 || len(c.sizes) != 0 {
		t.Fatalf("got prices=%v sizes=%v, want no callbacks for the no-quote sentinel", c.prices, c.sizes)
	}
}

func TestTickPriceUnknownTypeIsDecodeError(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	err := decode.Dispatch(wire.InTickPrice, fields("6", "0", "1", "999", "1.0", "0", "0"), c)
	if err == nil {
		t.Fatal("expected a decode error for an unrecognized price tick type")
	}
	var de *decode.DecodeError
	if !asDecodeError(err, &de) || de.Kind != decode.UnexpectedData {
		t.Fatalf("err = %v, want a DecodeError{Kind: UnexpectedData}", err)
	}
}

func TestTickSizeLiveBid(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	// tickSize shares decodeGenericTick's shape: two filler fields, reqId,
	// tickType, value.
	if err := decode.Dispatch(wire.InTickSize, fields("2", "0", "1", "0", "150"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.sizes) != 1 || c.sizes[0].Quote != model.Live || c.sizes[0].Kind != model.SizeBid || c.sizes[0].Size != 150 {
		t.Fatalf("sizes = %+v, want one live bid size=150", c.sizes)
	}
}

func TestTickGenericVolumeLiveAndDelayed(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	if err := decode.Dispatch(wire.InTickGeneric, fields("2", "0", "1", "8", "12345"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if err := decode.Dispatch(wire.InTickGeneric, fields("2", "0", "1", "74", "6789"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.volumes) != 2 || c.volumes[0].Quote != model.Live || c.volumes[1].Quote != model.Delayed {
		t.Fatalf("volumes = %+v, want one live then one delayed", c.volumes)
	}
}

func TestTickGenericTradeCount(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	if err := decode.Dispatch(wire.InTickGeneric, fields("2", "0", "1", "54", "42"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.tradeCounts) != 1 || c.tradeCounts[0] != 42 {
		t.Fatalf("tradeCounts = %v, want [42]", c.tradeCounts)
	}
}

func TestTickGenericUnknownTypeIsDecodeError(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	err := decode.Dispatch(wire.InTickGeneric, fields("2", "0", "1", "999", "1"), c)
	if err == nil {
		t.Fatal("expected a decode error for an unrecognized generic tick type")
	}
	var de *decode.DecodeError
	if !asDecodeError(err, &de) || de.Kind != decode.UnexpectedData {
		t.Fatalf("err = %v, want a DecodeError{Kind: UnexpectedData}", err)
	}
}

func TestTickStringQuotingExchanges(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	// tickType=33 is the ask-side quoting exchange set.
	if err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "33", "KQNZ"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.quotingExchanges) != 1 {
		t.Fatalf("quotingExchanges = %+v, want exactly one", c.quotingExchanges)
	}
	ev := c.quotingExchanges[0]
	if ev.Kind != model.QuotingExchangesAsk || ev.Exchanges != "KQNZ" {
		t.Fatalf("got %+v, want ask-side KQNZ", ev)
	}
}

func TestTickStringLastTimestamp(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	if err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "45", "1700000000"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.timestamps) != 1 {
		t.Fatalf("timestamps = %+v, want exactly one", c.timestamps)
	}
	ev := c.timestamps[0]
	if ev.Quote != model.Live || ev.Kind != model.TimestampLast {
		t.Fatalf("got %+v, want a live last-trade timestamp", ev)
	}
	if want := time.Unix(1700000000, 0).UTC(); !ev.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", ev.Time, want)
	}
}

func TestTickStringRegulatoryTimestampIsMilliseconds(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	if err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "85", "1700000000500"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.timestamps) != 1 {
		t.Fatalf("timestamps = %+v, want exactly one", c.timestamps)
	}
	ev := c.timestamps[0]
	if ev.Kind != model.TimestampRegulatory {
		t.Fatalf("Kind = %v, want TimestampRegulatory", ev.Kind)
	}
	if want := time.UnixMilli(1700000000500).UTC(); !ev.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", ev.Time, want)
	}
}

func TestTickStringZeroTimestampDiscarded(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	if err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "45", "0"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.timestamps) != 0 {
		t.Fatalf("timestamps = %+v, want none for a zero-valued timestamp", c.timestamps)
	}
}

func TestTickStringRealTimeVolume(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	composite := "701.28;1;1348075471;67854;701.46;true"
	if err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "48", composite), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.rtVolumes) != 1 {
		t.Fatalf("rtVolumes = %+v, want exactly one", c.rtVolumes)
	}
	ev := c.rtVolumes[0]
	if ev.Kind != model.RealTimeVolumeAll || ev.LastPrice != 701.28 || ev.LastSize != 1 {
		t.Fatalf("got %+v, want all-trades 1@701.28", ev)
	}
	if ev.DayVolume != 67854 || ev.WAP != 701.46 || !ev.SingleMarketMaker {
		t.Fatalf("got %+v, want dayVolume=67854 wap=701.46 singleMM", ev)
	}
	if want := time.Unix(1348075471, 0).UTC(); !ev.LastTime.Equal(want) {
		t.Fatalf("LastTime = %v, want %v", ev.LastTime, want)
	}
}

func TestTickStringRealTimeVolumeTruncatedIsDecodeError(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "48", "701.28;1"), c)
	if err == nil {
		t.Fatal("expected a decode error for a truncated RT volume composite")
	}
	var de *decode.DecodeError
	if !asDecodeError(err, &de) || de.Kind != decode.MissingData {
		t.Fatalf("err = %v, want a DecodeError{Kind: MissingData}", err)
	}
}

func TestTickStringDividends(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	if err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "59", "0.83,0.92,20240215,0.23"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.dividends) != 1 {
		t.Fatalf("dividends = %+v, want exactly one", c.dividends)
	}
	ev := c.dividends[0]
	if ev.TrailingYear != 0.83 || ev.ForwardYear != 0.92 || ev.NextPrice != 0.23 {
		t.Fatalf("got %+v, want trailing=0.83 forward=0.92 next=0.23", ev)
	}
	if ev.NextDate.Year() != 2024 || ev.NextDate.Month() != time.February || ev.NextDate.Day() != 15 {
		t.Fatalf("NextDate = %v, want 2024-02-15", ev.NextDate)
	}
}

func TestTickStringNews(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	if err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "62", "halts lifted"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.news) != 1 || c.news[0] != "halts lifted" {
		t.Fatalf("news = %v, want [halts lifted]", c.news)
	}
}

func TestTickStringUnknownTypeIsDecodeError(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	err := decode.Dispatch(wire.InTickString, fields("6", "0", "1", "999", "whatever"), c)
	if err == nil {
		t.Fatal("expected a decode error for an unrecognized string tick type")
	}
	var de *decode.DecodeError
	if !asDecodeError(err, &de) || de.Kind != decode.UnexpectedData {
		t.Fatalf("err = %v, want a DecodeError{Kind: UnexpectedData}", err)
	}
}

func TestTickOptionComputationClassifiesSourceAndQuote(t *testing.T) {
	t.Parallel()
	c := &tickCapture{}
	// tickType=81 is the delayed ask computation; base=1 is price-based.
	// Greeks: iv, delta, price, pvDividend, gamma, vega, theta, underlying,
	// with -1 and -2 as the not-computed / not-yet-computed sentinels.
	tok := fields("1", "9", "81", "1", "0.25", "-1", "3.5", "-2", "0.04", "0.11", "-0.02", "180.0")
	if err := decode.Dispatch(wire.InTickOptionComputation, tok, c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.computations) != 1 {
		t.Fatalf("computations = %+v, want exactly one", c.computations)
	}
	ev := c.computations[0]
	if ev.Quote != model.Delayed || ev.Source != model.CalcSourceAsk || ev.Base != model.CalcPriceBased {
		t.Fatalf("got %+v, want delayed price-based ask", ev)
	}
	if v, ok := ev.ImpliedVolatility.Value(); !ok || v != 0.25 {
		t.Fatalf("ImpliedVolatility = %+v, want Computed(0.25)", ev.ImpliedVolatility)
	}
	if _, ok := ev.Delta.Value(); ok {
		t.Fatalf("Delta = %+v, want not computed for the -1 sentinel", ev.Delta)
	}
}

func asDecodeError(err error, target **decode.DecodeError) bool {
	de, ok := err.(*decode.DecodeError)
	if !ok {
		return false
	}
	*target = de
	return true
}
