// Package callback defines the event-dispatch interface a Session drives:
// one method per incoming message kind, built around this module's
// concrete model types.
package callback

import (
	"time"

	"github.com/wvietor/ibkr-go/model"
)

// Wrapper receives every event a Session decodes. Implementations should
// embed NoOpWrapper and override only the methods they care about.
type Wrapper interface {
	// Error is called for every server-side error reply. reqID is NoID
	// when the error is not associated with a specific request.
	Error(reqID model.RequestID, code int64, msg string, advancedOrderRejectJSON string)

	CurrentTime(t time.Time)
	ManagedAccounts(accounts []string)
	NextValidID(orderID model.OrderID)

	PriceData(ev model.PriceEvent)
	SizeData(ev model.SizeEvent)
	ExtremeData(ev model.ExtremeValueEvent)
	Auction(ev model.AuctionEvent)
	MarkPrice(ev model.MarkPriceEvent)
	YieldData(ev model.YieldEvent)
	EtfNav(ev model.EtfNavEvent)
	Volume(ev model.VolumeEvent)
	SummaryVolume(ev model.SummaryVolumeEvent)
	Volatility(ev model.VolatilityEvent)
	SecOptionVolume(ev model.SecOptionVolumeEvent)
	OpenInterest(ev model.OpenInterestEvent)
	PriceFactor(ev model.PriceFactorEvent)
	Accessibility(ev model.AccessibilityEvent)
	TradeCount(reqID model.RequestID, value float64)
	Rate(ev model.RateEvent)
	Ipo(ev model.IpoEvent)
	QuotingExchanges(ev model.QuotingExchangesEvent)
	Timestamp(ev model.TimestampEvent)
	RealTimeVolume(ev model.RealTimeVolumeEvent)
	Dividends(ev model.DividendsEvent)
	// News delivers the free-form news-tick text (tick_type 62), distinct
	// from the broadcast NewsBulletin stream below.
	News(reqID model.RequestID, article string)
	TickOptionComputation(ev model.TickOptionComputation)
	TickByTick(ev model.TickByTickEvent)
	TickSnapshotEnd(reqID model.RequestID)

	MarketDepth(ev model.DepthUpdateEvent)

	HistoricalBars(reqID model.RequestID, bars []model.Bar)
	UpdatingHistoricalBar(reqID model.RequestID, bar model.Bar)
	RealTimeBar(reqID model.RequestID, bar model.Bar)
	HeadTimestamp(reqID model.RequestID, t time.Time)
	HistogramData(reqID model.RequestID, entries []model.HistogramEntry)
	HistoricalTicksMidpoint(reqID model.RequestID, ticks []model.HistoricalTickMidpoint)
	HistoricalTicksBidAsk(reqID model.RequestID, ticks []model.HistoricalTickBidAsk)
	HistoricalTicksLast(reqID model.RequestID, ticks []model.HistoricalTickLast)

	AccountValue(v model.AccountValue)
	AccountValueTime(account string, t time.Time)
	AccountDownloadEnd(account string)
	PortfolioValue(v model.PortfolioValue)
	PositionValue(v model.PositionValue)
	PositionEnd()
	AccountSummary(reqID model.RequestID, account string, v model.AccountValue)
	AccountSummaryEnd(reqID model.RequestID)
	PnL(ev model.PnL)
	PnLSingle(ev model.PnLSingle)

	OrderStatus(status model.OrderStatus)
	OpenOrder(order model.OpenOrder)
	OpenOrderEnd()
	Execution(reqID model.RequestID, exec model.Execution)
	CommissionReport(report model.CommissionReport)

	ContractDetails(reqID model.RequestID, contract model.Contract)
	ContractDetailsEnd(reqID model.RequestID)

	ScannerParameters(params model.ScannerParameter)
	ScannerData(reqID model.RequestID, rows []model.ScannerResultRow)
	ScannerDataEnd(reqID model.RequestID)

	NewsBulletin(msgID int64, msgType int64, message string, origExchange string)
}

// Recurring is invoked from the session's dispatch loop on a 50ms ticker,
// interleaved with frame dispatch via select, so a caller-supplied
// periodic action (e.g. flushing a metrics counter) can run without a
// second goroutine.
type Recurring interface {
	Cycle()
}

// NoOpRecurring satisfies Recurring by doing nothing each cycle.
type NoOpRecurring struct{}

func (NoOpRecurring) Cycle() {}
