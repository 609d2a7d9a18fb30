// Package console renders a live Session event stream in a terminal UI:
// a Bubble Tea list/inspect pair fed by gateway callbacks.
package console

import (
	"fmt"
	"time"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
)

// Kind labels an Event for the list's Kind column.
type Kind string

const (
	KindSystem    Kind = "system"
	KindError     Kind = "error"
	KindTick      Kind = "tick"
	KindDepth     Kind = "depth"
	KindBar       Kind = "bar"
	KindOrder     Kind = "order"
	KindExecution Kind = "exec"
	KindAccount   Kind = "account"
	KindPosition  Kind = "position"
	KindPnL       Kind = "pnl"
	KindContract  Kind = "contract"
	KindScanner   Kind = "scanner"
	KindNews      Kind = "news"
)

// Event is one row in the console's event list.
type Event struct {
	Time      time.Time
	Kind      Kind
	RequestID model.RequestID
	Summary   string
	Detail    any
}

// FeedWrapper turns Session callbacks into Events pushed onto a channel.
// It embeds NoOpWrapper and overrides only the methods worth surfacing in
// the console; unhandled callbacks (commission reports, option greeks,
// and so on) fall through to NoOpWrapper and produce no Event.
type FeedWrapper struct {
	callback.NoOpWrapper
	events chan<- Event
	Drops  int64 // incremented when the console's display buffer is full
}

// NewFeedWrapper returns a FeedWrapper pushing onto events. events should
// be the same channel passed to New; the caller owns closing it.
func NewFeedWrapper(events chan<- Event) *FeedWrapper {
	return &FeedWrapper{events: events}
}

func (f *FeedWrapper) push(e Event) {
	e.Time = time.Now()
	select {
	case f.events <- e:
	default:
		f.Drops++
	}
}

func (f *FeedWrapper) Error(reqID model.RequestID, code int64, msg string, advancedOrderRejectJSON string) {
	f.push(Event{
		Kind:      KindError,
		RequestID: reqID,
		Summary:   fmt.Sprintf("%d: %s", code, msg),
		Detail: struct {
			Code                    int64
			Message                 string
			AdvancedOrderRejectJSON string `json:"advancedOrderRejectJson,omitempty"`
		}{code, msg, advancedOrderRejectJSON},
	})
}

func (f *FeedWrapper) CurrentTime(t time.Time) {
	f.push(Event{Kind: KindSystem, Summary: "currentTime " + t.Format(time.RFC3339), Detail: t})
}

func (f *FeedWrapper) ManagedAccounts(accounts []string) {
	f.push(Event{Kind: KindSystem, Summary: fmt.Sprintf("managedAccounts %v", accounts), Detail: accounts})
}

func (f *FeedWrapper) NextValidID(orderID model.OrderID) {
	f.push(Event{Kind: KindSystem, Summary: fmt.Sprintf("nextValidId %d", orderID), Detail: orderID})
}

func (f *FeedWrapper) PriceData(ev model.PriceEvent) {
	f.push(Event{Kind: KindTick, RequestID: ev.RequestID, Summary: fmt.Sprintf("price(%s) %v", ev.Quote, ev.Price), Detail: ev})
}

func (f *FeedWrapper) SizeData(ev model.SizeEvent) {
	f.push(Event{Kind: KindTick, RequestID: ev.RequestID, Summary: fmt.Sprintf("size(%s) %v", ev.Quote, ev.Size), Detail: ev})
}

func (f *FeedWrapper) RealTimeVolume(ev model.RealTimeVolumeEvent) {
	f.push(Event{Kind: KindTick, RequestID: ev.RequestID, Summary: fmt.Sprintf("rtVolume %v@%v", ev.LastSize, ev.LastPrice), Detail: ev})
}

func (f *FeedWrapper) Dividends(ev model.DividendsEvent) {
	f.push(Event{Kind: KindTick, RequestID: ev.RequestID, Summary: fmt.Sprintf("dividends trailing=%v forward=%v", ev.TrailingYear, ev.ForwardYear), Detail: ev})
}

func (f *FeedWrapper) News(reqID model.RequestID, article string) {
	f.push(Event{Kind: KindNews, RequestID: reqID, Summary: article, Detail: article})
}

func (f *FeedWrapper) TickByTick(ev model.TickByTickEvent) {
	f.push(Event{Kind: KindTick, RequestID: ev.RequestID, Summary: fmt.Sprintf("tickByTick @%v", ev.Price), Detail: ev})
}

func (f *FeedWrapper) MarketDepth(ev model.DepthUpdateEvent) {
	f.push(Event{Kind: KindDepth, RequestID: ev.RequestID, Summary: fmt.Sprintf("depth row=%d op=%v", ev.Entry.Row.Position, ev.Operation), Detail: ev})
}

func (f *FeedWrapper) HistoricalBars(reqID model.RequestID, bars []model.Bar) {
	f.push(Event{Kind: KindBar, RequestID: reqID, Summary: fmt.Sprintf("historicalBars (%d)", len(bars)), Detail: bars})
}

func (f *FeedWrapper) RealTimeBar(reqID model.RequestID, bar model.Bar) {
	f.push(Event{Kind: KindBar, RequestID: reqID, Summary: fmt.Sprintf("realTimeBar close=%v", bar.Core.Close), Detail: bar})
}

func (f *FeedWrapper) OrderStatus(status model.OrderStatus) {
	f.push(Event{Kind: KindOrder, Summary: fmt.Sprintf("order %d: %s filled=%v", status.OrderID, status.Status, status.Filled), Detail: status})
}

func (f *FeedWrapper) OpenOrder(order model.OpenOrder) {
	f.push(Event{Kind: KindOrder, Summary: fmt.Sprintf("openOrder %d %s", order.OrderID, order.Contract.Symbol), Detail: order})
}

func (f *FeedWrapper) Execution(reqID model.RequestID, exec model.Execution) {
	f.push(Event{Kind: KindExecution, RequestID: reqID, Summary: fmt.Sprintf("exec %s %v@%v", exec.Side, exec.Shares, exec.Price), Detail: exec})
}

func (f *FeedWrapper) AccountValue(v model.AccountValue) {
	f.push(Event{Kind: KindAccount, Summary: fmt.Sprintf("%s=%s", v.Key, v.Value), Detail: v})
}

func (f *FeedWrapper) PortfolioValue(v model.PortfolioValue) {
	f.push(Event{Kind: KindAccount, Summary: fmt.Sprintf("portfolio %s qty=%v", v.Contract.Symbol, v.Position), Detail: v})
}

func (f *FeedWrapper) PositionValue(v model.PositionValue) {
	f.push(Event{Kind: KindPosition, Summary: fmt.Sprintf("position %s qty=%v", v.Contract.Symbol, v.Position), Detail: v})
}

func (f *FeedWrapper) AccountSummary(reqID model.RequestID, account string, v model.AccountValue) {
	f.push(Event{Kind: KindAccount, RequestID: reqID, Summary: fmt.Sprintf("%s %s=%s", account, v.Key, v.Value), Detail: v})
}

func (f *FeedWrapper) PnL(ev model.PnL) {
	f.push(Event{Kind: KindPnL, RequestID: ev.RequestID, Summary: fmt.Sprintf("pnl daily=%v unrealized=%v", ev.DailyPnL, ev.UnrealizedPnL), Detail: ev})
}

func (f *FeedWrapper) PnLSingle(ev model.PnLSingle) {
	f.push(Event{Kind: KindPnL, RequestID: ev.RequestID, Summary: fmt.Sprintf("pnlSingle daily=%v", ev.DailyPnL), Detail: ev})
}

func (f *FeedWrapper) ContractDetails(reqID model.RequestID, contract model.Contract) {
	f.push(Event{Kind: KindContract, RequestID: reqID, Summary: fmt.Sprintf("contract %s %s", contract.Symbol, contract.Exchange), Detail: contract})
}

func (f *FeedWrapper) ScannerData(reqID model.RequestID, rows []model.ScannerResultRow) {
	f.push(Event{Kind: KindScanner, RequestID: reqID, Summary: fmt.Sprintf("scannerData (%d rows)", len(rows)), Detail: rows})
}

func (f *FeedWrapper) NewsBulletin(msgID int64, msgType int64, message string, origExchange string) {
	f.push(Event{Kind: KindNews, Summary: message, Detail: struct {
		MsgID        int64
		MsgType      int64
		Message      string
		OrigExchange string
	}{msgID, msgType, message, origExchange}})
}
