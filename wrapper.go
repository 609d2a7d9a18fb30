package ibkr

import (
	"fmt"
	"time"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
)

// sessionWrapper sits between the decoder and the caller's Wrapper. It
// embeds the caller's Wrapper so every method is promoted unchanged, and
// overrides only the handful that this package must observe itself: to
// resolve a one-shot contract-details request, and to retire correlation
// table entries on the terminal events the table tracks (a streaming
// request's correlation entry lives until a terminal event or an explicit
// cancel). Exactly one of these methods runs at a time, called from the
// session's single dispatch loop.
type sessionWrapper struct {
	callback.Wrapper
	sess *Session
}

// VerifyContractQuery satisfies decode.ContractVerifier: it confirms a
// contractData reply's echoed contract_id and routing exchange agree with
// the pending query recorded when ReqContractDetails emitted reqID. A
// query with no recorded contract id (the
// caller asked for a bare symbol/exchange lookup rather than a specific
// contract) has nothing to confirm.
func (w *sessionWrapper) VerifyContractQuery(reqID model.RequestID, contractID int64, exchange string) error {
	p, ok := w.sess.corr.get(reqID)
	if !ok || p.contractID == 0 {
		return nil
	}
	if p.contractID != contractID || (p.exchange != "" && p.exchange != exchange) {
		return fmt.Errorf("contract details reply for request %d does not match the pending query (got contractId=%d exchange=%q, want contractId=%d exchange=%q)",
			reqID, contractID, exchange, p.contractID, p.exchange)
	}
	return nil
}

func (w *sessionWrapper) ContractDetails(reqID model.RequestID, c model.Contract) {
	if ch, ok := w.sess.pendingContracts.Load(reqID); ok {
		select {
		case ch.(chan model.Contract) <- c:
		default:
		}
	}
	w.Wrapper.ContractDetails(reqID, c)
}

func (w *sessionWrapper) ContractDetailsEnd(reqID model.RequestID) {
	if ch, ok := w.sess.pendingContracts.LoadAndDelete(reqID); ok {
		close(ch.(chan model.Contract))
	}
	w.sess.retire(reqID)
	w.Wrapper.ContractDetailsEnd(reqID)
}

func (w *sessionWrapper) AccountSummaryEnd(reqID model.RequestID) {
	w.sess.retire(reqID)
	w.Wrapper.AccountSummaryEnd(reqID)
}

func (w *sessionWrapper) ScannerDataEnd(reqID model.RequestID) {
	w.sess.retire(reqID)
	w.Wrapper.ScannerDataEnd(reqID)
}

func (w *sessionWrapper) TickSnapshotEnd(reqID model.RequestID) {
	w.sess.retire(reqID)
	w.Wrapper.TickSnapshotEnd(reqID)
}

func (w *sessionWrapper) HistoricalBars(reqID model.RequestID, bars []model.Bar) {
	// A keepUpToDate request keeps streaming after its initial batch, so
	// its entry stays until CancelHistoricalData.
	if p, ok := w.sess.corr.get(reqID); !ok || p.kind != pendingHistoricalBarStream {
		w.sess.retire(reqID)
	}
	w.Wrapper.HistoricalBars(reqID, bars)
}

func (w *sessionWrapper) HistoricalTicksMidpoint(reqID model.RequestID, ticks []model.HistoricalTickMidpoint) {
	w.sess.retire(reqID)
	w.Wrapper.HistoricalTicksMidpoint(reqID, ticks)
}

func (w *sessionWrapper) HistoricalTicksBidAsk(reqID model.RequestID, ticks []model.HistoricalTickBidAsk) {
	w.sess.retire(reqID)
	w.Wrapper.HistoricalTicksBidAsk(reqID, ticks)
}

func (w *sessionWrapper) HistoricalTicksLast(reqID model.RequestID, ticks []model.HistoricalTickLast) {
	w.sess.retire(reqID)
	w.Wrapper.HistoricalTicksLast(reqID, ticks)
}

func (w *sessionWrapper) HeadTimestamp(reqID model.RequestID, t time.Time) {
	w.sess.retire(reqID)
	w.Wrapper.HeadTimestamp(reqID, t)
}

func (w *sessionWrapper) HistogramData(reqID model.RequestID, entries []model.HistogramEntry) {
	w.sess.retire(reqID)
	w.Wrapper.HistogramData(reqID, entries)
}
