package ibkr

import (
	"sync"

	"github.com/wvietor/ibkr-go/model"
)

// pendingKind tags what a live request id is waiting on, enough for the
// decoder-adjacent bookkeeping this package does at terminal-event time
// (e.g. deciding a streaming subscription has ended).
type pendingKind int

const (
	pendingMarketData pendingKind = iota
	pendingMarketDepth
	pendingHistoricalBar
	pendingHistoricalBarStream
	pendingHistoricalTicks
	pendingHeadTimestamp
	pendingHistogram
	pendingAccountSummary
	pendingAccountUpdatesMulti
	pendingPositions
	pendingPnl
	pendingPnlSingle
	pendingScanner
	pendingTickByTick
	pendingContractDetails
)

// pendingRequest is one correlation table entry: the kind of reply expected
// and, where the decoder needs it, a type-level refinement (e.g. which
// data-type variant a historical-bar request expects back).
type pendingRequest struct {
	kind       pendingKind
	dataType   model.DataType
	contractID int64
	exchange   string
}

// correlationTable maps a live request id to what it is waiting on. Guarded
// by an RWMutex: writes happen on request emission, cancellation, and
// terminal-event retirement; reads happen on every dispatched frame that
// carries a request id.
type correlationTable struct {
	mu      sync.RWMutex
	entries map[model.RequestID]pendingRequest
}

func newCorrelationTable() *correlationTable {
	return &correlationTable{entries: make(map[model.RequestID]pendingRequest)}
}

func (c *correlationTable) put(id model.RequestID, p pendingRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = p
}

func (c *correlationTable) get(id model.RequestID) (pendingRequest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.entries[id]
	return p, ok
}

// remove retires an entry. It reports whether the id was present, so
// Cancel* callers can stay idempotent (cancelling an unknown id sends no
// frame).
func (c *correlationTable) remove(id model.RequestID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	delete(c.entries, id)
	return ok
}
