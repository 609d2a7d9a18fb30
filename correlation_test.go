package ibkr

import (
	"testing"

	"github.com/wvietor/ibkr-go/model"
)

func TestCorrelationTablePutGet(t *testing.T) {
	t.Parallel()
	c := newCorrelationTable()
	id := model.RequestID(42)
	c.put(id, pendingRequest{kind: pendingMarketData, dataType: model.DataTrades})

	got, ok := c.get(id)
	if !ok {
		t.Fatal("expected entry present after put")
	}
	if got.kind != pendingMarketData || got.dataType != model.DataTrades {
		t.Fatalf("got %+v, want kind=%v dataType=%v", got, pendingMarketData, model.DataTrades)
	}
}

func TestCorrelationTableRemoveIdempotent(t *testing.T) {
	t.Parallel()
	c := newCorrelationTable()
	id := model.RequestID(7)
	c.put(id, pendingRequest{kind: pendingPnl})

	if ok := c.remove(id); !ok {
		t.Fatal("first remove should report the id was present")
	}
	if ok := c.remove(id); ok {
		t.Fatal("second remove of the same id should report false, not error or panic")
	}
	if _, ok := c.get(id); ok {
		t.Fatal("entry should be gone after remove")
	}
}

func TestCorrelationTableRemoveUnknownIsFalse(t *testing.T) {
	t.Parallel()
	c := newCorrelationTable()
	if ok := c.remove(model.RequestID(999)); ok {
		t.Fatal("removing an id that was never put should report false")
	}
}
