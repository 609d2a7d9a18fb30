package decode_test

import (
	"testing"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/decode"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

type depthCapture struct {
	callback.NoOpWrapper

	updates []model.DepthUpdateEvent
}

func (c *depthCapture) MarketDepth(ev model.DepthUpdateEvent) {
	c.updates = append(c.updates, ev)
}

func TestMarketDepthL2MarketMakerRow(t *testing.T) {
	t.Parallel()
	c := &depthCapture{}
	// version filler, reqId, position, marketMaker, operation=0 (insert),
	// side=1 (bid), price, size, isSmart=0.
	tok := fields("3", "0", "7", "2", "NSDQ", "0", "1", "99.5", "300", "0")
	if err := decode.Dispatch(wire.InMarketDepthL2, tok, c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.updates) != 1 {
		t.Fatalf("updates = %+v, want exactly one", c.updates)
	}
	ev := c.updates[0]
	if ev.Origin != model.DepthOriginMarketMaker || ev.MarketMaker != "NSDQ" {
		t.Fatalf("got %+v, want market-maker NSDQ", ev)
	}
	if ev.Operation != model.DepthInsert || ev.Entry.Side != model.DepthBid {
		t.Fatalf("got %+v, want a bid-side insert", ev)
	}
	if ev.Entry.Row.Position != 2 || ev.Entry.Row.Price != 99.5 || ev.Entry.Row.Size != 300 {
		t.Fatalf("Row = %+v, want {2 99.5 300}", ev.Entry.Row)
	}
}

func TestMarketDepthL2SmartDepthRow(t *testing.T) {
	t.Parallel()
	c := &depthCapture{}
	tok := fields("3", "0", "7", "0", "ISLAND", "1", "0", "100.25", "50", "1")
	if err := decode.Dispatch(wire.InMarketDepthL2, tok, c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	ev := c.updates[0]
	if ev.Origin != model.DepthOriginExchange || ev.Exchange != "ISLAND" || !ev.IsSmartDepth {
		t.Fatalf("got %+v, want a smart-depth row attributed to ISLAND", ev)
	}
	if ev.Operation != model.DepthUpdate || ev.Entry.Side != model.DepthAsk {
		t.Fatalf("got %+v, want an ask-side update", ev)
	}
}

func TestMarketDepthL2BadMarketMakerIsDecodeError(t *testing.T) {
	t.Parallel()
	c := &depthCapture{}
	tok := fields("3", "0", "7", "0", "TOOLONGID", "0", "1", "99.5", "300", "0")
	err := decode.Dispatch(wire.InMarketDepthL2, tok, c)
	if err == nil {
		t.Fatal("expected a decode error for a non-4-character market maker id")
	}
	var de *decode.DecodeError
	if !asDecodeError(err, &de) || de.Kind != decode.ParseField {
		t.Fatalf("err = %v, want a DecodeError{Kind: ParseField}", err)
	}
	if len(c.updates) != 0 {
		t.Fatalf("updates = %+v, want none after a decode error", c.updates)
	}
}
