package ibkr_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	ibkr "github.com/wvietor/ibkr-go"
	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// scenarioCapture is a callback.Wrapper recording whichever event a
// scenario test cares about, plus a channel signaled once it fires so the
// test goroutine can wait without polling.
type scenarioCapture struct {
	callback.NoOpWrapper

	mu sync.Mutex

	currentTime    time.Time
	gotCurrentTime chan struct{}

	depth    model.DepthUpdateEvent
	gotDepth chan struct{}

	priceCalls int
	gotPrice   chan struct{}
}

func newScenarioCapture() *scenarioCapture {
	return &scenarioCapture{
		gotCurrentTime: make(chan struct{}, 1),
		gotDepth:       make(chan struct{}, 1),
		gotPrice:       make(chan struct{}, 1),
	}
}

func (c *scenarioCapture) CurrentTime(t time.Time) {
	c.mu.Lock()
	c.currentTime = t
	c.mu.Unlock()
	select {
	case c.gotCurrentTime <- struct{}{}:
	default:
	}
}

func (c *scenarioCapture) MarketDepth(ev model.DepthUpdateEvent) {
	c.mu.Lock()
	c.depth = ev
	c.mu.Unlock()
	select {
	case c.gotDepth <- struct{}{}:
	default:
	}
}

func (c *scenarioCapture) PriceData(model.PriceEvent) {
	c.mu.Lock()
	c.priceCalls++
	c.mu.Unlock()
	select {
	case c.gotPrice <- struct{}{}:
	default:
	}
}

// connectForScenario dials a Session against a fake server goroutine that
// first plays the handshake, then runs serverBody with the raw connection
// for whatever frames the scenario needs to push or read afterward.
func connectForScenario(t *testing.T, c *scenarioCapture, serverBody func(conn net.Conn)) *ibkr.Session {
	t.Helper()
	lis := listen(t)

	go func() {
		conn, err := lis.Accept()
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()
		acceptHandshake(t, conn, "DU1234567", 1)
		serverBody(conn)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess, err := ibkr.Connect(ctx, dialConfig(t, lis), func(*ibkr.Session, context.CancelFunc) callback.Wrapper {
		return c
	}, nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = sess.Close() })
	return sess
}

// TestScenarioCurrentTime: ReqCurrentTime elicits a currentTime frame and
// the callback fires once with the parsed UTC time.
func TestScenarioCurrentTime(t *testing.T) {
	t.Parallel()
	c := newScenarioCapture()
	const epoch = int64(1700000000)

	sess := connectForScenario(t, c, func(conn net.Conn) {
		if _, err := wire.ReadFrame(conn); err != nil { // reqCurrentTime
			t.Errorf("read reqCurrentTime: %v", err)
			return
		}
		body := wire.EncodeMessage(49, wire.Int(epoch)) // InCurrentTime
		if err := wire.WriteFrame(conn, body); err != nil {
			t.Errorf("write currentTime: %v", err)
		}
		<-time.After(500 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sess.ReqCurrentTime(ctx); err != nil {
		t.Fatalf("ReqCurrentTime: %v", err)
	}

	select {
	case <-c.gotCurrentTime:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for CurrentTime callback")
	}
	c.mu.Lock()
	got := c.currentTime
	c.mu.Unlock()
	if want := time.Unix(epoch, 0).UTC(); !got.Equal(want) {
		t.Fatalf("currentTime = %v, want %v", got, want)
	}
}

// TestScenarioMarketDepthUpdate: a single marketDepth frame for an
// ask-side update at position 3 maps to the expected DepthUpdateEvent.
func TestScenarioMarketDepthUpdate(t *testing.T) {
	t.Parallel()
	c := newScenarioCapture()
	const reqID = int64(77)

	sess := connectForScenario(t, c, func(conn net.Conn) {
		if _, err := wire.ReadFrame(conn); err != nil { // reqMktDepth
			t.Errorf("read reqMktDepth: %v", err)
			return
		}
		body := wire.EncodeMessage(12, // InMarketDepth
			wire.Int(3), // version
			wire.Int(reqID),
			wire.Int(3),   // position
			wire.Int(1),   // operation: update
			wire.Int(0),   // side: ask
			wire.Float(100.25),
			wire.Float(50),
		)
		if err := wire.WriteFrame(conn, body); err != nil {
			t.Errorf("write marketDepth: %v", err)
		}
		<-time.After(500 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := sess.ReqMarketDepth(ctx, model.Contract{Symbol: "AAPL", SecType: model.SecStock, Exchange: "SMART", Currency: "USD"}, 5, false); err != nil {
		t.Fatalf("ReqMarketDepth: %v", err)
	}

	select {
	case <-c.gotDepth:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for MarketDepth callback")
	}
	c.mu.Lock()
	ev := c.depth
	c.mu.Unlock()

	if ev.RequestID != model.RequestID(reqID) {
		t.Fatalf("RequestID = %v, want %v", ev.RequestID, reqID)
	}
	if ev.Operation != model.DepthUpdate {
		t.Fatalf("Operation = %v, want DepthUpdate", ev.Operation)
	}
	if ev.Entry.Side != model.DepthAsk {
		t.Fatalf("Side = %v, want DepthAsk", ev.Entry.Side)
	}
	if ev.Entry.Row.Position != 3 || ev.Entry.Row.Price != 100.25 || ev.Entry.Row.Size != 50 {
		t.Fatalf("Row = %+v, want {3 100.25 50}", ev.Entry.Row)
	}
}

// tickPriceFrame builds an InTickPrice body: two version-era filler
// fields, request id, tick type, price, an optional size, and the
// trailing attribute mask, matching tickPrice's field order.
func tickPriceFrame(reqID, tickType int64, price float64, size int64) []byte {
	return wire.EncodeMessage(1,
		wire.Int(6), wire.Int(0), // filler fields tickPrice skips
		wire.Int(reqID),
		wire.Int(tickType),
		wire.Float(price),
		wire.Int(size),
		wire.Int(0), // attrMask
	)
}

// TestScenarioTickPriceSentinelDiscarded: a tickPrice frame carrying the
// "no quote" sentinel price fires no callback at all.
func TestScenarioTickPriceSentinelDiscarded(t *testing.T) {
	t.Parallel()
	c := newScenarioCapture()

	sess := connectForScenario(t, c, func(conn net.Conn) {
		if _, err := wire.ReadFrame(conn); err != nil { // reqMktData
			t.Errorf("read reqMktData: %v", err)
			return
		}
		if err := wire.WriteFrame(conn, tickPriceFrame(1, 1, -1.0, 0)); err != nil {
			t.Errorf("write tickPrice: %v", err)
			return
		}
		// A well-formed tick afterward proves the stream is still in sync
		// and the sentinel frame was discarded, not mis-parsed.
		if err := wire.WriteFrame(conn, tickPriceFrame(1, 1, 101.5, 200)); err != nil {
			t.Errorf("write follow-up tickPrice: %v", err)
		}
		<-time.After(500 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := sess.ReqMarketData(ctx, model.Contract{Symbol: "AAPL", SecType: model.SecStock, Exchange: "SMART", Currency: "USD"}, "", false, false); err != nil {
		t.Fatalf("ReqMarketData: %v", err)
	}

	select {
	case <-c.gotPrice:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the follow-up PriceData callback")
	}
	c.mu.Lock()
	calls := c.priceCalls
	c.mu.Unlock()
	if calls != 1 {
		t.Fatalf("PriceData called %d times, want exactly 1 (sentinel frame must not fire a callback)", calls)
	}
}

// TestScenarioCancelMarketDataRetiresCorrelation: cancelling a market data
// subscription emits the cancel frame and retires the correlation entry.
func TestScenarioCancelMarketDataRetiresCorrelation(t *testing.T) {
	t.Parallel()
	c := newScenarioCapture()
	serverDone := make(chan struct{})

	sess := connectForScenario(t, c, func(conn net.Conn) {
		defer close(serverDone)
		if _, err := wire.ReadFrame(conn); err != nil { // reqMktData
			t.Errorf("read reqMktData: %v", err)
			return
		}
		if err := wire.WriteFrame(conn, tickPriceFrame(1, 1, 101.5, 200)); err != nil {
			t.Errorf("write tickPrice: %v", err)
			return
		}
		cancelFields, err := wire.ReadFrame(conn) // cancelMktData
		if err != nil {
			t.Errorf("read cancelMktData: %v", err)
			return
		}
		if len(cancelFields) < 1 || string(cancelFields[0]) != "2" {
			t.Errorf("cancel frame code = %q, want \"2\"", cancelFields[0])
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	id, err := sess.ReqMarketData(ctx, model.Contract{Symbol: "AAPL", SecType: model.SecStock, Exchange: "SMART", Currency: "USD"}, "", false, false)
	if err != nil {
		t.Fatalf("ReqMarketData: %v", err)
	}

	select {
	case <-c.gotPrice:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the initial PriceData callback")
	}

	if err := sess.CancelMarketData(ctx, id); err != nil {
		t.Fatalf("CancelMarketData: %v", err)
	}

	select {
	case <-serverDone:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the server to observe the cancel frame")
	}
}
