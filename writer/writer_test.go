package writer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/wvietor/ibkr-go/ratelimit"
	"github.com/wvietor/ibkr-go/wire"
)

func TestSendWritesFramedMessage(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, nil)

	if err := w.Send(context.Background(), wire.OutReqCurrentTime); err != nil {
		t.Fatalf("Send: %v", err)
	}

	fields, err := wire.ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if string(fields[0]) != "49" {
		t.Fatalf("got code %q, want 49", fields[0])
	}
}

func TestSendPreambleWritesRawBytes(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, nil)

	if err := w.SendPreamble([]byte("API\x00")); err != nil {
		t.Fatalf("SendPreamble: %v", err)
	}
	if buf.String() != "API\x00" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestSendRespectsRateLimit(t *testing.T) {
	var buf bytes.Buffer
	lim := ratelimit.New(1, time.Hour)
	w := New(&buf, lim)

	if err := w.Send(context.Background(), wire.OutReqCurrentTime); err != nil {
		t.Fatalf("first send: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Send(ctx, wire.OutReqCurrentTime); err == nil {
		t.Fatal("expected second send to be blocked by the rate limiter and then canceled")
	}
}
