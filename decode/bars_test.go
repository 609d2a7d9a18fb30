package decode_test

import (
	"testing"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/decode"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

type barsCapture struct {
	callback.NoOpWrapper

	bars []model.Bar
}

func (c *barsCapture) HistoricalBars(_ model.RequestID, bars []model.Bar) {
	c.bars = bars
}

// TestHistoricalDataClassifiesBarRows: a historicalData reply with two bar
// rows, one with a real trade count and one with volume, WAP, and trade
// count all zero, classified Trade and Ordinary respectively.
func TestHistoricalDataClassifiesBarRows(t *testing.T) {
	t.Parallel()
	c := &barsCapture{}
	tok := fields(
		"3",            // version
		"9",            // reqId
		"20231201",     // start date (skipped)
		"20231208",     // end date (skipped)
		"2",            // count
		"20231201 09:30:00", "100.0", "101.0", "99.5", "100.5", "1200", "100.2", "15", // trade bar
		"20231201 09:31:00", "100.5", "100.5", "100.5", "100.5", "0", "0", "0", // ordinary bar
	)
	if err := decode.Dispatch(wire.InHistoricalData, tok, c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.bars) != 2 {
		t.Fatalf("bars = %+v, want exactly two", c.bars)
	}
	if c.bars[0].Kind != model.BarTrade {
		t.Fatalf("bars[0].Kind = %v, want BarTrade", c.bars[0].Kind)
	}
	if c.bars[1].Kind != model.BarOrdinary {
		t.Fatalf("bars[1].Kind = %v, want BarOrdinary", c.bars[1].Kind)
	}
}
