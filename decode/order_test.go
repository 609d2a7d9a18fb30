package decode_test

import (
	"testing"
	"time"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/decode"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// executionCapture records the Execution events under test.
type executionCapture struct {
	callback.NoOpWrapper

	executions []model.Execution
}

func (c *executionCapture) Execution(_ model.RequestID, ex model.Execution) {
	c.executions = append(c.executions, ex)
}

// executionFields builds the 26-field executionData body shared by both
// tests below, substituting datetime for whatever the caller wants to
// exercise.
func executionFields(datetime string) *wire.Tokens {
	return fields(
		"9",            // version
		"1",            // reqId
		"100",          // orderId
		"12345",        // contractId
		"AAPL",         // symbol
		"STK",          // secType
		"",             // expiry
		"0",            // strike
		"",             // right
		"",             // multiplier
		"SMART",        // exchange
		"USD",          // currency
		"AAPL",         // localSymbol
		"NMS",          // tradingClass
		"0000000001",   // execId
		datetime,       // datetime
		"DU1234567",    // account
		"SMART",        // exchange (execution)
		"BOT",          // side
		"100",          // quantity
		"150.25",       // price
		"987654321",    // permId
		"0",            // clientId
		"0",            // liquidation
		"100",          // cumQty
		"150.25",       // avgPrice
	)
}

func TestExecutionDataParsesTimezonedTimestamp(t *testing.T) {
	t.Parallel()
	c := &executionCapture{}
	if err := decode.Dispatch(wire.InExecutionData, executionFields("20231215 14:30:00 US/Eastern"), c); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(c.executions) != 1 {
		t.Fatalf("executions = %+v, want exactly one", c.executions)
	}
	loc, err := time.LoadLocation("US/Eastern")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	want := time.Date(2023, time.December, 15, 14, 30, 0, 0, loc)
	if !c.executions[0].Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", c.executions[0].Time, want)
	}
}

func TestExecutionDataMalformedTimestampIsDecodeError(t *testing.T) {
	t.Parallel()
	c := &executionCapture{}
	err := decode.Dispatch(wire.InExecutionData, executionFields("not-a-timestamp"), c)
	if err == nil {
		t.Fatal("expected a decode error for a malformed execution datetime")
	}
	de, ok := err.(*decode.DecodeError)
	if !ok || de.Kind != decode.ParseDateTime {
		t.Fatalf("err = %v, want a DecodeError{Kind: ParseDateTime}", err)
	}
	if len(c.executions) != 0 {
		t.Fatalf("executions = %+v, want none on decode failure", c.executions)
	}
}
