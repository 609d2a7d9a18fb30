// Package decode turns one incoming frame's fields into a call on a
// callback.Wrapper. Each message kind gets its own function; Dispatch is
// the single entry point a Session's read loop calls per frame.
package decode

import (
	"fmt"
	"log"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/wire"
)

// Dispatch decodes one frame and invokes the matching Wrapper method.
// Unrecognized codes are logged and ignored, matching the gateway's own
// tolerance for protocol additions a given client version doesn't know
// about yet. A decode error is returned to the caller, which logs it and
// continues; it never terminates the session.
func Dispatch(code wire.InCode, tok *wire.Tokens, w callback.Wrapper) error {
	switch code {
	case wire.InTickPrice:
		return tickPrice(tok, w)
	case wire.InTickSize:
		return tickSize(tok, w)
	case wire.InTickGeneric:
		return tickGeneric(tok, w)
	case wire.InTickString:
		return tickString(tok, w)
	case wire.InTickOptionComputation:
		return tickOptionComputation(tok, w)
	case wire.InTickByTick:
		return tickByTick(tok, w)
	case wire.InTickSnapshotEnd:
		return tickSnapshotEnd(tok, w)

	case wire.InMarketDepth:
		return marketDepth(tok, w)
	case wire.InMarketDepthL2:
		return marketDepthL2(tok, w)

	case wire.InHistoricalData:
		return historicalData(tok, w)
	case wire.InHistoricalDataUpdate:
		return updatingHistoricalBar(tok, w)
	case wire.InRealTimeBars:
		return realTimeBars(tok, w)
	case wire.InHeadTimestamp:
		return headTimestamp(tok, w)
	case wire.InHistogramData:
		return histogramData(tok, w)
	case wire.InHistoricalTicks:
		return historicalTicksMidpoint(tok, w)
	case wire.InHistoricalTicksBidAsk:
		return historicalTicksBidAsk(tok, w)
	case wire.InHistoricalTicksLast:
		return historicalTicksLast(tok, w)

	case wire.InAcctValue:
		return acctValue(tok, w)
	case wire.InPortfolioValue:
		return portfolioValue(tok, w)
	case wire.InAcctUpdateTime:
		return acctUpdateTime(tok, w)
	case wire.InAcctDownloadEnd:
		return acctDownloadEnd(tok, w)
	case wire.InPositionData:
		return positionData(tok, w)
	case wire.InPositionEnd:
		return positionEnd(tok, w)
	case wire.InAccountSummary:
		return accountSummary(tok, w)
	case wire.InAccountSummaryEnd:
		return accountSummaryEnd(tok, w)
	case wire.InPnl:
		return pnl(tok, w)
	case wire.InPnlSingle:
		return pnlSingle(tok, w)

	case wire.InOrderStatus:
		return orderStatus(tok, w)
	case wire.InOpenOrder:
		return openOrder(tok, w)
	case wire.InOpenOrderEnd:
		return openOrderEnd(tok, w)
	case wire.InExecutionData:
		return executionData(tok, w)
	case wire.InExecutionDataEnd:
		return nil
	case wire.InCommissionReport:
		return commissionReport(tok, w)

	case wire.InContractData:
		return contractData(tok, w)
	case wire.InContractDataEnd:
		return contractDataEnd(tok, w)
	case wire.InBondContractData:
		return contractData(tok, w)

	case wire.InCurrentTime:
		return currentTime(tok, w)
	case wire.InManagedAccts:
		return managedAccts(tok, w)
	case wire.InNextValidID:
		return nextValidID(tok, w)
	case wire.InErrMsg:
		return errMsg(tok, w)
	case wire.InNewsBulletins:
		return newsBulletins(tok, w)
	case wire.InScannerParameters:
		return scannerParameters(tok, w)
	case wire.InScannerData:
		return scannerData(tok, w)

	default:
		log.Printf("decode: unhandled message code %d", code)
		return nil
	}
}

// DecodeError is the non-fatal error family this package returns: a
// problem with one message's fields, never the connection itself.
type DecodeError struct {
	Kind    DecodeErrorKind
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode: %s: %s", e.Kind, e.Message)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// DecodeErrorKind is the closed taxonomy of ways a single message can fail
// to decode.
type DecodeErrorKind string

const (
	MissingData     DecodeErrorKind = "missing_data"
	ParseField      DecodeErrorKind = "parse_field"
	UnexpectedData  DecodeErrorKind = "unexpected_data"
	ParseAttribute  DecodeErrorKind = "parse_attribute"
	ParseDateTime   DecodeErrorKind = "parse_datetime"
)

func wrapField(kind DecodeErrorKind, msg string, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Kind: kind, Message: msg, Cause: err}
}
