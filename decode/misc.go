package decode

import (
	"strings"
	"time"

	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// unixSeconds converts a gateway epoch-seconds field to a UTC timestamp.
// An out-of-range value is a decode error, not a clamp.
func unixSeconds(secs int64) (time.Time, error) {
	t := time.Unix(secs, 0).UTC()
	if t.Year() < 1970 || t.Year() > 9999 {
		return time.Time{}, &DecodeError{Kind: ParseDateTime, Message: "time out of range"}
	}
	return t, nil
}

// currentTime decodes a currentTime message: a single Unix epoch-seconds
// field, no version prefix (the gateway never versioned this one).
func currentTime(tok *wire.Tokens, w callback.Wrapper) error {
	secs, err := tok.Int64("time")
	if err != nil {
		return wrapField(MissingData, "time", err)
	}
	t, err := unixSeconds(secs)
	if err != nil {
		return err
	}
	w.CurrentTime(t)
	return nil
}

// managedAccts decodes a managedAccts message: a version field followed by
// a slash-delimited account list, one of the handshake's two unsolicited
// replies.
func managedAccts(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	raw, err := tok.String("accountsList")
	if err != nil {
		return wrapField(MissingData, "accountsList", err)
	}
	var accounts []string
	for _, a := range strings.Split(raw, "/") {
		a = strings.TrimSpace(a)
		if a != "" {
			accounts = append(accounts, a)
		}
	}
	w.ManagedAccounts(accounts)
	return nil
}

// nextValidID decodes a nextValidId message: a version field followed by
// the order id seed the handshake is waiting on to transition
// Handshaking -> Active.
func nextValidID(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	orderID, err := tok.Int64("orderId")
	if err != nil {
		return wrapField(MissingData, "orderId", err)
	}
	w.NextValidID(model.OrderID(orderID))
	return nil
}

// errMsg decodes an err-msg message: version, the request id this error
// pertains to (NoID for a global error), an error code, a message, and an
// optional advanced-order-reject JSON blob present on newer protocol
// versions only.
func errMsg(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	code, err := tok.Int64("errorCode")
	if err != nil {
		return wrapField(MissingData, "errorCode", err)
	}
	msg, err := tok.String("errorMsg")
	if err != nil {
		return wrapField(MissingData, "errorMsg", err)
	}
	var advancedJSON string
	if tok.Len() > 0 {
		advancedJSON, _ = tok.String("advancedOrderRejectJson")
	}
	w.Error(model.RequestID(reqID), code, msg, advancedJSON)
	return nil
}

// newsBulletins decodes a newsBulletins message: message id, type, body,
// and the originating exchange, an unsolicited stream with no request id
// of its own.
func newsBulletins(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	msgID, err := tok.Int64("msgId")
	if err != nil {
		return wrapField(MissingData, "msgId", err)
	}
	msgType, err := tok.Int64("msgType")
	if err != nil {
		return wrapField(MissingData, "msgType", err)
	}
	message, err := tok.String("message")
	if err != nil {
		return wrapField(MissingData, "message", err)
	}
	origExchange, err := tok.String("origExchange")
	if err != nil {
		return wrapField(MissingData, "origExchange", err)
	}
	w.NewsBulletin(msgID, msgType, message, origExchange)
	return nil
}

// scannerParameters decodes a scannerParameters message: the entire payload
// is one field, an XML document the gateway does not version-prefix.
func scannerParameters(tok *wire.Tokens, w callback.Wrapper) error {
	xml, err := tok.String("xml")
	if err != nil {
		return wrapField(MissingData, "xml", err)
	}
	w.ScannerParameters(model.ScannerParameter{XML: xml})
	return nil
}

// scannerData decodes a scannerData message: version, request id, row
// count, then per row: rank, the contract block, distance, benchmark,
// projection, and a legs string.
func scannerData(tok *wire.Tokens, w callback.Wrapper) error {
	tok.Skip(1)
	reqID, err := tok.Int64("reqId")
	if err != nil {
		return wrapField(MissingData, "reqId", err)
	}
	count, err := tok.Int64("numberOfElements")
	if err != nil {
		return wrapField(MissingData, "numberOfElements", err)
	}

	rows := make([]model.ScannerResultRow, 0, count)
	for i := int64(0); i < count; i++ {
		rank, err := tok.Int64("rank")
		if err != nil {
			return wrapField(MissingData, "rank", err)
		}
		contract, err := decodeContract(tok)
		if err != nil {
			return err
		}
		distance, err := tok.String("distance")
		if err != nil {
			return wrapField(MissingData, "distance", err)
		}
		benchmark, err := tok.String("benchmark")
		if err != nil {
			return wrapField(MissingData, "benchmark", err)
		}
		projection, err := tok.String("projection")
		if err != nil {
			return wrapField(MissingData, "projection", err)
		}
		legsStr, err := tok.String("legsStr")
		if err != nil {
			return wrapField(MissingData, "legsStr", err)
		}
		rows = append(rows, model.ScannerResultRow{
			Rank:       int32(rank),
			Contract:   contract,
			Distance:   distance,
			Benchmark:  benchmark,
			Projection: projection,
			LegsStr:    legsStr,
		})
	}
	w.ScannerData(model.RequestID(reqID), rows)
	// The gateway sends a scanner subscription's entire row set in one
	// frame; there is no separate end-of-scan message, so this decode
	// itself is the terminal event for the subscription's request id.
	w.ScannerDataEnd(model.RequestID(reqID))
	return nil
}
