package ibkr

import (
	"context"
	"fmt"

	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// ReqHistoricalBar requests one batch of historical OHLC bars. duration
// (e.g. "1 W") and barSize (e.g. "15 mins") follow the gateway's documented
// duration-string grammar; this client does not parse or validate their
// contents beyond the whatToShow/security-type compatibility check below.
// keepUpToDate requests the streaming variant (the reply keeps arriving as
// UpdatingHistoricalBar until CancelHistoricalData).
func (s *Session) ReqHistoricalBar(ctx context.Context, contract model.Contract, endDateTime, duration, barSize string, whatToShow model.DataType, useRTH bool, keepUpToDate bool) (model.RequestID, error) {
	if !model.Contains(model.ValidDataTypes(contract.SecType), whatToShow) {
		return 0, newError(ErrValidation, fmt.Sprintf("data type %s is not valid for security type %s", whatToShow, contract.SecType))
	}

	kind := pendingHistoricalBar
	if keepUpToDate {
		kind = pendingHistoricalBarStream
	}
	id := s.register(kind, whatToShow)

	enc := wire.NewEncoder().PutCode(wire.OutReqHistoricalData).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	enc.Put(wire.String(endDateTime)).
		Put(wire.String(barSize)).
		Put(wire.String(duration)).
		Put(wire.Bool(useRTH)).
		Put(wire.Enum(string(whatToShow))).
		Put(wire.Bool(keepUpToDate)).
		Put(wire.Omit()) // chartOptions: unused

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelHistoricalData ends a keepUpToDate-true ReqHistoricalBar stream.
func (s *Session) CancelHistoricalData(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelHistoricalData, wire.Int(int64(id)))
}

// ReqRealTimeBars subscribes to 5-second trade/bid/ask bars.
func (s *Session) ReqRealTimeBars(ctx context.Context, contract model.Contract, barSize int, whatToShow model.DataType, useRTH bool) (model.RequestID, error) {
	id := s.register(pendingHistoricalBarStream, whatToShow)
	enc := wire.NewEncoder().PutCode(wire.OutReqRealTimeBars).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	enc.Put(wire.Int(int64(barSize))).
		Put(wire.Enum(string(whatToShow))).
		Put(wire.Bool(useRTH)).
		Put(wire.Omit()) // realTimeBarsOptions: unused

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelRealTimeBars ends a ReqRealTimeBars subscription.
func (s *Session) CancelRealTimeBars(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelRealTimeBars, wire.Int(int64(id)))
}

// maxHistoricalTicks is the documented cap on a single ReqHistoricalTicks
// request's NumberOfTicks.
const maxHistoricalTicks = 1000

// ReqHistoricalTicks requests a one-shot batch of tick-level history.
// whatToShow selects which of MIDPOINT/BID_ASK/TRADES shape the reply
// takes; the matching HistoricalTicks* callback fires exactly once.
func (s *Session) ReqHistoricalTicks(ctx context.Context, contract model.Contract, startDateTime, endDateTime string, numberOfTicks int, whatToShow model.DataType, useRTH bool, ignoreSize bool) (model.RequestID, error) {
	if numberOfTicks > maxHistoricalTicks {
		return 0, newError(ErrValidation, fmt.Sprintf("numberOfTicks %d exceeds max %d", numberOfTicks, maxHistoricalTicks))
	}

	id := s.register(pendingHistoricalTicks, whatToShow)
	enc := wire.NewEncoder().PutCode(wire.OutReqHistoricalTicks).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	enc.Put(wire.String(startDateTime)).
		Put(wire.String(endDateTime)).
		Put(wire.Int(int64(numberOfTicks))).
		Put(wire.Enum(string(whatToShow))).
		Put(wire.Bool(useRTH)).
		Put(wire.Bool(ignoreSize)).
		Put(wire.Omit()) // miscOptions: unused

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// ReqHeadTimestamp asks for the earliest available bar timestamp for a
// contract/whatToShow pair.
func (s *Session) ReqHeadTimestamp(ctx context.Context, contract model.Contract, whatToShow model.DataType, useRTH bool) (model.RequestID, error) {
	id := s.register(pendingHeadTimestamp, whatToShow)
	enc := wire.NewEncoder().PutCode(wire.OutReqHeadTimestamp).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	enc.Put(wire.Bool(useRTH)).
		Put(wire.Enum(string(whatToShow))).
		Put(wire.Int(2)) // formatDate=2: epoch seconds, the only format this client parses

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelHeadTimestamp cancels an in-flight ReqHeadTimestamp.
func (s *Session) CancelHeadTimestamp(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelHeadTimestamp, wire.Int(int64(id)))
}

// ReqHistogramData requests a price/size histogram over the given period
// (e.g. "3 days").
func (s *Session) ReqHistogramData(ctx context.Context, contract model.Contract, useRTH bool, period string) (model.RequestID, error) {
	id := s.register(pendingHistogram, "")
	enc := wire.NewEncoder().PutCode(wire.OutReqHistogramData).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	enc.Put(wire.Bool(useRTH)).
		Put(wire.String(period))

	if err := s.sendEncoded(ctx, enc); err != nil {
		s.retire(id)
		return 0, err
	}
	return id, nil
}

// CancelHistogramData cancels an in-flight ReqHistogramData.
func (s *Session) CancelHistogramData(ctx context.Context, id model.RequestID) error {
	if !s.retireIfKnown(id) {
		return nil
	}
	return s.send(ctx, wire.OutCancelHistogramData, wire.Int(int64(id)))
}
