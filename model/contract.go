package model

// SecurityType is the kind of tradable instrument a Contract describes.
type SecurityType string

const (
	SecStock     SecurityType = "STK"
	SecOption    SecurityType = "OPT"
	SecFuture    SecurityType = "FUT"
	SecForex     SecurityType = "CASH"
	SecIndex     SecurityType = "IND"
	SecCommodity SecurityType = "CMDTY"
	SecCrypto    SecurityType = "CRYPTO"
	SecBond      SecurityType = "BOND"
	SecFutureOpt SecurityType = "FOP"
	SecCombo     SecurityType = "BAG"
)

// Right distinguishes calls from puts for SecOption/SecFutureOpt contracts.
type Right string

const (
	RightCall Right = "C"
	RightPut  Right = "P"
	RightNone Right = ""
)

// Contract identifies a tradable instrument on the wire. Not every field
// applies to every SecurityType; the gateway simply leaves the irrelevant
// ones blank.
type Contract struct {
	ContractID      int64
	Symbol          string
	SecType         SecurityType
	Expiry          string // YYYYMM or YYYYMMDD, blank when not applicable
	Strike          float64
	Right           Right
	Multiplier      string
	Exchange        string
	PrimaryExchange Primary
	Currency        Currency
	LocalSymbol     string
	TradingClass    string
	FIGI            FIGI
}

// FIGI is an opaque Financial Instrument Global Identifier, surfaced on
// contract envelopes where the gateway provides one. It is never validated
// or decomposed here; that belongs to whatever system minted it.
type FIGI string

// ValidDataTypes reports which historical/market data types a security of
// the given kind can be requested with. The session consults this table
// before writing a request, so an incompatible combination fails at the
// caller instead of coming back as a server error frame.
func ValidDataTypes(sec SecurityType) []DataType {
	switch sec {
	case SecForex:
		return []DataType{DataMidpoint, DataBidAsk, DataHistoricalVolatility, DataOptionImpliedVolatility}
	case SecOption, SecFutureOpt:
		return []DataType{DataTrades, DataMidpoint, DataBidAsk, DataOptionImpliedVolatility}
	default:
		return []DataType{DataTrades, DataMidpoint, DataBidAsk, DataHistoricalVolatility, DataOptionImpliedVolatility, DataAdjustedLast}
	}
}

// DataType enumerates the historical/streaming data kinds a request may ask
// for (the gateway's "whatToShow" field).
type DataType string

const (
	DataTrades                  DataType = "TRADES"
	DataMidpoint                DataType = "MIDPOINT"
	DataBid                     DataType = "BID"
	DataAsk                     DataType = "ASK"
	DataBidAsk                  DataType = "BID_ASK"
	DataAdjustedLast            DataType = "ADJUSTED_LAST"
	DataHistoricalVolatility    DataType = "HISTORICAL_VOLATILITY"
	DataOptionImpliedVolatility DataType = "OPTION_IMPLIED_VOLATILITY"
	DataSchedule                DataType = "SCHEDULE"
)

// Contains reports whether dt is among types.
func Contains(types []DataType, dt DataType) bool {
	for _, t := range types {
		if t == dt {
			return true
		}
	}
	return false
}
