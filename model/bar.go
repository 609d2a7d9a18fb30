package model

// BarCore is the price/volume data every bar carries regardless of kind.
type BarCore struct {
	Time  string
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Bar is a single historical or real-time OHLC bar. Trade-backed bars carry
// volume/WAP/trade-count data; bars built from quote midpoints do not, and
// the gateway signals which kind it sent by whether those three fields are
// all positive.
type Bar struct {
	Core       BarCore
	Kind       BarKind
	Volume     float64
	WAP        float64
	TradeCount int64
}

// BarKind distinguishes a trade-backed bar from a bid/ask/midpoint bar.
type BarKind int

const (
	BarOrdinary BarKind = iota
	BarTrade
)

// ClassifyBar decides BarKind the way the gateway's historical data stream
// implies it: volume, WAP, and trade count all positive means a real trade
// bar; anything else is an ordinary (quote-derived) bar.
func ClassifyBar(volume, wap float64, tradeCount int64) BarKind {
	if volume > 0 && wap > 0 && tradeCount > 0 {
		return BarTrade
	}
	return BarOrdinary
}

// HistoricalTickMidpoint is one row of a ReqHistoricalTicks (midpoint) reply.
type HistoricalTickMidpoint struct {
	Time  int64
	Price float64
	Size  float64
}

// HistoricalTickBidAsk is one row of a ReqHistoricalTicks (bid/ask) reply.
type HistoricalTickBidAsk struct {
	Time        int64
	BidPrice    float64
	AskPrice    float64
	BidSize     float64
	AskSize     float64
	AskPastHigh bool
	BidPastLow  bool
}

// HistoricalTickLast is one row of a ReqHistoricalTicks (trades) reply.
type HistoricalTickLast struct {
	Time              int64
	Price             float64
	Size              float64
	Exchange          string
	SpecialConditions string
	PastLimit         bool
	Unreported        bool
}

// HistogramEntry is one price/size bucket of a ReqHistogramData reply.
type HistogramEntry struct {
	Price float64
	Size  int64
}
