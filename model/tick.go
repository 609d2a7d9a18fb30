package model

import "time"

// Quote distinguishes a live real-time tick from its 15-minute-delayed
// counterpart. Many tick kinds are duplicated across this axis (tick_type N
// is the live variant, a higher-numbered tick_type is its delayed twin)
// rather than carrying an explicit flag, so the decoder folds that
// distinction into this field instead of exposing the raw code twice.
type Quote int

const (
	Live Quote = iota
	Delayed
)

func (q Quote) String() string {
	if q == Delayed {
		return "delayed"
	}
	return "live"
}

// PriceKind is the classified shape of a tickPrice event, spanning both the
// live (1,2,4,6,7,9,14) and delayed (66,67,68,72,73,75,76) tick_type
// ranges; Quote carries which.
type PriceKind int

const (
	PriceBid PriceKind = iota
	PriceAsk
	PriceLast
	PriceHigh
	PriceLow
	PriceClose
	PriceOpen
	PriceLastRthTrade
)

// PriceEvent is a classified price tick.
type PriceEvent struct {
	RequestID RequestID
	Quote     Quote
	Kind      PriceKind
	Price     float64
}

// SizeKind is the classified shape of a paired size tick (bid/ask/last),
// delivered either alongside a PriceEvent or standalone from tickSize.
type SizeKind int

const (
	SizeBid SizeKind = iota
	SizeAsk
	SizeLast
)

// SizeEvent is a classified size tick.
type SizeEvent struct {
	RequestID RequestID
	Quote     Quote
	Kind      SizeKind
	Size      float64
}

// ExtremePeriod is the lookback window of an ExtremeValueEvent (tick_type
// 15-20).
type ExtremePeriod int

const (
	ThirteenWeek ExtremePeriod = iota
	TwentySixWeek
	FiftyTwoWeek
)

// ExtremeBound distinguishes the low and high end of an ExtremePeriod.
type ExtremeBound int

const (
	ExtremeLow ExtremeBound = iota
	ExtremeHigh
)

// ExtremeValueEvent is a 13/26/52-week high or low tick.
type ExtremeValueEvent struct {
	RequestID RequestID
	Period    ExtremePeriod
	Bound     ExtremeBound
	Price     float64
}

// AuctionKind distinguishes the four auction-data tick flavors (tick_type
// 35 from tickPrice, 34/36/61 from the generic tick table).
type AuctionKind int

const (
	AuctionPrice AuctionKind = iota
	AuctionVolume
	AuctionImbalance
	AuctionRegulatory
)

// AuctionEvent is one auction-data tick.
type AuctionEvent struct {
	RequestID RequestID
	Kind      AuctionKind
	Value     float64
}

// MarkPriceKind distinguishes the standard and slow mark-price ticks
// (tick_type 37 and 79).
type MarkPriceKind int

const (
	MarkPriceStandard MarkPriceKind = iota
	MarkPriceSlow
)

// MarkPriceEvent is a mark-price tick.
type MarkPriceEvent struct {
	RequestID RequestID
	Kind      MarkPriceKind
	Price     float64
}

// YieldKind distinguishes bid/ask/last yield ticks (tick_type 50-52).
type YieldKind int

const (
	YieldBid YieldKind = iota
	YieldAsk
	YieldLast
)

// YieldEvent is a yield tick.
type YieldEvent struct {
	RequestID RequestID
	Kind      YieldKind
	Value     float64
}

// EtfNavKind enumerates the eight ETF NAV ticks (tick_type 92-99).
type EtfNavKind int

const (
	EtfNavClose EtfNavKind = iota
	EtfNavPriorClose
	EtfNavBid
	EtfNavAsk
	EtfNavLast
	EtfNavFrozenLast
	EtfNavHigh
	EtfNavLow
)

// EtfNavEvent is an ETF net-asset-value tick.
type EtfNavEvent struct {
	RequestID RequestID
	Kind      EtfNavKind
	Value     float64
}

// VolumeEvent is a total-volume tick (tick_type 8 live, 74 delayed).
type VolumeEvent struct {
	RequestID RequestID
	Quote     Quote
	Value     float64
}

// SummaryVolumeKind distinguishes the rolling-window average-volume ticks
// (tick_type 21, 63, 64, 65).
type SummaryVolumeKind int

const (
	SummaryVolumeNinetyDayAverage SummaryVolumeKind = iota
	SummaryVolumeThreeMinutes
	SummaryVolumeFiveMinutes
	SummaryVolumeTenMinutes
)

// SummaryVolumeEvent is a rolling-average-volume tick.
type SummaryVolumeEvent struct {
	RequestID RequestID
	Kind      SummaryVolumeKind
	Value     float64
}

// VolatilityKind distinguishes the three volatility ticks (tick_type 23,
// 24, 58).
type VolatilityKind int

const (
	VolatilitySecOptionHistorical VolatilityKind = iota
	VolatilitySecOptionImplied
	VolatilityRealTimeHistorical
)

// VolatilityEvent is a volatility tick.
type VolatilityEvent struct {
	RequestID RequestID
	Kind      VolatilityKind
	Value     float64
}

// SecOptionVolumeKind distinguishes option call/put/average volume ticks
// (tick_type 29, 30, 87).
type SecOptionVolumeKind int

const (
	SecOptionVolumeCall SecOptionVolumeKind = iota
	SecOptionVolumePut
	SecOptionVolumeAverage
)

// SecOptionVolumeEvent is an option-volume tick.
type SecOptionVolumeEvent struct {
	RequestID RequestID
	Kind      SecOptionVolumeKind
	Value     float64
}

// OpenInterestKind distinguishes option call/put and future open-interest
// ticks (tick_type 27, 28, 86).
type OpenInterestKind int

const (
	OpenInterestSecOptionCall OpenInterestKind = iota
	OpenInterestSecOptionPut
	OpenInterestSecFuture
)

// OpenInterestEvent is an open-interest tick.
type OpenInterestEvent struct {
	RequestID RequestID
	Kind      OpenInterestKind
	Value     float64
}

// PriceFactorKind distinguishes the index-future-premium and bond-factor
// ticks (tick_type 31, 60).
type PriceFactorKind int

const (
	PriceFactorIndexFuturePremium PriceFactorKind = iota
	PriceFactorBondMultiplier
)

// PriceFactorEvent is a price-factor tick.
type PriceFactorEvent struct {
	RequestID RequestID
	Kind      PriceFactorKind
	Value     float64
}

// AccessibilityKind distinguishes shortable, halted, and shortable-shares
// ticks (tick_type 46, 49, 89).
type AccessibilityKind int

const (
	AccessibilityShortable AccessibilityKind = iota
	AccessibilityHalted
	AccessibilityShortableShares
)

// AccessibilityEvent is a shortability/halt tick.
type AccessibilityEvent struct {
	RequestID RequestID
	Kind      AccessibilityKind
	Value     float64
}

// RateKind distinguishes trade-rate and volume-rate ticks (tick_type 55,
// 56).
type RateKind int

const (
	RateTrade RateKind = iota
	RateVolume
)

// RateEvent is a trade/volume rate tick.
type RateEvent struct {
	RequestID RequestID
	Kind      RateKind
	Value     float64
}

// IpoKind distinguishes estimated and final IPO price ticks (tick_type
// 101, 102).
type IpoKind int

const (
	IpoEstimated IpoKind = iota
	IpoFinal
)

// IpoEvent is an IPO price tick.
type IpoEvent struct {
	RequestID RequestID
	Kind      IpoKind
	Value     float64
}

// QuotingExchangesKind distinguishes which side of the book a quoting-
// exchange character set (tick_type 32, 33, 84) describes.
type QuotingExchangesKind int

const (
	QuotingExchangesBid QuotingExchangesKind = iota
	QuotingExchangesAsk
	QuotingExchangesLast
)

// QuotingExchangesEvent carries the set of single-character exchange codes
// currently quoting a side of the book, delivered as a tickString payload.
type QuotingExchangesEvent struct {
	RequestID RequestID
	Kind      QuotingExchangesKind
	Exchanges string
}

// TimestampKind distinguishes a last-trade timestamp from a regulatory one.
type TimestampKind int

const (
	TimestampLast TimestampKind = iota
	TimestampRegulatory
)

// TimestampEvent is a trade-time tick (tick_type 45, 85, 88). The wire
// carries seconds for last-trade times and milliseconds for regulatory
// ones; both arrive here as UTC.
type TimestampEvent struct {
	RequestID RequestID
	Quote     Quote
	Kind      TimestampKind
	Time      time.Time
}

// RealTimeVolumeKind distinguishes the all-trades RT volume stream from
// the trades-only one (tick_type 48 vs 77).
type RealTimeVolumeKind int

const (
	RealTimeVolumeAll RealTimeVolumeKind = iota
	RealTimeVolumeTrades
)

// RealTimeVolumeEvent is the decomposed semicolon-delimited real-time
// volume composite carried in a tickString payload.
type RealTimeVolumeEvent struct {
	RequestID         RequestID
	Kind              RealTimeVolumeKind
	LastPrice         float64
	LastSize          float64
	LastTime          time.Time
	DayVolume         float64
	WAP               float64
	SingleMarketMaker bool
}

// DividendsEvent is the decomposed comma-delimited dividends composite
// (tick_type 59): trailing and forward twelve-month totals plus the next
// expected dividend's date and amount.
type DividendsEvent struct {
	RequestID    RequestID
	TrailingYear float64
	ForwardYear  float64
	NextDate     time.Time
	NextPrice    float64
}

// CalculationResult models the gateway's three-state option calculation
// outcome: computed, deferred because the server hasn't finished yet, or
// never computed at all. A plain float64 cannot distinguish "0.0" from
// "not computed", which the gateway's sentinel values otherwise conflate.
type CalculationResult struct {
	state calcState
	value float64
}

type calcState int

const (
	calcNotComputed calcState = iota
	calcNotYetComputed
	calcComputed
)

// NotComputed reports a field the server has explicitly marked as
// inapplicable for this contract.
func NotComputed() CalculationResult { return CalculationResult{state: calcNotComputed} }

// NotYetComputed reports a field the server intends to compute but has not
// yet delivered.
func NotYetComputed() CalculationResult { return CalculationResult{state: calcNotYetComputed} }

// Computed wraps a delivered value.
func Computed(v float64) CalculationResult { return CalculationResult{state: calcComputed, value: v} }

// Value returns the computed value and true, or (0, false) if this result
// is not yet or never computed.
func (c CalculationResult) Value() (float64, bool) {
	return c.value, c.state == calcComputed
}

// OptionCalculationBase reports whether an option computation was run
// against returns or prices, the gateway's leading discriminator on every
// tickOptionComputation payload.
type OptionCalculationBase int

const (
	CalcReturnBased OptionCalculationBase = iota
	CalcPriceBased
)

// OptionCalculationSource is which quote the Greeks were computed from.
type OptionCalculationSource int

const (
	CalcSourceBid OptionCalculationSource = iota
	CalcSourceAsk
	CalcSourceLast
	CalcSourceModel
	CalcSourceCustom
)

// TickOptionComputation is the decomposed payload of a
// tickOptionComputation message, tagged live/delayed and by source quote
// per the tick_type ranges (10-13 and 53 live, 80-83 delayed).
type TickOptionComputation struct {
	RequestID         RequestID
	Quote             Quote
	Source            OptionCalculationSource
	Base              OptionCalculationBase
	ImpliedVolatility CalculationResult
	Delta             CalculationResult
	OptionPrice       CalculationResult
	PvDividend        CalculationResult
	Gamma             CalculationResult
	Vega              CalculationResult
	Theta             CalculationResult
	UnderlyingPrice   CalculationResult
}

// TickByTickKind distinguishes the four tickByTick stream flavors.
type TickByTickKind int

const (
	TickByTickLast TickByTickKind = iota
	TickByTickAllLast
	TickByTickBidAsk
	TickByTickMidPoint
)

// TickByTickEvent is one update from a ReqTickByTickData subscription.
type TickByTickEvent struct {
	RequestID         RequestID
	Kind              TickByTickKind
	Time              int64
	Price             float64
	Size              float64
	BidPrice          float64
	AskPrice          float64
	BidSize           float64
	AskSize           float64
	Exchange          string
	SpecialConditions string
}
