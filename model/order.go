package model

// OrderType is the gateway's order type code (LMT, MKT, STP, and so on).
type OrderType string

const (
	OrderMarket        OrderType = "MKT"
	OrderLimit         OrderType = "LMT"
	OrderStop          OrderType = "STP"
	OrderStopLimit     OrderType = "STP LMT"
	OrderMarketOnClose OrderType = "MOC"
	OrderLimitOnClose  OrderType = "LOC"
	OrderTrail         OrderType = "TRAIL"
)

// TimeInForce is the gateway's TIF code.
type TimeInForce string

const (
	TIFDay               TimeInForce = "DAY"
	TIFGoodTilCanceled   TimeInForce = "GTC"
	TIFImmediateOrCancel TimeInForce = "IOC"
	TIFGoodTilDate       TimeInForce = "GTD"
	TIFFillOrKill        TimeInForce = "FOK"
)

// Origin distinguishes a customer order from a firm order.
type Origin int

const (
	OriginCustomer Origin = 0
	OriginFirm     Origin = 1
)

// Order is the set of place-order fields this client actually exposes to
// callers. The gateway's place-order message carries roughly 120
// positional fields in total; the great majority are institutional,
// deprecated, or algo-specific knobs that this client does not validate or
// interpret (per the explicit Non-goal of not implementing order business
// rules) — it serializes exactly the fields named here, in a fixed field
// order, and writes nothing for the message's other fields.
type Order struct {
	Action        OrderSide
	TotalQuantity float64
	OrderType     OrderType
	LimitPrice    float64 // sent as UnsetDouble for market orders, as given otherwise
	AuxPrice      float64 // stop/trail trigger price; sent as UnsetDouble unless OrderType is stop, stop-limit, or trail
	TimeInForce   TimeInForce
	OCAGroup      string
	Account       string
	Origin        Origin
	OrderRef      string
	Transmit      bool
	ParentID      OrderID
	OutsideRTH    bool
	Hidden        bool
	GoodAfterTime string
	GoodTilDate   string
	ModelCode     string
	AllOrNone     bool
	MinQty        int64
	PercentOffset float64
	CashQty       float64 // 0 means not provided (sent as UnsetDouble)
}

// OrderStatus is the payload of an orderStatus message.
type OrderStatus struct {
	OrderID       OrderID
	Status        OrderStatusKind
	Filled        float64
	Remaining     float64
	AvgFillPrice  float64
	PermID        int64
	ParentID      OrderID
	LastFillPrice float64
	ClientID      int64
	WhyHeld       string
	MktCapPrice   float64
}

// OrderStatusKind is the closed set of order lifecycle states the gateway
// reports.
type OrderStatusKind string

const (
	StatusPendingSubmit OrderStatusKind = "PendingSubmit"
	StatusPendingCancel OrderStatusKind = "PendingCancel"
	StatusPreSubmitted  OrderStatusKind = "PreSubmitted"
	StatusSubmitted     OrderStatusKind = "Submitted"
	StatusApiCancelled  OrderStatusKind = "ApiCancelled"
	StatusCancelled     OrderStatusKind = "Cancelled"
	StatusFilled        OrderStatusKind = "Filled"
	StatusInactive      OrderStatusKind = "Inactive"
	StatusApiPending    OrderStatusKind = "ApiPending"
)

// OpenOrder bundles an order with its contract and current status, as
// delivered by the openOrder message.
type OpenOrder struct {
	OrderID  OrderID
	Contract Contract
	Order    Order
	Status   OrderStatus
}
