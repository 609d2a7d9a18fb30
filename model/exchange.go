package model

// Routing is an exchange routing destination: either a concrete primary
// exchange or the gateway's SMART aggregate router.
type Routing string

const (
	RouteSmart Routing = "SMART"
)

// Primary is a concrete exchange code (as opposed to the SMART router).
type Primary string

const (
	ExchangeNYSE     Primary = "NYSE"
	ExchangeNASDAQ   Primary = "NASDAQ"
	ExchangeARCA     Primary = "ARCA"
	ExchangeCBOE     Primary = "CBOE"
	ExchangeGLOBEX   Primary = "GLOBEX"
	ExchangeIDEALPRO Primary = "IDEALPRO"
	ExchangeISLAND   Primary = "ISLAND"
)
