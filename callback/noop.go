package callback

import (
	"time"

	"github.com/wvietor/ibkr-go/model"
)

// NoOpWrapper satisfies Wrapper with empty method bodies. Embed it in a
// caller's wrapper type to implement only the callbacks that matter.
type NoOpWrapper struct{}

func (NoOpWrapper) Error(model.RequestID, int64, string, string)                            {}
func (NoOpWrapper) CurrentTime(time.Time)                                                   {}
func (NoOpWrapper) ManagedAccounts([]string)                                                {}
func (NoOpWrapper) NextValidID(model.OrderID)                                               {}
func (NoOpWrapper) PriceData(model.PriceEvent)                                              {}
func (NoOpWrapper) SizeData(model.SizeEvent)                                                {}
func (NoOpWrapper) ExtremeData(model.ExtremeValueEvent)                                     {}
func (NoOpWrapper) Auction(model.AuctionEvent)                                              {}
func (NoOpWrapper) MarkPrice(model.MarkPriceEvent)                                          {}
func (NoOpWrapper) YieldData(model.YieldEvent)                                              {}
func (NoOpWrapper) EtfNav(model.EtfNavEvent)                                                {}
func (NoOpWrapper) Volume(model.VolumeEvent)                                                {}
func (NoOpWrapper) SummaryVolume(model.SummaryVolumeEvent)                                  {}
func (NoOpWrapper) Volatility(model.VolatilityEvent)                                        {}
func (NoOpWrapper) SecOptionVolume(model.SecOptionVolumeEvent)                              {}
func (NoOpWrapper) OpenInterest(model.OpenInterestEvent)                                    {}
func (NoOpWrapper) PriceFactor(model.PriceFactorEvent)                                      {}
func (NoOpWrapper) Accessibility(model.AccessibilityEvent)                                  {}
func (NoOpWrapper) TradeCount(model.RequestID, float64)                                     {}
func (NoOpWrapper) Rate(model.RateEvent)                                                    {}
func (NoOpWrapper) Ipo(model.IpoEvent)                                                      {}
func (NoOpWrapper) QuotingExchanges(model.QuotingExchangesEvent)                            {}
func (NoOpWrapper) Timestamp(model.TimestampEvent)                                          {}
func (NoOpWrapper) RealTimeVolume(model.RealTimeVolumeEvent)                                {}
func (NoOpWrapper) Dividends(model.DividendsEvent)                                          {}
func (NoOpWrapper) News(model.RequestID, string)                                            {}
func (NoOpWrapper) TickOptionComputation(model.TickOptionComputation)                       {}
func (NoOpWrapper) TickByTick(model.TickByTickEvent)                                        {}
func (NoOpWrapper) TickSnapshotEnd(model.RequestID)                                         {}
func (NoOpWrapper) MarketDepth(model.DepthUpdateEvent)                                      {}
func (NoOpWrapper) HistoricalBars(model.RequestID, []model.Bar)                             {}
func (NoOpWrapper) UpdatingHistoricalBar(model.RequestID, model.Bar)                        {}
func (NoOpWrapper) RealTimeBar(model.RequestID, model.Bar)                                  {}
func (NoOpWrapper) HeadTimestamp(model.RequestID, time.Time)                                {}
func (NoOpWrapper) HistogramData(model.RequestID, []model.HistogramEntry)                   {}
func (NoOpWrapper) HistoricalTicksMidpoint(model.RequestID, []model.HistoricalTickMidpoint) {}
func (NoOpWrapper) HistoricalTicksBidAsk(model.RequestID, []model.HistoricalTickBidAsk)     {}
func (NoOpWrapper) HistoricalTicksLast(model.RequestID, []model.HistoricalTickLast)         {}
func (NoOpWrapper) AccountValue(model.AccountValue)                                         {}
func (NoOpWrapper) AccountValueTime(string, time.Time)                                      {}
func (NoOpWrapper) AccountDownloadEnd(string)                                               {}
func (NoOpWrapper) PortfolioValue(model.PortfolioValue)                                     {}
func (NoOpWrapper) PositionValue(model.PositionValue)                                       {}
func (NoOpWrapper) PositionEnd()                                                            {}
func (NoOpWrapper) AccountSummary(model.RequestID, string, model.AccountValue)              {}
func (NoOpWrapper) AccountSummaryEnd(model.RequestID)                                       {}
func (NoOpWrapper) PnL(model.PnL)                                                           {}
func (NoOpWrapper) PnLSingle(model.PnLSingle)                                               {}
func (NoOpWrapper) OrderStatus(model.OrderStatus)                                           {}
func (NoOpWrapper) OpenOrder(model.OpenOrder)                                               {}
func (NoOpWrapper) OpenOrderEnd()                                                           {}
func (NoOpWrapper) Execution(model.RequestID, model.Execution)                              {}
func (NoOpWrapper) CommissionReport(model.CommissionReport)                                 {}
func (NoOpWrapper) ContractDetails(model.RequestID, model.Contract)                         {}
func (NoOpWrapper) ContractDetailsEnd(model.RequestID)                                      {}
func (NoOpWrapper) ScannerParameters(model.ScannerParameter)                                {}
func (NoOpWrapper) ScannerData(model.RequestID, []model.ScannerResultRow)                   {}
func (NoOpWrapper) ScannerDataEnd(model.RequestID)                                          {}
func (NoOpWrapper) NewsBulletin(int64, int64, string, string)                               {}

var _ Wrapper = NoOpWrapper{}
