package wire

// InCode identifies the kind of an incoming frame, as carried in its first
// field. The numbering matches the gateway wire protocol exactly; it is not
// ours to renumber.
type InCode int

const (
	InTickPrice                          InCode = 1
	InTickSize                           InCode = 2
	InOrderStatus                        InCode = 3
	InErrMsg                             InCode = 4
	InOpenOrder                          InCode = 5
	InAcctValue                          InCode = 6
	InPortfolioValue                     InCode = 7
	InAcctUpdateTime                     InCode = 8
	InNextValidID                        InCode = 9
	InContractData                       InCode = 10
	InExecutionData                      InCode = 11
	InMarketDepth                        InCode = 12
	InMarketDepthL2                      InCode = 13
	InNewsBulletins                      InCode = 14
	InManagedAccts                       InCode = 15
	InReceiveFa                          InCode = 16
	InHistoricalData                     InCode = 17
	InBondContractData                   InCode = 18
	InScannerParameters                  InCode = 19
	InScannerData                        InCode = 20
	InTickOptionComputation              InCode = 21
	InTickGeneric                        InCode = 45
	InTickString                         InCode = 46
	InTickEfp                            InCode = 47
	InCurrentTime                        InCode = 49
	InRealTimeBars                       InCode = 50
	InFundamentalData                    InCode = 51
	InContractDataEnd                    InCode = 52
	InOpenOrderEnd                       InCode = 53
	InAcctDownloadEnd                    InCode = 54
	InExecutionDataEnd                   InCode = 55
	InDeltaNeutralValidation             InCode = 56
	InTickSnapshotEnd                    InCode = 57
	InMarketDataType                     InCode = 58
	InCommissionReport                   InCode = 59
	InPositionData                       InCode = 61
	InPositionEnd                        InCode = 62
	InAccountSummary                     InCode = 63
	InAccountSummaryEnd                  InCode = 64
	InVerifyMessageApi                   InCode = 65
	InVerifyCompleted                    InCode = 66
	InDisplayGroupList                   InCode = 67
	InDisplayGroupUpdated                InCode = 68
	InVerifyAndAuthMessageApi            InCode = 69
	InVerifyAndAuthCompleted             InCode = 70
	InPositionMulti                      InCode = 71
	InPositionMultiEnd                   InCode = 72
	InAccountUpdateMulti                 InCode = 73
	InAccountUpdateMultiEnd              InCode = 74
	InSecurityDefinitionOptionParameter  InCode = 75
	InSecurityDefOptParameterEnd         InCode = 76
	InSoftDollarTiers                    InCode = 77
	InFamilyCodes                        InCode = 78
	InSymbolSamples                      InCode = 79
	InMktDepthExchanges                  InCode = 80
	InTickReqParams                      InCode = 81
	InSmartComponents                    InCode = 82
	InNewsArticle                        InCode = 83
	InTickNews                           InCode = 84
	InNewsProviders                      InCode = 85
	InHistoricalNews                     InCode = 86
	InHistoricalNewsEnd                  InCode = 87
	InHeadTimestamp                      InCode = 88
	InHistogramData                      InCode = 89
	InHistoricalDataUpdate               InCode = 90
	InRerouteMktDataReq                  InCode = 91
	InRerouteMktDepthReq                 InCode = 92
	InMarketRule                         InCode = 93
	InPnl                                InCode = 94
	InPnlSingle                          InCode = 95
	InHistoricalTicks                    InCode = 96
	InHistoricalTicksBidAsk              InCode = 97
	InHistoricalTicksLast                InCode = 98
	InTickByTick                         InCode = 99
	InOrderBound                         InCode = 100
	InCompletedOrder                     InCode = 101
	InCompletedOrdersEnd                 InCode = 102
	InReplaceFaEnd                       InCode = 103
	InWshMetaData                        InCode = 104
	InWshEventData                       InCode = 105
	InHistoricalSchedule                 InCode = 106
	InUserInfo                           InCode = 107
)

// OutCode identifies the kind of an outgoing frame, written as the first
// field of every request this client sends.
type OutCode int

const (
	OutReqMktData                   OutCode = 1
	OutCancelMktData                OutCode = 2
	OutPlaceOrder                   OutCode = 3
	OutCancelOrder                  OutCode = 4
	OutReqOpenOrders                OutCode = 5
	OutReqAcctData                  OutCode = 6
	OutReqExecutions                OutCode = 7
	OutReqIds                       OutCode = 8
	OutReqContractData              OutCode = 9
	OutReqMktDepth                  OutCode = 10
	OutCancelMktDepth               OutCode = 11
	OutReqNewsBulletins             OutCode = 12
	OutCancelNewsBulletins          OutCode = 13
	OutSetServerLoglevel            OutCode = 14
	OutReqAutoOpenOrders            OutCode = 15
	OutReqAllOpenOrders             OutCode = 16
	OutReqManagedAccts              OutCode = 17
	OutReqFa                        OutCode = 18
	OutReplaceFa                    OutCode = 19
	OutReqHistoricalData            OutCode = 20
	OutExerciseOptions              OutCode = 21
	OutReqScannerSubscription       OutCode = 22
	OutCancelScannerSubscription    OutCode = 23
	OutReqScannerParameters         OutCode = 24
	OutCancelHistoricalData         OutCode = 25
	OutReqCurrentTime               OutCode = 49
	OutReqRealTimeBars              OutCode = 50
	OutCancelRealTimeBars           OutCode = 51
	OutReqFundamentalData           OutCode = 52
	OutCancelFundamentalData        OutCode = 53
	OutReqCalcImpliedVolat          OutCode = 54
	OutReqCalcOptionPrice           OutCode = 55
	OutCancelCalcImpliedVolat       OutCode = 56
	OutCancelCalcOptionPrice        OutCode = 57
	OutReqGlobalCancel              OutCode = 58
	OutReqMarketDataType            OutCode = 59
	OutReqPositions                 OutCode = 61
	OutReqAccountSummary            OutCode = 62
	OutCancelAccountSummary         OutCode = 63
	OutCancelPositions              OutCode = 64
	OutVerifyRequest                OutCode = 65
	OutVerifyMessage                OutCode = 66
	OutQueryDisplayGroups           OutCode = 67
	OutSubscribeToGroupEvents       OutCode = 68
	OutUpdateDisplayGroup           OutCode = 69
	OutUnsubscribeFromGroupEvents   OutCode = 70
	OutStartApi                     OutCode = 71
	OutVerifyAndAuthRequest         OutCode = 72
	OutVerifyAndAuthMessage         OutCode = 73
	OutReqPositionsMulti            OutCode = 74
	OutCancelPositionsMulti         OutCode = 75
	OutReqAccountUpdatesMulti       OutCode = 76
	OutCancelAccountUpdatesMulti    OutCode = 77
	OutReqSecDefOptParams           OutCode = 78
	OutReqSoftDollarTiers           OutCode = 79
	OutReqFamilyCodes               OutCode = 80
	OutReqMatchingSymbols           OutCode = 81
	OutReqMktDepthExchanges         OutCode = 82
	OutReqSmartComponents           OutCode = 83
	OutReqNewsArticle               OutCode = 84
	OutReqNewsProviders             OutCode = 85
	OutReqHistoricalNews            OutCode = 86
	OutReqHeadTimestamp             OutCode = 87
	OutReqHistogramData             OutCode = 88
	OutCancelHistogramData          OutCode = 89
	OutCancelHeadTimestamp          OutCode = 90
	OutReqMarketRule                OutCode = 91
	OutReqPnl                       OutCode = 92
	OutCancelPnl                    OutCode = 93
	OutReqPnlSingle                 OutCode = 94
	OutCancelPnlSingle              OutCode = 95
	OutReqHistoricalTicks           OutCode = 96
	OutReqTickByTickData            OutCode = 97
	OutCancelTickByTickData         OutCode = 98
	OutReqCompletedOrders           OutCode = 99
	OutReqWshMetaData               OutCode = 100
	OutCancelWshMetaData            OutCode = 101
	OutReqWshEventData              OutCode = 102
	OutCancelWshEventData           OutCode = 103
	OutReqUserInfo                  OutCode = 104
)
