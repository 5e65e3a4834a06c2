package market

// IborIndex identifies a term floating-rate benchmark. The engine never
// interprets it beyond equality.
type IborIndex string

const (
	GBPLIBOR1M IborIndex = "GBP-LIBOR-1M"
	GBPLIBOR3M IborIndex = "GBP-LIBOR-3M"
	GBPLIBOR6M IborIndex = "GBP-LIBOR-6M"
	USDLIBOR3M IborIndex = "USD-LIBOR-3M"
	EURIBOR3M  IborIndex = "EUR-EURIBOR-3M"
	EURIBOR6M  IborIndex = "EUR-EURIBOR-6M"
)

// FxIndex identifies an FX fixing source used for notional resets.
type FxIndex string

const (
	ECBEURGBP FxIndex = "ECB-EUR-GBP"
	ECBEURUSD FxIndex = "ECB-EUR-USD"
	WMGBPUSD  FxIndex = "WM-GBP-USD"
)
