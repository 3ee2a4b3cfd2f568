/**
 * @description
 * Type definitions for the Kalshi trade API responses.
 * These structs map to the JSON returned by /markets, /series candlesticks,
 * and /markets/{ticker}/orderbook.
 */

package kalshi

// Market is one raw contract listing from /markets. Prices are in minor
// units (cents, 0-100); pointers distinguish absent prices from zero.
type Market struct {
	Ticker       string   `json:"ticker"`
	EventTicker  string   `json:"event_ticker"`
	SeriesTicker string   `json:"series_ticker"`
	MarketType   string   `json:"market_type"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	CloseTime    string   `json:"close_time"` // ISO-8601
	YesBid       *float64 `json:"yes_bid"`
	YesAsk       *float64 `json:"yes_ask"`
	OpenInterest int64    `json:"open_interest"`
	Volume24h    int64    `json:"volume_24h"`
}

// MarketsResponse is one page of /markets. The cursor is opaque and only
// consumed by the next page request.
type MarketsResponse struct {
	Markets []Market `json:"markets"`
	Cursor  string   `json:"cursor"`
}

type candlesticksResponse struct {
	Candlesticks []rawCandlestick `json:"candlesticks"`
}

type rawCandlestick struct {
	EndPeriodTs int64     `json:"end_period_ts"`
	Price       ohlcCents `json:"price"`
	Volume      int64     `json:"volume"`
}

type ohlcCents struct {
	Open  *float64 `json:"open"`
	High  *float64 `json:"high"`
	Low   *float64 `json:"low"`
	Close *float64 `json:"close"`
}

// Candlestick is a simplified OHLC bar with cents already converted to
// probabilities.
type Candlestick struct {
	Timestamp string   `json:"timestamp"` // RFC3339
	Open      *float64 `json:"open"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	Close     *float64 `json:"close"`
	Volume    int64    `json:"volume"`
}

type orderbookResponse struct {
	Orderbook rawOrderbook `json:"orderbook"`
}

// Kalshi encodes each level as a [price_cents, contract_count] pair
type rawOrderbook struct {
	Yes [][]float64 `json:"yes"`
	No  [][]float64 `json:"no"`
}

// PriceLevel is one resting level with the price as a probability
type PriceLevel struct {
	Price float64 `json:"price"`
	Count int64   `json:"count"`
}

// Orderbook holds both sides of a market's book
type Orderbook struct {
	Yes []PriceLevel `json:"yes"`
	No  []PriceLevel `json:"no"`
}
