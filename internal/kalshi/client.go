/**
 * @description
 * HTTP Client for the Kalshi trade API (unauthenticated endpoints).
 * Fetches open game contracts, historical candlesticks, and orderbooks.
 *
 * @dependencies
 * - net/http
 * - encoding/json
 * - backend/internal/config
 * - backend/internal/oddsmath
 */

package kalshi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/oddslens/backend/internal/config"
	"github.com/oddslens/backend/internal/oddsmath"
)

const (
	DefaultTimeout = 10 * time.Second

	// MaxPages bounds the pagination loop so a misbehaving cursor can't
	// spin forever.
	MaxPages = 20

	pageLimit = 500
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: cfg.Kalshi.BaseURL,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// GetMarkets fetches one page of open markets for a series ticker.
// The limit is clamped to the API's 1-1000 range.
func (c *Client) GetMarkets(ctx context.Context, seriesTicker string, limit int, cursor string) (*MarketsResponse, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 1000 {
		limit = 1000
	}

	u, err := url.Parse(fmt.Sprintf("%s/markets", c.BaseURL))
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("series_ticker", seriesTicker)
	q.Set("status", "open")
	q.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	u.RawQuery = q.Encode()

	var page MarketsResponse
	if err := c.getJSON(ctx, u.String(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetAllOpenMarkets pages through every open market for a series ticker
func (c *Client) GetAllOpenMarkets(ctx context.Context, seriesTicker string) ([]Market, error) {
	var out []Market
	cursor := ""

	for page := 0; page < MaxPages; page++ {
		resp, err := c.GetMarkets(ctx, seriesTicker, pageLimit, cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, resp.Markets...)
		cursor = resp.Cursor
		if cursor == "" {
			break
		}
	}

	return out, nil
}

// GetCandlesticks fetches historical OHLC bars for a market, converting
// prices from cents to probabilities.
func (c *Client) GetCandlesticks(ctx context.Context, seriesTicker, ticker string, periodInterval, daysBack int) ([]Candlestick, error) {
	endTs := time.Now().Unix()
	startTs := endTs - int64(daysBack)*24*60*60

	u, err := url.Parse(fmt.Sprintf("%s/series/%s/markets/%s/candlesticks", c.BaseURL, seriesTicker, ticker))
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("period_interval", strconv.Itoa(periodInterval))
	q.Set("start_ts", strconv.FormatInt(startTs, 10))
	q.Set("end_ts", strconv.FormatInt(endTs, 10))
	u.RawQuery = q.Encode()

	var resp candlesticksResponse
	if err := c.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}

	candles := make([]Candlestick, 0, len(resp.Candlesticks))
	for _, raw := range resp.Candlesticks {
		candles = append(candles, Candlestick{
			Timestamp: time.Unix(raw.EndPeriodTs, 0).Local().Format(time.RFC3339),
			Open:      oddsmath.CentsToProbability(raw.Price.Open),
			High:      oddsmath.CentsToProbability(raw.Price.High),
			Low:       oddsmath.CentsToProbability(raw.Price.Low),
			Close:     oddsmath.CentsToProbability(raw.Price.Close),
			Volume:    raw.Volume,
		})
	}

	return candles, nil
}

// GetOrderbook fetches the current book for a market, converting every
// level's price from cents to a probability.
func (c *Client) GetOrderbook(ctx context.Context, ticker string) (*Orderbook, error) {
	u := fmt.Sprintf("%s/markets/%s/orderbook", c.BaseURL, url.PathEscape(ticker))

	var resp orderbookResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}

	return &Orderbook{
		Yes: convertLevels(resp.Orderbook.Yes),
		No:  convertLevels(resp.Orderbook.No),
	}, nil
}

func convertLevels(raw [][]float64) []PriceLevel {
	levels := make([]PriceLevel, 0, len(raw))
	for _, pair := range raw {
		if len(pair) < 2 {
			continue
		}
		cents := pair[0]
		prob := oddsmath.CentsToProbability(&cents)
		levels = append(levels, PriceLevel{
			Price: *prob,
			Count: int64(pair[1]),
		})
	}
	return levels
}

func (c *Client) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("kalshi api error: status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
