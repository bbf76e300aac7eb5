package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultBaseURL = "https://api.coingecko.com/api/v3"
	defaultTimeout = 30 * time.Second
)

var (
	// ErrRateLimited the provider answered 429.
	ErrRateLimited = errors.New("price provider rate limited")
	// ErrUnavailable the provider answered a non-success status.
	ErrUnavailable = errors.New("price provider unavailable")
	// ErrUnexpectedFormat the response is missing expected fields.
	// Not retryable: repeating the request will not fix a structural mismatch.
	ErrUnexpectedFormat = errors.New("unexpected price provider response format")
)

// CoinGeckoClient wraps the two read-only CoinGecko endpoints used by the
// analyzer: current spot price and historical price by date.
type CoinGeckoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCoinGeckoClient creates a client. An empty baseURL selects the
// public API host.
func NewCoinGeckoClient(baseURL string) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &CoinGeckoClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// SimplePrice fetches the current spot price of coinID in currency.
// Single attempt, the caller decides whether its absence is fatal.
func (c *CoinGeckoClient) SimplePrice(ctx context.Context, coinID, currency string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s",
		c.baseURL, url.QueryEscape(coinID), url.QueryEscape(currency))

	body, status, err := c.get(ctx, addr)
	if err != nil {
		return decimal.Zero, err
	}
	if status != http.StatusOK {
		return decimal.Zero, errors.Wrapf(ErrUnavailable, "simple price returned status %d", status)
	}

	var payload map[string]map[string]decimal.Decimal
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, errors.Wrap(ErrUnexpectedFormat, err.Error())
	}

	prices, ok := payload[coinID]
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrUnexpectedFormat, "%q key not found in response", coinID)
	}
	price, ok := prices[currency]
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrUnexpectedFormat, "no %q price for %q", currency, coinID)
	}
	return price, nil
}

type historyResponse struct {
	MarketData *struct {
		CurrentPrice map[string]decimal.Decimal `json:"current_price"`
	} `json:"market_data"`
}

// HistoricalPrice fetches the price of coinID in currency pinned to the
// given calendar date (DD-MM-YYYY, UTC). The caller owns retry on
// ErrRateLimited / ErrUnavailable.
func (c *CoinGeckoClient) HistoricalPrice(ctx context.Context, coinID, date, currency string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/coins/%s/history?date=%s",
		c.baseURL, url.PathEscape(coinID), url.QueryEscape(date))

	body, status, err := c.get(ctx, addr)
	if err != nil {
		return decimal.Zero, err
	}
	switch {
	case status == http.StatusTooManyRequests:
		return decimal.Zero, errors.Wrapf(ErrRateLimited, "history for %s", date)
	case status != http.StatusOK:
		return decimal.Zero, errors.Wrapf(ErrUnavailable, "history returned status %d", status)
	}

	var payload historyResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, errors.Wrap(ErrUnexpectedFormat, err.Error())
	}
	if payload.MarketData == nil || payload.MarketData.CurrentPrice == nil {
		return decimal.Zero, errors.Wrap(ErrUnexpectedFormat, "market_data key not found in response")
	}
	price, ok := payload.MarketData.CurrentPrice[currency]
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrUnexpectedFormat, "no %q price in market_data for %s", currency, date)
	}
	return price, nil
}

func (c *CoinGeckoClient) get(ctx context.Context, addr string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to read response body")
	}
	return body, resp.StatusCode, nil
}
