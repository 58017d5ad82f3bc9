package market

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"CryptoBot/internal/model"
)

// CoinGeckoFetcher implements Fetcher using the CoinGecko public API.
type CoinGeckoFetcher struct {
	BaseURL  string
	Asset    string
	Currency string
	Client   *http.Client
}

// NewCoinGeckoFetcher creates a new CoinGecko fetcher with optional proxy support.
func NewCoinGeckoFetcher(baseURL, asset, currency, proxyURL string) *CoinGeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		BaseURL:  baseURL,
		Asset:    asset,
		Currency: currency,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// marketChart is the response structure from the CoinGecko market_chart API.
// Each entry in prices is a [timestampMillis, price] pair.
type marketChart struct {
	Prices [][2]float64 `json:"prices"`
}

func (f *CoinGeckoFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: coingecko fetch: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: coingecko read body: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: coingecko status %d, body: %s", ErrUnavailable, resp.StatusCode, body)
	}
	return body, nil
}

// FetchMarketChart requests `days` calendar days of price history and returns
// a normalized series: one point per day, date-ascending, at most
// MaxSeriesPoints entries.
func (f *CoinGeckoFetcher) FetchMarketChart(days int) ([]model.PricePoint, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=%s&days=%d",
		f.BaseURL, url.PathEscape(f.Asset), url.QueryEscape(f.Currency), days)

	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}

	var chart marketChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("%w: coingecko decode: %v", ErrUnavailable, err)
	}
	if len(chart.Prices) == 0 {
		return nil, fmt.Errorf("%w: coingecko: no price data returned", ErrUnavailable)
	}

	points := make([]model.PricePoint, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		points = append(points, model.PricePoint{
			Time:  time.UnixMilli(int64(pair[0])).UTC(),
			Price: pair[1],
		})
	}
	return Normalize(points, MaxSeriesPoints), nil
}

// FetchSpotPrice returns the current spot price from the simple price endpoint.
func (f *CoinGeckoFetcher) FetchSpotPrice() (float64, error) {
	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s",
		f.BaseURL, url.QueryEscape(f.Asset), url.QueryEscape(f.Currency))

	body, err := f.get(endpoint)
	if err != nil {
		return 0, err
	}

	var parsed map[string]map[string]float64
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("%w: coingecko decode: %v", ErrUnavailable, err)
	}
	price, ok := parsed[f.Asset][f.Currency]
	if !ok {
		return 0, fmt.Errorf("%w: coingecko: missing %s/%s price", ErrUnavailable, f.Asset, f.Currency)
	}
	return price, nil
}
