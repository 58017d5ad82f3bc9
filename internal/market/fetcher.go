package market

import (
	"errors"
	"time"

	"CryptoBot/internal/model"
)

// MaxSeriesPoints bounds the price series used as model context.
const MaxSeriesPoints = 30

// ErrUnavailable indicates the upstream market data source is unreachable
// or returned a malformed response.
var ErrUnavailable = errors.New("market data unavailable")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchMarketChart(days int) ([]model.PricePoint, error)
	FetchSpotPrice() (float64, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Points []model.PricePoint
	Price  float64
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMarketChart(days int) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Points != nil {
		return m.Points, nil
	}
	return generateMockPoints(m.Price, days), nil
}

func (m *MockFetcher) FetchSpotPrice() (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Price, nil
}

func generateMockPoints(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Time:  time.Now().AddDate(0, 0, -(count - i)),
			Price: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}
