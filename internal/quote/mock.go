package quote

import (
	"time"

	"StockSense/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price    float64
	Q        *model.Quote
	Bars     []model.Bar
	QuoteErr error
	HistErr  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Quote(symbol string) (*model.Quote, error) {
	if m.QuoteErr != nil {
		return nil, m.QuoteErr
	}
	if m.Q != nil {
		return m.Q, nil
	}
	price := m.Price
	return &model.Quote{Symbol: symbol, Price: &price}, nil
}

func (m *MockFetcher) History(symbol, period string) (model.Series, error) {
	if m.HistErr != nil {
		return model.Series{}, m.HistErr
	}
	bars := m.Bars
	if bars == nil {
		bars = generateMockBars(m.Price, 60)
	}
	return model.Series{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
