package analyzer

import (
	"errors"
	"fmt"
	"log"

	"StockSense/internal/indicator"
	"StockSense/internal/model"
	"StockSense/internal/news"
	"StockSense/internal/portfolio"
	"StockSense/internal/quote"
)

// Analysis aggregates everything one symbol/period request produces.
type Analysis struct {
	Symbol     string
	Period     string
	Quote      *model.Quote
	History    model.Series
	Indicators model.IndicatorSeries
	News       []model.Article
}

// NoData reports whether the request found no historical bars. Display
// layers turn this into "No historical data found."
func (a *Analysis) NoData() bool { return a.History.Empty() }

// Analyzer orchestrates quote fetching, indicator computation and news
// retrieval for one request. A news failure never blocks the price analysis;
// it only costs the headlines.
type Analyzer struct {
	Fetcher quote.Fetcher
	News    news.Source
}

// New creates an Analyzer. news may be nil when no source is configured.
func New(fetcher quote.Fetcher, source news.Source) *Analyzer {
	return &Analyzer{Fetcher: fetcher, News: source}
}

// Analyze runs the full chain for a symbol and period. The returned error is
// a gateway failure on the quote/history path; empty history is not an error
// and yields an Analysis with NoData set.
func (a *Analyzer) Analyze(symbol, period string) (*Analysis, error) {
	symbol = portfolio.Normalize(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol must not be empty")
	}
	if !quote.ValidPeriod(period) {
		return nil, fmt.Errorf("%w: %q", quote.ErrInvalidPeriod, period)
	}

	q, err := a.Fetcher.Quote(symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch quote %s: %w", symbol, err)
	}

	hist, err := a.Fetcher.History(symbol, period)
	if err != nil && !errors.Is(err, quote.ErrNoData) {
		return nil, fmt.Errorf("fetch history %s %s: %w", symbol, period, err)
	}

	ind, err := indicator.Compute(hist,
		indicator.DefaultShortWindow, indicator.DefaultLongWindow, indicator.DefaultRSIWindow)
	if err != nil {
		// unreachable with the default windows, but keep the contract honest
		return nil, fmt.Errorf("compute indicators: %w", err)
	}

	result := &Analysis{
		Symbol:     symbol,
		Period:     period,
		Quote:      q,
		History:    hist,
		Indicators: ind,
	}

	if a.News != nil {
		articles, err := a.News.Headlines(symbol)
		if err != nil {
			log.Printf("[WARN] fetch news %s: %v, continuing without headlines", symbol, err)
		} else {
			result.News = articles
		}
	}

	return result, nil
}

// PriceLookup adapts the fetcher into the ledger's valuation callback. A
// failed or priceless quote reports ok=false so the holding contributes zero.
func (a *Analyzer) PriceLookup() portfolio.PriceLookup {
	return func(symbol string) (float64, bool) {
		q, err := a.Fetcher.Quote(symbol)
		if err != nil {
			log.Printf("[WARN] price lookup %s: %v", symbol, err)
			return 0, false
		}
		if q.Price == nil {
			return 0, false
		}
		return *q.Price, true
	}
}
