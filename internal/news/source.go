package news

import "StockSense/internal/model"

// MaxHeadlines caps how many articles a source returns.
const MaxHeadlines = 5

// Source defines the interface for fetching recent headlines.
type Source interface {
	Headlines(symbol string) ([]model.Article, error)
	Name() string
}
