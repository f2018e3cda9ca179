package quote

import (
	"errors"

	"StockSense/internal/model"
)

// ErrNoData means the gateway answered but had no bars for the symbol/period.
// Callers surface it as an informational message, not a fault.
var ErrNoData = errors.New("no historical data")

// ErrInvalidPeriod is returned before any network call when the period token
// is not one of the accepted values.
var ErrInvalidPeriod = errors.New("invalid period")

// Periods enumerates the history range tokens the gateways accept.
var Periods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "5y", "max"}

// DefaultPeriod is used when the caller does not pick one.
const DefaultPeriod = "1mo"

// ValidPeriod reports whether p is an accepted period token.
func ValidPeriod(p string) bool {
	for _, known := range Periods {
		if p == known {
			return true
		}
	}
	return false
}

// Fetcher defines the interface for fetching quote and history data.
type Fetcher interface {
	Quote(symbol string) (*model.Quote, error)
	History(symbol, period string) (model.Series, error)
	Name() string
}
