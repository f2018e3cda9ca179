package portfolio

import (
	"errors"
	"strings"
)

// ErrInvalidShares is returned when a share count is not positive.
var ErrInvalidShares = errors.New("share count must be positive")

// ErrEmptySymbol is returned when a symbol is blank after trimming.
var ErrEmptySymbol = errors.New("symbol must not be empty")

// PriceLookup resolves the current price for a symbol. ok is false when no
// price is available.
type PriceLookup func(symbol string) (price float64, ok bool)

// Ledger tracks share counts per symbol for a single interactive session.
// Symbols are normalized to upper case and entries that reach zero shares are
// deleted eagerly. A Ledger is owned by exactly one session and is not safe
// for concurrent use.
type Ledger struct {
	holdings map[string]int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{holdings: make(map[string]int)}
}

// Add credits shares to a holding, creating it if needed. Repeated calls
// accumulate.
func (l *Ledger) Add(symbol string, shares int) error {
	if shares <= 0 {
		return ErrInvalidShares
	}
	sym := Normalize(symbol)
	if sym == "" {
		return ErrEmptySymbol
	}
	l.holdings[sym] += shares
	return nil
}

// Remove debits shares from a holding, clamping the count at zero. Removing
// more than held, or from a symbol never added, never fails; a holding that
// reaches zero is deleted.
func (l *Ledger) Remove(symbol string, shares int) {
	if shares <= 0 {
		return
	}
	sym := Normalize(symbol)
	held, ok := l.holdings[sym]
	if !ok {
		return
	}
	held -= shares
	if held <= 0 {
		delete(l.holdings, sym)
		return
	}
	l.holdings[sym] = held
}

// Holdings returns a snapshot copy of the symbol→shares mapping. Mutating the
// result never affects the ledger.
func (l *Ledger) Holdings() map[string]int {
	out := make(map[string]int, len(l.holdings))
	for sym, shares := range l.holdings {
		out[sym] = shares
	}
	return out
}

// Len returns the number of distinct holdings.
func (l *Ledger) Len() int { return len(l.holdings) }

// Value prices every holding through lookup and sums the results. A holding
// whose price cannot be resolved contributes zero instead of aborting the
// valuation of the rest.
func (l *Ledger) Value(lookup PriceLookup) float64 {
	var total float64
	for sym, shares := range l.holdings {
		if price, ok := lookup(sym); ok {
			total += price * float64(shares)
		}
	}
	return total
}

// Normalize upper-cases and trims a ticker symbol.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
