package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"StockSense/internal/model"
)

// Money formats an optional price, falling back to "N/A" when absent.
func Money(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", *v)
}

// BigMoney formats an optional large dollar amount with comma grouping.
func BigMoney(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return "$" + humanize.Commaf(math.Round(*v))
}

// Ratio formats an optional ratio such as PE.
func Ratio(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// Count formats an optional integer with comma grouping.
func Count(v *int64) string {
	if v == nil {
		return "N/A"
	}
	return humanize.Comma(*v)
}

// Text formats an optional string field.
func Text(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

// Cell formats one indicator value for a table, "-" when undefined.
func Cell(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// QuoteSummary formats the quote snapshot the way the CLI prints it.
func QuoteSummary(q *model.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", q.Name(), q.Symbol)
	fmt.Fprintf(&b, "Current Price: %s", Money(q.Price))
	if change, pct, ok := q.DayChange(); ok {
		fmt.Fprintf(&b, "  (%+.2f, %+.2f%%)", change, pct)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Market Cap:    %s\n", BigMoney(q.MarketCap))
	fmt.Fprintf(&b, "PE Ratio:      %s\n", Ratio(q.PERatio))
	fmt.Fprintf(&b, "52-Week High:  %s\n", Money(q.High52w))
	fmt.Fprintf(&b, "52-Week Low:   %s\n", Money(q.Low52w))
	fmt.Fprintf(&b, "Volume:        %s\n", Count(q.Volume))
	fmt.Fprintf(&b, "Sector:        %s\n", Text(q.Sector))
	fmt.Fprintf(&b, "Industry:      %s\n", Text(q.Industry))
	return b.String()
}

// SeriesTail formats the last n rows of the indicator-augmented series as a
// fixed-width table.
func SeriesTail(series model.Series, ind model.IndicatorSeries, n int) string {
	if series.Empty() {
		return "No historical data found.\n"
	}
	start := len(series.Bars) - n
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %10s %10s %10s %10s %12s %9s %9s %7s\n",
		"Date", "Open", "High", "Low", "Close", "Volume", "MA20", "MA50", "RSI")
	for i := start; i < len(series.Bars); i++ {
		bar := series.Bars[i]
		fmt.Fprintf(&b, "%-12s %10.2f %10.2f %10.2f %10.2f %12s %9s %9s %7s\n",
			bar.Time.Format("2006-01-02"),
			bar.Open, bar.High, bar.Low, bar.Close,
			humanize.Comma(bar.Volume),
			Cell(ind.MAShort[i]), Cell(ind.MALong[i]), Cell(ind.RSI[i]))
	}
	return b.String()
}

// NewsList formats headlines with their sentiment tags.
func NewsList(articles []model.Article) string {
	if len(articles) == 0 {
		return "No news found.\n"
	}
	var b strings.Builder
	for _, a := range articles {
		fmt.Fprintf(&b, "- [%s] %s\n  %s\n", a.Sentiment, a.Title, a.URL)
	}
	return b.String()
}

// Comparison formats the side-by-side price/PE view of two quotes.
func Comparison(a, b *model.Quote) string {
	var out strings.Builder
	fmt.Fprintf(&out, "COMPARING: %s vs %s\n\n", a.Symbol, b.Symbol)
	for _, q := range []*model.Quote{a, b} {
		fmt.Fprintf(&out, "%s:\n  Price:    %s\n  PE Ratio: %s\n", q.Symbol, Money(q.Price), Ratio(q.PERatio))
	}
	if a.Price != nil && b.Price != nil && *b.Price > 0 {
		ratio := *a.Price / *b.Price
		if ratio >= 1 {
			fmt.Fprintf(&out, "\n%s trades at %.1fx the price of %s\n", a.Symbol, ratio, b.Symbol)
		} else {
			fmt.Fprintf(&out, "\n%s trades at %.1fx the price of %s\n", b.Symbol, 1/ratio, a.Symbol)
		}
	}
	return out.String()
}

// AlertBody is the email body for a fired price alert.
func AlertBody(symbol string, price, threshold float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is now at $%.2f, above your alert threshold of $%.2f.\n\n", symbol, price, threshold)
	fmt.Fprintf(&b, "Checked at %s.\n", time.Now().Format("2006-01-02 15:04"))
	return b.String()
}
