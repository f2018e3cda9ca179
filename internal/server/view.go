package server

import (
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"sort"
	"strings"

	"StockSense/internal/analyzer"
	"StockSense/internal/model"
	"StockSense/internal/portfolio"
	"StockSense/internal/quote"
	"StockSense/internal/render"
)

// sampleSymbols are the shortcuts shown on the empty state.
var sampleSymbols = []string{"AAPL", "TSLA", "GOOGL", "MSFT"}

type page struct {
	Symbol   string
	Period   string
	Periods  []string
	Samples  []string
	Error    string
	Notice   string
	Analysis *analysisView

	Holdings     []holdingView
	HasHoldings  bool
	TotalValue   string
	AlertEnabled bool
}

type holdingView struct {
	Symbol string
	Shares int
}

type analysisView struct {
	Title     string
	Price     string
	Change    string
	ChangeUp  bool
	HasChange bool
	MarketCap string
	PERatio   string
	High52w   string
	Low52w    string
	Volume    string
	Sector    string
	Industry  string

	NoData bool
	Chart  template.HTML
	RSI    string
	Rows   []rowView
	News   []model.Article
}

type rowView struct {
	Date    string
	Open    string
	High    string
	Low     string
	Close   string
	MAShort string
	MALong  string
	RSI     string
}

func (s *Server) newPage(symbol, period string, ledger *portfolio.Ledger) *page {
	p := &page{
		Symbol:       portfolio.Normalize(symbol),
		Period:       period,
		Periods:      quote.Periods,
		Samples:      sampleSymbols,
		AlertEnabled: s.Watcher != nil,
	}
	holdings := ledger.Holdings()
	for _, sym := range sortedKeys(holdings) {
		p.Holdings = append(p.Holdings, holdingView{Symbol: sym, Shares: holdings[sym]})
	}
	if len(p.Holdings) > 0 {
		p.HasHoldings = true
		p.TotalValue = fmt.Sprintf("$%.2f", ledger.Value(s.Analyzer.PriceLookup()))
	}
	return p
}

func buildAnalysisView(result *analyzer.Analysis) *analysisView {
	q := result.Quote
	v := &analysisView{
		Title:     fmt.Sprintf("%s (%s)", q.Name(), q.Symbol),
		Price:     render.Money(q.Price),
		MarketCap: render.BigMoney(q.MarketCap),
		PERatio:   render.Ratio(q.PERatio),
		High52w:   render.Money(q.High52w),
		Low52w:    render.Money(q.Low52w),
		Volume:    render.Count(q.Volume),
		Sector:    render.Text(q.Sector),
		Industry:  render.Text(q.Industry),
		NoData:    result.NoData(),
		News:      result.News,
	}
	if change, pct, ok := q.DayChange(); ok {
		v.HasChange = true
		v.ChangeUp = change >= 0
		v.Change = fmt.Sprintf("%+.2f (%+.2f%%)", change, pct)
	}
	if v.NoData {
		return v
	}

	v.Chart = svgChart(result.History, result.Indicators)
	v.RSI = latestDefined(result.Indicators.RSI)
	start := len(result.History.Bars) - 10
	if start < 0 {
		start = 0
	}
	for i := start; i < len(result.History.Bars); i++ {
		bar := result.History.Bars[i]
		v.Rows = append(v.Rows, rowView{
			Date:    bar.Time.Format("2006-01-02"),
			Open:    fmt.Sprintf("%.2f", bar.Open),
			High:    fmt.Sprintf("%.2f", bar.High),
			Low:     fmt.Sprintf("%.2f", bar.Low),
			Close:   fmt.Sprintf("%.2f", bar.Close),
			MAShort: render.Cell(result.Indicators.MAShort[i]),
			MALong:  render.Cell(result.Indicators.MALong[i]),
			RSI:     render.Cell(result.Indicators.RSI[i]),
		})
	}
	return v
}

func latestDefined(values []float64) string {
	for i := len(values) - 1; i >= 0; i-- {
		if !math.IsNaN(values[i]) {
			return fmt.Sprintf("%.1f", values[i])
		}
	}
	return "-"
}

const chartWidth, chartHeight = 680, 240

// svgChart draws the close price with both moving averages as an inline SVG.
func svgChart(series model.Series, ind model.IndicatorSeries) template.HTML {
	if len(series.Bars) < 2 {
		return ""
	}
	closes := make([]float64, len(series.Bars))
	for i, b := range series.Bars {
		closes[i] = b.Close
	}

	lo, hi := bounds(closes, ind.MAShort, ind.MALong)
	if hi == lo {
		hi = lo + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, chartWidth, chartHeight)
	b.WriteString(polyline(closes, lo, hi, "#2e7d32", 2))
	b.WriteString(polyline(ind.MAShort, lo, hi, "#1565c0", 1))
	b.WriteString(polyline(ind.MALong, lo, hi, "#ef6c00", 1))
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

func polyline(values []float64, lo, hi float64, color string, width int) string {
	var points []string
	n := len(values)
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		x := float64(i) / float64(n-1) * chartWidth
		y := chartHeight - (v-lo)/(hi-lo)*(chartHeight-10) - 5
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	if len(points) < 2 {
		return ""
	}
	return fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="%d" points="%s"/>`,
		color, width, strings.Join(points, " "))
}

func bounds(series ...[]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, values := range series {
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Server) renderPage(w http.ResponseWriter, p *page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, p); err != nil {
		log.Printf("[ERROR] render page: %v", err)
	}
}
