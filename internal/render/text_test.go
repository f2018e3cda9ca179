package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"StockSense/internal/model"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestQuoteSummary_AbsentFieldsRenderAsNA(t *testing.T) {
	q := &model.Quote{Symbol: "ZZZZ"}
	out := QuoteSummary(q)
	if !strings.Contains(out, "Current Price: N/A") {
		t.Errorf("missing price should render N/A:\n%s", out)
	}
	if strings.Contains(out, "$0.00") {
		t.Errorf("absent fields must never render as zero:\n%s", out)
	}
}

func TestQuoteSummary_DayChange(t *testing.T) {
	q := &model.Quote{
		Symbol:    "AAPL",
		LongName:  sptr("Apple Inc."),
		Price:     fptr(192.50),
		PrevClose: fptr(190.00),
	}
	out := QuoteSummary(q)
	if !strings.Contains(out, "Apple Inc. (AAPL)") {
		t.Errorf("expected company header:\n%s", out)
	}
	if !strings.Contains(out, "+2.50") || !strings.Contains(out, "+1.32%") {
		t.Errorf("expected day change rendered:\n%s", out)
	}
}

func TestSeriesTail_EmptySeries(t *testing.T) {
	out := SeriesTail(model.Series{Symbol: "ZZZZ"}, model.IndicatorSeries{}, 5)
	if out != "No historical data found.\n" {
		t.Errorf("unexpected empty-series output: %q", out)
	}
}

func TestSeriesTail_UndefinedCellsDashed(t *testing.T) {
	bars := []model.Bar{{
		Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 12345,
	}}
	ind := model.IndicatorSeries{
		MAShort: []float64{math.NaN()},
		MALong:  []float64{math.NaN()},
		RSI:     []float64{math.NaN()},
	}
	out := SeriesTail(model.Series{Symbol: "AAPL", Bars: bars}, ind, 5)
	if !strings.Contains(out, "2024-03-01") {
		t.Errorf("expected bar date in output:\n%s", out)
	}
	if strings.Count(out, "-") < 3 {
		t.Errorf("expected dashes for undefined indicators:\n%s", out)
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("NaN must never leak into output:\n%s", out)
	}
}

func TestNewsList(t *testing.T) {
	if got := NewsList(nil); got != "No news found.\n" {
		t.Errorf("unexpected empty-news output: %q", got)
	}
	articles := []model.Article{
		{Title: "Shares up", URL: "https://example.com/a", Sentiment: model.SentimentPositive},
	}
	out := NewsList(articles)
	if !strings.Contains(out, "[Positive] Shares up") {
		t.Errorf("expected sentiment tag with title:\n%s", out)
	}
}

func TestComparison(t *testing.T) {
	a := &model.Quote{Symbol: "AAPL", Price: fptr(200), PERatio: fptr(30)}
	b := &model.Quote{Symbol: "F", Price: fptr(10), PERatio: fptr(6)}
	out := Comparison(a, b)
	if !strings.Contains(out, "AAPL trades at 20.0x the price of F") {
		t.Errorf("expected price ratio line:\n%s", out)
	}
	// Missing prices drop the ratio line but not the table.
	out = Comparison(a, &model.Quote{Symbol: "ZZZZ"})
	if strings.Contains(out, "trades at") {
		t.Errorf("ratio line must be skipped when a price is missing:\n%s", out)
	}
}
