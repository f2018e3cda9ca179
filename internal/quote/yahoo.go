package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockSense/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta       yahooMeta `json:"meta"`
			Timestamp  []int64   `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooMeta carries the quote snapshot fields embedded in a chart response.
// Pointer fields stay nil when Yahoo omits them.
type yahooMeta struct {
	Symbol              string   `json:"symbol"`
	LongName            *string  `json:"longName"`
	RegularMarketPrice  *float64 `json:"regularMarketPrice"`
	ChartPreviousClose  *float64 `json:"chartPreviousClose"`
	PreviousClose       *float64 `json:"previousClose"`
	FiftyTwoWeekHigh    *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow     *float64 `json:"fiftyTwoWeekLow"`
	RegularMarketVolume *int64   `json:"regularMarketVolume"`
}

// yahooValue is Yahoo's {raw, fmt} number wrapper in quoteSummary responses.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail struct {
				TrailingPE *yahooValue `json:"trailingPE"`
				MarketCap  *yahooValue `json:"marketCap"`
			} `json:"summaryDetail"`
			AssetProfile struct {
				Sector   *string `json:"sector"`
				Industry *string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) fetchChart(symbol, interval, rng string) (*yahooChart, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(symbol), interval, rng)

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}
	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty chart result")
	}
	return &chart, nil
}

func (f *YahooFetcher) get(u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// Quote returns the current snapshot for a symbol. The chart meta supplies
// price, previous close, 52-week range and volume; quoteSummary supplies
// market cap, PE ratio and company profile. A summary failure only loses
// those fields, it does not fail the quote.
func (f *YahooFetcher) Quote(symbol string) (*model.Quote, error) {
	chart, err := f.fetchChart(symbol, "1d", "1d")
	if err != nil {
		return nil, err
	}
	meta := chart.Chart.Result[0].Meta

	q := &model.Quote{
		Symbol:    symbol,
		Price:     meta.RegularMarketPrice,
		High52w:   meta.FiftyTwoWeekHigh,
		Low52w:    meta.FiftyTwoWeekLow,
		Volume:    meta.RegularMarketVolume,
		LongName:  meta.LongName,
		PrevClose: meta.PreviousClose,
	}
	if q.PrevClose == nil {
		q.PrevClose = meta.ChartPreviousClose
	}

	f.fillSummary(symbol, q)
	return q, nil
}

func (f *YahooFetcher) fillSummary(symbol string, q *model.Quote) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=summaryDetail,assetProfile",
		url.PathEscape(symbol))
	body, err := f.get(u)
	if err != nil {
		return
	}
	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return
	}
	if summary.QuoteSummary.Error != nil || len(summary.QuoteSummary.Result) == 0 {
		return
	}
	result := summary.QuoteSummary.Result[0]
	if v := result.SummaryDetail.TrailingPE; v != nil {
		q.PERatio = v.Raw
	}
	if v := result.SummaryDetail.MarketCap; v != nil {
		q.MarketCap = v.Raw
	}
	q.Sector = result.AssetProfile.Sector
	q.Industry = result.AssetProfile.Industry
}

// History returns daily bars covering the requested period token. An unknown
// token is rejected before any network call; a valid symbol with no bars
// yields ErrNoData.
func (f *YahooFetcher) History(symbol, period string) (model.Series, error) {
	if !ValidPeriod(period) {
		return model.Series{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	// Period tokens map 1:1 onto Yahoo's range parameter.
	chart, err := f.fetchChart(symbol, "1d", period)
	if err != nil {
		return model.Series{}, err
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return model.Series{}, fmt.Errorf("%s %s: %w", symbol, period, ErrNoData)
	}

	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(toFloat(quote.Volume[i])),
		})
	}
	if len(bars) == 0 {
		return model.Series{}, fmt.Errorf("%s %s: %w", symbol, period, ErrNoData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return model.Series{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}
