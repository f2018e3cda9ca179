package server

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>StockSense</title>
<style>
body { font-family: -apple-system, Segoe UI, sans-serif; margin: 0; display: flex; }
aside { width: 260px; padding: 16px; background: #f5f5f5; min-height: 100vh; }
main { flex: 1; padding: 24px; max-width: 860px; }
h1 { margin-top: 0; }
table { border-collapse: collapse; width: 100%; font-size: 14px; }
th, td { padding: 4px 8px; text-align: right; border-bottom: 1px solid #ddd; }
th:first-child, td:first-child { text-align: left; }
.metrics { display: flex; gap: 32px; margin: 16px 0; }
.metric .label { color: #666; font-size: 13px; }
.metric .value { font-size: 22px; font-weight: 600; }
.up { color: #2e7d32; } .down { color: #c62828; }
.notice { background: #e8f5e9; padding: 8px 12px; border-radius: 4px; }
.error { background: #ffebee; padding: 8px 12px; border-radius: 4px; }
.sentiment { font-size: 12px; color: #666; }
form.inline { display: inline; }
</style>
</head>
<body>
<aside>
  <h3>Portfolio Tracker</h3>
  <form method="post" action="/portfolio/add">
    <input type="hidden" name="back_symbol" value="{{.Symbol}}">
    <input type="hidden" name="back_period" value="{{.Period}}">
    <p><input name="symbol" placeholder="Symbol" size="8" required>
       <input name="shares" type="number" min="1" value="1" size="4" required></p>
    <p><button type="submit">Add to Portfolio</button></p>
  </form>
  {{if .HasHoldings}}
  <h4>Holdings</h4>
  <table>
  {{range .Holdings}}
    <tr>
      <td>{{.Symbol}}</td><td>{{.Shares}} sh</td>
      <td>
        <form class="inline" method="post" action="/portfolio/remove">
          <input type="hidden" name="back_symbol" value="{{$.Symbol}}">
          <input type="hidden" name="back_period" value="{{$.Period}}">
          <input type="hidden" name="symbol" value="{{.Symbol}}">
          <input type="hidden" name="shares" value="{{.Shares}}">
          <button type="submit" title="Remove all">×</button>
        </form>
      </td>
    </tr>
  {{end}}
  </table>
  <p><b>Total Value:</b> {{.TotalValue}}</p>
  {{else}}
  <p>No holdings yet.</p>
  {{end}}
</aside>
<main>
  <h1>StockSense</h1>
  {{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}

  <form method="get" action="/analyze">
    <input name="symbol" placeholder="Stock symbol" value="{{.Symbol}}" required>
    <select name="period">
      {{range .Periods}}<option value="{{.}}" {{if eq . $.Period}}selected{{end}}>{{.}}</option>{{end}}
    </select>
    <button type="submit">Analyze</button>
  </form>

  {{with .Analysis}}
  <h2>{{.Title}}</h2>
  <div class="metrics">
    <div class="metric"><div class="label">Current Price</div>
      <div class="value">{{.Price}}</div>
      {{if .HasChange}}<div class="{{if .ChangeUp}}up{{else}}down{{end}}">{{.Change}}</div>{{end}}
    </div>
    <div class="metric"><div class="label">Market Cap</div><div class="value">{{.MarketCap}}</div></div>
    <div class="metric"><div class="label">PE Ratio</div><div class="value">{{.PERatio}}</div></div>
  </div>
  <table>
    <tr><td>52-Week High</td><td>{{.High52w}}</td><td>52-Week Low</td><td>{{.Low52w}}</td></tr>
    <tr><td>Volume</td><td>{{.Volume}}</td><td>RSI (14)</td><td>{{.RSI}}</td></tr>
    <tr><td>Sector</td><td>{{.Sector}}</td><td>Industry</td><td>{{.Industry}}</td></tr>
  </table>

  {{if .NoData}}
  <p class="notice">No historical data found.</p>
  {{else}}
  <h3>Price Chart</h3>
  {{.Chart}}
  <h3>Recent Data</h3>
  <table>
    <tr><th>Date</th><th>Open</th><th>High</th><th>Low</th><th>Close</th><th>MA20</th><th>MA50</th><th>RSI</th></tr>
    {{range .Rows}}
    <tr><td>{{.Date}}</td><td>{{.Open}}</td><td>{{.High}}</td><td>{{.Low}}</td><td>{{.Close}}</td><td>{{.MAShort}}</td><td>{{.MALong}}</td><td>{{.RSI}}</td></tr>
    {{end}}
  </table>
  {{end}}

  <h3>Latest News</h3>
  {{if .News}}
  <ul>
    {{range .News}}<li><a href="{{.URL}}">{{.Title}}</a> <span class="sentiment">({{.Sentiment}})</span></li>{{end}}
  </ul>
  {{else}}
  <p>No news found.</p>
  {{end}}

  {{if $.AlertEnabled}}
  <h3>Set Price Alert</h3>
  <form method="post" action="/alert">
    <input type="hidden" name="symbol" value="{{$.Symbol}}">
    <input type="hidden" name="back_symbol" value="{{$.Symbol}}">
    <input type="hidden" name="back_period" value="{{$.Period}}">
    <input name="email" type="email" placeholder="you@example.com" required>
    <input name="threshold" type="number" step="0.01" min="0.01" placeholder="Price above" required>
    <button type="submit">Set Alert</button>
  </form>
  {{end}}
  {{end}}

  {{if not .Analysis}}
  <p>Enter a stock symbol and pick a period to analyze.</p>
  <p>Try these:
    {{range .Samples}}<a href="/analyze?symbol={{.}}&period=1mo">{{.}}</a> {{end}}
  </p>
  {{end}}
</main>
</body>
</html>
`
