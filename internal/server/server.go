package server

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"StockSense/internal/alert"
	"StockSense/internal/analyzer"
	"StockSense/internal/portfolio"
	"StockSense/internal/quote"
)

const sessionCookie = "ssid"

// Server is the web dashboard: analysis view, per-session portfolio and
// price alerts.
type Server struct {
	Analyzer *analyzer.Analyzer
	Store    *portfolio.Store
	Watcher  *alert.Watcher // nil when email is not configured
	mux      *http.ServeMux
}

// New wires the dashboard routes.
func New(a *analyzer.Analyzer, store *portfolio.Store, watcher *alert.Watcher) *Server {
	s := &Server{Analyzer: a, Store: store, Watcher: watcher, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/portfolio/add", s.handlePortfolioAdd)
	s.mux.HandleFunc("/portfolio/remove", s.handlePortfolioRemove)
	s.mux.HandleFunc("/alert", s.handleAlert)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.mux }

// session returns the ledger for the requesting browser, minting a session
// cookie on first contact. Each session key owns exactly one ledger.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *portfolio.Ledger {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		id := uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
		})
		return s.Store.Session(id)
	}
	return s.Store.Session(c.Value)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	ledger := s.session(w, r)
	page := s.newPage("", quote.DefaultPeriod, ledger)
	page.Notice = r.URL.Query().Get("notice")
	s.renderPage(w, page)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ledger := s.session(w, r)
	symbol := r.FormValue("symbol")
	period := r.FormValue("period")
	if period == "" {
		period = quote.DefaultPeriod
	}

	page := s.newPage(symbol, period, ledger)
	page.Notice = r.URL.Query().Get("notice")

	result, err := s.Analyzer.Analyze(symbol, period)
	if err != nil {
		log.Printf("[WARN] analyze %s %s: %v", symbol, period, err)
		page.Error = fmt.Sprintf("Could not fetch data for %s (%s). Check the symbol and try again.", symbol, period)
		s.renderPage(w, page)
		return
	}

	page.Symbol = result.Symbol
	page.Analysis = buildAnalysisView(result)
	s.renderPage(w, page)
}

func (s *Server) handlePortfolioAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ledger := s.session(w, r)
	symbol := r.FormValue("symbol")
	shares, err := strconv.Atoi(r.FormValue("shares"))
	if err != nil {
		s.redirectBack(w, r, "Share count must be a whole number.")
		return
	}
	if err := ledger.Add(symbol, shares); err != nil {
		s.redirectBack(w, r, fmt.Sprintf("Could not add %s: %v.", symbol, err))
		return
	}
	s.redirectBack(w, r, fmt.Sprintf("Added %d shares of %s.", shares, portfolio.Normalize(symbol)))
}

func (s *Server) handlePortfolioRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ledger := s.session(w, r)
	symbol := r.FormValue("symbol")
	shares, err := strconv.Atoi(r.FormValue("shares"))
	if err != nil || shares <= 0 {
		s.redirectBack(w, r, "Share count must be a positive whole number.")
		return
	}
	ledger.Remove(symbol, shares)
	s.redirectBack(w, r, fmt.Sprintf("Removed %d shares of %s.", shares, portfolio.Normalize(symbol)))
}

func (s *Server) handleAlert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Watcher == nil {
		s.redirectBack(w, r, "Email alerts are not configured on this server.")
		return
	}

	symbol := portfolio.Normalize(r.FormValue("symbol"))
	recipient := r.FormValue("email")
	threshold, err := strconv.ParseFloat(r.FormValue("threshold"), 64)
	if err != nil || threshold <= 0 || symbol == "" || recipient == "" {
		s.redirectBack(w, r, "Alert needs a symbol, an email address and a positive threshold.")
		return
	}

	a := alert.Alert{Symbol: symbol, Threshold: threshold, Recipient: recipient}
	fired, err := s.Watcher.Check(a)
	if err != nil {
		log.Printf("[WARN] immediate alert check %s: %v", symbol, err)
		s.Watcher.Arm(a)
		s.redirectBack(w, r, fmt.Sprintf("Could not check %s right now; alert armed for the next sweep.", symbol))
		return
	}
	if fired {
		s.redirectBack(w, r, fmt.Sprintf("%s is already above $%.2f — alert email sent.", symbol, threshold))
		return
	}
	s.Watcher.Arm(a)
	s.redirectBack(w, r, fmt.Sprintf("Alert armed: you will be emailed when %s rises above $%.2f.", symbol, threshold))
}

// redirectBack returns the browser to the page it came from, carrying a
// short notice.
func (s *Server) redirectBack(w http.ResponseWriter, r *http.Request, notice string) {
	symbol := r.FormValue("back_symbol")
	period := r.FormValue("back_period")
	target := "/?notice=" + url.QueryEscape(notice)
	if symbol != "" {
		target = fmt.Sprintf("/analyze?symbol=%s&period=%s&notice=%s",
			url.QueryEscape(symbol), url.QueryEscape(period), url.QueryEscape(notice))
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
