package news

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"StockSense/internal/model"
)

// ScrapeSource scrapes headlines from the Yahoo Finance quote page. Used as
// the fallback when no NewsAPI key is configured.
type ScrapeSource struct {
	Client *http.Client
}

// NewScrapeSource creates the scraping fallback source.
func NewScrapeSource() *ScrapeSource {
	return &ScrapeSource{
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *ScrapeSource) Name() string { return "scrape" }

// Headlines extracts up to MaxHeadlines anchors from the symbol's news page.
func (s *ScrapeSource) Headlines(symbol string) ([]model.Article, error) {
	pageURL := fmt.Sprintf("https://finance.yahoo.com/quote/%s/news", url.PathEscape(symbol))
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scrape: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scrape parse: %w", err)
	}
	return extractHeadlines(doc, pageURL), nil
}

func extractHeadlines(doc *goquery.Document, pageURL string) []model.Article {
	base, _ := url.Parse(pageURL)
	var articles []model.Article
	seen := make(map[string]bool)

	doc.Find("h3 a, h2 a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		href, _ := sel.Attr("href")
		if title == "" || href == "" || seen[title] {
			return true
		}
		if ref, err := url.Parse(href); err == nil && base != nil {
			href = base.ResolveReference(ref).String()
		}
		seen[title] = true
		articles = append(articles, model.Article{
			Title:     title,
			URL:       href,
			Sentiment: TagSentiment(title),
		})
		return len(articles) < MaxHeadlines
	})
	return articles
}
