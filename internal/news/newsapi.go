package news

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"StockSense/internal/model"
)

// NewsAPISource fetches headlines from newsapi.org.
type NewsAPISource struct {
	APIKey string
	Client *http.Client
}

// NewNewsAPISource creates a source backed by the NewsAPI "everything"
// endpoint.
func NewNewsAPISource(apiKey string) *NewsAPISource {
	return &NewsAPISource{
		APIKey: apiKey,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *NewsAPISource) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"articles"`
}

// Headlines returns up to MaxHeadlines recent articles mentioning the symbol,
// each tagged with a keyword sentiment.
func (s *NewsAPISource) Headlines(symbol string) ([]model.Article, error) {
	u := fmt.Sprintf("https://newsapi.org/v2/everything?q=%s&language=en&pageSize=%d&apiKey=%s",
		url.QueryEscape(symbol), MaxHeadlines, url.QueryEscape(s.APIKey))

	resp, err := s.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsapi read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed newsAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", parsed.Message)
	}

	articles := make([]model.Article, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		if a.Title == "" {
			continue
		}
		articles = append(articles, model.Article{
			Title:     a.Title,
			URL:       a.URL,
			Sentiment: TagSentiment(a.Title),
		})
		if len(articles) == MaxHeadlines {
			break
		}
	}
	return articles, nil
}
