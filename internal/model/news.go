package model

// Sentiment labels a headline by crude keyword polarity.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Article is one news headline for a symbol.
type Article struct {
	Title     string
	URL       string
	Sentiment Sentiment
}
