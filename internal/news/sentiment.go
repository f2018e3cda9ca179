package news

import (
	"strings"

	"StockSense/internal/model"
)

// Keyword lists for the headline polarity tag. This is a deliberately naive
// placeholder, not a model; it only claims "the headline contains an
// up-word/down-word".
var (
	positiveWords = map[string]bool{
		"up": true, "gain": true, "gains": true, "rally": true,
		"surge": true, "surges": true, "beat": true, "beats": true,
		"record": true, "jumps": true,
	}
	negativeWords = map[string]bool{
		"down": true, "loss": true, "losses": true, "fall": true,
		"falls": true, "drop": true, "drops": true, "miss": true,
		"misses": true, "plunge": true, "plunges": true,
	}
)

// TagSentiment labels a headline Positive, Negative or Neutral by keyword
// presence. Matching is on whole words so that "update" is not an up-word.
func TagSentiment(title string) model.Sentiment {
	var pos, neg bool
	for _, word := range strings.Fields(strings.ToLower(title)) {
		word = strings.Trim(word, ".,:;!?'\"()[]")
		if positiveWords[word] {
			pos = true
		}
		if negativeWords[word] {
			neg = true
		}
	}
	switch {
	case pos && !neg:
		return model.SentimentPositive
	case neg && !pos:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
