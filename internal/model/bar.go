package model

import "time"

// Bar represents a single OHLCV observation for one trading period.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series holds the historical bars for one symbol, sorted ascending by time
// with no duplicate timestamps.
type Series struct {
	Symbol    string
	Bars      []Bar
	FetchedAt time.Time
}

// Empty reports whether the series carries no bars at all.
func (s Series) Empty() bool { return len(s.Bars) == 0 }
