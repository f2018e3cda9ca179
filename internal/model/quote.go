package model

// Quote holds the snapshot fields a gateway returns for a symbol. Fields the
// source does not supply stay nil; callers must never see a zero or "N/A"
// string standing in for missing data.
type Quote struct {
	Symbol    string
	Price     *float64
	PrevClose *float64
	MarketCap *float64
	PERatio   *float64
	High52w   *float64
	Low52w    *float64
	Volume    *int64
	LongName  *string
	Sector    *string
	Industry  *string
}

// Name returns the company long name, falling back to the symbol.
func (q *Quote) Name() string {
	if q.LongName != nil && *q.LongName != "" {
		return *q.LongName
	}
	return q.Symbol
}

// DayChange returns the absolute and percent change versus the previous
// close. ok is false when either side is unavailable.
func (q *Quote) DayChange() (change, percent float64, ok bool) {
	if q.Price == nil || q.PrevClose == nil || *q.PrevClose == 0 {
		return 0, 0, false
	}
	change = *q.Price - *q.PrevClose
	return change, change / *q.PrevClose * 100, true
}
