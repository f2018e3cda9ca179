package model

// IndicatorSeries carries derived indicator columns aligned 1:1 by position
// with the source bars. Positions where the trailing window is not yet filled
// hold NaN.
type IndicatorSeries struct {
	MAShort []float64
	MALong  []float64
	RSI     []float64
}

// Len returns the number of positions in the series.
func (s IndicatorSeries) Len() int { return len(s.MAShort) }
