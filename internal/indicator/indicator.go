package indicator

import (
	"errors"
	"math"

	"StockSense/internal/model"
)

// Default windows match the dashboard's classic setup: 20/50-period moving
// averages and a 14-period RSI.
const (
	DefaultShortWindow = 20
	DefaultLongWindow  = 50
	DefaultRSIWindow   = 14
)

// ErrInvalidWindow is returned when a window size is not positive.
var ErrInvalidWindow = errors.New("window size must be positive")

// Compute derives the short/long moving averages and RSI for the given
// series, aligned 1:1 with its bars. Positions where a trailing window is not
// yet filled hold NaN. A short or empty series is never an error; it simply
// yields more undefined positions.
func Compute(series model.Series, shortWindow, longWindow, rsiWindow int) (model.IndicatorSeries, error) {
	if shortWindow <= 0 || longWindow <= 0 || rsiWindow <= 0 {
		return model.IndicatorSeries{}, ErrInvalidWindow
	}
	closes := extractCloses(series.Bars)
	return model.IndicatorSeries{
		MAShort: rollingMean(closes, shortWindow),
		MALong:  rollingMean(closes, longWindow),
		RSI:     rollingRSI(closes, rsiWindow),
	}, nil
}

// rollingMean computes the trailing simple moving average over `window`
// values ending at each position, inclusive.
func rollingMean(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// rollingRSI computes the relative-strength index using trailing simple means
// of gains and losses over `window` one-bar deltas. The first delta exists at
// position 1, so the earliest defined position is `window`.
func rollingRSI(closes []float64, window int) []float64 {
	out := nanSlice(len(closes))
	if len(closes) < 2 {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > window {
			gainSum -= gains[i-window]
			lossSum -= losses[i-window]
		}
		if i < window {
			continue
		}
		avgGain := gainSum / float64(window)
		avgLoss := lossSum / float64(window)
		switch {
		case avgLoss == 0 && avgGain == 0:
			// no movement anywhere in the window: leave undefined rather
			// than divide 0 by 0
		case avgLoss == 0:
			out[i] = 100
		default:
			rs := avgGain / avgLoss
			out[i] = 100 - 100/(1+rs)
		}
	}
	return out
}

func extractCloses(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
