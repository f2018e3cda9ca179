package indicator

import (
	"math"
	"testing"
	"time"

	"StockSense/internal/model"
)

func seriesFromCloses(closes []float64) model.Series {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return model.Series{Symbol: "TEST", Bars: bars}
}

func TestCompute_InvalidWindow(t *testing.T) {
	s := seriesFromCloses([]float64{1, 2, 3})
	for _, windows := range [][3]int{{0, 50, 14}, {20, -1, 14}, {20, 50, 0}} {
		if _, err := Compute(s, windows[0], windows[1], windows[2]); err != ErrInvalidWindow {
			t.Errorf("windows %v: expected ErrInvalidWindow, got %v", windows, err)
		}
	}
}

func TestCompute_EmptySeries(t *testing.T) {
	ind, err := Compute(model.Series{Symbol: "ZZZZ"}, 20, 50, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ind.Len() != 0 {
		t.Errorf("expected empty indicator series, got length %d", ind.Len())
	}
}

func TestRollingMean_Example(t *testing.T) {
	// Series [10,12,11,13,15] with window 3 → [NaN, NaN, 11, 12, 13].
	ind, err := Compute(seriesFromCloses([]float64{10, 12, 11, 13, 15}), 3, 50, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{math.NaN(), math.NaN(), 11, 12, 13}
	if len(ind.MAShort) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(ind.MAShort))
	}
	for i, w := range want {
		got := ind.MAShort[i]
		if math.IsNaN(w) {
			if !math.IsNaN(got) {
				t.Errorf("ma[%d]: expected NaN, got %.4f", i, got)
			}
			continue
		}
		if math.Abs(got-w) > 1e-9 {
			t.Errorf("ma[%d]: expected %.4f, got %.4f", i, w, got)
		}
	}
}

func TestRollingMean_DefinedBoundary(t *testing.T) {
	closes := []float64{5, 7, 9, 11, 13, 15, 17}
	for window := 1; window <= len(closes)+2; window++ {
		got := rollingMean(closes, window)
		for i := range closes {
			defined := !math.IsNaN(got[i])
			if want := i >= window-1; defined != want {
				t.Errorf("window %d pos %d: defined=%v, want %v", window, i, defined, want)
			}
			if !defined {
				continue
			}
			sum := 0.0
			for j := i - window + 1; j <= i; j++ {
				sum += closes[j]
			}
			if math.Abs(got[i]-sum/float64(window)) > 1e-9 {
				t.Errorf("window %d pos %d: mean mismatch", window, i)
			}
		}
	}
}

func TestRollingRSI_Bounds(t *testing.T) {
	closes := []float64{44, 44.5, 43.8, 44.2, 45.1, 44.7, 45.3, 46.0, 45.5, 45.9,
		46.2, 45.8, 46.5, 47.0, 46.8, 47.2, 46.9, 47.5, 48.0, 47.6}
	rsi := rollingRSI(closes, 14)
	for i, v := range rsi {
		if i < 14 {
			if !math.IsNaN(v) {
				t.Errorf("pos %d: expected NaN before window fills, got %.2f", i, v)
			}
			continue
		}
		if math.IsNaN(v) || v < 0 || v > 100 {
			t.Errorf("pos %d: RSI %.2f out of [0,100]", i, v)
		}
	}
}

func TestRollingRSI_UpwardOnlyRun(t *testing.T) {
	// Every delta in the window is positive → RSI pegs at exactly 100.
	closes := []float64{10, 11, 12, 13, 14, 15}
	rsi := rollingRSI(closes, 5)
	if got := rsi[5]; got != 100 {
		t.Errorf("expected RSI 100 on an upward-only run, got %.2f", got)
	}
}

func TestRollingRSI_NoMovement(t *testing.T) {
	// All deltas exactly zero → 0/0 avoided, RSI stays undefined.
	closes := []float64{50, 50, 50, 50, 50, 50}
	rsi := rollingRSI(closes, 5)
	if !math.IsNaN(rsi[5]) {
		t.Errorf("expected NaN for a flat window, got %.2f", rsi[5])
	}
}

func TestRollingRSI_DownwardOnlyRun(t *testing.T) {
	closes := []float64{15, 14, 13, 12, 11, 10}
	rsi := rollingRSI(closes, 5)
	if got := rsi[5]; got != 0 {
		t.Errorf("expected RSI 0 on a downward-only run, got %.2f", got)
	}
}

func TestRollingRSI_SlidingWindowDropsOldDeltas(t *testing.T) {
	// After the initial drop leaves the window, only gains remain → 100.
	closes := []float64{20, 18, 19, 20, 21, 22, 23}
	rsi := rollingRSI(closes, 3)
	if got := rsi[6]; got != 100 {
		t.Errorf("expected RSI 100 once the loss left the window, got %.2f", got)
	}
	// At position 3 the window still holds the -2 delta.
	if got := rsi[3]; math.IsNaN(got) || got >= 100 {
		t.Errorf("expected partial RSI at pos 3, got %.2f", got)
	}
}
