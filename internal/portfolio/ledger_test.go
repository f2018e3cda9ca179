package portfolio

import "testing"

func TestAdd_NormalizesAndAccumulates(t *testing.T) {
	l := NewLedger()
	if err := l.Add("aapl", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Holdings()["AAPL"]; got != 5 {
		t.Errorf("expected AAPL=5, got %d", got)
	}
	if err := l.Add(" AAPL ", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Holdings()["AAPL"]; got != 8 {
		t.Errorf("expected cumulative AAPL=8, got %d", got)
	}
}

func TestAdd_RejectsBadInput(t *testing.T) {
	l := NewLedger()
	if err := l.Add("AAPL", 0); err != ErrInvalidShares {
		t.Errorf("shares=0: expected ErrInvalidShares, got %v", err)
	}
	if err := l.Add("AAPL", -2); err != ErrInvalidShares {
		t.Errorf("shares=-2: expected ErrInvalidShares, got %v", err)
	}
	if err := l.Add("  ", 1); err != ErrEmptySymbol {
		t.Errorf("blank symbol: expected ErrEmptySymbol, got %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("rejected calls must not mutate the ledger, have %d holdings", l.Len())
	}
}

func TestAddRemove_RoundTrip(t *testing.T) {
	for _, k := range []int{1, 5, 100} {
		l := NewLedger()
		if err := l.Add("TSLA", k); err != nil {
			t.Fatalf("add %d: %v", k, err)
		}
		l.Remove("tsla", k)
		if _, exists := l.Holdings()["TSLA"]; exists {
			t.Errorf("k=%d: expected holding deleted after full removal", k)
		}
	}
}

func TestRemove_ClampsAtZero(t *testing.T) {
	l := NewLedger()
	if err := l.Add("MSFT", 3); err != nil {
		t.Fatal(err)
	}
	l.Remove("MSFT", 10)
	if _, exists := l.Holdings()["MSFT"]; exists {
		t.Error("over-removal should delete the holding, never go negative")
	}
	// Removing from a symbol never held is a no-op.
	l.Remove("GOOG", 4)
	if l.Len() != 0 {
		t.Errorf("expected empty ledger, got %d holdings", l.Len())
	}
}

func TestRemove_PartialKeepsRemainder(t *testing.T) {
	l := NewLedger()
	if err := l.Add("NVDA", 10); err != nil {
		t.Fatal(err)
	}
	l.Remove("NVDA", 4)
	if got := l.Holdings()["NVDA"]; got != 6 {
		t.Errorf("expected 6 shares left, got %d", got)
	}
}

func TestHoldings_SnapshotIsDetached(t *testing.T) {
	l := NewLedger()
	if err := l.Add("AAPL", 5); err != nil {
		t.Fatal(err)
	}
	snap := l.Holdings()
	snap["AAPL"] = 999
	snap["FAKE"] = 1
	if got := l.Holdings()["AAPL"]; got != 5 {
		t.Errorf("mutating the snapshot leaked into the ledger: AAPL=%d", got)
	}
	if _, exists := l.Holdings()["FAKE"]; exists {
		t.Error("mutating the snapshot leaked a new holding into the ledger")
	}
}

func TestValue_PartialFailureIsolation(t *testing.T) {
	l := NewLedger()
	if err := l.Add("AAPL", 2); err != nil {
		t.Fatal(err)
	}
	if err := l.Add("ZZZZ", 7); err != nil {
		t.Fatal(err)
	}
	lookup := func(symbol string) (float64, bool) {
		if symbol == "AAPL" {
			return 150, true
		}
		return 0, false
	}
	if got := l.Value(lookup); got != 300 {
		t.Errorf("expected value 300 from the priced holding only, got %.2f", got)
	}
}

func TestValue_EmptyLedger(t *testing.T) {
	l := NewLedger()
	if got := l.Value(func(string) (float64, bool) { return 100, true }); got != 0 {
		t.Errorf("expected 0 for empty ledger, got %.2f", got)
	}
}

func TestStore_IsolatesSessions(t *testing.T) {
	s := NewStore()
	a := s.Session("session-a")
	b := s.Session("session-b")
	if err := a.Add("AAPL", 5); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Error("ledger state leaked across sessions")
	}
	if s.Session("session-a") != a {
		t.Error("expected the same ledger instance for a repeated key")
	}
	s.Drop("session-a")
	if s.Session("session-a").Len() != 0 {
		t.Error("expected a fresh ledger after Drop")
	}
}
