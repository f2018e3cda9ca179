package portfolio

import "sync"

// Store hands out one Ledger per session key. The dashboard serves many
// browser sessions from one process, so the map itself is guarded; each
// ledger is still only ever touched by the session that owns its key.
type Store struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{ledgers: make(map[string]*Ledger)}
}

// Session returns the ledger for the given session key, creating it on first
// use.
func (s *Store) Session(key string) *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[key]
	if !ok {
		l = NewLedger()
		s.ledgers[key] = l
	}
	return l
}

// Drop discards a session's ledger, if present.
func (s *Store) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ledgers, key)
}
