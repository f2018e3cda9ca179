package alert

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"StockSense/internal/quote"
	"StockSense/internal/render"
)

// Alert arms a one-shot email for when a symbol's price rises above the
// threshold.
type Alert struct {
	Symbol    string
	Threshold float64
	Recipient string
}

// Watcher re-checks armed alerts on a cron schedule and fires the mailer the
// first time a threshold is crossed. An alert that fires is disarmed; one
// that cannot be checked stays armed for the next sweep.
type Watcher struct {
	cron    *cron.Cron
	fetcher quote.Fetcher
	mailer  Mailer

	mu    sync.Mutex
	armed []Alert
}

// NewWatcher creates a watcher over the given fetcher and mailer.
func NewWatcher(fetcher quote.Fetcher, mailer Mailer) *Watcher {
	return &Watcher{
		cron:    cron.New(cron.WithSeconds()),
		fetcher: fetcher,
		mailer:  mailer,
	}
}

// Register schedules the periodic sweep.
func (w *Watcher) Register(cronSpec string) error {
	if _, err := w.cron.AddFunc(cronSpec, w.Sweep); err != nil {
		return fmt.Errorf("register alert sweep: %w", err)
	}
	return nil
}

// Start starts the cron schedule.
func (w *Watcher) Start() {
	w.cron.Start()
	log.Println("[INFO] alert watcher started")
}

// Stop stops the cron schedule gracefully.
func (w *Watcher) Stop() {
	w.cron.Stop()
	log.Println("[INFO] alert watcher stopped")
}

// Arm registers an alert for the next sweeps.
func (w *Watcher) Arm(a Alert) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.armed = append(w.armed, a)
	log.Printf("[INFO] alert armed: %s above %.2f → %s", a.Symbol, a.Threshold, a.Recipient)
}

// Armed returns a snapshot of the currently armed alerts.
func (w *Watcher) Armed() []Alert {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Alert, len(w.armed))
	copy(out, w.armed)
	return out
}

// Sweep checks every armed alert once. Exported so callers can force an
// immediate pass outside the schedule.
func (w *Watcher) Sweep() {
	for _, a := range w.Armed() {
		fired, err := w.Check(a)
		if err != nil {
			log.Printf("[WARN] alert check %s: %v", a.Symbol, err)
			continue
		}
		if fired {
			w.disarm(a)
		}
	}
}

// Check evaluates one alert against the current price and sends the email if
// the threshold is crossed. It reports whether the alert fired.
func (w *Watcher) Check(a Alert) (bool, error) {
	q, err := w.fetcher.Quote(a.Symbol)
	if err != nil {
		return false, fmt.Errorf("quote %s: %w", a.Symbol, err)
	}
	if q.Price == nil {
		return false, fmt.Errorf("quote %s: price unavailable", a.Symbol)
	}
	if *q.Price <= a.Threshold {
		return false, nil
	}

	subject := fmt.Sprintf("%s Price Alert", a.Symbol)
	body := render.AlertBody(a.Symbol, *q.Price, a.Threshold)
	if err := w.mailer.Send(a.Recipient, subject, body); err != nil {
		return false, fmt.Errorf("send alert for %s: %w", a.Symbol, err)
	}
	log.Printf("[INFO] alert fired: %s at %.2f (threshold %.2f)", a.Symbol, *q.Price, a.Threshold)
	return true, nil
}

func (w *Watcher) disarm(target Alert) {
	w.mu.Lock()
	defer w.mu.Unlock()
	kept := w.armed[:0]
	for _, a := range w.armed {
		if a != target {
			kept = append(kept, a)
		}
	}
	w.armed = kept
}
