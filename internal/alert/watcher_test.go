package alert

import (
	"errors"
	"testing"

	"StockSense/internal/quote"
)

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestSweep_FiresAndDisarmsAboveThreshold(t *testing.T) {
	mailer := &recordingMailer{}
	w := NewWatcher(&quote.MockFetcher{Price: 210}, mailer)
	w.Arm(Alert{Symbol: "AAPL", Threshold: 200, Recipient: "user@example.com"})

	w.Sweep()

	if len(mailer.sent) != 1 || mailer.sent[0] != "user@example.com" {
		t.Fatalf("expected one mail to user@example.com, got %v", mailer.sent)
	}
	if len(w.Armed()) != 0 {
		t.Error("fired alert should be disarmed")
	}

	// A second sweep must not re-fire.
	w.Sweep()
	if len(mailer.sent) != 1 {
		t.Errorf("alert fired again after disarm: %d mails", len(mailer.sent))
	}
}

func TestSweep_StaysArmedBelowThreshold(t *testing.T) {
	mailer := &recordingMailer{}
	w := NewWatcher(&quote.MockFetcher{Price: 150}, mailer)
	w.Arm(Alert{Symbol: "AAPL", Threshold: 200, Recipient: "user@example.com"})

	w.Sweep()

	if len(mailer.sent) != 0 {
		t.Errorf("expected no mail below threshold, got %d", len(mailer.sent))
	}
	if len(w.Armed()) != 1 {
		t.Error("unfired alert must stay armed")
	}
}

func TestSweep_GatewayFailureKeepsAlertArmed(t *testing.T) {
	mailer := &recordingMailer{}
	w := NewWatcher(&quote.MockFetcher{QuoteErr: errors.New("connection refused")}, mailer)
	w.Arm(Alert{Symbol: "AAPL", Threshold: 200, Recipient: "user@example.com"})

	w.Sweep()

	if len(mailer.sent) != 0 {
		t.Errorf("expected no mail on gateway failure, got %d", len(mailer.sent))
	}
	if len(w.Armed()) != 1 {
		t.Error("alert must survive a failed check")
	}
}

func TestCheck_MailerFailureReported(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp: auth failed")}
	w := NewWatcher(&quote.MockFetcher{Price: 210}, mailer)

	fired, err := w.Check(Alert{Symbol: "AAPL", Threshold: 200, Recipient: "user@example.com"})
	if err == nil {
		t.Fatal("expected mailer failure to be reported")
	}
	if fired {
		t.Error("a failed send must not count as fired")
	}
}
