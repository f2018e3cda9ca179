package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"StockSense/internal/model"
	"StockSense/internal/render"
)

// FileWriter dumps a short plain-text analysis report. The file is
// write-only; nothing in the system ever reads it back.
type FileWriter struct {
	Dir string
	Now func() time.Time // overridable for tests
}

// NewFileWriter creates a writer targeting the given directory.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{Dir: dir, Now: time.Now}
}

// Write saves the report as stock_analysis_<SYMBOL>_<yyyyMMdd_HHmm>.txt and
// returns the path it wrote.
func (w *FileWriter) Write(q *model.Quote) (string, error) {
	now := w.Now()
	name := fmt.Sprintf("stock_analysis_%s_%s.txt", q.Symbol, now.Format("20060102_1504"))
	path := filepath.Join(w.Dir, name)

	var b strings.Builder
	b.WriteString("Stock Analysis Report\n")
	fmt.Fprintf(&b, "Date: %s\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Stock: %s (%s)\n", q.Name(), q.Symbol)
	fmt.Fprintf(&b, "Price: %s\n", render.Money(q.Price))
	if _, pct, ok := q.DayChange(); ok {
		fmt.Fprintf(&b, "Change: %+.2f%%\n", pct)
	} else {
		b.WriteString("Change: N/A\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
