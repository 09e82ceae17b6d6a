package record

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	ColTime         = "time"
	ColUser         = "line_user"
	ColQuestion     = "question"
	ColAnswer       = "answer_reply"
	ColThinking     = "thinking_process"
	ColResponseTime = "response_time"

	// DayLayout names a day file, e.g. 05-02-2026.csv.
	DayLayout  = "02-01-2006"
	timeLayout = "15:04:05"
)

// Header returns the column list of a day file.
func Header(withThinking bool) []string {
	if withThinking {
		return []string{ColTime, ColUser, ColQuestion, ColAnswer, ColThinking, ColResponseTime}
	}
	return []string{ColTime, ColUser, ColQuestion, ColAnswer, ColResponseTime}
}

// FileName is the day file for t.
func FileName(t time.Time) string { return t.Format(DayLayout) + ".csv" }

// FormatResponseTime renders d as seconds with three decimals and an "s".
func FormatResponseTime(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// DailyCSV appends records to one CSV file per calendar day. The file is
// opened and closed on every write; the mutex only guards header creation
// inside this process.
type DailyCSV struct {
	dir          string
	withThinking bool
	mu           sync.Mutex
}

func NewDailyCSV(dir string, withThinking bool) *DailyCSV {
	return &DailyCSV{dir: dir, withThinking: withThinking}
}

func (d *DailyCSV) Name() string { return "csv" }

func (d *DailyCSV) Append(_ context.Context, rec Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(d.dir, FileName(rec.Time))

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true
	if isNew {
		_ = w.Write(Header(d.withThinking))
	}
	_ = w.Write(d.row(rec))
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func (d *DailyCSV) row(rec Record) []string {
	row := []string{rec.Time.Format(timeLayout), rec.UserID, rec.Question, rec.Answer}
	if d.withThinking {
		row = append(row, rec.Reasoning)
	}
	return append(row, FormatResponseTime(rec.ResponseTime))
}
