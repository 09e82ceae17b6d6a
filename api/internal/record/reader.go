package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ImageMarker prefixes the question column of image messages.
const ImageMarker = "[IMAGE]"

// Entry is one row of a day file as written, all columns kept as text.
type Entry struct {
	Time         string
	UserID       string
	Question     string
	Answer       string
	Reasoning    string
	ResponseTime string
	// HasThinkingColumn is false for files written without thinking_process.
	HasThinkingColumn bool
}

func (e Entry) IsImage() bool { return strings.Contains(e.Question, ImageMarker) }

// Seconds parses ResponseTime ("1.234s").
func (e Entry) Seconds() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(e.ResponseTime), "s"), 64)
	return v, err == nil
}

// ReadEntries parses a day file by header name, so files with or without
// the thinking_process column both load.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}
	_, hasThinking := col[ColThinking]

	var out []Entry
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("read row %d: %w", len(out)+1, err)
		}
		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		out = append(out, Entry{
			Time:              get(ColTime),
			UserID:            get(ColUser),
			Question:          get(ColQuestion),
			Answer:            get(ColAnswer),
			Reasoning:         get(ColThinking),
			ResponseTime:      get(ColResponseTime),
			HasThinkingColumn: hasThinking,
		})
	}
}

// ReadDay loads the file for day ("DD-MM-YYYY") from dir.
func ReadDay(dir, day string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, day+".csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEntries(f)
}

// DayFile describes one day file on disk.
type DayFile struct {
	Day          string
	Date         time.Time
	Path         string
	Size         int64
	Entries      int
	WithThinking int
	Err          error
}

// ListDays returns the day files in dir, newest first. Files whose name is
// not a DD-MM-YYYY date are skipped.
func ListDays(dir string) ([]DayFile, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []DayFile
	for _, de := range des {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".csv") {
			continue
		}
		day := strings.TrimSuffix(name, ".csv")
		date, err := time.Parse(DayLayout, day)
		if err != nil {
			continue
		}
		df := DayFile{Day: day, Date: date, Path: filepath.Join(dir, name)}
		if info, err := de.Info(); err == nil {
			df.Size = info.Size()
		}
		entries, err := ReadDay(dir, day)
		df.Err = err
		df.Entries = len(entries)
		df.WithThinking = lo.CountBy(entries, func(e Entry) bool { return strings.TrimSpace(e.Reasoning) != "" })
		out = append(out, df)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// Search keeps entries whose question or answer contains term, ignoring case.
func Search(entries []Entry, term string) []Entry {
	t := strings.ToLower(term)
	return lo.Filter(entries, func(e Entry, _ int) bool {
		return strings.Contains(strings.ToLower(e.Question), t) ||
			strings.Contains(strings.ToLower(e.Answer), t)
	})
}

type Stats struct {
	Total        int
	UniqueUsers  int
	Text         int
	Image        int
	WithThinking int
	// Timed counts entries with a parsable response time; the durations
	// below are zero when it is 0.
	Timed   int
	Average float64
	Fastest float64
	Slowest float64
}

func Summarize(entries []Entry) Stats {
	s := Stats{Total: len(entries)}
	s.UniqueUsers = len(lo.Uniq(lo.Map(entries, func(e Entry, _ int) string { return e.UserID })))
	s.Image = lo.CountBy(entries, Entry.IsImage)
	s.Text = s.Total - s.Image
	s.WithThinking = lo.CountBy(entries, func(e Entry) bool { return strings.TrimSpace(e.Reasoning) != "" })

	times := lo.FilterMap(entries, func(e Entry, _ int) (float64, bool) { return e.Seconds() })
	if len(times) == 0 {
		return s
	}
	s.Timed = len(times)
	s.Average = lo.Sum(times) / float64(len(times))
	s.Fastest = lo.Min(times)
	s.Slowest = lo.Max(times)
	return s
}
