package record_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"breed-bot/api/internal/record"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestDailyCSV_TwoRecordsSameDay(t *testing.T) {
	req := require.New(t)
	dir := filepath.Join(t.TempDir(), "logs")
	sink := record.NewDailyCSV(dir, true)
	day := time.Date(2026, 2, 5, 9, 4, 7, 0, time.Local)

	req.NoError(sink.Append(context.Background(), record.Record{
		Time: day, UserID: "U1", Question: "สวัสดี", Answer: "สวัสดีครับ", ResponseTime: 1234567 * time.Microsecond,
	}))
	req.NoError(sink.Append(context.Background(), record.Record{
		Time: day.Add(time.Hour), UserID: "U2", Question: "[IMAGE] 2026_02_05_10_04_07_42.jpg",
		Answer: "1. beagle (90.00%)\nline, with comma", Reasoning: "think \"hard\"", ResponseTime: 20 * time.Millisecond,
	}))

	files, err := os.ReadDir(dir)
	req.NoError(err)
	req.Len(files, 1)
	req.Equal("05-02-2026.csv", files[0].Name())

	rows := readRows(t, filepath.Join(dir, "05-02-2026.csv"))
	req.Len(rows, 3)
	req.Equal([]string{"time", "line_user", "question", "answer_reply", "thinking_process", "response_time"}, rows[0])
	req.Equal([]string{"09:04:07", "U1", "สวัสดี", "สวัสดีครับ", "", "1.235s"}, rows[1])
	req.Equal([]string{"10:04:07", "U2", "[IMAGE] 2026_02_05_10_04_07_42.jpg",
		"1. beagle (90.00%)\nline, with comma", "think \"hard\"", "0.020s"}, rows[2])
}

func TestDailyCSV_WithoutThinkingColumn(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	sink := record.NewDailyCSV(dir, false)
	day := time.Date(2026, 12, 31, 23, 59, 59, 0, time.Local)

	req.NoError(sink.Append(context.Background(), record.Record{
		Time: day, UserID: "U1", Question: "q", Answer: "a", Reasoning: "dropped", ResponseTime: time.Second,
	}))
	req.NoError(sink.Append(context.Background(), record.Record{
		Time: day.Add(2 * time.Second), UserID: "U1", Question: "q2", Answer: "a2", ResponseTime: 0,
	}))

	rows := readRows(t, filepath.Join(dir, "31-12-2026.csv"))
	req.Len(rows, 2)
	req.Equal([]string{"time", "line_user", "question", "answer_reply", "response_time"}, rows[0])
	req.Equal([]string{"23:59:59", "U1", "q", "a", "1.000s"}, rows[1])

	rows = readRows(t, filepath.Join(dir, "01-01-2027.csv"))
	req.Len(rows, 2)
	req.Equal("0.000s", rows[1][4])
}

func TestDailyCSV_UsesCRLF(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	sink := record.NewDailyCSV(dir, true)
	day := time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local)
	req.NoError(sink.Append(context.Background(), record.Record{Time: day, UserID: "U", Question: "q", Answer: "a"}))

	b, err := os.ReadFile(filepath.Join(dir, "01-03-2026.csv"))
	req.NoError(err)
	req.True(strings.HasPrefix(string(b), "time,line_user,question,answer_reply,thinking_process,response_time\r\n"))
}

func TestDailyCSV_UnwritableDir(t *testing.T) {
	req := require.New(t)
	blocker := filepath.Join(t.TempDir(), "file")
	req.NoError(os.WriteFile(blocker, []byte("x"), 0o644))

	sink := record.NewDailyCSV(filepath.Join(blocker, "logs"), true)
	err := sink.Append(context.Background(), record.Record{Time: time.Now()})
	req.Error(err)
}

func TestFormatResponseTime(t *testing.T) {
	req := require.New(t)
	req.Equal("0.001s", record.FormatResponseTime(1400*time.Microsecond))
	req.Equal("12.000s", record.FormatResponseTime(12*time.Second))
	req.Equal("05-02-2026.csv", record.FileName(time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)))
}
