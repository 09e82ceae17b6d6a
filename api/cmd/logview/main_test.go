package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const dayLog = "time,line_user,question,answer_reply,thinking_process,response_time\r\n" +
	"09:00:00,U1,สวัสดี,สวัสดีครับ,,0.010s\r\n" +
	"09:01:00,U2,[IMAGE] 2026_02_05_09_01_00_1.jpg,1. beagle (90.00%),plan,2.500s\r\n"

func writeLogs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "05-02-2026.csv"), []byte(dayLog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "04-02-2026.csv"), []byte(dayLog), 0o644))
	return dir
}

var now = time.Date(2026, 2, 5, 12, 0, 0, 0, time.Local)

func TestResolveDay(t *testing.T) {
	req := require.New(t)
	d, err := resolveDay("", now)
	req.NoError(err)
	req.Equal("05-02-2026", d)
	d, err = resolveDay("yesterday", now)
	req.NoError(err)
	req.Equal("04-02-2026", d)
	d, err = resolveDay("01-01-2026", now)
	req.NoError(err)
	req.Equal("01-01-2026", d)
	_, err = resolveDay("2026-01-01", now)
	req.Error(err)
}

func TestRun(t *testing.T) {
	dir := writeLogs(t)

	t.Run("list", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		req.NoError(run(&out, dir, "list", "", false, 0, now))
		req.Contains(out.String(), "05-02-2026")
		req.Contains(out.String(), "04-02-2026")
	})

	t.Run("today with stats", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		req.NoError(run(&out, dir, "today", "", true, 0, now))
		req.Contains(out.String(), "beagle")
		req.Contains(out.String(), "plan")
		req.Contains(out.String(), "total: 2")
	})

	t.Run("single entry", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		req.NoError(run(&out, dir, "05-02-2026", "", false, 2, now))
		req.Contains(out.String(), "[IMAGE] 2026_02_05_09_01_00_1.jpg")
		req.Error(run(&out, dir, "05-02-2026", "", false, 9, now))
	})

	t.Run("search across days", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		req.NoError(run(&out, dir, "", "BEAGLE", false, 0, now))
		req.Contains(out.String(), "2 match(es)")
	})

	t.Run("missing day", func(t *testing.T) {
		var out bytes.Buffer
		require.Error(t, run(&out, dir, "01-01-2020", "", false, 0, now))
	})
}
