package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"breed-bot/api/internal/record"
	"breed-bot/api/internal/util"
)

const previewLen = 200

func main() {
	dir := flag.String("dir", "logs", "directory of daily CSV logs")
	search := flag.String("s", "", "search questions and answers")
	thinking := flag.Bool("t", false, "show the thinking process")
	entry := flag.Int("n", 0, "show only entry N (1-based)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: logview [flags] [list|today|yesterday|DD-MM-YYYY]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, *dir, flag.Arg(0), *search, *thinking, *entry, time.Now()); err != nil {
		color.Red.Println(err)
		os.Exit(1)
	}
}

func run(w io.Writer, dir, arg, search string, thinking bool, n int, now time.Time) error {
	if arg == "list" {
		return listDays(w, dir)
	}
	if search != "" && arg == "" {
		return searchAll(w, dir, search, thinking)
	}

	day, err := resolveDay(arg, now)
	if err != nil {
		return err
	}
	entries, err := record.ReadDay(dir, day)
	if err != nil {
		return fmt.Errorf("no log for %s: %w", day, err)
	}
	if search != "" {
		entries = record.Search(entries, search)
	}

	fmt.Fprintln(w, color.New(color.FgCyan, color.OpBold).Render("Log "+day))
	if n > 0 {
		if n > len(entries) {
			return fmt.Errorf("entry %d out of range (1-%d)", n, len(entries))
		}
		printEntry(w, n, entries[n-1])
		return nil
	}
	printEntries(w, entries, thinking)
	printStats(w, record.Summarize(entries))
	return nil
}

func resolveDay(arg string, now time.Time) (string, error) {
	switch arg {
	case "", "today":
		return now.Format(record.DayLayout), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(record.DayLayout), nil
	}
	if _, err := time.Parse(record.DayLayout, arg); err != nil {
		return "", fmt.Errorf("bad date %q, want DD-MM-YYYY", arg)
	}
	return arg, nil
}

func listDays(w io.Writer, dir string) error {
	days, err := record.ListDays(dir)
	if err != nil {
		return err
	}
	table := newTable(w, []string{"Day", "Entries", "With thinking", "Size"})
	for _, d := range days {
		entries := strconv.Itoa(d.Entries)
		if d.Err != nil {
			entries = "error: " + d.Err.Error()
		}
		table.Append([]string{d.Day, entries, strconv.Itoa(d.WithThinking), fmt.Sprintf("%.1f KB", float64(d.Size)/1024)})
	}
	table.Render()
	return nil
}

func searchAll(w io.Writer, dir, term string, thinking bool) error {
	days, err := record.ListDays(dir)
	if err != nil {
		return err
	}
	total := 0
	for _, d := range days {
		entries, err := record.ReadDay(dir, d.Day)
		if err != nil {
			continue
		}
		found := record.Search(entries, term)
		if len(found) == 0 {
			continue
		}
		total += len(found)
		fmt.Fprintln(w, color.New(color.FgCyan, color.OpBold).Render(d.Day))
		printEntries(w, found, thinking)
	}
	color.Fprintf(w, "<yellow>%d match(es) for %q</>\n", total, term)
	return nil
}

func printEntries(w io.Writer, entries []record.Entry, thinking bool) {
	header := []string{"#", "Time", "User", "Type", "Question", "Answer", "Response"}
	if thinking {
		header = append(header, "Thinking")
	}
	table := newTable(w, header)
	for i, e := range entries {
		kind := "text"
		if e.IsImage() {
			kind = "image"
		}
		row := []string{strconv.Itoa(i + 1), e.Time, e.UserID, kind,
			util.Truncate(e.Question, previewLen), util.Truncate(e.Answer, previewLen), e.ResponseTime}
		if thinking {
			row = append(row, util.Truncate(e.Reasoning, previewLen))
		}
		table.Append(row)
	}
	table.Render()
}

func printEntry(w io.Writer, n int, e record.Entry) {
	label := color.New(color.FgYellow).Render
	fmt.Fprintf(w, "%s %d\n", label("Entry"), n)
	fmt.Fprintf(w, "%s %s\n", label("Time:"), e.Time)
	fmt.Fprintf(w, "%s %s\n", label("User:"), e.UserID)
	fmt.Fprintf(w, "%s %s\n", label("Response time:"), e.ResponseTime)
	fmt.Fprintf(w, "%s\n%s\n", label("Question:"), e.Question)
	fmt.Fprintf(w, "%s\n%s\n", label("Answer:"), e.Answer)
	if e.HasThinkingColumn && e.Reasoning != "" {
		fmt.Fprintf(w, "%s\n%s\n", label("Thinking:"), e.Reasoning)
	}
}

func printStats(w io.Writer, s record.Stats) {
	fmt.Fprintln(w, color.New(color.FgCyan, color.OpBold).Render("Statistics"))
	fmt.Fprintf(w, "total: %d  users: %d  text: %d  image: %d  with thinking: %d\n",
		s.Total, s.UniqueUsers, s.Text, s.Image, s.WithThinking)
	if s.Timed > 0 {
		fmt.Fprintf(w, "response time avg %.3fs  min %.3fs  max %.3fs\n", s.Average, s.Fastest, s.Slowest)
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
