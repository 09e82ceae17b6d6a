package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"

	"breed-bot/api/internal/app"
	"breed-bot/api/internal/bot"
	"breed-bot/api/internal/config"
)

const userID = "console"

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mainImpl() error {
	cfg, err := config.LoadLocal()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)
	ctx := context.Background()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	out := terminal{}
	h := a.NewHandler(out, files{})

	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()

	color.Cyan.Printf("backend: %s (:engine NAME to switch, :image PATH to send a photo)\n", a.Engines.Get(userID).Name())
	seq := 0
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		seq++
		ev := bot.IncomingEvent{UserID: userID, ReplyToken: strconv.Itoa(seq), ReceivedAt: time.Now()}

		switch {
		case strings.HasPrefix(line, ":image "):
			ev.Kind = bot.EventImage
			ev.MessageID = strings.TrimSpace(strings.TrimPrefix(line, ":image "))
		case strings.HasPrefix(line, ":engine"):
			name := strings.TrimSpace(strings.TrimPrefix(line, ":engine"))
			if name == "" {
				color.Cyan.Printf("%s, available: %s\n", a.Engines.Get(userID).Name(), strings.Join(a.Engines.Names(), ", "))
				continue
			}
			if _, err := a.Engines.Set(userID, name); err != nil {
				color.Red.Println(err)
			}
			continue
		default:
			ev.Kind = bot.EventText
			ev.Text = line
		}
		h.Handle(ctx, ev)
	}
	return nil
}

// terminal prints replies in place of a chat platform.
type terminal struct{}

func (terminal) Reply(_ context.Context, _ string, text string) error {
	color.Green.Println(text)
	return nil
}

// files reads images from disk; the message id is the path.
type files struct{}

func (files) Fetch(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}
