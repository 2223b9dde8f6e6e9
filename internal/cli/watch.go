package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/mcoot/puppybowl-roster/internal/web/templates/components"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream roster updates from a running roster web UI",
		Long: `Connect to the web UI's /events stream and print the roster each time
another page adds or removes a player.

Press Ctrl+C to disconnect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchRoster(ctx, cmd.OutOrStdout())
		},
	}
}

// RosterEvent is one roster-update as printed by watch
type RosterEvent struct {
	Time    time.Time `json:"time"`
	Players []string  `json:"players"`
}

func watchRoster(ctx context.Context, w io.Writer) error {
	url := strings.TrimSuffix(cfg.WebURL, "/") + "/events"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// No timeout: the stream stays open until cancelled
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	out := NewOutput(cfg.Output, w)
	if cfg.Output != "json" {
		_, _ = fmt.Fprintf(w, "Watching %s\n", cfg.WebURL)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	var event string
	var data []string

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		case line == "":
			if event == components.RosterUpdateEvent {
				if err := printRosterEvent(out, w, strings.Join(data, "\n")); err != nil {
					return err
				}
			}
			event = ""
			data = nil
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stream error: %w", err)
	}
	if cfg.Output != "json" {
		_, _ = fmt.Fprintln(w, "Disconnected")
	}
	return nil
}

// printRosterEvent pulls the player names out of a rendered roster container
func printRosterEvent(out *Output, w io.Writer, html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse roster update: %w", err)
	}

	evt := RosterEvent{Time: time.Now(), Players: []string{}}
	doc.Find(".player .player-name").Each(func(_ int, s *goquery.Selection) {
		evt.Players = append(evt.Players, s.Text())
	})

	if cfg.Output == "json" {
		data, _ := json.Marshal(evt)
		_, _ = fmt.Fprintln(w, string(data))
		return nil
	}

	out.PrintMessage(fmt.Sprintf("[%s] roster: %d players %s",
		evt.Time.Format("2006-01-02 15:04:05"), len(evt.Players), strings.Join(evt.Players, ", ")))
	return nil
}
