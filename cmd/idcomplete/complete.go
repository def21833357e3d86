package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/idcomplete/internal/completer"
	"github.com/standardbeagle/idcomplete/internal/debug"
	"github.com/standardbeagle/idcomplete/internal/wordlist"
)

func runComplete(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one query argument, got %d", c.NArg())
	}
	query := c.Args().First()

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	if len(cfg.Wordlist.Patterns) == 0 {
		return fmt.Errorf("no word lists given: pass --wordlist or set wordlist.patterns in %s", c.String("config"))
	}

	paths, err := wordlist.Expand(cfg.Wordlist.Patterns)
	if err != nil {
		return err
	}

	db := completer.NewDatabase()
	db.SetMinIdentifierLength(cfg.Completer.MinIdentifierLength)
	comp := completer.New(db, completer.Options{
		MaxResults:    cfg.Completer.MaxResults,
		CaseSensitive: cfg.Completer.CaseSensitive,
		Workers:       cfg.Completer.Workers,
	})

	reload := func() error {
		identifiers, err := wordlist.Load(paths)
		if err != nil {
			return err
		}
		db.Reset()
		db.Add(identifiers)
		debug.Logf("loaded %d identifiers from %d word lists", db.Len(), len(paths))
		return nil
	}
	if err := reload(); err != nil {
		return err
	}

	printResults := func() error {
		return printCompletions(c, comp, query)
	}
	if err := printResults(); err != nil {
		return err
	}

	if !c.Bool("watch") && !cfg.Wordlist.Watch {
		return nil
	}

	debounce := time.Duration(cfg.Wordlist.DebounceMs) * time.Millisecond
	watcher, err := wordlist.NewWatcher(paths, debounce, func() {
		if err := reload(); err != nil {
			fmt.Fprintln(os.Stderr, "reload failed:", err)
			return
		}
		if err := printResults(); err != nil {
			fmt.Fprintln(os.Stderr, "query failed:", err)
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

func printCompletions(c *cli.Context, comp *completer.Completer, query string) error {
	results := comp.ResultsForQuery(query)

	if c.Bool("json") {
		type completionJSON struct {
			Text  string `json:"text"`
			Score int64  `json:"score,omitempty"`
		}
		out := make([]completionJSON, 0, len(results))
		for _, r := range results {
			entry := completionJSON{Text: r.Text()}
			if c.Bool("scores") {
				entry.Score = r.Score()
			}
			out = append(out, entry)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]interface{}{
			"query":       query,
			"completions": out,
		})
	}

	for _, r := range results {
		if c.Bool("scores") {
			fmt.Printf("%d\t%s\n", r.Score(), r.Text())
		} else {
			fmt.Println(r.Text())
		}
	}
	return nil
}
