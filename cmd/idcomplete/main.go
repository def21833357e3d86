package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/idcomplete/internal/config"
	mcpserver "github.com/standardbeagle/idcomplete/internal/mcp"
	"github.com/standardbeagle/idcomplete/internal/version"
	"github.com/standardbeagle/idcomplete/internal/wordlist"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides.
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if wordlists := c.StringSlice("wordlist"); len(wordlists) > 0 {
		cfg.Wordlist.Patterns = wordlists
	}
	if c.IsSet("max") {
		cfg.Completer.MaxResults = c.Int("max")
	}
	if c.Bool("case-insensitive") {
		cfg.Completer.CaseSensitive = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:                   "idcomplete",
		Usage:                  "Fuzzy identifier completion with smart-case subsequence ranking",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Aliases:   []string{"q"},
				Usage:     "Rank identifiers from word lists against a query",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "wordlist",
						Aliases: []string{"w"},
						Usage:   "Word list file or doublestar glob (e.g., -w 'tags/**/*.txt')",
					},
					&cli.IntFlag{
						Name:    "max",
						Aliases: []string{"m"},
						Usage:   "Max completions to print (0 = unlimited)",
					},
					&cli.BoolFlag{
						Name:    "case-insensitive",
						Aliases: []string{"i"},
						Usage:   "Let uppercase query letters match lowercase text",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Re-run the query whenever a word list changes",
					},
					&cli.BoolFlag{
						Name:    "scores",
						Aliases: []string{"s"},
						Usage:   "Print scores next to completions",
					},
				},
				Action: runComplete,
			},
			{
				Name:  "mcp",
				Usage: "Serve the completer over MCP stdio",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "wordlist",
						Aliases: []string{"w"},
						Usage:   "Word lists to preload into the database",
					},
				},
				Action: runMCP,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runMCP(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	server := mcpserver.NewServer(cfg)
	if len(cfg.Wordlist.Patterns) > 0 {
		identifiers, err := wordlist.LoadPatterns(cfg.Wordlist.Patterns)
		if err != nil {
			return err
		}
		server.Database().Add(identifiers)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx)
}
