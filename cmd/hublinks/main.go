package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/hublinks/hublinks"
	"github.com/hublinks/hublinks/etree"
	"github.com/hublinks/hublinks/goquery"
	hubhttp "github.com/hublinks/hublinks/http"
	"github.com/hublinks/hublinks/rod"
	hubslog "github.com/hublinks/hublinks/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher and Extractor may be set before Run for end-to-end testing;
	// Run wires real implementations when they are nil.
	Fetcher   hublinks.Fetcher
	Extractor hublinks.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hublinks"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hublinks --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Core extraction services.
	registry := goquery.DefaultRegistry()
	deps.Registry = registry

	extractor := m.Extractor
	if extractor == nil {
		extractor = goquery.NewExtractor(registry, goquery.NewGenericSelector(),
			goquery.WithExhaustiveFallback(!cli.NoExhaustive))
	}
	deps.Extractor = hubslog.NewLoggingExtractor(extractor, logger)

	deps.Formatters = map[string]hublinks.Formatter{
		"plain":    &hublinks.PlainFormatter{},
		"markdown": &hublinks.MarkdownFormatter{},
		"csv":      &hublinks.CSVFormatter{},
		"json":     &hublinks.JSONFormatter{},
		"html":     etree.NewFormatter(),
	}

	// Only the fetching commands need a fetcher; classify and kinds work
	// offline.
	if cmd == "extract" || cmd == "batch" {
		fetcher := m.Fetcher
		if fetcher == nil {
			if cli.Browser {
				fetcher, err = rod.NewFetcher()
				if err != nil {
					fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
					return fmt.Errorf("failed to start browser: %w", err)
				}
			} else {
				fetcher = hubhttp.NewFetcher()
			}
		}
		deps.Fetcher = hubslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}
