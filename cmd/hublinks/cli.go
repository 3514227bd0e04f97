package main

import (
	"context"
	"io"

	"github.com/hublinks/hublinks"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Fetcher    hublinks.Fetcher
	Extractor  hublinks.Extractor
	Registry   hublinks.SelectorRegistry
	Formatters map[string]hublinks.Formatter
}

// Formatter returns the named formatter or an EINVALID error listing the
// known names.
func (d *Dependencies) Formatter(name string) (hublinks.Formatter, error) {
	if f, ok := d.Formatters[name]; ok {
		return f, nil
	}
	return nil, hublinks.Errorf(hublinks.EINVALID, "unknown format %q (expected one of plain, markdown, csv, json, html)", name)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract  ExtractCmd  `cmd:"" help:"Extract items from one list page"`
	Classify ClassifyCmd `cmd:"" help:"Show how a URL is classified, without fetching it"`
	Kinds    KindsCmd    `cmd:"" help:"List the registered page categories"`
	Batch    BatchCmd    `cmd:"" help:"Extract items from several list pages"`

	Browser      bool `short:"b" help:"Render pages with a headless browser (needed for client-rendered list views)"`
	Verbose      bool `short:"v" help:"Log fetch and extraction details to stderr"`
	NoExhaustive bool `help:"Skip the all-categories retry before the generic fallback"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Format string `short:"f" default:"plain" help:"Output format: plain, markdown, csv, json, html"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// KindsCmd is the "kinds" subcommand.
type KindsCmd struct{}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" help:"Page URLs"`
	Format      string   `short:"f" default:"plain" help:"Output format: plain, markdown, csv, json, html"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64  `default:"1.0" help:"Max requests per second per domain"`
}
