package main

import (
	"fmt"

	"github.com/hublinks/hublinks"
	"github.com/hublinks/hublinks/batch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	formatter, err := deps.Formatter(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hublinks.ErrorMessage(err))
		return err
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Limiter:     batch.NewDomainLimiter(c.Rate),
		Concurrency: c.Concurrency,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "extracting %d pages\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	results, err := runner.Run(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	items := batch.Merge(results)
	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractable items found on these pages.")
		return nil
	}

	out, err := formatter.Format(items)
	if err != nil {
		return err
	}
	fmt.Fprint(deps.Stdout, out)
	return nil
}
