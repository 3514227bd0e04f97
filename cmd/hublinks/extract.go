package main

import (
	"fmt"

	"github.com/hublinks/hublinks"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	formatter, err := deps.Formatter(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hublinks.ErrorMessage(err))
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching %s: %v\n", c.URL, err)
		return err
	}

	result, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hublinks.ErrorMessage(err))
		return err
	}

	// "No items" is a normal empty state, not a failure of the program.
	if !result.Success {
		fmt.Fprintln(deps.Stdout, result.Err)
		return nil
	}

	out, err := formatter.Format(result.Items)
	if err != nil {
		return err
	}
	fmt.Fprint(deps.Stdout, out)
	return nil
}
