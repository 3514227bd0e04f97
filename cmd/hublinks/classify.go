package main

import (
	"fmt"
	"net/url"

	"github.com/hublinks/hublinks"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	u, err := url.Parse(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid URL %q: %v\n", c.URL, err)
		return err
	}

	cls := hublinks.Classify(u.Path, u.RawQuery)
	rc := hublinks.ParseRepoContext(u.Path)

	kind := string(cls.Kind)
	if cls.Kind == hublinks.KindNone {
		kind = "(generic)"
	}

	fmt.Fprintf(deps.Stdout, "kind:  %s\n", kind)
	fmt.Fprintf(deps.Stdout, "label: %s\n", cls.Label)
	if rc.Owner != "" {
		fmt.Fprintf(deps.Stdout, "owner: %s\n", rc.Owner)
	}
	if rc.Repo != "" {
		fmt.Fprintf(deps.Stdout, "repo:  %s\n", rc.Repo)
	}
	return nil
}
