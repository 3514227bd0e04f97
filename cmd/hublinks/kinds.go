package main

import "fmt"

// Run executes the kinds command.
func (c *KindsCmd) Run(deps *Dependencies) error {
	for _, kind := range deps.Registry.List() {
		fmt.Fprintln(deps.Stdout, string(kind))
	}
	return nil
}
