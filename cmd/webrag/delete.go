package main

import (
	"fmt"

	webrag "github.com/GH05TCREW/WebRAG"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	url := webrag.NormalizeURL(c.URL)

	if err := deps.Index.DeleteSource(deps.Ctx, url); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", url)
	return nil
}
