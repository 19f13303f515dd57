package main

import (
	"fmt"

	webrag "github.com/GH05TCREW/WebRAG"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintln(deps.Stderr, "This deletes all indexed content. Re-run with --force to confirm.")
		return webrag.Errorf(webrag.EINVALID, "reset requires --force")
	}

	if err := deps.Index.DeleteAll(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Index reset.")
	return nil
}
