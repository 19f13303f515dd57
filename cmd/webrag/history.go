package main

import (
	"fmt"

	webrag "github.com/GH05TCREW/WebRAG"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	records, err := deps.Answers.RecentAnswers(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No questions asked yet.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "[%s] Q: %s\n", rec.CreatedAt.Format("2006-01-02 15:04"), rec.Question)
		fmt.Fprintf(deps.Stdout, "A: %s\n", rec.Answer)
		for _, src := range rec.Sources {
			fmt.Fprintf(deps.Stdout, "  - %s\n", src.URL)
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}
