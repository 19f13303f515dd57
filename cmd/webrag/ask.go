package main

import (
	"fmt"

	webrag "github.com/GH05TCREW/WebRAG"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	results, sources, err := deps.Retriever.Retrieve(deps.Ctx, c.Question, deps.Config.TopKResults)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(deps.Stderr, "Nothing indexed matches this question. Use 'webrag add' to index content first.")
		return webrag.Errorf(webrag.ENOTFOUND, "no relevant content found")
	}

	answer, err := deps.Answerer.Answer(deps.Ctx, c.Question, results)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	fmt.Fprintln(deps.Stdout, "\nSources:")
	for _, src := range sources {
		title := src.Title
		if title == "" {
			title = src.URL
		}
		fmt.Fprintf(deps.Stdout, "  - %s (%s)\n", title, src.URL)
	}

	// A failed log entry should not hide a good answer.
	if err := deps.Answers.CreateAnswer(deps.Ctx, &webrag.AnswerRecord{
		Question: c.Question,
		Answer:   answer,
		Sources:  sources,
		Model:    deps.Config.ChatModel,
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record answer: %s\n", webrag.ErrorMessage(err))
	}

	return nil
}
