package mock

import (
	"context"

	webrag "github.com/GH05TCREW/WebRAG"
)

var _ webrag.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of webrag.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question string, results []webrag.RetrievalResult) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, question string, results []webrag.RetrievalResult) (string, error) {
	return a.AnswerFn(ctx, question, results)
}
