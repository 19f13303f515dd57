package mock

import (
	"context"

	webrag "github.com/GH05TCREW/WebRAG"
)

var _ webrag.AnswerLog = (*AnswerLog)(nil)

// AnswerLog is a mock implementation of webrag.AnswerLog.
type AnswerLog struct {
	CreateAnswerFn  func(ctx context.Context, rec *webrag.AnswerRecord) error
	RecentAnswersFn func(ctx context.Context, limit int) ([]*webrag.AnswerRecord, error)
}

func (l *AnswerLog) CreateAnswer(ctx context.Context, rec *webrag.AnswerRecord) error {
	return l.CreateAnswerFn(ctx, rec)
}

func (l *AnswerLog) RecentAnswers(ctx context.Context, limit int) ([]*webrag.AnswerRecord, error) {
	return l.RecentAnswersFn(ctx, limit)
}
