package webrag

import (
	"context"
	"time"
)

// Answerer turns a question plus retrieved context into prose. It is an
// external collaborator: retrieval ends at the RetrievalResult list.
type Answerer interface {
	Answer(ctx context.Context, question string, results []RetrievalResult) (string, error)
}

// AnswerRecord is a persisted question/answer exchange.
type AnswerRecord struct {
	ID        string      `json:"id"`
	Question  string      `json:"question"`
	Answer    string      `json:"answer"`
	Sources   []SourceRef `json:"sources"`
	Model     string      `json:"model"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *AnswerRecord) Validate() error {
	if r.Question == "" {
		return Errorf(EINVALID, "answer record question required")
	}
	return nil
}

// AnswerLog persists question/answer exchanges.
type AnswerLog interface {
	// CreateAnswer stores a new record, assigning its ID and timestamp.
	CreateAnswer(ctx context.Context, rec *AnswerRecord) error

	// RecentAnswers returns up to limit records, newest first.
	RecentAnswers(ctx context.Context, limit int) ([]*AnswerRecord, error)
}
