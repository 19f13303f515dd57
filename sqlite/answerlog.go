package sqlite

import (
	"context"
	"encoding/json"
	"time"

	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webrag.AnswerLog = (*AnswerLog)(nil)

// AnswerLog persists question/answer exchanges using SQLite.
type AnswerLog struct {
	db *DB
}

// NewAnswerLog creates a new AnswerLog.
func NewAnswerLog(db *DB) *AnswerLog {
	return &AnswerLog{db: db}
}

// CreateAnswer stores a new record, assigning its ID and timestamp.
func (l *AnswerLog) CreateAnswer(ctx context.Context, rec *webrag.AnswerRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	sources, err := json.Marshal(rec.Sources)
	if err != nil {
		return err
	}

	_, err = l.db.ExecContext(ctx, `
		INSERT INTO answers (id, question, answer, sources, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Question, rec.Answer, string(sources), rec.Model, rec.CreatedAt.Format(time.RFC3339))

	return err
}

// RecentAnswers returns up to limit records, newest first.
func (l *AnswerLog) RecentAnswers(ctx context.Context, limit int) ([]*webrag.AnswerRecord, error) {
	if limit < 1 {
		return nil, webrag.Errorf(webrag.EINVALID, "limit must be at least 1")
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, question, answer, sources, model, created_at
		FROM answers
		ORDER BY created_at DESC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*webrag.AnswerRecord
	for rows.Next() {
		var rec webrag.AnswerRecord
		var sources, createdAt string
		if err := rows.Scan(&rec.ID, &rec.Question, &rec.Answer, &sources, &rec.Model, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(sources), &rec.Sources); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
