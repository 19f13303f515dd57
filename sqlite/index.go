package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	webrag "github.com/GH05TCREW/WebRAG"
)

// Compile-time interface verification.
var _ webrag.VectorIndex = (*VectorIndex)(nil)

// VectorIndex implements webrag.VectorIndex using SQLite. Embeddings are
// stored as little-endian float32 blobs and searched by brute-force
// cosine similarity, which is fine at the per-domain page counts this
// system crawls.
type VectorIndex struct {
	db     *DB
	logger *slog.Logger
}

// NewVectorIndex creates a new VectorIndex.
func NewVectorIndex(db *DB) *VectorIndex {
	return &VectorIndex{db: db, logger: slog.Default()}
}

// ChunkID derives the deterministic chunk id for a source URL and
// sequence index. Identical (url, index) pairs always collide, which is
// what makes re-ingestion idempotent.
func ChunkID(url string, index int) string {
	return fmt.Sprintf("%016x_%d", xxhash.Sum64String(url), index)
}

// execer is satisfied by both *DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Add persists the request's chunks inside a single transaction,
// skipping ids that already exist, and replaces the source aggregate.
func (s *VectorIndex) Add(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error) {
	if req.URL == "" {
		return nil, webrag.Errorf(webrag.EINVALID, "source URL required")
	}
	if len(req.Chunks) != len(req.Embeddings) {
		return nil, webrag.Errorf(webrag.EINVALID, "chunks and embeddings must be parallel: %d vs %d", len(req.Chunks), len(req.Embeddings))
	}

	indices := req.Indices
	if indices == nil {
		indices = make([]int, len(req.Chunks))
		for i := range indices {
			indices[i] = i
		}
	}
	if len(indices) != len(req.Chunks) {
		return nil, webrag.Errorf(webrag.EINVALID, "indices and chunks must be parallel: %d vs %d", len(indices), len(req.Chunks))
	}

	dim := 0
	for _, emb := range req.Embeddings {
		if dim == 0 {
			dim = len(emb)
		}
		if len(emb) == 0 || len(emb) != dim {
			return nil, webrag.Errorf(webrag.EINVALID, "embeddings must share a single non-zero dimension")
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if dim > 0 {
		if err := s.ensureDimension(ctx, tx, dim); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	var result webrag.IndexResult

	for i, text := range req.Chunks {
		res, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO chunks (id, source_url, seq, total_chunks, text, embedding, title, domain, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, ChunkID(req.URL, indices[i]), req.URL, indices[i], req.TotalChunks, text,
			encodeEmbedding(req.Embeddings[i]), req.Title, req.Domain, now.Format(time.RFC3339))
		if err != nil {
			return nil, err
		}
		if n, err := res.RowsAffected(); err == nil && n == 1 {
			result.Added++
		} else {
			result.Skipped++
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sources (url, title, domain, chunk_count, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			domain = excluded.domain,
			chunk_count = excluded.chunk_count,
			content_hash = excluded.content_hash,
			indexed_at = excluded.indexed_at
	`, req.URL, req.Title, req.Domain, req.TotalChunks, req.ContentHash, now.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &result, nil
}

// ensureDimension records the index dimension on first use and resets
// the index when an incoming dimension differs. A mixed-dimension state
// is never persisted.
func (s *VectorIndex) ensureDimension(ctx context.Context, tx execer, dim int) error {
	var stored int
	err := tx.QueryRowContext(ctx, `SELECT dimension FROM index_meta WHERE id = 1`).Scan(&stored)
	if err == sql.ErrNoRows {
		_, err := tx.ExecContext(ctx, `INSERT INTO index_meta (id, dimension) VALUES (1, ?)`, dim)
		return err
	}
	if err != nil {
		return err
	}
	if stored == dim {
		return nil
	}

	s.logger.Warn("embedding dimension changed, resetting index",
		"stored", stored, "incoming", dim)

	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sources`); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `UPDATE index_meta SET dimension = ? WHERE id = 1`, dim)
	return err
}

// Search returns up to opts.TopK chunks ranked by cosine similarity.
// A query embedding whose dimension differs from the stored one resets
// the index and returns no matches.
func (s *VectorIndex) Search(ctx context.Context, embedding []float32, opts webrag.SearchOptions) ([]webrag.Match, error) {
	if len(embedding) == 0 {
		return nil, webrag.Errorf(webrag.EINVALID, "query embedding required")
	}
	if opts.TopK < 1 {
		return nil, webrag.Errorf(webrag.EINVALID, "topK must be at least 1")
	}

	var stored int
	err := s.db.QueryRowContext(ctx, `SELECT dimension FROM index_meta WHERE id = 1`).Scan(&stored)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if stored != len(embedding) {
		s.logger.Warn("query embedding dimension mismatch, resetting index",
			"stored", stored, "query", len(embedding))
		if err := s.DeleteAll(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	query := `SELECT id, source_url, seq, total_chunks, text, embedding, title, domain, created_at FROM chunks`
	var args []any
	if opts.Domain != "" {
		query += ` WHERE domain = ?`
		args = append(args, opts.Domain)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []webrag.Match
	for rows.Next() {
		var chunk webrag.Chunk
		var blob []byte
		var title, domain, createdAt string

		if err := rows.Scan(&chunk.ID, &chunk.SourceURL, &chunk.Index, &chunk.TotalChunks,
			&chunk.Text, &blob, &title, &domain, &createdAt); err != nil {
			return nil, err
		}
		if chunk.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		c := chunk
		matches = append(matches, webrag.Match{
			Chunk:  &c,
			Title:  title,
			Domain: domain,
			Score:  cosineSimilarity(embedding, decodeEmbedding(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > opts.TopK {
		matches = matches[:opts.TopK]
	}
	return matches, nil
}

// MissingChunks reports which sequence indices in [0, total) are not
// yet stored for the URL.
func (s *VectorIndex) MissingChunks(ctx context.Context, url string, total int) ([]int, error) {
	if total < 0 {
		return nil, webrag.Errorf(webrag.EINVALID, "total must be non-negative")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT seq FROM chunks WHERE source_url = ?`, url)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stored := make(map[int]bool)
	for rows.Next() {
		var seq int
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		stored[seq] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []int
	for i := 0; i < total; i++ {
		if !stored[i] {
			missing = append(missing, i)
		}
	}
	return missing, nil
}

// Sources lists all indexed sources, newest first.
func (s *VectorIndex) Sources(ctx context.Context) ([]*webrag.IndexedSource, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, domain, chunk_count, content_hash, indexed_at
		FROM sources
		ORDER BY indexed_at DESC, url ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*webrag.IndexedSource
	for rows.Next() {
		var src webrag.IndexedSource
		var indexedAt string
		if err := rows.Scan(&src.URL, &src.Title, &src.Domain, &src.ChunkCount, &src.ContentHash, &indexedAt); err != nil {
			return nil, err
		}
		if src.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at"); err != nil {
			return nil, err
		}
		sources = append(sources, &src)
	}
	return sources, rows.Err()
}

// Count returns the total number of stored chunks.
func (s *VectorIndex) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks`).Scan(&count)
	return count, err
}

// DeleteSource removes every chunk for the URL and its source entry.
// Deleting an unknown URL is a no-op.
func (s *VectorIndex) DeleteSource(ctx context.Context, url string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks WHERE source_url = ?`, url); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sources WHERE url = ?`, url); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteAll clears every chunk, all source entries, and the recorded
// dimension, so the next Add may use any embedding model.
func (s *VectorIndex) DeleteAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM chunks`,
		`DELETE FROM sources`,
		`DELETE FROM index_meta`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}
