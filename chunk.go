package webrag

import "time"

// Chunk is a size-bounded segment of a page's extracted text, the unit of
// embedding and retrieval. Chunk ids are deterministic, derived from the
// source URL hash and the sequence index, so re-ingesting unchanged content
// produces colliding ids that are skipped rather than re-embedded.
type Chunk struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Index       int       `json:"index"` // sequence index within the source
	TotalChunks int       `json:"totalChunks"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "chunk source URL required")
	}
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	if c.Index < 0 || c.Index >= c.TotalChunks {
		return Errorf(EINVALID, "chunk index %d out of range [0, %d)", c.Index, c.TotalChunks)
	}
	return nil
}

// Splitter divides extracted text into ordered chunk texts.
//
// Splitting must be deterministic: identical input with identical size and
// overlap settings yields an identical chunk sequence, because chunk ids
// are derived from (url, sequence index).
type Splitter interface {
	Split(text string) []string
}
