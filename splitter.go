package webrag

import "strings"

// MinChunkLength is the minimum trimmed length a chunk must exceed to be
// yielded by splitting. Shorter fragments carry too little signal to embed.
const MinChunkLength = 50

// defaultSeparators is the separator preference order for recursive
// splitting: paragraph break, line break, word boundary, then character
// boundary as a last resort.
var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Compile-time interface verification.
var _ Splitter = (*TextSplitter)(nil)

// TextSplitter splits text into overlapping, size-bounded chunks using
// recursive greedy splitting over a separator preference order.
//
// Splitting is fully deterministic for a given (ChunkSize, ChunkOverlap)
// pair: identical input always yields the identical chunk sequence.
type TextSplitter struct {
	ChunkSize    int
	ChunkOverlap int
}

// NewTextSplitter creates a TextSplitter with the given bounds.
func NewTextSplitter(chunkSize, chunkOverlap int) *TextSplitter {
	return &TextSplitter{ChunkSize: chunkSize, ChunkOverlap: chunkOverlap}
}

// Split divides text into ordered chunk texts of at most ChunkSize
// characters with ChunkOverlap characters of repeated context between
// consecutive chunks. Chunks with trimmed length <= MinChunkLength are
// discarded.
func (s *TextSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var chunks []string
	for _, chunk := range s.splitRecursive(text, defaultSeparators) {
		if len(strings.TrimSpace(chunk)) > MinChunkLength {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// splitRecursive splits text with the best available separator, recursing
// with finer separators for pieces that still exceed ChunkSize.
func (s *TextSplitter) splitRecursive(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	var remaining []string
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	splits := splitBy(text, separator)

	var chunks []string
	var good []string
	for _, piece := range splits {
		if len(piece) < s.ChunkSize {
			good = append(good, piece)
			continue
		}
		if len(good) > 0 {
			chunks = append(chunks, s.merge(good, separator)...)
			good = nil
		}
		if len(remaining) == 0 {
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.splitRecursive(piece, remaining)...)
		}
	}
	if len(good) > 0 {
		chunks = append(chunks, s.merge(good, separator)...)
	}
	return chunks
}

// merge greedily joins splits into chunks of at most ChunkSize characters,
// carrying up to ChunkOverlap characters of trailing context into the next
// chunk.
func (s *TextSplitter) merge(splits []string, separator string) []string {
	sepLen := len(separator)

	var chunks []string
	var current []string
	total := 0

	joinLen := func(extra int) int {
		if len(current) > 0 {
			return total + extra + sepLen
		}
		return total + extra
	}

	for _, piece := range splits {
		if joinLen(len(piece)) > s.ChunkSize && len(current) > 0 {
			if doc := strings.TrimSpace(strings.Join(current, separator)); doc != "" {
				chunks = append(chunks, doc)
			}
			// Shed leading context until the overlap budget fits and
			// the new piece can be appended without overflow.
			for total > s.ChunkOverlap || (joinLen(len(piece)) > s.ChunkSize && total > 0) {
				total -= len(current[0])
				if len(current) > 1 {
					total -= sepLen
				}
				current = current[1:]
			}
		}
		if len(current) > 0 {
			total += sepLen
		}
		current = append(current, piece)
		total += len(piece)
	}

	if doc := strings.TrimSpace(strings.Join(current, separator)); doc != "" {
		chunks = append(chunks, doc)
	}
	return chunks
}

// splitBy splits text on the separator, dropping empty pieces. An empty
// separator splits into individual characters.
func splitBy(text, separator string) []string {
	var raw []string
	if separator == "" {
		raw = strings.Split(text, "")
	} else {
		raw = strings.Split(text, separator)
	}

	pieces := make([]string, 0, len(raw))
	for _, piece := range raw {
		if piece != "" {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}
