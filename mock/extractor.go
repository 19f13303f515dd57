package mock

import webrag "github.com/GH05TCREW/WebRAG"

var _ webrag.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webrag.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) (*webrag.ExtractResult, error)
}

func (e *Extractor) Extract(html string, sourceURL string) (*webrag.ExtractResult, error) {
	return e.ExtractFn(html, sourceURL)
}
